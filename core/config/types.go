package config

// FileConfig is the top-level structure of the demonstration config file.
type FileConfig struct {
	Subject Subject `yaml:"subject"`
	Proxy   Proxy   `yaml:"proxy"`
	Logging Logging `yaml:"logging"`
}

// Subject holds the fixed details of the demonstration person.
type Subject struct {
	Name    string `yaml:"name"`
	Age     int    `yaml:"age"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

// Proxy configures the interception proxy.
type Proxy struct {
	// AfterOnPanic emits the after marker even when the target panics.
	AfterOnPanic bool `yaml:"after_on_panic"`
	// Markers toggles the console banner around proxied calls.
	Markers *bool `yaml:"markers,omitempty"`
}

// Logging configures the global logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MarkersEnabled reports whether console markers should be printed.
// Markers are on unless explicitly disabled.
func (p Proxy) MarkersEnabled() bool {
	return p.Markers == nil || *p.Markers
}

// Default returns the built-in demonstration configuration.
func Default() *FileConfig {
	return &FileConfig{
		Subject: Subject{
			Name:    "Mohan",
			Age:     30,
			City:    "Delhi",
			Country: "India",
		},
		Logging: Logging{
			Level:  "warn",
			Format: "console",
		},
	}
}
