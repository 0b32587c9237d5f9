package person

import (
	"fmt"
	"io"
	"os"

	"github.com/gocircum/dynproxy/interfaces"
)

var _ interfaces.Person = (*Man)(nil)

// Man is the concrete Person used by the demonstration. Its fields are set
// once by NewMan and never change, so its methods are safe for concurrent use
// as long as the output writer is.
type Man struct {
	name    string
	age     int
	city    string
	country string
	out     io.Writer
}

// Option configures a Man.
type Option func(*Man)

// WithOutput sets where the Man writes its lines. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Man) {
		if w != nil {
			m.out = w
		}
	}
}

// NewMan creates a Man with the given details.
func NewMan(name string, age int, city, country string, opts ...Option) *Man {
	m := &Man{
		name:    name,
		age:     age,
		city:    city,
		country: country,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Introduce prints the name the Man was created with. The argument is
// accepted to satisfy Person and is not used.
func (m *Man) Introduce(string) {
	fmt.Fprintf(m.out, "My name is %s\n", m.name)
}

// SayAge prints the age the Man was created with.
func (m *Man) SayAge(string) {
	fmt.Fprintf(m.out, "I am %d years old\n", m.age)
}

// SayWhereFrom prints the city and country the Man was created with.
func (m *Man) SayWhereFrom(_, _ string) {
	fmt.Fprintf(m.out, "I'm from %s, %s\n", m.city, m.country)
}
