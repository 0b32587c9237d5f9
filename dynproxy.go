// Package dynproxy wires the demonstration person, the interception proxy
// and its observers together.
package dynproxy

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gocircum/dynproxy/core/config"
	"github.com/gocircum/dynproxy/core/person"
	"github.com/gocircum/dynproxy/core/proxy"
	"github.com/gocircum/dynproxy/interfaces"
	"github.com/gocircum/dynproxy/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
)

// Demo runs the proxy demonstration against a single Man.
type Demo struct {
	cfg      *config.FileConfig
	out      io.Writer
	logger   logging.Logger
	registry *prometheus.Registry
	man      *person.Man
	proxy    *proxy.Proxy
}

// NewDemo builds the subject and its proxy from cfg. Everything, including
// the console markers, is written to out.
func NewDemo(cfg *config.FileConfig, out io.Writer, logger logging.Logger) (*Demo, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Demo{
		cfg:      cfg,
		out:      out,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	d.man = person.NewMan(cfg.Subject.Name, cfg.Subject.Age, cfg.Subject.City, cfg.Subject.Country, person.WithOutput(out))

	metrics, err := proxy.MetricsObserver(d.registry)
	if err != nil {
		return nil, err
	}
	observers := []proxy.Observer{proxy.LoggingObserver(logger), metrics}
	if cfg.Proxy.MarkersEnabled() {
		observers = append([]proxy.Observer{proxy.ConsoleObserver(out)}, observers...)
	}

	d.proxy, err = proxy.New[interfaces.Person](d.man,
		proxy.WithObserver(proxy.Chain(observers...)),
		proxy.WithAfterOnPanic(cfg.Proxy.AfterOnPanic),
		proxy.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy: %w", err)
	}
	return d, nil
}

// Run calls every Person method through the proxy and then directly on the
// subject.
func (d *Demo) Run() {
	d.logger.Info("Starting demo", "subject", d.cfg.Subject.Name)
	fmt.Fprintln(d.out, "=== DYNAMIC PROXY DEMO ===")

	fmt.Fprintln(d.out, "\n--- PROXY CALLS ---")
	callAll(person.NewProxy(d.proxy), "test")

	fmt.Fprintln(d.out, "\n--- DIRECT CALLS (NO PROXY) ---")
	callAll(d.man, "direct")

	fmt.Fprintln(d.out, "\n=== DEMO COMPLETED ===")
	d.logger.Info("Demo completed")
}

func callAll(p interfaces.Person, arg string) {
	p.Introduce(arg)
	p.SayAge(arg)
	p.SayWhereFrom(arg, arg)
}

// Invoke forwards a single call by name through the proxy.
func (d *Demo) Invoke(method string, args ...string) (proxy.Result, error) {
	in := make([]any, len(args))
	for i, a := range args {
		in[i] = a
	}
	return d.proxy.Invoke(method, in...)
}

// Methods lists the operations the proxy forwards.
func (d *Demo) Methods() []string {
	return d.proxy.Methods()
}

// WriteMetrics writes the invocation counters collected so far, one line
// per method and outcome.
func (d *Demo) WriteMetrics(w io.Writer) error {
	families, err := d.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
