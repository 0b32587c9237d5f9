package testutils

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gocircum/dynproxy/core/proxy"
)

// Journal records markers and target calls in the order they happen.
type Journal struct {
	mu      sync.Mutex
	entries []string
}

// Add appends an entry.
func (j *Journal) Add(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the recorded entries.
func (j *Journal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

// String joins the entries with spaces.
func (j *Journal) String() string {
	return strings.Join(j.Entries(), " ")
}

// JournalObserver is a proxy.Observer that writes to a Journal.
type JournalObserver struct {
	Journal *Journal
}

func (o *JournalObserver) Before(inv *proxy.Invocation) {
	o.Journal.Add("before:%s", inv.Method)
}

func (o *JournalObserver) After(inv *proxy.Invocation, _ proxy.Result, err error) {
	if err != nil {
		o.Journal.Add("after:%s:error", inv.Method)
		return
	}
	o.Journal.Add("after:%s", inv.Method)
}

// ErrDivideByZero is returned by Calculator.Divide.
var ErrDivideByZero = errors.New("divide by zero")

// Calculator is a test target covering return values, errors, panics and
// variadic parameters.
type Calculator struct {
	Journal *Journal
	Seen    [][]any
}

func (c *Calculator) record(method string, args ...any) {
	c.Seen = append(c.Seen, args)
	if c.Journal != nil {
		c.Journal.Add("call:%s", method)
	}
}

// Add returns a+b.
func (c *Calculator) Add(a, b int) int {
	c.record("Add", a, b)
	return a + b
}

// Divide returns a/b or ErrDivideByZero.
func (c *Calculator) Divide(a, b int) (int, error) {
	c.record("Divide", a, b)
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Greet returns a greeting repeated times times.
func (c *Calculator) Greet(name string, times int) string {
	c.record("Greet", name, times)
	return strings.Repeat("hello "+name+" ", times)
}

// Sum adds all values.
func (c *Calculator) Sum(label string, values ...int) (string, int) {
	c.record("Sum", label, values)
	total := 0
	for _, v := range values {
		total += v
	}
	return label, total
}

// Describe formats any value, including nil.
func (c *Calculator) Describe(v fmt.Stringer) string {
	c.record("Describe", v)
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// Explode panics with the given value.
func (c *Calculator) Explode(v string) {
	c.record("Explode", v)
	panic(v)
}
