package person

import (
	"github.com/gocircum/dynproxy/core/proxy"
	"github.com/gocircum/dynproxy/interfaces"
)

// proxiedPerson satisfies Person by routing every method through a Proxy.
type proxiedPerson struct {
	p *proxy.Proxy
}

// NewProxy returns a Person whose methods are forwarded through p. The
// Person methods cannot report errors, so a Proxy that was not built over
// the Person capability set panics on first use.
func NewProxy(p *proxy.Proxy) interfaces.Person {
	return &proxiedPerson{p: p}
}

func (pp *proxiedPerson) Introduce(name string) {
	pp.invoke("Introduce", name)
}

func (pp *proxiedPerson) SayAge(age string) {
	pp.invoke("SayAge", age)
}

func (pp *proxiedPerson) SayWhereFrom(city, country string) {
	pp.invoke("SayWhereFrom", city, country)
}

func (pp *proxiedPerson) invoke(method string, args ...any) {
	if _, err := pp.p.Invoke(method, args...); err != nil {
		panic(err)
	}
}
