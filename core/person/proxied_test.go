package person

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gocircum/dynproxy/core/proxy"
	"github.com/gocircum/dynproxy/interfaces"
	"github.com/gocircum/dynproxy/mocks"
	"github.com/gocircum/dynproxy/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const banner = "=== PROXY INTERCEPTED ===\nMethod called: %s\nBefore method execution\n%sAfter method execution\n=== END PROXY ===\n"

func newMohan(t *testing.T) (*proxy.Proxy, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	mohan := NewMan("Mohan", 30, "Delhi", "India", WithOutput(&buf))
	p, err := proxy.New[interfaces.Person](mohan,
		proxy.WithObserver(proxy.ConsoleObserver(&buf)),
		proxy.WithLogger(testutils.NewTestLogger()),
	)
	require.NoError(t, err)
	return p, &buf
}

func TestProxyScenario(t *testing.T) {
	tests := []struct {
		method string
		goName string
		args   []any
		want   string
	}{
		{method: "introduce", goName: "Introduce", args: []any{"test"}, want: "My name is Mohan\n"},
		{method: "sayAge", goName: "SayAge", args: []any{"test"}, want: "I am 30 years old\n"},
		{method: "sayWhereFrom", goName: "SayWhereFrom", args: []any{"test", "test"}, want: "I'm from Delhi, India\n"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			p, buf := newMohan(t)

			result, err := p.Invoke(tt.method, tt.args...)
			require.NoError(t, err)
			assert.Empty(t, result)

			assert.Equal(t, fmt.Sprintf(banner, tt.goName, tt.want), buf.String())
		})
	}
}

func TestProxyUnsupportedOperation(t *testing.T) {
	p, buf := newMohan(t)

	_, err := p.Invoke("fly")
	require.ErrorIs(t, err, proxy.ErrUnsupportedOperation)
	assert.Empty(t, buf.String())
}

func TestProxyMethods(t *testing.T) {
	p, _ := newMohan(t)
	assert.Equal(t, []string{"Introduce", "SayAge", "SayWhereFrom"}, p.Methods())
}

func TestNewProxyFacade(t *testing.T) {
	p, buf := newMohan(t)
	var facade interfaces.Person = NewProxy(p)

	facade.Introduce("test")
	facade.SayAge("test")
	facade.SayWhereFrom("test", "test")

	want := fmt.Sprintf(banner, "Introduce", "My name is Mohan\n") +
		fmt.Sprintf(banner, "SayAge", "I am 30 years old\n") +
		fmt.Sprintf(banner, "SayWhereFrom", "I'm from Delhi, India\n")
	assert.Equal(t, want, buf.String())
}

func TestNewProxyFacadePanicsOnForeignProxy(t *testing.T) {
	p, err := proxy.New(&testutils.Calculator{}, proxy.WithLogger(testutils.NewTestLogger()))
	require.NoError(t, err)

	assert.Panics(t, func() { NewProxy(p).Introduce("x") })
}

func TestProxyForwardsExactArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := mocks.NewMockPerson(ctrl)

	gomock.InOrder(
		target.EXPECT().Introduce("Alice"),
		target.EXPECT().SayWhereFrom("Pune", "India"),
	)

	p, err := proxy.New[interfaces.Person](target, proxy.WithLogger(testutils.NewTestLogger()))
	require.NoError(t, err)

	_, err = p.Invoke("introduce", "Alice")
	require.NoError(t, err)
	_, err = p.Invoke("sayWhereFrom", "Pune", "India")
	require.NoError(t, err)

	_, err = p.Invoke("EXPECT")
	assert.ErrorIs(t, err, proxy.ErrUnsupportedOperation)
}
