package proxy

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// method is a bound, reflected method of the proxy target.
type method struct {
	name         string
	fn           reflect.Value
	returnsError bool
}

func newMethod(name string, fn reflect.Value) *method {
	t := fn.Type()
	return &method{
		name:         name,
		fn:           fn,
		returnsError: t.NumOut() > 0 && t.Out(t.NumOut()-1) == errorType,
	}
}

// lookupKey folds the first rune so that "sayAge" and "SayAge" resolve to
// the same exported method.
func lookupKey(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// arguments checks args against the method signature and converts them to
// reflect values without altering them.
func (m *method) arguments(args []any) ([]reflect.Value, error) {
	t := m.fn.Type()
	n := t.NumIn()

	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: %s expects at least %d arguments, got %d", ErrArgumentMismatch, m.name, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrArgumentMismatch, m.name, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if t.IsVariadic() && i >= n-1 {
			want = t.In(n - 1).Elem()
		} else {
			want = t.In(i)
		}

		v, err := argumentValue(arg, want)
		if err != nil {
			return nil, fmt.Errorf("%w: %s argument %d: %v", ErrArgumentMismatch, m.name, i, err)
		}
		in[i] = v
	}
	return in, nil
}

func argumentValue(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not a valid %s", want)
	}

	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), want)
	}
	return v, nil
}

// results separates a trailing error from the other return values.
func (m *method) results(out []reflect.Value) (Result, error) {
	var err error
	if m.returnsError {
		last := out[len(out)-1]
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		out = out[:len(out)-1]
	}

	if len(out) == 0 {
		return nil, err
	}
	res := make(Result, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res, err
}
