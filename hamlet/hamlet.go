package hamlet

import (
	"fmt"
	"reflect"
	"testing"
)

// Hamlet is a minimal "to be, or not to be" assertion helper. Tests ask for
// the pair with Specifications and then state what must be and what wont be.
type Hamlet struct {
	t        *testing.T
	expected bool
}

func Specifications(t *testing.T) (*Hamlet, *Hamlet) {
	t.Helper()
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) fails(form string, details ...interface{}) {
	it.t.Helper()
	it.t.Errorf(form, details...)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflected.IsNil()
	}
	return false
}

func (it *Hamlet) Nil(value interface{}) {
	it.t.Helper()
	if isNil(value) != it.expected {
		it.fails("%v nil status was not expected %v!", value, it.expected)
	}
}

func (it *Hamlet) True(value bool) {
	it.t.Helper()
	if value != it.expected {
		it.fails("Expected condition to be %v, but it was not!", it.expected)
	}
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if reflect.DeepEqual(expected, actual) != it.expected {
		it.fails("Equality of %#v vs. %#v was not expected %v!", expected, actual, it.expected)
	}
}

func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	if (expected == fmt.Sprintf("%v", actual)) != it.expected {
		it.fails("Text form %q vs. %q was not expected %v!", expected, actual, it.expected)
	}
}

func (it *Hamlet) Panic(todo func()) {
	it.t.Helper()
	defer func() {
		recovered := recover()
		if (recovered != nil) != it.expected {
			it.fails("Panic %v was not expected %v!", recovered, it.expected)
		}
	}()
	todo()
}
