package collections

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrDuplicateItem is returned when an insert would violate uniqueness.
	ErrDuplicateItem = errors.New("duplicate item")
	// ErrInvalidArgument is returned for a nil item.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned for a bad positional access.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnsupportedOperation is returned by set-algebra queries the ordered set
	// does not implement.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

func indexError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

func unsupported(op string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
}

// isNil reports whether v holds a nil reference. Value types are never nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
