package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnsupportedOperation is wrapped by every UnsupportedOperationError.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// UnsupportedOperationError reports a call name that matches none of the
// recognized prefixes.
type UnsupportedOperationError struct {
	Name     string // The requested call name.
	HostType string // Dynamic type of the host the call was made on.
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation %q on %s", e.Name, e.HostType)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// Host is implemented by any type that owns a Bag. Embedding a Bag (or
// *Bag) promotes PropertyBag, so most hosts satisfy Host for free.
type Host interface {
	PropertyBag() *Bag
}

// Operation identifies the bag operation a call name resolves to.
type Operation string

// Operations, named after their call prefixes.
const (
	OpGet   Operation = "get"
	OpSet   Operation = "set"
	OpHas   Operation = "has"
	OpUnset Operation = "unset"
	OpMerge Operation = "merge"
	OpIs    Operation = "is"
)

// prefixes lists call prefixes in match order. Longer prefixes come first
// where they overlap: "unsetFoo" must not resolve as "uns" + "etFoo".
var prefixes = []struct {
	prefix string
	op     Operation
}{
	{"unset", OpUnset},
	{"merge", OpMerge},
	{"is", OpIs},
	{"get", OpGet},
	{"set", OpSet},
	{"uns", OpUnset},
	{"has", OpHas},
}

// Resolve splits a call name into its operation and normalized key.
// The key is empty when the name is a bare prefix such as "get" or "uns".
// ok is false when no prefix matches.
func Resolve(name string) (op Operation, key string, ok bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.op, Underscore(name[len(p.prefix):]), true
		}
	}
	return "", "", false
}

// Call resolves name against host's bag and performs the operation.
//
//	getFoo()      -> value at "foo" (nil if absent)
//	setFoo(v)     -> host, for chaining
//	hasFoo()      -> bool
//	unsetFoo()    -> host; unsFoo() is shorthand
//	mergeFoo(v)   -> see Bag.MergeData
//	isFoo()       -> bool; isFoo(v) stores Truthy(v) and returns nil
//
// Only the first argument is used; a missing argument is treated as nil.
// Names with no recognized prefix return an *UnsupportedOperationError.
func Call(host Host, name string, args ...any) (any, error) {
	op, key, ok := Resolve(name)
	if !ok {
		return nil, &UnsupportedOperationError{Name: name, HostType: fmt.Sprintf("%T", host)}
	}

	var arg any
	if len(args) > 0 {
		arg = args[0]
	}

	bag := host.PropertyBag()
	switch op {
	case OpGet:
		return bag.GetData(key), nil
	case OpSet:
		bag.SetData(key, arg)
		return host, nil
	case OpHas:
		return bag.HasData(key), nil
	case OpUnset:
		bag.UnsetData(key)
		return host, nil
	case OpMerge:
		return bag.MergeData(key, arg), nil
	default:
		return bag.IsFlag(key, arg), nil
	}
}

// Underscore converts an UpperCamelCase call suffix into a snake_case key:
// an underscore goes before every uppercase letter except the first
// character, then the result is lowercased. "TestData" becomes "test_data".
func Underscore(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			sb.WriteByte('_')
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
