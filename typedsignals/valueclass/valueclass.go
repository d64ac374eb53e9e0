// Package valueclass implements positional type constraints for signal
// dispatch arguments. A ValueClass is either one of a closed set of
// primitive kinds or a nominal constraint on a concrete Go type, checked
// through reflection (is-instance-of-or-implements).
package valueclass

import (
	"fmt"
	"reflect"
)

// Kind enumerates the primitive value classes.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindObject
	KindNull
	KindNumeric
	KindScalar
	KindNominal
)

var kindNames = map[Kind]string{
	KindInvalid:  "invalid",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindSequence: "sequence",
	KindObject:   "object",
	KindNull:     "null",
	KindNumeric:  "numeric",
	KindScalar:   "scalar",
	KindNominal:  "nominal",
}

// ValueClass describes the set of values one positional dispatch argument
// may take. The zero value is invalid; use the constructors.
type ValueClass struct {
	kind Kind
	typ  reflect.Type
}

func Bool() ValueClass     { return ValueClass{kind: KindBool} }
func Int() ValueClass      { return ValueClass{kind: KindInt} }
func Float() ValueClass    { return ValueClass{kind: KindFloat} }
func String() ValueClass   { return ValueClass{kind: KindString} }
func Sequence() ValueClass { return ValueClass{kind: KindSequence} }
func Object() ValueClass   { return ValueClass{kind: KindObject} }
func Null() ValueClass     { return ValueClass{kind: KindNull} }
func Numeric() ValueClass  { return ValueClass{kind: KindNumeric} }
func Scalar() ValueClass   { return ValueClass{kind: KindScalar} }

// Of returns a nominal value class: the argument's dynamic type must be
// assignable to T, or implement T when T is an interface.
func Of[T any]() ValueClass {
	return ValueClass{kind: KindNominal, typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeOf returns a nominal value class for the dynamic type of example.
func TypeOf(example any) ValueClass {
	return ValueClass{kind: KindNominal, typ: reflect.TypeOf(example)}
}

// Kind returns the descriptor kind.
func (c ValueClass) Kind() Kind {
	return c.kind
}

// Type returns the nominal constraint type, or nil for primitive kinds.
func (c ValueClass) Type() reflect.Type {
	return c.typ
}

func (c ValueClass) String() string {
	if c.kind == KindNominal {
		return c.typ.String()
	}
	return kindNames[c.kind]
}

// Check reports whether v satisfies the value class. It returns nil on
// success and a *TypeMismatchError otherwise.
func (c ValueClass) Check(v any) error {
	if c.satisfiedBy(v) {
		return nil
	}
	return &TypeMismatchError{Expected: c.String(), Actual: describe(v)}
}

func (c ValueClass) satisfiedBy(v any) bool {
	if v == nil {
		return c.kind == KindNull
	}
	t := reflect.TypeOf(v)
	switch c.kind {
	case KindBool:
		return t.Kind() == reflect.Bool
	case KindInt:
		return isInteger(t.Kind())
	case KindFloat:
		return isFloat(t.Kind())
	case KindString:
		return t.Kind() == reflect.String
	case KindSequence:
		return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
	case KindObject:
		return isObject(t)
	case KindNull:
		return isNilValue(v)
	case KindNumeric:
		return isInteger(t.Kind()) || isFloat(t.Kind())
	case KindScalar:
		k := t.Kind()
		return k == reflect.Bool || k == reflect.String || isInteger(k) || isFloat(k)
	case KindNominal:
		if t.AssignableTo(c.typ) {
			return true
		}
		return c.typ.Kind() == reflect.Interface && t.Implements(c.typ)
	}
	return false
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isObject(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return true
	case reflect.Ptr:
		return t.Elem().Kind() == reflect.Struct
	}
	return false
}

// isNilValue catches typed nils (nil pointers, maps, slices boxed in an
// interface), which compare unequal to untyped nil.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
