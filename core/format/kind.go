package format

import (
	"fmt"
	"math/big"
	"reflect"
)

// Kind is the rendering category of a log argument.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindSequence
	KindSymbol
	KindBigInt
	KindNumber
	KindBoolean
	KindError
	KindObject
	KindString
	KindOther
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindSequence:  "sequence",
	KindSymbol:    "symbol",
	KindBigInt:    "bigint",
	KindNumber:    "number",
	KindBoolean:   "boolean",
	KindError:     "error",
	KindObject:    "object",
	KindString:    "string",
	KindOther:     "other",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + fmt.Sprint(int(k)) + ")"
	}
	return kindNames[k]
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks an absent value. It renders as "undefined" at the top level
// and as an empty segment inside sequences.
var Undefined any = undefined{}

// Symbol is a named unique token. It renders as "Symbol(name)".
type Symbol string

func (s Symbol) String() string { return "Symbol(" + string(s) + ")" }

// Classify returns the rendering kind of v.
func Classify(v any) Kind { return classify(v, nil) }

// classify follows pointers, remembering them in seen so that a pointer
// chain leading back to itself ends as KindOther.
func classify(v any, seen map[uintptr]bool) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case Symbol:
		return KindSymbol
	case *big.Int:
		if x == nil {
			return KindNull
		}
		return KindBigInt
	case big.Int:
		return KindBigInt
	case string:
		return KindString
	case bool:
		return KindBoolean
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return KindNull
		}
	}

	if _, ok := v.(error); ok {
		return KindError
	}
	if _, ok := v.(fmt.Stringer); ok {
		return KindOther
	}

	switch rv.Kind() {
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Struct:
		return KindObject
	case reflect.Map:
		switch rv.Type().Key().Kind() {
		case reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return KindObject
		}
	case reflect.Pointer:
		if seen[rv.Pointer()] {
			return KindOther
		}
		if seen == nil {
			seen = map[uintptr]bool{}
		}
		seen[rv.Pointer()] = true
		return classify(rv.Elem().Interface(), seen)
	}
	return KindOther
}
