package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/kilianp07/langlog/core/style"
)

// Message renders args joined by single spaces. A nil colorizer produces
// plain text.
func Message(c style.Colorizer, args ...any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Value(c, a)
	}
	return strings.Join(parts, " ")
}

// Value renders a single argument according to its Kind.
func Value(c style.Colorizer, v any) string {
	c = style.OrNone(c)
	switch Classify(v) {
	case KindUndefined:
		return c.Blue("undefined")
	case KindNull:
		return c.Blue("null")
	case KindSequence:
		return c.Green("[" + sequence(indirect(v), map[seqKey]bool{}) + "]")
	case KindSymbol:
		return v.(Symbol).String()
	case KindBigInt:
		return bigInt(v)
	case KindNumber:
		return c.Green(number(indirect(v)))
	case KindBoolean:
		return c.Yellow(strconv.FormatBool(indirect(v).Bool()))
	case KindError:
		return stack(c, v.(error))
	case KindObject:
		return object(v)
	case KindString:
		return indirect(v).String()
	case KindOther:
		return fmt.Sprint(v)
	}
	return fmt.Sprint(v)
}

func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	seen := map[uintptr]bool{}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.Kind() == reflect.Pointer {
			if seen[rv.Pointer()] {
				break
			}
			seen[rv.Pointer()] = true
		}
		rv = rv.Elem()
	}
	return rv
}

// seqKey identifies a slice or addressable array by its backing storage.
type seqKey struct {
	ptr uintptr
	len int
}

func identity(rv reflect.Value) (seqKey, bool) {
	switch {
	case rv.Len() == 0:
		return seqKey{}, false
	case rv.Kind() == reflect.Slice:
		return seqKey{rv.Pointer(), rv.Len()}, true
	case rv.CanAddr():
		return seqKey{rv.UnsafeAddr(), rv.Len()}, true
	}
	return seqKey{}, false
}

// sequence joins elements with commas. Absent elements become empty
// segments and nested sequences are flattened without brackets. A sequence
// that contains itself renders the inner occurrence as an empty segment.
func sequence(rv reflect.Value, open map[seqKey]bool) string {
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return ""
	}
	if key, ok := identity(rv); ok {
		if open[key] {
			return ""
		}
		open[key] = true
		defer delete(open, key)
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = element(rv.Index(i).Interface(), open)
	}
	return strings.Join(parts, ",")
}

func element(v any, open map[seqKey]bool) string {
	switch Classify(v) {
	case KindUndefined, KindNull:
		return ""
	case KindSequence:
		return sequence(indirect(v), open)
	case KindObject:
		b, err := json.Marshal(v)
		if err != nil {
			return unencodable(v, err)
		}
		return string(b)
	case KindError:
		return v.(error).Error()
	}
	return Value(nil, v)
}

func bigInt(v any) string {
	switch x := v.(type) {
	case *big.Int:
		return x.String()
	case big.Int:
		return x.String()
	}
	return fmt.Sprint(v)
}

func number(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return float(rv.Float(), 32)
	case reflect.Float64:
		return float(rv.Float(), 64)
	}
	return fmt.Sprint(rv.Interface())
}

// float renders f the way a JavaScript number prints: fixed notation between
// 1e-6 and 1e21, exponent notation outside of it.
func float(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	s := strconv.FormatFloat(f, 'e', -1, bits)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

// stack renders err with its stack trace when it carries one. Colorized
// output paints frames red, except Go runtime and testing frames which are
// grey.
func stack(c style.Colorizer, err error) string {
	text := fmt.Sprintf("%+v", err)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if runtimeFrame(line) {
			lines[i] = c.Grey(line)
		} else {
			lines[i] = c.Red(line)
		}
	}
	return strings.Join(lines, "\n")
}

func runtimeFrame(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "runtime.") ||
		strings.HasPrefix(trimmed, "testing.") ||
		strings.Contains(line, "/src/runtime/") ||
		strings.Contains(line, "/src/testing/")
}

func object(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return unencodable(v, err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// unencodable stands in for an object JSON cannot encode, such as a map that
// contains itself. Printing v with fmt would not terminate on a cycle.
func unencodable(v any, err error) string {
	return fmt.Sprintf("[%T: %v]", v, err)
}
