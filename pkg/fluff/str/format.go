package str

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/ib-77/fluff/pkg/fluff"
)

// invariant renders N and F items for Format
var invariant = message.NewPrinter(language.English)

// Format expands composite format items with culture-invariant rendering
func Format(format string, args ...any) (string, error) {
	return compose(nil, format, args)
}

// FormatLocale expands composite format items, rendering every argument with
// the conventions of tag.
func FormatLocale(tag language.Tag, format string, args ...any) (string, error) {
	return compose(message.NewPrinter(tag), format, args)
}

type item struct {
	index int
	align int
	spec  string
}

func compose(p *message.Printer, format string, args []any) (string, error) {
	var b strings.Builder
	b.Grow(len(format))

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				return "", errors.Wrapf(fluff.ErrFormat, "unclosed format item at offset %d", i)
			}

			it, err := parseItem(format[i+1 : i+end])
			if err != nil {
				return "", err
			}
			if it.index >= len(args) {
				return "", errors.Wrapf(fluff.ErrFormat, "index %d out of range, %d argument(s)", it.index, len(args))
			}

			s, err := render(p, args[it.index], it.spec)
			if err != nil {
				return "", err
			}
			b.WriteString(pad(s, it.align))
			i += end
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", errors.Wrapf(fluff.ErrFormat, "unmatched '}' at offset %d", i)
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

func parseItem(s string) (item, error) {
	var it item

	head, spec, _ := strings.Cut(s, ":")
	it.spec = spec

	idx, align, hasAlign := strings.Cut(head, ",")

	var err error
	if it.index, err = strconv.Atoi(strings.TrimSpace(idx)); err != nil || it.index < 0 {
		return it, errors.Wrapf(fluff.ErrFormat, "bad index in {%s}", s)
	}
	if hasAlign {
		if it.align, err = strconv.Atoi(strings.TrimSpace(align)); err != nil {
			return it, errors.Wrapf(fluff.ErrFormat, "bad alignment in {%s}", s)
		}
	}
	return it, nil
}

// pad right-aligns s for a positive width and left-aligns it for a negative one
func pad(s string, align int) string {
	width := align
	if width < 0 {
		width = -width
	}

	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if align < 0 {
		return s + strings.Repeat(" ", n)
	}
	return strings.Repeat(" ", n) + s
}

func render(p *message.Printer, arg any, spec string) (string, error) {
	if spec == "" {
		return renderPlain(p, arg), nil
	}

	kind, prec, ok := parseSpec(spec)
	if !ok {
		return fmt.Sprintf("%v", arg), nil
	}

	printer := p
	if printer == nil {
		printer = invariant
	}

	switch kind {
	case 'N', 'n', 'F', 'f':
		v, ok := toNumber(arg)
		if !ok {
			return "", errors.Wrapf(fluff.ErrFormat, "%q needs a number, got %T", spec, arg)
		}
		opts := []number.Option{number.Scale(orDefault(prec, 2))}
		if kind == 'F' || kind == 'f' {
			opts = append(opts, number.NoSeparator())
		}
		return printer.Sprint(number.Decimal(v, opts...)), nil
	case 'D', 'd':
		neg, mag, ok := integerParts(arg)
		if !ok {
			return "", errors.Wrapf(fluff.ErrFormat, "%q needs an integer, got %T", spec, arg)
		}
		digits := zeroPad(strconv.FormatUint(mag, 10), orDefault(prec, 1))
		if neg {
			return "-" + digits, nil
		}
		return digits, nil
	case 'X', 'x':
		bits, ok := integerBits(arg)
		if !ok {
			return "", errors.Wrapf(fluff.ErrFormat, "%q needs an integer, got %T", spec, arg)
		}
		digits := strconv.FormatUint(bits, 16)
		if kind == 'X' {
			digits = strings.ToUpper(digits)
		}
		return zeroPad(digits, orDefault(prec, 1)), nil
	case 'E', 'e':
		v, ok := toNumber(arg)
		if !ok {
			return "", errors.Wrapf(fluff.ErrFormat, "%q needs a number, got %T", spec, arg)
		}
		return fmt.Sprintf("%.*"+string(kind), orDefault(prec, 6), toFloat(v)), nil
	}

	return fmt.Sprintf("%v", arg), nil
}

// parseSpec splits a standard format string such as "N2" into its kind and
// precision; prec is -1 when omitted.
func parseSpec(spec string) (kind byte, prec int, ok bool) {
	if !strings.ContainsRune("NnFfDdXxEe", rune(spec[0])) {
		return 0, 0, false
	}
	if len(spec) == 1 {
		return spec[0], -1, true
	}

	prec, err := strconv.Atoi(spec[1:])
	if err != nil || prec < 0 || prec > 99 {
		return 0, 0, false
	}
	return spec[0], prec, true
}

func orDefault(prec, def int) int {
	if prec < 0 {
		return def
	}
	return prec
}

// toNumber normalises any integer or float kind, including named types
func toNumber(arg any) (any, bool) {
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return nil, false
}

// integerParts splits an integer argument into its sign and magnitude
func integerParts(arg any) (neg bool, mag uint64, ok bool) {
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < 0 {
			// -(i+1) cannot overflow, even for MinInt64
			return true, uint64(-(i+1)) + 1, true
		}
		return false, uint64(i), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false, v.Uint(), true
	}
	return false, 0, false
}

// integerBits returns the two's complement bits of an integer argument,
// truncated to the width of its type, so int32(-1) is FFFFFFFF.
func integerBits(arg any) (uint64, bool) {
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := uint64(v.Int())
		if size := v.Type().Bits(); size < 64 {
			bits &= 1<<size - 1
		}
		return bits, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), true
	}
	return 0, false
}

func zeroPad(digits string, width int) string {
	if n := width - len(digits); n > 0 {
		return strings.Repeat("0", n) + digits
	}
	return digits
}

// renderPlain renders an item without a format string. Like .NET's general
// format it never groups digits; FormatLocale only swaps the decimal separator.
func renderPlain(p *message.Printer, arg any) string {
	if p == nil {
		return fmt.Sprint(arg)
	}

	switch arg.(type) {
	case fmt.Stringer, error:
		return p.Sprint(arg)
	}

	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		s := strconv.FormatFloat(v.Float(), 'G', -1, v.Type().Bits())
		return strings.Replace(s, ".", decimalSeparator(p), 1)
	}
	return p.Sprint(arg)
}

// decimalSeparator asks the printer how it writes one and a half
func decimalSeparator(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5, number.NoSeparator()))
	if sep := strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5"); sep != "" {
		return sep
	}
	return "."
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
