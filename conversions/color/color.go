// Package color converts raw signed 16-bit components into an RGB Color.
//
// Every conversion is fallible: the input may have the wrong number of
// components, or a component may not fit in a uint8. Failures are returned
// as *ConversionError values that callers inspect with errors.Is/As.
package color

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Color is an RGB triple. Values outside [0,255] cannot be represented, so a
// Color is only ever built by one of the From* functions.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.Red, c.Green, c.Blue)
}

// Tuple is the three-field source shape.
type Tuple struct {
	Red, Green, Blue int16
}

// Source is the union of shapes TryFrom accepts.
type Source interface {
	Tuple | [3]int16 | []int16
}

// TryFrom converts any Source into a Color.
//
//	c, err := color.TryFrom(color.Tuple{183, 65, 14})
//	c, err := color.TryFrom([3]int16{183, 65, 14})
//	c, err := color.TryFrom(v[:])
func TryFrom[S Source](src S) (Color, error) {
	switch v := any(src).(type) {
	case Tuple:
		return FromTuple(v)
	case [3]int16:
		return FromArray(v)
	case []int16:
		return FromSlice(v)
	}
	// unreachable: the type set is closed
	panic(fmt.Sprintf("color.TryFrom: unsupported source %T", src))
}

func FromTuple(t Tuple) (Color, error) {
	return fromComponents(t.Red, t.Green, t.Blue)
}

func FromArray(a [3]int16) (Color, error) {
	return fromComponents(a[0], a[1], a[2])
}

// FromSlice requires exactly three components. The length is checked before
// any value, so a slice of the wrong length is always ErrBadLen.
func FromSlice(s []int16) (Color, error) {
	if len(s) != 3 {
		return Color{}, &ConversionError{Kind: KindBadLen, Len: len(s)}
	}
	return fromComponents(s[0], s[1], s[2])
}

func fromComponents(red, green, blue int16) (Color, error) {
	var merr *multierror.Error
	for _, c := range [...]struct {
		ch Channel
		v  int16
	}{{Red, red}, {Green, green}, {Blue, blue}} {
		if c.v < 0 || c.v > 255 {
			merr = multierror.Append(merr, &ComponentError{Channel: c.ch, Value: c.v})
		}
	}
	if merr != nil {
		merr.ErrorFormat = inlineFormat
		return Color{}, &ConversionError{Kind: KindRange, Len: 3, Err: merr}
	}

	return Color{Red: uint8(red), Green: uint8(green), Blue: uint8(blue)}, nil
}

func inlineFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, ", ")
}
