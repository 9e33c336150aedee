package color

import (
	"fmt"
)

// Kind tells the two conversion failures apart.
type Kind int

const (
	KindBadLen Kind = iota + 1 // wrong number of components
	KindRange                  // a component does not fit in a uint8
)

func (k Kind) String() string {
	switch k {
	case KindBadLen:
		return "BadLen"
	case KindRange:
		return "RangeError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. They match any *ConversionError of the same Kind.
var (
	ErrBadLen = &ConversionError{Kind: KindBadLen}
	ErrRange  = &ConversionError{Kind: KindRange}
)

// ConversionError is returned by every failed conversion.
//
// For KindRange, Err holds one *ComponentError per offending channel, so
// errors.As(err, &compErr) finds the first of them.
type ConversionError struct {
	Kind Kind
	Len  int   // number of components received
	Err  error // cause, nil for KindBadLen
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case KindBadLen:
		return fmt.Sprintf("color: %s: got %d components, want 3", e.Kind, e.Len)
	case KindRange:
		if e.Err != nil {
			return fmt.Sprintf("color: %s: %v", e.Kind, e.Err)
		}
	}
	return "color: " + e.Kind.String()
}

// Is compares by Kind only, ignoring Len and the cause.
func (e *ConversionError) Is(target error) bool {
	t, ok := target.(*ConversionError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Channel names a Color component.
type Channel string

const (
	Red   Channel = "red"
	Green Channel = "green"
	Blue  Channel = "blue"
)

// ComponentError reports a single value outside [0,255].
type ComponentError struct {
	Channel Channel
	Value   int16
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("%s=%d out of range [0,255]", e.Channel, e.Value)
}
