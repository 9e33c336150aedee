// Command conversions tries to build a Color from a tuple, an array and a
// slice of int16, printing the result of every attempt.
package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcodamonte/exercises/conversions/color"
	"github.com/marcodamonte/exercises/internal/logging"
)

type attempt struct {
	label   string
	convert func() (color.Color, error)
}

func main() {
	logger := logging.Must("info")
	defer func() { _ = logger.Sync() }()

	v := []int16{183, 65, 14}

	section("successful conversions")
	run(logger, []attempt{
		{"FromTuple(183, 65, 14)", func() (color.Color, error) {
			return color.FromTuple(color.Tuple{Red: 183, Green: 65, Blue: 14})
		}},
		{"FromArray([183 65 14])", func() (color.Color, error) {
			return color.FromArray([3]int16{183, 65, 14})
		}},
		{"FromSlice([183 65 14])", func() (color.Color, error) { return color.FromSlice(v) }},
		{"TryFrom([183 65 14])", func() (color.Color, error) { return color.TryFrom(v) }},
	})

	section("failed conversions")
	run(logger, []attempt{
		{"FromTuple(256, 1000, 10000)", func() (color.Color, error) {
			return color.FromTuple(color.Tuple{Red: 256, Green: 1000, Blue: 10000})
		}},
		{"FromTuple(-1, 255, 255)", func() (color.Color, error) {
			return color.FromTuple(color.Tuple{Red: -1, Green: 255, Blue: 255})
		}},
		{"FromSlice([183 65 14 0])", func() (color.Color, error) {
			return color.FromSlice([]int16{183, 65, 14, 0})
		}},
	})
}

// run prints every attempt to stdout and logs why each failure happened.
func run(logger *zap.Logger, attempts []attempt) {
	for _, a := range attempts {
		c, err := a.convert()
		if err == nil {
			fmt.Printf("  %s → Ok(%v)\n", a.label, c)
			continue
		}
		fmt.Printf("  %s → Err(%v)\n", a.label, err)

		var ce *color.ComponentError
		switch {
		case errors.Is(err, color.ErrBadLen):
			logger.Info("wrong number of components", zap.String("input", a.label))
		case errors.As(err, &ce):
			logger.Info("component out of range",
				zap.String("input", a.label),
				zap.String("channel", string(ce.Channel)),
				zap.Int16("value", ce.Value))
		}
	}
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
