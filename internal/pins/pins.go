// Package pins provides hardware-backed samplers for the encoder lines.
package pins

import (
	"fmt"

	"knobd/internal/encoder"
)

// Pins holds the BCM numbers of the three encoder lines.
type Pins struct {
	Clk int
	Dt  int
	Sw  int
}

// Validate checks that the pin numbers can refer to three separate lines.
func (p Pins) Validate() error {
	for _, n := range []int{p.Clk, p.Dt, p.Sw} {
		if n < 0 {
			return fmt.Errorf("negative pin number %d", n)
		}
	}
	if p.Clk == p.Dt || p.Clk == p.Sw || p.Dt == p.Sw {
		return fmt.Errorf("encoder pins must be distinct, got clk=%d dt=%d sw=%d", p.Clk, p.Dt, p.Sw)
	}
	return nil
}

func level(high bool) encoder.Level {
	if high {
		return encoder.High
	}
	return encoder.Low
}
