//go:build linux

package pins

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"knobd/internal/encoder"
)

// CdevSampler reads the encoder lines through the Linux GPIO character
// device.
type CdevSampler struct {
	chip *gpiocdev.Chip
	clk  *gpiocdev.Line
	dt   *gpiocdev.Line
	sw   *gpiocdev.Line
}

// OpenCdev requests the three lines as pull-up inputs on the named chip.
func OpenCdev(chipName string, p Pins) (*CdevSampler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	s := &CdevSampler{chip: chip}
	for _, l := range []struct {
		line encoder.Line
		num  int
		out  **gpiocdev.Line
	}{
		{encoder.Clock, p.Clk, &s.clk},
		{encoder.Data, p.Dt, &s.dt},
		{encoder.Switch, p.Sw, &s.sw},
	} {
		requested, err := chip.RequestLine(l.num, gpiocdev.AsInput, gpiocdev.WithPullUp)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("request %s pin %d: %w", l.line, l.num, err)
		}
		*l.out = requested
	}
	return s, nil
}

// Sample implements encoder.Sampler.
func (s *CdevSampler) Sample() (encoder.Level, encoder.Level, encoder.Level, error) {
	var levels [3]encoder.Level
	for i, l := range []struct {
		line encoder.Line
		in   *gpiocdev.Line
	}{
		{encoder.Clock, s.clk},
		{encoder.Data, s.dt},
		{encoder.Switch, s.sw},
	} {
		v, err := l.in.Value()
		if err != nil {
			return encoder.Low, encoder.Low, encoder.Low, fmt.Errorf("read %s pin: %w", l.line, err)
		}
		levels[i] = level(v != 0)
	}
	return levels[0], levels[1], levels[2], nil
}

// Close releases the lines and the chip. Lines are reconfigured to plain
// inputs first so nothing stays requested across restarts.
func (s *CdevSampler) Close() error {
	var errs []error
	for _, line := range []*gpiocdev.Line{s.clk, s.dt, s.sw} {
		if line == nil {
			continue
		}
		if err := line.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, err)
		}
		if err := line.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.chip != nil {
		if err := s.chip.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close encoder lines: %v", errs)
	}
	return nil
}
