package pins

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"knobd/internal/encoder"
)

// PeriphSampler reads the encoder lines through periph.io.
type PeriphSampler struct {
	clk gpio.PinIO
	dt  gpio.PinIO
	sw  gpio.PinIO
}

// OpenPeriph configures the three lines as pull-up inputs.
func OpenPeriph(p Pins) (*PeriphSampler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initialize periph host: %w", err)
	}

	s := &PeriphSampler{}
	for _, l := range []struct {
		line encoder.Line
		num  int
		pin  *gpio.PinIO
	}{
		{encoder.Clock, p.Clk, &s.clk},
		{encoder.Data, p.Dt, &s.dt},
		{encoder.Switch, p.Sw, &s.sw},
	} {
		name := fmt.Sprintf("GPIO%d", l.num)
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("no such pin %s for %s", name, l.line)
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("configure %s pin %s: %w", l.line, name, err)
		}
		*l.pin = pin
	}

	log.Infof("Opened encoder lines clk=GPIO%d dt=GPIO%d sw=GPIO%d", p.Clk, p.Dt, p.Sw)
	return s, nil
}

// Sample implements encoder.Sampler. Reads through periph never fail once the
// pins are configured.
func (s *PeriphSampler) Sample() (encoder.Level, encoder.Level, encoder.Level, error) {
	return level(s.clk.Read() == gpio.High),
		level(s.dt.Read() == gpio.High),
		level(s.sw.Read() == gpio.High),
		nil
}

// Close halts the three pins.
func (s *PeriphSampler) Close() error {
	var firstErr error
	for _, pin := range []gpio.PinIO{s.clk, s.dt, s.sw} {
		if pin == nil {
			continue
		}
		if err := pin.Halt(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
