package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"knobd/internal/encoder"
	"knobd/internal/led"
	"knobd/internal/pins"
)

func openSampler(conf *Config) (encoder.Sampler, error) {
	switch conf.Backend {
	case "cdev":
		return pins.OpenCdev(conf.Chip, conf.Pins())
	case "sim":
		return pins.OpenSim(), nil
	default:
		return pins.OpenPeriph(conf.Pins())
	}
}

type effect struct {
	color uint32
	flash bool
}

// knobHandler logs gestures and keeps a running detent counter. LED effects
// are handed off on a channel so the polling loop never waits on an
// animation; when the channel is full the effect is simply skipped.
type knobHandler struct {
	position    int
	pressColor  uint32
	rotateColor uint32
	effects     chan<- effect
}

func (h *knobHandler) RotateLeft() {
	h.position--
	log.Infof("Turned left, position %d", h.position)
	h.send(effect{color: h.rotateColor})
}

func (h *knobHandler) RotateRight() {
	h.position++
	log.Infof("Turned right, position %d", h.position)
	h.send(effect{color: h.rotateColor})
}

func (h *knobHandler) Press() {
	log.Info("Knob pressed")
	h.send(effect{color: h.pressColor, flash: true})
}

func (h *knobHandler) Release() {
	log.Info("Knob released")
}

func (h *knobHandler) send(e effect) {
	if h.effects == nil {
		return
	}
	select {
	case h.effects <- e:
	default:
	}
}

func startDaemon(configFile string) error {
	conf, err := readConfig(configFile)
	if err != nil {
		return err
	}

	sampler, err := openSampler(conf)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", conf.Backend, err)
	}

	handler := &knobHandler{
		pressColor:  conf.Led.PressColor,
		rotateColor: conf.Led.RotateColor,
	}
	if conf.Led.Enabled {
		strip, err := led.Open(conf.Led.Count, conf.Led.Brightness)
		if err != nil {
			return fmt.Errorf("open led strip: %w", err)
		}
		defer strip.Close()

		effects := make(chan effect, 4)
		defer close(effects)
		go func() {
			for e := range effects {
				if e.flash {
					strip.Flash(e.color)
				} else {
					strip.Pulse(e.color)
				}
			}
		}()
		handler.effects = effects
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-signalChan
		log.Infof("Received %v, shutting down", s)
		cancel()
	}()

	log.Infof("Decoding gestures on clk=%d dt=%d sw=%d (%s backend)",
		conf.Encoder.Clk, conf.Encoder.Dt, conf.Encoder.Sw, conf.Backend)

	dec := encoder.New(sampler, handler, encoder.Config{SettleInterval: conf.SettleInterval()})
	return dec.Run(ctx)
}

func readOnce(configFile string) error {
	conf, err := readConfig(configFile)
	if err != nil {
		return err
	}

	sampler, err := openSampler(conf)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", conf.Backend, err)
	}
	if c, ok := sampler.(io.Closer); ok {
		defer c.Close()
	}

	clk, dt, sw, err := sampler.Sample()
	if err != nil {
		return fmt.Errorf("sample encoder lines: %w", err)
	}
	fmt.Printf("clk=%v dt=%v sw=%v\n", clk, dt, sw)

	return nil
}
