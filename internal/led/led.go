// Package led drives a WS281x strip as knob gesture feedback.
package led

import (
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	flashDuration = 150 * time.Millisecond
	pulseStep     = 5 * time.Millisecond
)

type engine interface {
	Render() error
	Fini()
	Leds(channel int) []uint32
}

// Controller owns the strip. Effects are short one-shots; run them from a
// single goroutine.
type Controller struct {
	ws engine
}

// Flash lights the whole strip briefly, acknowledging a press.
func (c *Controller) Flash(color uint32) {
	log.Debugf("Flashing color %06x", color)

	if err := c.setColor(color); err != nil {
		log.Warn("Unable to render flash: ", err)
		return
	}
	<-time.After(flashDuration)
	if err := c.setColor(0); err != nil {
		log.Warn("Unable to clear flash: ", err)
	}
}

// Pulse fades the strip out from full color, one pulse per detent.
func (c *Controller) Pulse(color uint32) {
	log.Debugf("Pulsing color %06x", color)

	tick := time.NewTicker(pulseStep)
	defer tick.Stop()

	for light := uint32(100); ; light -= 10 {
		if err := c.setColor(withBrightness(color, light)); err != nil {
			log.Warn("Unable to render pulse: ", err)
			return
		}
		if light == 0 {
			break
		}
		<-tick.C
	}
}

// Close blanks the strip and releases the device.
func (c *Controller) Close() {
	if err := c.setColor(0); err != nil {
		log.Warn("Unable to blank the strip: ", err)
	}
	c.ws.Fini()
}

func (c *Controller) setColor(color uint32) error {
	leds := c.ws.Leds(0)
	for i := range leds {
		leds[i] = color
	}
	return c.ws.Render()
}

// withBrightness scales each color channel to light percent.
func withBrightness(color, light uint32) uint32 {
	r := (color >> 16 & 0xff) * light / 100
	g := (color >> 8 & 0xff) * light / 100
	b := (color & 0xff) * light / 100
	return r<<16 | g<<8 | b
}
