//go:build pi

package led

import (
	"fmt"

	ws "github.com/rpi-ws281x/rpi-ws281x-go"
)

// Open initializes the strip device.
func Open(ledCount, brightness int) (*Controller, error) {
	opt := ws.DefaultOptions
	opt.Channels[0].Brightness = brightness
	opt.Channels[0].LedCount = ledCount

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("create ws2811 device: %w", err)
	}
	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("initialize ws2811 device: %w", err)
	}

	return &Controller{ws: dev}, nil
}
