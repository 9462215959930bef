//go:build !linux

package pins

import (
	"errors"

	"knobd/internal/encoder"
)

// CdevSampler is only available on Linux.
type CdevSampler struct{}

func OpenCdev(chipName string, p Pins) (*CdevSampler, error) {
	return nil, errors.New("cdev backend requires Linux")
}

func (s *CdevSampler) Sample() (encoder.Level, encoder.Level, encoder.Level, error) {
	return encoder.Low, encoder.Low, encoder.Low, errors.New("cdev backend requires Linux")
}

func (s *CdevSampler) Close() error {
	return nil
}
