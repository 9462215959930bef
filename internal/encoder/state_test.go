package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLineStateIsIdle(t *testing.T) {
	s := NewLineState()

	assert.Equal(t, High, s.Get(Clock))
	assert.Equal(t, High, s.Get(Data))
	assert.Equal(t, High, s.Get(Switch))
	assert.True(t, s.Quiescent())
}

func TestUpdateOverwrites(t *testing.T) {
	s := NewLineState()
	s.Update(Low, High, Low)

	assert.Equal(t, Low, s.Get(Clock))
	assert.Equal(t, High, s.Get(Data))
	assert.Equal(t, Low, s.Get(Switch))

	s.Update(High, Low, High)

	assert.Equal(t, High, s.Get(Clock))
	assert.Equal(t, Low, s.Get(Data))
	assert.Equal(t, High, s.Get(Switch))
}

func TestUpdateIdempotent(t *testing.T) {
	s := NewLineState()
	s.Update(Low, Low, High)
	first := s

	s.Update(Low, Low, High)
	assert.Equal(t, first, s)
}

func TestQuiescent(t *testing.T) {
	tt := []struct {
		name      string
		clk       Level
		dt        Level
		sw        Level
		quiescent bool
	}{
		{"all high", High, High, High, true},
		{"clk low", Low, High, High, false},
		{"dt low", High, Low, High, false},
		{"sw low", High, High, Low, false},
		{"phases low", Low, Low, High, false},
		{"all low", Low, Low, Low, false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := NewLineState()
			s.Update(tc.clk, tc.dt, tc.sw)
			assert.Equal(t, tc.quiescent, s.Quiescent())
		})
	}
}
