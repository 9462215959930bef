package led

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithBrightness(t *testing.T) {
	tt := []struct {
		name   string
		input  uint32
		light  uint32
		output uint32
	}{
		{"full white", 0xffffff, 100, 0xffffff},
		{"dark red", 0xff0000, 0, 0x000000},
		{"half blue", 0x0000fe, 50, 0x00007f},
		{"tenth green", 0x00c800, 10, 0x001400},
		{"mixed half", 0x804020, 50, 0x402010},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, withBrightness(tc.input, tc.light))
		})
	}
}

// recordEngine captures the first led value of every render.
type recordEngine struct {
	colors   []uint32
	rendered *[]uint32
}

func (r recordEngine) Render() error {
	*r.rendered = append(*r.rendered, r.colors[0])
	return nil
}

func (r recordEngine) Fini() {}

func (r recordEngine) Leds(_ int) []uint32 {
	return r.colors
}

func TestPulseFadesToDark(t *testing.T) {
	var rendered []uint32
	c := &Controller{ws: recordEngine{colors: make([]uint32, 4), rendered: &rendered}}

	c.Pulse(0x0000ff)

	assert.Len(t, rendered, 11)
	assert.Equal(t, uint32(0x0000ff), rendered[0])
	assert.Equal(t, uint32(0), rendered[len(rendered)-1])
	for i := 1; i < len(rendered); i++ {
		assert.LessOrEqual(t, rendered[i], rendered[i-1])
	}
}

func TestFlashEndsDark(t *testing.T) {
	var rendered []uint32
	c := &Controller{ws: recordEngine{colors: make([]uint32, 4), rendered: &rendered}}

	c.Flash(0x00ff00)

	assert.Equal(t, []uint32{0x00ff00, 0}, rendered)
}

func TestCloseBlanksStrip(t *testing.T) {
	var rendered []uint32
	c := &Controller{ws: recordEngine{colors: make([]uint32, 4), rendered: &rendered}}

	c.Close()

	assert.Equal(t, []uint32{0}, rendered)
}
