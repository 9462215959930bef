package encoder

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultSettleInterval is the pause between re-samples while waiting for the
// lines to return to rest.
const DefaultSettleInterval = time.Millisecond

// Sampler reads the current level of the three encoder lines as a group.
// A read failure is fatal to the decoding loop; there are no retries.
type Sampler interface {
	Sample() (clk, dt, sw Level, err error)
}

// Config adjusts decoder timing.
type Config struct {
	// SettleInterval overrides DefaultSettleInterval when positive.
	SettleInterval time.Duration
	// Sleep replaces time.Sleep, so tests can run without waiting.
	Sleep func(time.Duration)
}

// Decoder polls a Sampler and turns line transitions into gestures on a
// Handler. One Decoder owns its line state exclusively; Run is not meant to
// be called from more than one goroutine.
type Decoder struct {
	sampler   Sampler
	handler   Handler
	cfg       Config
	state     LineState
	closeOnce sync.Once
}

// New creates a decoder. A nil handler discards all gestures.
func New(s Sampler, h Handler, cfg Config) *Decoder {
	if h == nil {
		h = NopHandler{}
	}
	if cfg.SettleInterval <= 0 {
		cfg.SettleInterval = DefaultSettleInterval
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &Decoder{
		sampler: s,
		handler: h,
		cfg:     cfg,
		state:   NewLineState(),
	}
}

// Run polls until ctx is cancelled or a read fails. Cancellation is checked
// once per cycle, before sampling, and returns nil. The sampler is closed
// exactly once on the way out when it implements io.Closer.
func (d *Decoder) Run(ctx context.Context) error {
	defer d.teardown()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Decoder stopping")
			return nil
		default:
		}

		clk, dt, sw, err := d.sampler.Sample()
		if err != nil {
			return fmt.Errorf("sample encoder lines: %w", err)
		}
		d.state.Update(clk, dt, sw)
		d.classify()

		if err := d.settle(); err != nil {
			return fmt.Errorf("settle encoder lines: %w", err)
		}
	}
}

// classify dispatches a gesture for every matching condition. A single low
// phase line with the other still high is the direction signature; both
// phases low (or both high) is a detent boundary and no rotation. The
// conditions are not mutually exclusive: a press can coincide with a turn.
func (d *Decoder) classify() {
	if d.state.clk == Low && d.state.dt == High {
		log.Debug("Gesture: ", RotateRight)
		d.handler.RotateRight()
	}
	if d.state.dt == Low && d.state.clk == High {
		log.Debug("Gesture: ", RotateLeft)
		d.handler.RotateLeft()
	}
	if d.state.sw == Low {
		log.Debug("Gesture: ", Press)
		d.handler.Press()
	}
}

// settle blocks until every line is back at rest, so contact bounce cannot
// replay a gesture. A switch held low when settling starts arms a Release,
// dispatched once rest is reached.
func (d *Decoder) settle() error {
	armed := d.state.sw == Low

	for {
		d.cfg.Sleep(d.cfg.SettleInterval)
		clk, dt, sw, err := d.sampler.Sample()
		if err != nil {
			return err
		}
		d.state.Update(clk, dt, sw)
		if d.state.Quiescent() {
			break
		}
	}

	if armed {
		log.Debug("Gesture: ", Release)
		d.handler.Release()
	}
	return nil
}

func (d *Decoder) teardown() {
	d.closeOnce.Do(func() {
		c, ok := d.sampler.(io.Closer)
		if !ok {
			return
		}
		if err := c.Close(); err != nil {
			log.Warn("Failed to release encoder lines: ", err)
		}
	})
}
