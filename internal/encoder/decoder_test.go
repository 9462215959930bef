package encoder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript runs a decoder over the scripted samples, cancelling the context
// once the script has been consumed, and returns the recorded gestures.
func runScript(t *testing.T, samples [][3]Level) []Gesture {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &ScriptedSampler{Samples: samples, Exhausted: cancel}
	h := &RecordingHandler{}
	d := New(s, h, Config{Sleep: func(time.Duration) {}})

	require.NoError(t, d.Run(ctx))
	assert.Equal(t, 1, s.CloseCalls)

	return h.Gestures
}

func TestClassify(t *testing.T) {
	tt := []struct {
		name     string
		clk      Level
		dt       Level
		sw       Level
		gestures []Gesture
	}{
		{"rest", High, High, High, nil},
		{"clock leads", Low, High, High, []Gesture{RotateRight}},
		{"data leads", High, Low, High, []Gesture{RotateLeft}},
		{"both phases low", Low, Low, High, nil},
		{"switch low", High, High, Low, []Gesture{Press}},
		{"turn and press", Low, High, Low, []Gesture{RotateRight, Press}},
		{"counter turn and press", High, Low, Low, []Gesture{RotateLeft, Press}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			h := &RecordingHandler{}
			d := New(&ScriptedSampler{}, h, Config{})
			d.state.Update(tc.clk, tc.dt, tc.sw)
			d.classify()
			assert.Equal(t, tc.gestures, h.Gestures)
		})
	}
}

func TestRunIdleProducesNothing(t *testing.T) {
	gestures := runScript(t, [][3]Level{{High, High, High}})
	assert.Empty(t, gestures)
}

func TestRunSingleDetentRight(t *testing.T) {
	gestures := runScript(t, [][3]Level{
		{Low, High, High},
		{High, High, High},
	})
	assert.Equal(t, []Gesture{RotateRight}, gestures)
}

func TestRunSingleDetentLeft(t *testing.T) {
	gestures := runScript(t, [][3]Level{
		{High, Low, High},
		{High, High, High},
	})
	assert.Equal(t, []Gesture{RotateLeft}, gestures)
}

func TestRunPressThenRelease(t *testing.T) {
	gestures := runScript(t, [][3]Level{
		{High, High, Low},
		{High, High, High},
	})
	assert.Equal(t, []Gesture{Press, Release}, gestures)
}

func TestRunBouncingPressReleasesOnce(t *testing.T) {
	gestures := runScript(t, [][3]Level{
		{High, High, Low},
		{High, High, Low},
		{High, Low, Low},
		{High, High, High},
	})
	assert.Equal(t, []Gesture{Press, Release}, gestures)
}

func TestRunNoReleaseWithoutPressAtSettleEntry(t *testing.T) {
	// The switch dips low during settling, but release is only armed from
	// the level held when settling began.
	gestures := runScript(t, [][3]Level{
		{Low, High, High},
		{High, High, Low},
		{High, High, High},
	})
	assert.Equal(t, []Gesture{RotateRight}, gestures)
}

func TestRunDeterministic(t *testing.T) {
	script := [][3]Level{
		{Low, High, High},
		{High, High, High},
		{High, High, Low},
		{High, High, High},
	}

	first := runScript(t, script)
	second := runScript(t, script)
	assert.Equal(t, first, second)
}

func TestRunSettlesUntilQuiescent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &ScriptedSampler{
		Samples: [][3]Level{
			{High, High, Low},
			{High, Low, Low},
			{Low, Low, Low},
			{High, High, High},
		},
		Exhausted: cancel,
	}
	h := &RecordingHandler{}

	sleeps := 0
	d := New(s, h, Config{Sleep: func(time.Duration) { sleeps++ }})

	require.NoError(t, d.Run(ctx))
	assert.Equal(t, []Gesture{Press, Release}, h.Gestures)
	assert.Equal(t, 3, sleeps)
}

func TestRunCancelledBeforeSampling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &ScriptedSampler{Samples: [][3]Level{{High, High, Low}}}
	h := &RecordingHandler{}
	d := New(s, h, Config{Sleep: func(time.Duration) {}})

	require.NoError(t, d.Run(ctx))
	assert.Empty(t, h.Gestures)
	assert.Equal(t, 1, s.CloseCalls)
}

func TestRunSamplerErrorIsFatal(t *testing.T) {
	boom := errors.New("boom")
	s := &ScriptedSampler{Err: boom}
	d := New(s, &RecordingHandler{}, Config{Sleep: func(time.Duration) {}})

	err := d.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.CloseCalls)
}

func TestRunSettleErrorIsFatal(t *testing.T) {
	boom := errors.New("boom")
	s := &flakySampler{failAfter: 1, err: boom}
	d := New(s, &RecordingHandler{}, Config{Sleep: func(time.Duration) {}})

	err := d.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.closeCalls)
}

func TestNewDefaults(t *testing.T) {
	d := New(&ScriptedSampler{}, nil, Config{})

	assert.Equal(t, DefaultSettleInterval, d.cfg.SettleInterval)
	assert.NotNil(t, d.cfg.Sleep)
	assert.NotNil(t, d.handler)
	assert.True(t, d.state.Quiescent())
}

// flakySampler succeeds for a number of reads and then fails, to exercise the
// error path inside the settle loop.
type flakySampler struct {
	failAfter  int
	err        error
	reads      int
	closeCalls int
}

func (f *flakySampler) Sample() (Level, Level, Level, error) {
	if f.reads >= f.failAfter {
		return Low, Low, Low, f.err
	}
	f.reads++
	return High, High, Low, nil
}

func (f *flakySampler) Close() error {
	f.closeCalls++
	return nil
}
