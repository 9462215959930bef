package pins

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"knobd/internal/encoder"
)

// SimSampler fakes an encoder on machines without one. SIGUSR1 produces a
// left detent, SIGUSR2 a right detent and SIGHUP a press/release cycle; the
// lines read idle otherwise.
type SimSampler struct {
	sigs chan os.Signal
}

// OpenSim starts listening for the simulation signals.
func OpenSim() *SimSampler {
	s := &SimSampler{sigs: make(chan os.Signal, 8)}
	signal.Notify(s.sigs, syscall.SIGHUP, syscall.SIGUSR1, syscall.SIGUSR2)
	log.Info("Simulated encoder: SIGUSR1 turns left, SIGUSR2 turns right, SIGHUP presses")
	return s
}

// Sample implements encoder.Sampler. Each pending signal is served as a
// single actuated sample; the following settle read sees idle lines again, so
// one signal maps to exactly one gesture.
func (s *SimSampler) Sample() (encoder.Level, encoder.Level, encoder.Level, error) {
	select {
	case sig := <-s.sigs:
		switch sig {
		case syscall.SIGUSR1:
			return encoder.High, encoder.Low, encoder.High, nil
		case syscall.SIGUSR2:
			return encoder.Low, encoder.High, encoder.High, nil
		default:
			return encoder.High, encoder.High, encoder.Low, nil
		}
	default:
		return encoder.High, encoder.High, encoder.High, nil
	}
}

// Close stops the signal subscription.
func (s *SimSampler) Close() error {
	signal.Stop(s.sigs)
	return nil
}
