package scene

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrInterval = errors.New("ticker interval must be positive")

// Run drives e on wall-clock tickers until ctx is done or cycles rotations
// have happened (cycles <= 0 runs until cancelled). Both tickers are
// serviced from this goroutine, and both are released on every return path.
func Run(ctx context.Context, e *Engine, frameEvery, rotateEvery time.Duration, cycles int) error {
	if frameEvery <= 0 || rotateEvery <= 0 {
		return fmt.Errorf("%w: frame %s, rotate %s", ErrInterval, frameEvery, rotateEvery)
	}
	frame := time.NewTicker(frameEvery)
	defer frame.Stop()
	rotate := time.NewTicker(rotateEvery)
	defer rotate.Stop()
	defer e.Stop()

	done := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-frame.C:
			e.Frame()
		case <-rotate.C:
			i, ok := e.Rotate()
			if !ok {
				return nil
			}
			e.log.Info().
				Int("index", i).
				Str("group", e.layout.Group(i).Name).
				Int("connectors", len(e.Connectors())).
				Int("retired", e.Retired()).
				Bool("settled", e.Settled()).
				Msg("focus")
			done++
			if cycles > 0 && done >= cycles {
				return nil
			}
		}
	}
}
