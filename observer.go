package bigsqrt

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IterationEvent describes one Heron refinement step.
type IterationEvent struct {
	Iteration   int
	Predecessor decimal.Decimal
	Successor   decimal.Decimal
	Delta       decimal.Decimal
}

// IterationObserver receives one event per refinement step. It is an
// optional diagnostic seam; the algorithm does not depend on it.
type IterationObserver interface {
	ObserveIteration(event IterationEvent)
}

type noopObserver struct{}

func (noopObserver) ObserveIteration(IterationEvent) {}

type zapObserver struct {
	log *zap.Logger
}

// NewZapObserver adapts a zap logger into an IterationObserver,
// logging each step at debug level.
func NewZapObserver(log *zap.Logger) IterationObserver {
	return &zapObserver{log: log}
}

func (o *zapObserver) ObserveIteration(event IterationEvent) {
	o.log.Debug("heron iteration",
		zap.Int("iteration", event.Iteration),
		zap.String("predecessor", event.Predecessor.String()),
		zap.String("successor", event.Successor.String()),
		zap.String("delta", event.Delta.String()),
	)
}
