package hooks

import (
	"context"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default used when no custom hooks are provided,
// eliminating nil checks throughout the scheduler loop.
type NopHooks struct{}

// NewNop creates a no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op callbacks for every event
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnIteration:    h.OnIteration,
		OnHeatRejected: h.OnHeatRejected,
		OnFinished:     h.OnFinished,
	}
}

// OnIteration is a no-op implementation.
func (h *NopHooks) OnIteration(ctx context.Context, progress types.Progress) error {
	return nil
}

// OnHeatRejected is a no-op implementation.
func (h *NopHooks) OnHeatRejected(ctx context.Context, iteration, heat int, reason string) error {
	return nil
}

// OnFinished is a no-op implementation.
func (h *NopHooks) OnFinished(ctx context.Context, outcome types.Outcome, progress types.Progress) error {
	return nil
}
