package retained

import "go.trai.ch/strata/internal/core/ports"

// Factory creates empty retained indexes.
type Factory struct{}

// NewStage implements ports.StageFactory.
func (Factory) NewStage() ports.Stage {
	return New()
}
