package occupancy

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/UnknownOlympus/compass/internal/models"
)

// Sensor supplies the current head count of a facility.
type Sensor interface {
	Count(ctx context.Context, facility models.Facility) (int, error)
}

// SimulatedSensor produces uniformly random counts in [0, MaxCount), like the demo board.
type SimulatedSensor struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulatedSensor creates a SimulatedSensor with a fixed seed, so runs are reproducible.
func NewSimulatedSensor(seed uint64) *SimulatedSensor {
	return &SimulatedSensor{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (s *SimulatedSensor) Count(_ context.Context, facility models.Facility) (int, error) {
	if facility.MaxCount <= 0 {
		return 0, ErrInvalidCapacity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(facility.MaxCount), nil
}
