package occupancy

import (
	"errors"
	"fmt"
)

// Status is the crowding level of a facility.
type Status int

const (
	StatusNormal Status = iota
	StatusBusy
	StatusCrowded
)

// Ratio thresholds; each bucket is inclusive on its lower bound.
const (
	BusyThreshold    = 0.5
	CrowdedThreshold = 0.8
)

var (
	ErrInvalidCapacity = errors.New("max count must be positive")
	ErrNegativeCount   = errors.New("current count must not be negative")
)

// Classify maps a (current, max) pair to a Status by the ratio current/max.
func Classify(current, maxCount int) (Status, error) {
	if maxCount <= 0 {
		return StatusNormal, fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxCount)
	}
	if current < 0 {
		return StatusNormal, fmt.Errorf("%w: got %d", ErrNegativeCount, current)
	}

	return ClassifyRatio(float64(current) / float64(maxCount)), nil
}

// ClassifyRatio maps an occupancy ratio to a Status.
func ClassifyRatio(ratio float64) Status {
	switch {
	case ratio < BusyThreshold:
		return StatusNormal
	case ratio < CrowdedThreshold:
		return StatusBusy
	default:
		return StatusCrowded
	}
}

// String returns the machine name of the status.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusBusy:
		return "busy"
	case StatusCrowded:
		return "crowded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Label returns the display label shown on the campus board.
func (s Status) Label() string {
	switch s {
	case StatusNormal:
		return "空闲"
	case StatusBusy:
		return "较忙"
	case StatusCrowded:
		return "拥挤"
	default:
		return ""
	}
}

// LabelEN returns the English display label.
func (s Status) LabelEN() string {
	switch s {
	case StatusNormal:
		return "free"
	case StatusBusy:
		return "moderately busy"
	case StatusCrowded:
		return "crowded"
	default:
		return ""
	}
}

// MarshalText encodes the status by its machine name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
