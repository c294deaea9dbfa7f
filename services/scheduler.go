package services

import (
	"errors"
	"fmt"

	"career-roadmap/models/career"
)

// ErrInvalidDuration is matched by every *InvalidDurationError.
var ErrInvalidDuration = errors.New("invalid duration")

// InvalidDurationError reports a duration that can't be spread over a path's phases.
type InvalidDurationError struct {
	TotalMonths int
	NumPhases   int
	Reason      string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration of %d months for %d phases: %s", e.TotalMonths, e.NumPhases, e.Reason)
}

func (e *InvalidDurationError) Is(target error) bool { return target == ErrInvalidDuration }

// PhaseDurations splits totalMonths over numPhases as evenly as possible.
// The first totalMonths%numPhases phases get one extra month.
func PhaseDurations(totalMonths, numPhases int) ([]int, error) {
	switch {
	case numPhases <= 0:
		return nil, &InvalidDurationError{TotalMonths: totalMonths, NumPhases: numPhases, Reason: "a career path needs at least one phase"}
	case totalMonths <= 0:
		return nil, &InvalidDurationError{TotalMonths: totalMonths, NumPhases: numPhases, Reason: "duration must be a positive number of months"}
	case totalMonths < numPhases:
		return nil, &InvalidDurationError{
			TotalMonths: totalMonths,
			NumPhases:   numPhases,
			Reason:      fmt.Sprintf("duration must be at least %d months so every phase gets one", numPhases),
		}
	}

	base := totalMonths / numPhases
	remainder := totalMonths % numPhases

	durations := make([]int, numPhases)
	for i := range durations {
		durations[i] = base
		if i < remainder {
			durations[i]++
		}
	}
	return durations, nil
}

// BuildRoadmap lays the phases of path end to end starting at month 1.
func BuildRoadmap(path career.CareerPath, totalMonths int) (career.Roadmap, error) {
	durations, err := PhaseDurations(totalMonths, len(path.Phases))
	if err != nil {
		return career.Roadmap{}, err
	}

	roadmap := career.Roadmap{
		Key:         path.Key,
		Title:       path.Title,
		TotalMonths: totalMonths,
		Phases:      make([]career.ScheduledPhase, 0, len(path.Phases)),
	}

	start := 1
	for i, phase := range path.Phases {
		end := start + durations[i] - 1
		roadmap.Phases = append(roadmap.Phases, career.ScheduledPhase{
			Name:        phase.Name,
			Description: phase.Description,
			StartMonth:  start,
			EndMonth:    end,
			Duration:    durations[i],
		})
		start = end + 1
	}
	return roadmap, nil
}
