package utils

import "time"

// populationSmoothing weights the newest sample in the population average
const populationSmoothing = 0.1

// Stats tracks frame rate and population across a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	samples              int
}

// NewStats starts the runtime clock
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the generation just drawn and how long its frame took
func (s *Stats) Update(generation, population int, frame time.Duration) {
	s.TotalGenerations = generation
	if frame > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(frame)
	}

	// The first sample seeds the exponential moving average
	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation += (float64(population) - s.AveragePopulation) * populationSmoothing
	}
	s.samples++
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// History remembers the fingerprints of the last few generations
type History struct {
	window int
	prints []string
}

func NewHistory(window int) *History {
	return &History{window: window}
}

// Record stores a fingerprint and reports whether it repeats one still in the window
func (h *History) Record(fingerprint string) (repeated bool) {
	for _, p := range h.prints {
		if p == fingerprint {
			repeated = true
			break
		}
	}

	if h.window <= 0 {
		return
	}
	h.prints = append(h.prints, fingerprint)
	if len(h.prints) > h.window {
		h.prints = h.prints[1:]
	}
	return
}
