package utils

import "time"

// Stats tracks run performance for the status line
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Generation           int
	Population           int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a finished generation and how long it took
func (s *Stats) Update(generation, population int, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Density returns the percentage of living cells out of area
func (s *Stats) Density(area int) float64 {
	if area <= 0 {
		return 0
	}
	return float64(s.Population) / float64(area) * 100
}

// Runtime is the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
