package stats

import (
	"errors"
	"fmt"
)

// ErrInvalidMetric is returned for any metric key outside the whitelist.
var ErrInvalidMetric = errors.New("invalid stat key")

// Metric is one of the numeric columns of player_stats.
type Metric string

const (
	PlayerLoad             Metric = "player_load"
	DistanceCoveredKm      Metric = "distance_covered_km"
	PossessionCount        Metric = "possession_count"
	Sprints                Metric = "sprints"
	SprintDistanceM        Metric = "sprint_distance_m"
	MaxSpeedKmh            Metric = "max_speed_kmh"
	LowIntensityPercent    Metric = "low_intensity_percent"
	MediumIntensityPercent Metric = "medium_intensity_percent"
	HighIntensityPercent   Metric = "high_intensity_percent"
	Passes                 Metric = "passes"
	Shots                  Metric = "shots"
	AvgShotSpeedKmh        Metric = "avg_shot_speed_kmh"
	MaxShotSpeedKmh        Metric = "max_shot_speed_kmh"
)

var allMetrics = []Metric{
	PlayerLoad, DistanceCoveredKm, PossessionCount, Sprints, SprintDistanceM,
	MaxSpeedKmh, LowIntensityPercent, MediumIntensityPercent, HighIntensityPercent,
	Passes, Shots, AvgShotSpeedKmh, MaxShotSpeedKmh,
}

// Metrics returns the whitelist in column order.
func Metrics() []Metric {
	out := make([]Metric, len(allMetrics))
	copy(out, allMetrics)
	return out
}

// ParseMetric checks key against the whitelist.
func ParseMetric(key string) (Metric, error) {
	m := Metric(key)
	if m.column() == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidMetric, key)
	}
	return m, nil
}

// column maps a metric to its column name. Anything outside the closed set
// maps to "" and must never reach SQL.
func (m Metric) column() string {
	switch m {
	case PlayerLoad:
		return "player_load"
	case DistanceCoveredKm:
		return "distance_covered_km"
	case PossessionCount:
		return "possession_count"
	case Sprints:
		return "sprints"
	case SprintDistanceM:
		return "sprint_distance_m"
	case MaxSpeedKmh:
		return "max_speed_kmh"
	case LowIntensityPercent:
		return "low_intensity_percent"
	case MediumIntensityPercent:
		return "medium_intensity_percent"
	case HighIntensityPercent:
		return "high_intensity_percent"
	case Passes:
		return "passes"
	case Shots:
		return "shots"
	case AvgShotSpeedKmh:
		return "avg_shot_speed_kmh"
	case MaxShotSpeedKmh:
		return "max_shot_speed_kmh"
	}
	return ""
}
