package stats

import "database/sql"

// Values are the thirteen nullable metrics of one stat line.
type Values struct {
	PlayerLoad             *float64 `json:"player_load"`
	DistanceCoveredKm      *float64 `json:"distance_covered_km"`
	PossessionCount        *int     `json:"possession_count"`
	Sprints                *int     `json:"sprints"`
	SprintDistanceM        *float64 `json:"sprint_distance_m"`
	MaxSpeedKmh            *float64 `json:"max_speed_kmh"`
	LowIntensityPercent    *float64 `json:"low_intensity_percent"`
	MediumIntensityPercent *float64 `json:"medium_intensity_percent"`
	HighIntensityPercent   *float64 `json:"high_intensity_percent"`
	Passes                 *int     `json:"passes"`
	Shots                  *int     `json:"shots"`
	AvgShotSpeedKmh        *float64 `json:"avg_shot_speed_kmh"`
	MaxShotSpeedKmh        *float64 `json:"max_shot_speed_kmh"`
}

// PlayerStats is one row of player_stats.
type PlayerStats struct {
	ID       int  `json:"id_stats"`
	PlayerID int  `json:"player_id"`
	MatchID  *int `json:"match_id"`
	Values
}

// Input is the body of a stat line create or full update.
type Input struct {
	MatchID *int `json:"match_id"`
	Values
}

// Averages holds each metric averaged over a player's stat rows, rounded to
// one decimal. Every field is nil when the player has no rows.
type Averages struct {
	PlayerLoad             *float64 `json:"avg_player_load"`
	DistanceCoveredKm      *float64 `json:"avg_distance_covered_km"`
	PossessionCount        *float64 `json:"avg_possession_count"`
	Sprints                *float64 `json:"avg_sprints"`
	SprintDistanceM        *float64 `json:"avg_sprint_distance_m"`
	MaxSpeedKmh            *float64 `json:"avg_max_speed_kmh"`
	LowIntensityPercent    *float64 `json:"avg_low_intensity_percent"`
	MediumIntensityPercent *float64 `json:"avg_medium_intensity_percent"`
	HighIntensityPercent   *float64 `json:"avg_high_intensity_percent"`
	Passes                 *float64 `json:"avg_passes"`
	Shots                  *float64 `json:"avg_shots"`
	AvgShotSpeedKmh        *float64 `json:"avg_avg_shot_speed_kmh"`
	MaxShotSpeedKmh        *float64 `json:"avg_max_shot_speed_kmh"`
}

// TopPerformer is the player with the highest average for a metric.
type TopPerformer struct {
	PlayerID  int     `json:"id_player"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Average   float64 `json:"average"`
}

// store handles all database operations for player stats.
type store struct {
	db *sql.DB
}
