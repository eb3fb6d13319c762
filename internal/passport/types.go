package passport

import "database/sql"

// Passport is a nationality a player can hold. Rows are reference data.
type Passport struct {
	ID      int    `json:"id_passport"`
	Country string `json:"country"`
	CodeISO string `json:"code_iso"`
}

// store handles all database operations for passports and player_passport.
type store struct {
	db *sql.DB
}
