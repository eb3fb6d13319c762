package player

import "github.com/mauv0809/roster-api/internal/database"

// ageWindow returns the inclusive birth date range of people who are exactly
// age years old on today.
func ageWindow(today database.Date, age int) (from, to database.Date) {
	to = today.YearsBefore(age)
	from = today.YearsBefore(age + 1).AddDays(1)
	return from, to
}

// ageOn counts the full years between birth and today.
func ageOn(birth, today database.Date) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
