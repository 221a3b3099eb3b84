package domain

import "time"

// DateOnly trunca o horário e normaliza para UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween retorna a quantidade de dias corridos de from até to.
// O resultado é negativo quando to é anterior a from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
