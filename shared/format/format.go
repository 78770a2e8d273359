// Package format renders prices and dates for the public site, following the
// French conventions used across the residence's pages: whole-number FCFA
// amounts with space grouping, and French month names in both short and long
// date forms.
package format

import (
	"fmt"
	"strconv"
	"time"

	"madison/shared/timezone"
)

const currencySuffix = "FCFA"

var monthsLong = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var monthsShort = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// Price renders a whole FCFA amount with fr-FR thousand grouping,
// e.g. 30000 -> "30 000 FCFA".
func Price(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	grouped := ""

	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped += " "
		}

		grouped += string(d)
	}

	if negative {
		grouped = "-" + grouped
	}

	return grouped + " " + currencySuffix
}

// DateShort renders a date as "2 juin 2024" style with the abbreviated French
// month, the form used in lists and admin tables.
func DateShort(t time.Time) string {
	local := timezone.ToAppTime(t)

	return fmt.Sprintf("%d %s %d", local.Day(), monthsShort[local.Month()-1], local.Year())
}

// DateLong renders a date with the full French month name, the form used in
// the reservation summary panel.
func DateLong(t time.Time) string {
	local := timezone.ToAppTime(t)

	return fmt.Sprintf("%d %s %d", local.Day(), monthsLong[local.Month()-1], local.Year())
}

// DateNumeric renders a date as DD/MM/YYYY, the form embedded in the
// direct-message reservation summary.
func DateNumeric(t time.Time) string {
	local := timezone.ToAppTime(t)

	return local.Format("02/01/2006")
}
