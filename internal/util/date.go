package util

import (
	"strings"
	"time"
)

// Date formats tried in priority order. Day-first forms come before month-first
// on purpose: for ambiguous values like 03/04/2024 the sheet's editors mean
// 3 April, so the day/month reading must win. Non-padded layouts accept both
// "3/4/2024" and "03/04/2024".
var dateFormats = []string{
	"2/1/2006",
	"2006-1-2",
	"1/2/2006",
	"2-1-2006",
}

// ParseDate turns a free-text sheet cell into a calendar date. Blank or
// unparseable input yields ok=false, never an error; callers treat such rows
// as dateless rather than broken.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatDate renders a date the way the sheet's human editors write them.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// SameDay compares calendar dates ignoring the time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
