package appointment

import (
	"fmt"
	"time"
)

type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
)

func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewMonth:
		return ViewMonth, nil
	case ViewWeek:
		return ViewWeek, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Period selects the calendar window being browsed. Weeks run Monday to
// Sunday; months from the first to the last day.
type Period struct {
	View   View
	Anchor time.Time
}

// Window returns [from, to) at midnight boundaries in loc.
func (p Period) Window(loc *time.Location) (time.Time, time.Time) {
	a := p.Anchor.In(loc)
	day := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)

	if p.View == ViewWeek {
		offset := (int(day.Weekday()) + 6) % 7
		from := day.AddDate(0, 0, -offset)
		return from, from.AddDate(0, 0, 7)
	}

	from := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

func (p Period) Next() Period {
	return p.shift(1)
}

func (p Period) Previous() Period {
	return p.shift(-1)
}

func (p Period) shift(n int) Period {
	if p.View == ViewWeek {
		return Period{View: p.View, Anchor: p.Anchor.AddDate(0, 0, 7*n)}
	}
	// Month steps start from the 1st so Jan 31 + 1 lands in February.
	a := p.Anchor
	first := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, a.Location())
	return Period{View: p.View, Anchor: first.AddDate(0, n, 0)}
}
