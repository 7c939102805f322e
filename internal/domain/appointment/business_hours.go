package appointment

import (
	"fmt"
	"time"
)

// Clock is a time of day expressed as the offset from midnight.
type Clock time.Duration

func ParseClock(hm string) (Clock, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", hm, err)
	}
	return Clock(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

func ClockOf(t time.Time) Clock {
	h, m, s := t.Clock()
	return Clock(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond()))
}

func (c Clock) String() string {
	d := time.Duration(c)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// Format renders the clock like "9:00 AM".
func (c Clock) Format() string {
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(c)).
		Format("3:04 PM")
}

// BusinessHours is the daily window appointments must fall in. Only the
// clock component of a timestamp is compared, after converting it to
// Location.
type BusinessHours struct {
	Open     Clock
	Close    Clock
	Location *time.Location
}

func NewBusinessHours(open, close string, loc *time.Location) (BusinessHours, error) {
	o, err := ParseClock(open)
	if err != nil {
		return BusinessHours{}, err
	}
	c, err := ParseClock(close)
	if err != nil {
		return BusinessHours{}, err
	}
	if c <= o {
		return BusinessHours{}, fmt.Errorf("business hours: close %s not after open %s", c, o)
	}
	if loc == nil {
		loc = time.UTC
	}
	return BusinessHours{Open: o, Close: c, Location: loc}, nil
}

func (bh BusinessHours) loc() *time.Location {
	if bh.Location == nil {
		return time.UTC
	}
	return bh.Location
}

func (bh BusinessHours) Contains(iv Interval) bool {
	start := ClockOf(iv.Start.In(bh.loc()))
	end := ClockOf(iv.End.In(bh.loc()))

	if start < bh.Open || end > bh.Close {
		return false
	}
	return true
}
