package clock

import "time"

// Now is the clock used by displays that were not given one.
var Now = time.Now

// Target receives the formatted date string.
type Target interface {
	SetDate(text string) error
}

// Display writes snapshots of the current time into a Target. It does not
// tick; the text only changes when Show is called.
type Display struct {
	target    Target
	formatter *Formatter
	now       func() time.Time
}

// NewDisplay creates a Display. If now is nil the package Now is used.
func NewDisplay(target Target, formatter *Formatter, now func() time.Time) *Display {
	return &Display{target: target, formatter: formatter, now: now}
}

// Show formats the current instant in zone and writes it to the target.
func (d *Display) Show(zone string) error {
	now := d.now
	if now == nil {
		now = Now
	}
	text, err := d.formatter.Format(now(), zone)
	if err != nil {
		return err
	}
	return d.target.SetDate(text)
}
