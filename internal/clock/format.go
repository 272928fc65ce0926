package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zones resolve on hosts without a zoneinfo database

	"golang.org/x/text/language"
)

// DefaultLocale is the only locale the formatter renders.
const DefaultLocale = "en-US"

// ErrUnsupportedLocale is returned for locales other than en-US.
var ErrUnsupportedLocale = errors.New("unsupported locale")

var (
	supportedLocales = []language.Tag{language.AmericanEnglish}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

// NameStyle selects how the zone name suffix is rendered.
type NameStyle int

const (
	NameNone NameStyle = iota
	NameShort
)

// Options configures one Format call.
type Options struct {
	TimeZone     string
	Hour12       bool
	TimeZoneName NameStyle
}

// DefaultOptions returns the display options: numeric date and time, 24-hour
// clock, short zone name.
func DefaultOptions(zone string) Options {
	return Options{
		TimeZone:     zone,
		Hour12:       false,
		TimeZoneName: NameShort,
	}
}

func (o Options) layout() string {
	var b strings.Builder
	b.WriteString("1/2/2006, ")
	if o.Hour12 {
		b.WriteString("3:04:05 PM")
	} else {
		b.WriteString("15:04:05")
	}
	return b.String()
}

// Formatter renders instants with en-US date conventions.
type Formatter struct {
	locale language.Tag
}

// NewFormatter returns a formatter for locale, which must be en-US.
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf != language.Exact {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return &Formatter{locale: supportedLocales[idx]}, nil
}

// Locale returns the formatter's BCP 47 tag.
func (f *Formatter) Locale() string { return f.locale.String() }

// Format renders t in zone, e.g. "1/15/2024, 12:00:00 PST".
func (f *Formatter) Format(t time.Time, zone string) (string, error) {
	return f.FormatWith(t, DefaultOptions(zone))
}

// FormatWith renders t with explicit options.
func (f *Formatter) FormatWith(t time.Time, opts Options) (string, error) {
	loc, err := time.LoadLocation(opts.TimeZone)
	if err != nil {
		return "", fmt.Errorf("invalid time zone %q: %w", opts.TimeZone, err)
	}
	local := t.In(loc)
	s := local.Format(opts.layout())
	if opts.TimeZoneName == NameShort {
		s += " " + ShortName(local)
	}
	return s, nil
}

// usZones are the abbreviations en-US prints verbatim, keyed to the UTC
// offset they stand for.
var usZones = map[string]int{
	"HST":  -10 * 3600,
	"HDT":  -9 * 3600,
	"AKST": -9 * 3600,
	"AKDT": -8 * 3600,
	"PST":  -8 * 3600,
	"PDT":  -7 * 3600,
	"MST":  -7 * 3600,
	"MDT":  -6 * 3600,
	"CST":  -6 * 3600,
	"CDT":  -5 * 3600,
	"EST":  -5 * 3600,
	"EDT":  -4 * 3600,
	"AST":  -4 * 3600,
	"ADT":  -3 * 3600,
}

// ShortName returns the en-US short zone name of t's location at t: a US
// abbreviation where one exists, UTC for UTC, otherwise a GMT offset.
func ShortName(t time.Time) string {
	name, offset := t.Zone()
	if want, ok := usZones[name]; ok && want == offset {
		return name
	}
	if offset == 0 && name == "UTC" {
		return "UTC"
	}
	return gmtOffset(offset)
}

func gmtOffset(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := offset / 3600
	minutes := offset % 3600 / 60
	if minutes == 0 {
		return fmt.Sprintf("GMT%c%d", sign, hours)
	}
	return fmt.Sprintf("GMT%c%d:%02d", sign, hours, minutes)
}
