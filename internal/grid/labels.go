package grid

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
)

const labelCacheSize = 512

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

type localeFormat struct {
	date     string
	clock    string
	weekdays [7]string // Sunday first, as time.Weekday
}

var englishWeekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var localeFormats = map[string]localeFormat{
	"en": {date: "1/2/2006", clock: "3:04:05 PM", weekdays: englishWeekdays},
	"de": {date: "2.1.2006", clock: "15:04:05", weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}},
	"es": {date: "2/1/2006", clock: "15:04:05", weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}},
	"fr": {date: "02/01/2006", clock: "15:04:05", weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}},
	"it": {date: "2/1/2006", clock: "15:04:05", weekdays: [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"}},
	"pt": {date: "02/01/2006", clock: "15:04:05", weekdays: [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}},
}

// British English writes the day first.
var regionDateOverrides = map[string]string{
	"en-GB": "02/01/2006",
	"en-AU": "02/01/2006",
	"en-IE": "2/1/2006",
}

var isoFormat = localeFormat{date: "2006-01-02", clock: "15:04:05", weekdays: englishWeekdays}

type labelKey struct {
	day    int
	offset int // -1 for day labels
}

// Labeler resolves day keys and slot time labels for a grid. Day i is
// Start + i days; a slot at offset k starts at that day + k*Unit.
type Labeler struct {
	start  time.Time
	unit   time.Duration
	alpha  bool
	locale string
	format localeFormat
	cache  *lru.Cache[labelKey, string]
}

// NewLabeler creates a labeler. alpha selects weekday names as day keys
// instead of locale dates.
func NewLabeler(start time.Time, unit time.Duration, locale string, alpha bool) (*Labeler, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	if unit <= 0 {
		unit = DefaultUnit
	}

	cache, err := lru.New[labelKey, string](labelCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating label cache: %w", err)
	}

	return &Labeler{
		start:  start,
		unit:   unit,
		alpha:  alpha,
		locale: tag.String(),
		format: formatFor(tag),
		cache:  cache,
	}, nil
}

// ForGrid creates a labeler from the grid's start and unit.
func ForGrid(g *Grid, locale string, alpha bool) (*Labeler, error) {
	return NewLabeler(g.Start, g.UnitOrDefault(), locale, alpha)
}

func formatFor(tag language.Tag) localeFormat {
	base, _ := tag.Base()
	f, ok := localeFormats[base.String()]
	if !ok {
		return isoFormat
	}
	region, conf := tag.Region()
	if conf == language.Exact || conf == language.High {
		if date, ok := regionDateOverrides[base.String()+"-"+region.String()]; ok {
			f.date = date
		}
	}
	return f
}

// Locale returns the canonical locale tag in use.
func (l *Labeler) Locale() string {
	return l.locale
}

// Date returns the start time of day i.
func (l *Labeler) Date(day int) time.Time {
	return l.start.AddDate(0, 0, day)
}

// DayKey returns the label identifying day i.
func (l *Labeler) DayKey(day int) string {
	key := labelKey{day: day, offset: -1}
	if v, ok := l.cache.Get(key); ok {
		return v
	}
	d := l.Date(day)
	var label string
	if l.alpha {
		label = l.format.weekdays[d.Weekday()]
	} else {
		label = d.Format(l.format.date)
	}
	l.cache.Add(key, label)
	return label
}

// TimeLabel returns the start time label of a slot at the given period offset.
func (l *Labeler) TimeLabel(day, offset int) string {
	key := labelKey{day: day, offset: offset}
	if v, ok := l.cache.Get(key); ok {
		return v
	}
	label := l.Date(day).Add(time.Duration(offset) * l.unit).Format(l.format.clock)
	l.cache.Add(key, label)
	return label
}

// ShortDate returns "day/month" for column headers.
func (l *Labeler) ShortDate(day int) string {
	d := l.Date(day)
	return fmt.Sprintf("%d/%d", d.Day(), int(d.Month()))
}
