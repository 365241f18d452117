package view

import "time"

// DayHeader is the label of one day column.
type DayHeader struct {
	Key   string // day key, as reported in selections
	Short string // "day/month"
	Date  time.Time
}

// HeaderLabels builds column labels for the visible days and marks today's
// column. Column 0 is the time column and carries timeLabel.
func HeaderLabels(timeLabel string, days []DayHeader, today time.Time) ([]string, map[int]bool) {
	labels := make([]string, 0, len(days)+1)
	todayCols := make(map[int]bool)

	labels = append(labels, timeLabel)
	for i, d := range days {
		label := d.Key
		if d.Short != "" && d.Short != d.Key {
			label = d.Key + " " + d.Short
		}
		if sameDay(d.Date, today) {
			label = "*" + label + "*"
			todayCols[i+1] = true
		}
		labels = append(labels, label)
	}

	return labels, todayCols
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
