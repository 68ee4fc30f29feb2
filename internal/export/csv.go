// Package export renders registration reports for download.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"campushub/internal/domain"
	"campushub/internal/service"
)

var baseHeader = []string{"Entry Number", "Name", "Email", "Department", "Hostel", "Year", "Registered At"}

// Registrations writes one CSV row per registrant. Columns are the fixed
// profile set followed by the event's form fields in schema order, so two
// exports of the same event always line up.
func Registrations(w io.Writer, ev domain.Event, registrants []service.Registrant) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(baseHeader)+len(ev.FormSchema))
	header = append(header, baseHeader...)
	for _, field := range ev.FormSchema {
		header = append(header, field.Label)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range registrants {
		row := make([]string, 0, len(header))
		row = append(row,
			r.User.EntryNumber,
			r.User.Name,
			r.User.Email,
			r.User.Department,
			r.User.Hostel,
			yearString(r.User.Year),
			r.Registration.RegisteredAt.UTC().Format(time.RFC3339),
		)
		for _, field := range ev.FormSchema {
			row = append(row, r.Registration.Answers[field.Label])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
