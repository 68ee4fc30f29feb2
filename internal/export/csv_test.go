package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/domain"
	"campushub/internal/service"
)

func TestRegistrations(t *testing.T) {
	ev := domain.Event{
		ID:   uuid.New(),
		Name: "Hackathon",
		FormSchema: []domain.FormField{
			{Label: "Team Name", Type: "text", Required: true},
			{Label: "Diet", Type: "text"},
		},
	}
	registeredAt := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	registrants := []service.Registrant{
		{
			User: domain.User{
				EntryNumber: "2021CS10001",
				Name:        "Asha Rao",
				Email:       "asha@campus.edu",
				Department:  "CSE",
				Hostel:      "Kailash",
				Year:        3,
			},
			Registration: domain.Registration{
				Answers:      map[string]string{"Team Name": "Segfault"},
				RegisteredAt: registeredAt,
			},
		},
		{
			User: domain.User{
				EntryNumber: "2022EE10002",
				Name:        "Dev Mehta",
				Email:       "dev@campus.edu",
			},
			Registration: domain.Registration{
				Answers:      map[string]string{"Team Name": "Ohm", "Diet": "veg"},
				RegisteredAt: registeredAt,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Registrations(&buf, ev, registrants))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"Entry Number", "Name", "Email", "Department", "Hostel", "Year", "Registered At",
		"Team Name", "Diet",
	}, rows[0])
	assert.Equal(t, []string{
		"2021CS10001", "Asha Rao", "asha@campus.edu", "CSE", "Kailash", "3",
		"2026-02-14T09:30:00Z", "Segfault", "",
	}, rows[1])
	assert.Equal(t, "Ohm", rows[2][7])
	assert.Equal(t, "veg", rows[2][8])
}

func TestRegistrationsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Registrations(&buf, domain.Event{}, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, baseHeader, rows[0])
}
