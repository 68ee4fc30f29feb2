package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Date         time.Time
	Venue        string
	ImageURL     string
	Org          OrgRef
	ManagerEmail string
	Tags         []string
	Audience     Audience
	Private      bool
	FormSchema   []FormField
	CreatedAt    time.Time
}

// Audience narrows who an event targets. Empty slices mean "everyone".
type Audience struct {
	Departments []string `json:"depts"`
	Years       []int    `json:"years"`
}

// FormField describes one labeled field of an event's custom registration
// form. Order matters: it is the column order of the registration export.
type FormField struct {
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}
