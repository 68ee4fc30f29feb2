package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID
	EntryNumber string
	Email       string
	Name        string
	Department  string
	Hostel      string
	Year        int
	PhotoURL    string
	Interests   []string
	Active      bool
	Superuser   bool
	CreatedAt   time.Time
}
