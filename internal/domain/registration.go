package domain

import (
	"time"

	"github.com/google/uuid"
)

// Registration links a user to an event exactly once. It is created when the
// user registers and mutated only to attach a feedback rating.
type Registration struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	EventID      uuid.UUID
	Answers      map[string]string
	Rating       *int
	RegisteredAt time.Time
}

// Feedback ratings are constrained to a closed range.
const (
	MinRating = 1
	MaxRating = 5
)
