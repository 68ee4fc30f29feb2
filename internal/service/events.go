package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"campushub/internal/domain"
	"campushub/internal/recommend"
	"campushub/internal/storage"
)

// EventInfo is an event decorated with the caller's relationship to it.
type EventInfo struct {
	domain.Event
	Registered bool
}

type EventService struct {
	events storage.EventStorage
	regs   storage.RegistrationStorage
	users  storage.UserStorage
	engine *recommend.Engine
	log    *logrus.Entry
}

func NewEventService(
	l *logrus.Logger,
	events storage.EventStorage,
	regs storage.RegistrationStorage,
	users storage.UserStorage,
	engine *recommend.Engine,
) *EventService {
	return &EventService{
		events: events,
		regs:   regs,
		users:  users,
		engine: engine,
		log:    l.WithField("from", "event-service"),
	}
}

// List returns the catalog narrowed by filter. userID may be uuid.Nil for
// anonymous callers; for authenticated ones each event carries whether the
// caller is registered.
func (s *EventService) List(ctx context.Context, filter storage.EventFilter, userID uuid.UUID) ([]EventInfo, error) {
	events, err := s.events.ListEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	registered := make(map[uuid.UUID]bool)
	if userID != uuid.Nil {
		regs, err := s.regs.ListRegistrationsByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, reg := range regs {
			registered[reg.EventID] = true
		}
	}
	infos := make([]EventInfo, 0, len(events))
	for _, ev := range events {
		infos = append(infos, EventInfo{
			Event:      ev,
			Registered: registered[ev.ID],
		})
	}
	return infos, nil
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	ev, err := s.events.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		return domain.Event{}, err
	}
	return ev, nil
}

// Register signs the user up for an event. Answers are validated against the
// event's form schema: every required field must be present and non-empty,
// and keys outside the schema are dropped. The storage uniqueness constraint
// turns a concurrent double signup into ErrAlreadyRegistered.
func (s *EventService) Register(ctx context.Context, userID, eventID uuid.UUID, answers map[string]string) error {
	ev, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}
	cleaned, err := validateAnswers(ev.FormSchema, answers)
	if err != nil {
		return err
	}
	_, err = s.regs.CreateRegistration(ctx, domain.Registration{
		ID:           uuid.New(),
		UserID:       userID,
		EventID:      eventID,
		Answers:      cleaned,
		RegisteredAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return ErrAlreadyRegistered
		}
		return err
	}
	s.log.WithField("event", ev.Name).Info("new registration")
	return nil
}

func validateAnswers(schema []domain.FormField, answers map[string]string) (map[string]string, error) {
	if len(schema) == 0 {
		return nil, nil
	}
	cleaned := make(map[string]string, len(schema))
	for _, field := range schema {
		answer, ok := answers[field.Label]
		if field.Required && (!ok || answer == "") {
			return nil, ErrMissingAnswer
		}
		if ok {
			cleaned[field.Label] = answer
		}
	}
	return cleaned, nil
}

// Feedback attaches a rating to an existing registration.
func (s *EventService) Feedback(ctx context.Context, userID, eventID uuid.UUID, rating int) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return ErrInvalidRating
	}
	err := s.regs.SetRating(ctx, userID, eventID, rating)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotRegistered
		}
		return err
	}
	return nil
}

// Recommendations ranks public events the user has not registered for by
// similarity to their interests and registration history. Unknown users get
// an empty list, not an error.
func (s *EventService) Recommendations(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Event, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	all, err := s.events.ListEvents(ctx, storage.EventFilter{IncludePrivate: true})
	if err != nil {
		return nil, err
	}
	regs, err := s.regs.ListRegistrationsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]bool, len(regs))
	for _, reg := range regs {
		seen[reg.EventID] = true
	}
	history := make([]domain.Event, 0, len(regs))
	catalog := make([]domain.Event, 0, len(all))
	for _, ev := range all {
		if seen[ev.ID] {
			history = append(history, ev)
		}
		if !ev.Private {
			catalog = append(catalog, ev)
		}
	}
	scored := s.engine.Recommend(user.Interests, history, catalog, limit)
	events := make([]domain.Event, 0, len(scored))
	for _, sc := range scored {
		events = append(events, sc.Event)
	}
	return events, nil
}

// Calendar lists the user's registered events in date order.
func (s *EventService) Calendar(ctx context.Context, userID uuid.UUID) ([]domain.Event, error) {
	regs, err := s.regs.ListRegistrationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(regs))
	for _, reg := range regs {
		ev, err := s.events.GetEvent(ctx, reg.EventID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}
