package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/domain"
	"campushub/internal/recommend"
	"campushub/internal/storage"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seedUser(t *testing.T, m *memStorage, name string) domain.User {
	t.Helper()
	user, err := m.CreateUser(context.Background(), domain.User{
		ID:          uuid.New(),
		EntryNumber: "2021CS" + name,
		Email:       name + "@campus.edu",
		Name:        name,
		Active:      true,
	})
	require.NoError(t, err)
	return user
}

func seedEvent(t *testing.T, m *memStorage, ev domain.Event) domain.Event {
	t.Helper()
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	created, err := m.CreateEvent(context.Background(), ev)
	require.NoError(t, err)
	return created
}

func newEventService(m *memStorage) *EventService {
	return NewEventService(newTestLogger(), m, m, m, recommend.New(recommend.DefaultLimit))
}

func TestRegisterValidatesAnswers(t *testing.T) {
	ctx := context.Background()
	mem := newMemStorage()
	svc := newEventService(mem)
	user := seedUser(t, mem, "asha")
	ev := seedEvent(t, mem, domain.Event{
		Name: "Hackathon",
		Date: time.Now().Add(24 * time.Hour),
		FormSchema: []domain.FormField{
			{Label: "Team Name", Type: "text", Required: true},
			{Label: "Diet", Type: "text"},
		},
	})

	err := svc.Register(ctx, user.ID, ev.ID, map[string]string{"Diet": "veg"})
	assert.ErrorIs(t, err, ErrMissingAnswer)

	err = svc.Register(ctx, user.ID, ev.ID, map[string]string{
		"Team Name": "Segfault",
		"Extra":     "dropped",
	})
	require.NoError(t, err)

	regs, err := mem.ListRegistrationsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, map[string]string{"Team Name": "Segfault"}, regs[0].Answers)
}

func TestRegisterUnknownEvent(t *testing.T) {
	mem := newMemStorage()
	svc := newEventService(mem)
	user := seedUser(t, mem, "asha")

	err := svc.Register(context.Background(), user.ID, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRegisterTwice(t *testing.T) {
	ctx := context.Background()
	mem := newMemStorage()
	svc := newEventService(mem)
	user := seedUser(t, mem, "asha")
	ev := seedEvent(t, mem, domain.Event{Name: "Talk", Date: time.Now()})

	require.NoError(t, svc.Register(ctx, user.ID, ev.ID, nil))
	err := svc.Register(ctx, user.ID, ev.ID, nil)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

// Two simultaneous signups for the same event must produce exactly one
// registration, whichever order the goroutines land in.
func TestRegisterConcurrent(t *testing.T) {
	ctx := context.Background()
	mem := newMemStorage()
	svc := newEventService(mem)
	user := seedUser(t, mem, "asha")
	ev := seedEvent(t, mem, domain.Event{Name: "Talk", Date: time.Now()})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Register(ctx, user.ID, ev.ID, nil)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyRegistered)
		}
	}
	assert.Equal(t, 1, successes)

	regs, err := mem.ListRegistrationsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, regs, 1)
}

func TestFeedback(t *testing.T) {
	ctx := context.Background()
	mem := newMemStorage()
	svc := newEventService(mem)
	user := seedUser(t, mem, "asha")
	ev := seedEvent(t, mem, domain.Event{Name: "Talk", Date: time.Now()})

	assert.ErrorIs(t, svc.Feedback(ctx, user.ID, ev.ID, 0), ErrInvalidRating)
	assert.ErrorIs(t, svc.Feedback(ctx, user.ID, ev.ID, 6), ErrInvalidRating)
	assert.ErrorIs(t, svc.Feedback(ctx, user.ID, ev.ID, 4), ErrNotRegistered)

	require.NoError(t, svc.Register(ctx, user.ID, ev.ID, nil))
	require.NoError(t, svc.Feedback(ctx, user.ID, ev.ID, 4))

	regs, err := mem.ListRegistrationsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	require.NotNil(t, regs[0].Rating)
	assert.Equal(t, 4, *regs[0].Rating)
}

func TestListRegisteredFlag(t *testing.T) {
	ctx := context.Background()
	mem := newMemStorage()
	svc := newEventService(mem)
	user := seedUser(t, mem, "asha")
	evA := seedEvent(t, mem, domain.Event{Name: "A", Date: time.Now()})
	seedEvent(t, mem, domain.Event{Name: "B", Date: time.Now()})

	require.NoError(t, svc.Register(ctx, user.ID, evA.ID, nil))

	infos, err := svc.List(ctx, storage.EventFilter{}, user.ID)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.True(t, infos[0].Registered)
	assert.False(t, infos[1].Registered)

	// anonymous callers never see the flag set
	infos, err = svc.List(ctx, storage.EventFilter{}, uuid.Nil)
	require.NoError(t, err)
	for _, info := range infos {
		assert.False(t, info.Registered)
	}
}

func TestRecommendationsUnknownUser(t *testing.T) {
	mem := newMemStorage()
	svc := newEventService(mem)
	seedEvent(t, mem, domain.Event{Name: "Talk", Date: time.Now()})

	events, err := svc.Recommendations(context.Background(), uuid.New(), 5)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRecommendationsSkipRegisteredAndPrivate(t *testing.T) {
	ctx := context.Background()
	mem := newMemStorage()
	svc := newEventService(mem)
	user := seedUser(t, mem, "asha")
	registered := seedEvent(t, mem, domain.Event{Name: "Python Workshop", Tags: []string{"coding"}, Date: time.Now()})
	seedEvent(t, mem, domain.Event{Name: "Go Workshop", Tags: []string{"coding"}, Date: time.Now()})
	seedEvent(t, mem, domain.Event{Name: "Secret Coding Sprint", Tags: []string{"coding"}, Private: true, Date: time.Now()})

	require.NoError(t, svc.Register(ctx, user.ID, registered.ID, nil))

	events, err := svc.Recommendations(ctx, user.ID, 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Go Workshop", events[0].Name)
}

func TestCalendarSortedByDate(t *testing.T) {
	ctx := context.Background()
	mem := newMemStorage()
	svc := newEventService(mem)
	user := seedUser(t, mem, "asha")
	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	later := seedEvent(t, mem, domain.Event{Name: "Later", Date: base.Add(48 * time.Hour)})
	sooner := seedEvent(t, mem, domain.Event{Name: "Sooner", Date: base})

	require.NoError(t, svc.Register(ctx, user.ID, later.ID, nil))
	require.NoError(t, svc.Register(ctx, user.ID, sooner.ID, nil))

	events, err := svc.Calendar(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Sooner", events[0].Name)
	assert.Equal(t, "Later", events[1].Name)
}
