package recommend

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/domain"
)

func event(name string, daysAhead int, tags ...string) domain.Event {
	return domain.Event{
		ID:   uuid.New(),
		Name: name,
		Date: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC).AddDate(0, 0, daysAhead),
		Tags: tags,
	}
}

func TestRecommendRanksByInterest(t *testing.T) {
	workshop := event("Python Workshop", 3, "coding", "python")
	danceNight := event("Dance Night", 1, "dance")
	catalog := []domain.Event{workshop, danceNight}

	got := New(DefaultLimit).Recommend([]string{"coding", "robotics"}, nil, catalog, 2)

	require.Len(t, got, 2)
	assert.Equal(t, workshop.ID, got[0].Event.ID)
	assert.Equal(t, danceNight.ID, got[1].Event.ID)
	assert.Greater(t, got[0].Score, got[1].Score, "matching event must rank strictly above")
}

func TestRecommendColdStart(t *testing.T) {
	later := event("Later", 10, "music")
	soon := event("Soon", 1, "dance")
	middle := event("Middle", 5, "art")
	catalog := []domain.Event{later, soon, middle}

	got := New(DefaultLimit).Recommend(nil, nil, catalog, 2)

	require.Len(t, got, 2)
	assert.Equal(t, soon.ID, got[0].Event.ID)
	assert.Equal(t, middle.ID, got[1].Event.ID)
	for _, s := range got {
		assert.Zero(t, s.Score)
	}
}

func TestRecommendExcludesHistory(t *testing.T) {
	attended := event("Go Meetup", 2, "coding", "go")
	upcoming := event("Rust Meetup", 4, "coding", "rust")
	other := event("Poetry Slam", 6, "literature")
	catalog := []domain.Event{attended, upcoming, other}

	got := New(DefaultLimit).Recommend(nil, []domain.Event{attended}, catalog, 5)

	require.NotEmpty(t, got)
	for _, s := range got {
		assert.NotEqual(t, attended.ID, s.Event.ID, "registered events are never recommended")
	}
	// History tags feed the profile: the coding event outranks poetry.
	assert.Equal(t, upcoming.ID, got[0].Event.ID)
}

func TestRecommendDeterministic(t *testing.T) {
	catalog := []domain.Event{
		event("A", 1, "coding"),
		event("B", 2, "coding"),
		event("C", 3, "music"),
	}
	e := New(DefaultLimit)

	first := e.Recommend([]string{"coding"}, nil, catalog, 3)
	second := e.Recommend([]string{"coding"}, nil, catalog, 3)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Event.ID, second[i].Event.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
	// A and B tie on score; the stable sort keeps catalog order.
	assert.Equal(t, "A", first[0].Event.Name)
	assert.Equal(t, "B", first[1].Event.Name)
}

func TestRecommendDegenerateCorpus(t *testing.T) {
	// Profile text is non-empty but every token is a stop word, as is all
	// candidate text: vectorization has no vocabulary to work with.
	first := event("The And", 1)
	second := event("Of The", 2)
	catalog := []domain.Event{first, second}

	got := New(DefaultLimit).Recommend([]string{"the"}, nil, catalog, 5)

	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].Event.ID)
	assert.Equal(t, second.ID, got[1].Event.ID)
}

func TestRecommendLimits(t *testing.T) {
	catalog := []domain.Event{
		event("A", 1, "coding"),
		event("B", 2, "coding"),
		event("C", 3, "coding"),
	}
	e := New(2)

	assert.Len(t, e.Recommend([]string{"coding"}, nil, catalog, 0), 2, "engine default applies")
	assert.Len(t, e.Recommend([]string{"coding"}, nil, catalog, 1), 1)
	assert.Len(t, e.Recommend([]string{"coding"}, nil, catalog, 10), 3, "limit capped by catalog")
	assert.Empty(t, e.Recommend([]string{"coding"}, nil, nil, 5))
}

func TestRecommendAllRegistered(t *testing.T) {
	a := event("A", 1, "coding")
	b := event("B", 2, "music")
	got := New(DefaultLimit).Recommend([]string{"coding"}, []domain.Event{a, b}, []domain.Event{a, b}, 5)
	assert.Empty(t, got)
}
