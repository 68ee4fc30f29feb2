// Package recommend ranks catalog events for a user with content-based
// filtering: the user's stated interests and the tags of events they already
// attended form a profile document, which is scored against every candidate
// event by TF-IDF cosine similarity.
package recommend

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"campushub/internal/domain"
)

const DefaultLimit = 5

type Scored struct {
	Event domain.Event
	Score float64
}

type Engine struct {
	limit int
}

func New(limit int) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{limit: limit}
}

// Recommend returns up to limit events from catalog, most relevant first.
// History events are never candidates. The ranking is deterministic: the
// sort is stable, so similarity ties keep catalog order, and callers feed
// the catalog in a fixed order (date, then id).
//
// Ranking failures are defined fallbacks, never errors: an empty profile
// falls back to the soonest-upcoming events, and a corpus with no usable
// vocabulary falls back to catalog order.
func (e *Engine) Recommend(interests []string, history, catalog []domain.Event, limit int) []Scored {
	if limit <= 0 {
		limit = e.limit
	}

	if strings.TrimSpace(profileText(interests, history)) == "" {
		return upcoming(catalog, limit)
	}

	seen := make(map[uuid.UUID]struct{}, len(history))
	for _, ev := range history {
		seen[ev.ID] = struct{}{}
	}
	candidates := make([]domain.Event, 0, len(catalog))
	for _, ev := range catalog {
		if _, ok := seen[ev.ID]; ok {
			continue
		}
		candidates = append(candidates, ev)
	}
	if len(candidates) == 0 {
		return nil
	}

	docs := make([][]string, 0, len(candidates)+1)
	docs = append(docs, tokenize(profileText(interests, history)))
	for _, ev := range candidates {
		docs = append(docs, tokenize(eventText(ev)))
	}

	v := fit(docs)
	if v.empty() {
		// Pure stop-word corpus: scoring is meaningless, keep catalog order.
		return take(candidates, limit)
	}

	query := v.transform(docs[0])
	scored := make([]Scored, len(candidates))
	for i, ev := range candidates {
		scored[i] = Scored{Event: ev, Score: cosine(query, v.transform(docs[i+1]))}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// profileText is the user's query document: interests plus the tag
// vocabulary of everything they registered for, one bag of words.
func profileText(interests []string, history []domain.Event) string {
	parts := make([]string, 0, len(interests))
	parts = append(parts, interests...)
	for _, ev := range history {
		parts = append(parts, ev.Tags...)
	}
	return strings.Join(parts, " ")
}

func eventText(ev domain.Event) string {
	return ev.Name + " " + ev.Description + " " + strings.Join(ev.Tags, " ")
}

// upcoming is the cold-start fallback: soonest events first.
func upcoming(catalog []domain.Event, limit int) []Scored {
	sorted := make([]domain.Event, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return take(sorted, limit)
}

func take(events []domain.Event, limit int) []Scored {
	if len(events) > limit {
		events = events[:limit]
	}
	scored := make([]Scored, len(events))
	for i, ev := range events {
		scored[i] = Scored{Event: ev}
	}
	return scored
}
