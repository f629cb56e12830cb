package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecentWindow is how far back a publication still counts as recent.
const RecentWindow = 24 * time.Hour

type Question struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
	Choices      []Choice  `json:"choices,omitempty"`
}

type Choice struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	ChoiceText string    `json:"choice_text"`
	Votes      int64     `json:"votes"`
}

func (q Question) String() string {
	return q.QuestionText
}

// WasPublishedRecently reports whether pubDate falls within the trailing
// RecentWindow ending at now. Both bounds are inclusive.
func WasPublishedRecently(pubDate, now time.Time) bool {
	return !pubDate.Before(now.Add(-RecentWindow)) && !pubDate.After(now)
}

// IsVisible reports whether a question published at pubDate may be listed
// or shown at now.
func IsVisible(pubDate, now time.Time) bool {
	return !pubDate.After(now)
}

func (q Question) WasPublishedRecently(now time.Time) bool {
	return WasPublishedRecently(q.PubDate, now)
}

func (q Question) IsVisible(now time.Time) bool {
	return IsVisible(q.PubDate, now)
}

// Choice returns the choice with the given id, if it belongs to q.
func (q Question) Choice(id uuid.UUID) (Choice, bool) {
	for _, c := range q.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}
