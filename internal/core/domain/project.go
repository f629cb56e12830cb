package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxProjectTitleLength         = 200
	MaxProjectDescriptionLength   = 10000
	MaxCommenterNameLength        = 20
	MaxCommenterDescriptionLength = 200
)

type Project struct {
	ID                 uuid.UUID       `json:"id"`
	ProjectTitle       string          `json:"project_title"`
	ProjectDescription string          `json:"project_description"`
	PubDate            time.Time       `json:"pub_date"`
	Choices            []ProjectChoice `json:"choices,omitempty"`
}

// ProjectChoice is a commenter entry attached to a project.
type ProjectChoice struct {
	ID                   uuid.UUID `json:"id"`
	ProjectID            uuid.UUID `json:"project_id"`
	CommenterName        string    `json:"commenter_name"`
	CommenterDescription string    `json:"commenter_description"`
}

func (p Project) String() string {
	return p.ProjectTitle
}
