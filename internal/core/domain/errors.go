package domain

import "errors"

var (
	ErrQuestionNotFound     = errors.New("question not found")
	ErrChoiceNotSelected    = errors.New("you didn't select a choice")
	ErrInvalidQuestion      = errors.New("question text is required")
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProject       = errors.New("invalid project")
	ErrInvalidProjectChoice = errors.New("invalid project choice")
)
