package domain

type ChoiceStats struct {
	Choice     Choice  `json:"choice"`
	VoteCount  int64   `json:"vote_count"`
	Percentage float64 `json:"percentage"`
}

type QuestionResults struct {
	Question   *Question     `json:"question"`
	TotalVotes int64         `json:"total_votes"`
	Choices    []ChoiceStats `json:"choices"`
}
