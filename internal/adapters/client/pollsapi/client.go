// Package pollsapi is a client for the mysite JSON API.
package pollsapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vncsmyrnk/mysite/internal/core/domain"
)

const (
	questionsURL       = "/api/questions"
	questionURL        = "/api/questions/{id}"
	questionVotesURL   = "/api/questions/{id}/votes"
	questionResultsURL = "/api/questions/{id}/results"
)

// Question is a question as served by the API.
type Question struct {
	domain.Question
	WasPublishedRecently bool `json:"was_published_recently"`
}

type questionList struct {
	LatestQuestionList []Question `json:"latest_question_list"`
}

type CreateQuestion struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
	Choices      []string   `json:"choices"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorText  string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.ErrorText, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.ErrorText)
}

type Client struct {
	rest *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{rest: rest}
}

func (c *Client) ListQuestions(ctx context.Context, limit int) ([]Question, error) {
	var list questionList
	req := c.request(ctx).SetResult(&list)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get(questionsURL)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return list.LatestQuestionList, nil
}

func (c *Client) GetQuestion(ctx context.Context, id string) (*Question, error) {
	var q Question
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		SetResult(&q).
		Get(questionURL)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) CreateQuestion(ctx context.Context, input CreateQuestion) (*Question, error) {
	var q Question
	resp, err := c.request(ctx).
		SetBody(input).
		SetResult(&q).
		Post(questionsURL)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		Delete(questionURL)
	return check(resp, err)
}

func (c *Client) Vote(ctx context.Context, questionID, choiceID string) (*domain.QuestionResults, error) {
	var results domain.QuestionResults
	resp, err := c.request(ctx).
		SetPathParam("id", questionID).
		SetBody(map[string]string{"choice_id": choiceID}).
		SetResult(&results).
		Post(questionVotesURL)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &results, nil
}

func (c *Client) Results(ctx context.Context, questionID string) (*domain.QuestionResults, error) {
	var results domain.QuestionResults
	resp, err := c.request(ctx).
		SetPathParam("id", questionID).
		SetResult(&results).
		Get(questionResultsURL)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &results, nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.rest.R().SetContext(ctx).SetError(&APIError{})
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsSuccess() {
		return nil
	}

	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{}
	}
	apiErr.StatusCode = resp.StatusCode()
	if apiErr.ErrorText == "" {
		apiErr.ErrorText = http.StatusText(resp.StatusCode())
	}
	return apiErr
}
