package domain

import "time"

const (
	DefaultQueryTimeout = 30 * time.Second
	MaxOutputBytes      = 1 << 20
)

// QueryResult is the outcome of one question in a batch. Exactly one of Answer
// and Err is meaningful.
type QueryResult struct {
	Question string
	Answer   string
	Err      error
}

func (r QueryResult) OK() bool {
	return r.Err == nil
}

// AnswerOr returns the answer, or fallback when the query failed or came back
// empty.
func (r QueryResult) AnswerOr(fallback string) string {
	if r.Err != nil || r.Answer == "" {
		return fallback
	}

	return r.Answer
}
