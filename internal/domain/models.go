package domain

import "fmt"

// MaxAmount is the largest batch the upstream API serves in one request.
const MaxAmount = 50

// ResponseCode is the upstream API's success indicator.
type ResponseCode int

const (
	ResponseSuccess       ResponseCode = 0
	ResponseNoResults     ResponseCode = 1
	ResponseInvalidParam  ResponseCode = 2
	ResponseTokenNotFound ResponseCode = 3
	ResponseTokenEmpty    ResponseCode = 4
	ResponseRateLimit     ResponseCode = 5
)

func (c ResponseCode) String() string {
	switch c {
	case ResponseSuccess:
		return "success"
	case ResponseNoResults:
		return "not enough questions for the given parameters"
	case ResponseInvalidParam:
		return "invalid parameter"
	case ResponseTokenNotFound:
		return "session token not found"
	case ResponseTokenEmpty:
		return "session token exhausted"
	case ResponseRateLimit:
		return "rate limited"
	default:
		return fmt.Sprintf("response code %d", int(c))
	}
}

// TriviaOptions configures one session. It is a value and is never mutated after construction.
type TriviaOptions struct {
	Amount     int
	Category   Category
	Difficulty Difficulty
	Type       QuestionType
}

// NewTriviaOptions validates the amount and returns the options.
func NewTriviaOptions(amount int, category Category, difficulty Difficulty, typ QuestionType) (TriviaOptions, error) {
	if amount < 1 || amount > MaxAmount {
		return TriviaOptions{}, &ConfigurationError{Axis: "amount", Label: fmt.Sprint(amount)}
	}
	return TriviaOptions{
		Amount:     amount,
		Category:   category,
		Difficulty: difficulty,
		Type:       typ,
	}, nil
}

// Question is one trivia item exactly as the API returned it; text fields are still escaped.
type Question struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// IsBoolean reports whether the question is a true/false question.
func (q Question) IsBoolean() bool {
	return q.Type == TypeBoolean.Wire()
}

// Batch is the API response body.
type Batch struct {
	ResponseCode ResponseCode `json:"response_code"`
	Results      []Question   `json:"results"`
}
