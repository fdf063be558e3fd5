package app

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"opentdb-quiz/internal/domain"
)

// DefaultMaxAttempts bounds how often Start asks the API before giving up.
const DefaultMaxAttempts = 5

// State is the session lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateRetrieving
	StatePresenting
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRetrieving:
		return "retrieving"
	case StatePresenting:
		return "presenting"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Game drives one trivia session: retrieve once, then present and score until the batch is exhausted.
// A Game is owned by a single caller and is not safe for concurrent use.
type Game struct {
	source      BatchSource
	options     domain.TriviaOptions
	logger      *zap.Logger
	maxAttempts int
	rnd         *rand.Rand

	state State
	store *QuestionStore
}

// GameOption customizes a Game.
type GameOption func(*Game)

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) GameOption {
	return func(g *Game) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithRand sets the source used to shuffle selections (tests use a fixed seed).
func WithRand(rnd *rand.Rand) GameOption {
	return func(g *Game) {
		if rnd != nil {
			g.rnd = rnd
		}
	}
}

func NewGame(source BatchSource, options domain.TriviaOptions, logger *zap.Logger, opts ...GameOption) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		source:      source,
		options:     options,
		logger:      logger,
		maxAttempts: DefaultMaxAttempts,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// softFailure carries a non-zero response code through the retry loop.
type softFailure struct {
	code domain.ResponseCode
}

func (e *softFailure) Error() string { return e.code.String() }

// Start retrieves the question batch. Non-zero response codes are retried without delay up to
// the attempt bound, then reported as *domain.RetrievalExhaustedError. Fetch errors are not retried.
func (g *Game) Start(ctx context.Context) error {
	if g.state != StateUninitialized {
		return domain.ErrAlreadyStarted
	}
	g.state = StateRetrieving

	var (
		batch    domain.Batch
		attempts int
	)
	operation := func() error {
		attempts++
		b, err := g.source.Retrieve(ctx, g.options)
		if err != nil {
			return backoff.Permanent(err)
		}
		if b.ResponseCode != domain.ResponseSuccess {
			return &softFailure{code: b.ResponseCode}
		}
		batch = b
		return nil
	}
	notify := func(err error, _ time.Duration) {
		g.logger.Warn("trivia api returned no questions, retrying",
			zap.Int("attempt", attempts),
			zap.Int("max_attempts", g.maxAttempts),
			zap.String("reason", err.Error()),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(g.maxAttempts-1)), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		g.state = StateUninitialized
		var soft *softFailure
		if errors.As(err, &soft) {
			return &domain.RetrievalExhaustedError{Attempts: attempts, LastCode: soft.code}
		}
		return err
	}

	g.store = NewQuestionStore(batch.Results)
	g.state = StatePresenting
	if g.store.IsEnd() {
		g.state = StateFinished
	}
	g.logger.Info("questions retrieved",
		zap.Int("count", g.store.Len()),
		zap.Int("attempts", attempts),
		zap.String("category", g.options.Category.Label()),
		zap.String("difficulty", g.options.Difficulty.Label()),
		zap.String("type", g.options.Type.Label()),
	)
	return nil
}

// State reports where the session is in its lifecycle.
func (g *Game) State() State { return g.state }

// Options returns the configuration the game was built with.
func (g *Game) Options() domain.TriviaOptions { return g.options }

func (g *Game) current() (domain.Question, error) {
	switch g.state {
	case StatePresenting:
		return g.store.Current()
	case StateFinished:
		return domain.Question{}, domain.ErrSessionFinished
	default:
		return domain.Question{}, domain.ErrNotStarted
	}
}

// Question returns the decoded text of the current question.
func (g *Game) Question() (string, error) {
	q, err := g.current()
	if err != nil {
		return "", err
	}
	return domain.DecodeEntities(q.Question), nil
}

func (g *Game) Difficulty() (string, error) {
	q, err := g.current()
	if err != nil {
		return "", err
	}
	return domain.DecodeEntities(q.Difficulty), nil
}

func (g *Game) Category() (string, error) {
	q, err := g.current()
	if err != nil {
		return "", err
	}
	return domain.DecodeEntities(q.Category), nil
}

// CorrectAnswer returns the decoded correct answer, e.g. to reveal it after a miss.
func (g *Game) CorrectAnswer() (string, error) {
	q, err := g.current()
	if err != nil {
		return "", err
	}
	return domain.DecodeEntities(q.CorrectAnswer), nil
}

// Selection returns the choices for the current question. Each call reshuffles multiple-choice answers.
func (g *Game) Selection() ([]string, error) {
	if _, err := g.current(); err != nil {
		return nil, err
	}
	return g.store.Selection(g.rnd)
}

// Answer scores text against the current question and moves to the next one.
// After the last question the game is finished and further calls return domain.ErrSessionFinished.
func (g *Game) Answer(text string) (bool, error) {
	if _, err := g.current(); err != nil {
		return false, err
	}
	correct, err := g.store.Answer(text)
	if err != nil {
		return false, err
	}
	if g.store.IsEnd() {
		g.state = StateFinished
	}
	return correct, nil
}

// IsEnd reports whether the session is finished.
func (g *Game) IsEnd() bool { return g.state == StateFinished }

// Score renders "<correct>/<total>"; it is "0/0" before Start.
func (g *Game) Score() string {
	if g.store == nil {
		return "0/0"
	}
	return g.store.Score()
}

// Progress returns the 0-based index of the current question and the batch size.
func (g *Game) Progress() (int, int) {
	if g.store == nil {
		return 0, 0
	}
	return g.store.Index(), g.store.Len()
}
