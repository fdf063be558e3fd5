package app

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"opentdb-quiz/internal/domain"
)

// DefaultEndpoint is the public Open Trivia DB API.
const DefaultEndpoint = "https://opentdb.com/api.php"

// Fetcher performs a GET against endpoint and decodes the JSON body into out.
type Fetcher interface {
	FetchJSON(ctx context.Context, endpoint string, query url.Values, out any) error
}

// BatchSource returns one batch of questions for the given options.
// A non-zero response code is reported in the batch, not as an error.
type BatchSource interface {
	Retrieve(ctx context.Context, options domain.TriviaOptions) (domain.Batch, error)
}

// Retriever is the BatchSource backed by the trivia API.
type Retriever struct {
	fetcher  Fetcher
	endpoint string
}

func NewRetriever(fetcher Fetcher, endpoint string) *Retriever {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Retriever{fetcher: fetcher, endpoint: endpoint}
}

// Retrieve issues exactly one request. Transport and decode failures come back as *domain.FetchError.
func (r *Retriever) Retrieve(ctx context.Context, options domain.TriviaOptions) (domain.Batch, error) {
	var batch domain.Batch
	if err := r.fetcher.FetchJSON(ctx, r.endpoint, BuildQuery(options), &batch); err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return domain.Batch{}, err
		}
		return domain.Batch{}, &domain.FetchError{Endpoint: r.endpoint, Err: err}
	}
	return batch, nil
}

// BuildQuery renders options as query parameters. "Any" values are left out because
// the API treats a missing parameter as no filter.
func BuildQuery(options domain.TriviaOptions) url.Values {
	query := url.Values{}
	query.Set("amount", strconv.Itoa(options.Amount))
	if !options.Category.IsAny() {
		query.Set("category", strconv.Itoa(options.Category.Wire()))
	}
	if !options.Difficulty.IsAny() {
		query.Set("difficulty", options.Difficulty.Wire())
	}
	if !options.Type.IsAny() {
		query.Set("type", options.Type.Wire())
	}
	return query
}

// CacheKey identifies a batch request; equal options yield equal keys.
func CacheKey(options domain.TriviaOptions) string {
	return BuildQuery(options).Encode()
}
