package httpjson

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"opentdb-quiz/internal/domain"
)

func TestFetchJSONDecodesBatch(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response_code":0,"results":[{"type":"boolean","difficulty":"easy","category":"Science &amp; Nature","question":"Water is wet.","correct_answer":"True","incorrect_answers":["False"]}]}`))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, nil)
	var batch domain.Batch
	err := client.FetchJSON(context.Background(), server.URL+"/api.php", url.Values{"amount": {"1"}, "type": {"boolean"}}, &batch)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotQuery.Get("amount") != "1" || gotQuery.Get("type") != "boolean" {
		t.Fatalf("unexpected query %v", gotQuery)
	}
	if batch.ResponseCode != domain.ResponseSuccess || len(batch.Results) != 1 {
		t.Fatalf("unexpected batch %+v", batch)
	}
	q := batch.Results[0]
	if !q.IsBoolean() || q.Category != "Science &amp; Nature" || q.IncorrectAnswers[0] != "False" {
		t.Fatalf("unexpected question %+v", q)
	}
}

func TestFetchJSONRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	var batch domain.Batch
	err := NewClient(time.Second, nil).FetchJSON(context.Background(), server.URL, url.Values{}, &batch)
	if !errors.Is(err, domain.ErrFetch) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestFetchJSONRejectsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response_code":`))
	}))
	defer server.Close()

	var batch domain.Batch
	err := NewClient(time.Second, nil).FetchJSON(context.Background(), server.URL, url.Values{}, &batch)
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.Endpoint != server.URL {
		t.Fatalf("unexpected endpoint %s", fetchErr.Endpoint)
	}
}

func TestFetchJSONHonoursTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	var batch domain.Batch
	err := NewClient(50*time.Millisecond, nil).FetchJSON(context.Background(), server.URL, url.Values{}, &batch)
	if !errors.Is(err, domain.ErrFetch) {
		t.Fatalf("expected fetch error on timeout, got %v", err)
	}
}
