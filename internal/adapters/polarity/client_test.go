package polarity_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spoo-437/voiceofdine-ai/internal/adapters/polarity"
	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

func TestClient_Score_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			var in struct {
				Text string `json:"text"`
			}
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in.Text != "great food" {
				t.Errorf("payload text = %q", in.Text)
			}
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{"polarity": 0.75})
		}
	}))
	defer ts.Close()

	cl, err := polarity.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.Score(ctx, "great food")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 0.75 {
		t.Fatalf("score = %v, want 0.75", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Score_SendsAPIKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "sekrit" {
			w.WriteHeader(401)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"polarity": 0.1})
	}))
	defer ts.Close()

	cl, err := polarity.New(ts.URL, "sekrit", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := cl.Score(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestClient_Score_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(401)
	}))
	defer ts.Close()

	cl, err := polarity.New(ts.URL, "", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := cl.Score(context.Background(), "x"); !errors.Is(err, polarity.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestClient_Score_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := polarity.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := cl.Score(context.Background(), "x"); !errors.Is(err, polarity.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClient_Score_RetryAfterHonored(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(429)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"polarity": -0.4})
	}))
	defer ts.Close()

	cl, err := polarity.New(ts.URL, "", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, err := cl.Score(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != -0.4 {
		t.Fatalf("score = %v, want -0.4", got)
	}
}

func TestClient_Classify_DegradesToNeutral(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(503)
	}))
	defer ts.Close()

	cl, err := polarity.New(ts.URL, "", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if got := cl.Classify(ctx, "anything"); got != domain.Neutral {
		t.Fatalf("Classify = %v, want Neutral on persistent failure", got)
	}
}

func TestClient_Classify_MapsPolaritySign(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"polarity": 0.9})
	}))
	defer ts.Close()

	cl, err := polarity.New(ts.URL, "", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := cl.Classify(context.Background(), "x"); got != domain.Positive {
		t.Fatalf("Classify = %v, want Positive", got)
	}
}

func TestNew_RequiresBase(t *testing.T) {
	if _, err := polarity.New("", "key", 5); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}
