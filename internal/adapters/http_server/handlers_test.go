package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	httpserver "github.com/spoo-437/voiceofdine-ai/internal/adapters/http_server"
	"github.com/spoo-437/voiceofdine-ai/internal/analysis"
	"github.com/spoo-437/voiceofdine-ai/internal/app"
	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

type memStore struct {
	byEntity map[string][]domain.Review
	all      []domain.Review
	entities []domain.EntityCount
}

func (m *memStore) UpsertReviews(context.Context, []domain.Review) error { return nil }

func (m *memStore) ListByEntity(_ context.Context, entity string) ([]domain.Review, error) {
	return m.byEntity[entity], nil
}

func (m *memStore) ListAll(context.Context) ([]domain.Review, error) { return m.all, nil }

func (m *memStore) ListEntities(context.Context) ([]domain.EntityCount, error) {
	return m.entities, nil
}

type noCache struct{}

func (noCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noCache) Set(context.Context, string, any, int) error    { return nil }
func (noCache) Del(context.Context, string) error              { return nil }

func newTestServer(st *memStore) *httptest.Server {
	svc := app.NewReportService(st, noCache{}, analysis.New(analysis.Config{}), time.Minute)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: svc})
	return httptest.NewServer(srv.Mux())
}

func seedStore() *memStore {
	reviews := []domain.Review{
		{Entity: "Spice Villa", Text: "slow and rude staff", Sentiment: domain.Negative},
		{Entity: "Spice Villa", Text: "great biryani", Sentiment: domain.Positive},
		{Entity: "Spice Villa", Text: "it was fine", Sentiment: domain.Neutral},
	}
	return &memStore{
		byEntity: map[string][]domain.Review{"Spice Villa": reviews},
		all:      reviews,
		entities: []domain.EntityCount{{Entity: "Spice Villa", Reviews: 3}},
	}
}

func getJSON(t *testing.T, ts *httptest.Server, path string, dst any) *http.Response {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if dst != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(seedStore())
	defer ts.Close()

	resp := getJSON(t, ts, "/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestEntityReportEndpoint(t *testing.T) {
	ts := newTestServer(seedStore())
	defer ts.Close()

	var rep domain.Report
	resp := getJSON(t, ts, "/v1/entities/"+url.PathEscape("Spice Villa")+"/report", &rep)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if rep.Entity != "Spice Villa" || rep.TotalReviews != 3 {
		t.Errorf("report = %q/%d", rep.Entity, rep.TotalReviews)
	}
	if len(rep.Recommendations) == 0 {
		t.Error("expected recommendations in the payload")
	}
	if resp.Header.Get("ETag") == "" {
		t.Error("expected an ETag header")
	}
}

func TestEntityReportEndpoint_NotFound(t *testing.T) {
	ts := newTestServer(seedStore())
	defer ts.Close()

	resp := getJSON(t, ts, "/v1/entities/Nowhere/report", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestEntityReportEndpoint_NotModified(t *testing.T) {
	ts := newTestServer(seedStore())
	defer ts.Close()

	path := "/v1/entities/" + url.PathEscape("Spice Villa") + "/report"
	first := getJSON(t, ts, path, nil)
	etag := first.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag on the first response")
	}

	req, _ := http.NewRequest("GET", ts.URL+path, nil)
	req.Header.Set("If-None-Match", etag)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", resp.StatusCode)
	}
}

func TestListReviewsEndpoint(t *testing.T) {
	ts := newTestServer(seedStore())
	defer ts.Close()

	var out []struct {
		Entity    string `json:"entity"`
		Text      string `json:"text"`
		Sentiment string `json:"sentiment"`
	}
	resp := getJSON(t, ts, "/v1/entities/"+url.PathEscape("Spice Villa")+"/reviews?limit=2", &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(out) != 2 {
		t.Fatalf("got %d reviews, want 2", len(out))
	}
	if out[0].Text != "slow and rude staff" || out[0].Sentiment != "Negative" {
		t.Errorf("first review = %+v", out[0])
	}
}

func TestListReviewsEndpoint_BadLimit(t *testing.T) {
	ts := newTestServer(seedStore())
	defer ts.Close()

	for _, q := range []string{"limit=0", "limit=201", "limit=abc"} {
		resp := getJSON(t, ts, "/v1/entities/X/reviews?"+q, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, resp.StatusCode)
		}
	}
}

func TestBenchmarkEndpoint(t *testing.T) {
	st := seedStore()
	// Pad the entity past the benchmark minimum.
	for i := 0; i < 3; i++ {
		st.all = append(st.all, domain.Review{Entity: "Spice Villa", Text: "ok", Sentiment: domain.Positive})
	}
	ts := newTestServer(st)
	defer ts.Close()

	var rows []domain.BenchmarkRow
	resp := getJSON(t, ts, "/v1/benchmark", &rows)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(rows) != 1 || rows[0].Entity != "Spice Villa" || rows[0].ReviewCount != 6 {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestEntitiesEndpoint(t *testing.T) {
	ts := newTestServer(seedStore())
	defer ts.Close()

	var out []domain.EntityCount
	resp := getJSON(t, ts, "/v1/entities", &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(out) != 1 || out[0].Entity != "Spice Villa" || out[0].Reviews != 3 {
		t.Fatalf("entities = %+v", out)
	}
}
