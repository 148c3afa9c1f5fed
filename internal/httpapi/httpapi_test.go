package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/openreel/ratingcore/pkg/embed"
	"github.com/openreel/ratingcore/pkg/jobqueue"
	"github.com/openreel/ratingcore/pkg/modify"
	"github.com/openreel/ratingcore/pkg/rating"
	"github.com/openreel/ratingcore/pkg/store"
)

// fakeStore is an in-memory store.Store for adapter-level tests.
type fakeStore struct {
	scripts map[string]*store.Script
}

func newFakeStore() *fakeStore { return &fakeStore{scripts: map[string]*store.Script{}} }

func (f *fakeStore) GetScript(_ context.Context, id string) (*store.Script, error) {
	sc, ok := f.scripts[id]
	if !ok {
		return nil, errNotFound{}
	}
	return sc, nil
}
func (f *fakeStore) SaveScript(_ context.Context, sc *store.Script) error {
	f.scripts[sc.ID] = sc
	return nil
}
func (f *fakeStore) CreateVersion(context.Context, string, string, bool) (*store.Version, error) {
	return &store.Version{}, nil
}
func (f *fakeStore) GetVersions(context.Context, string) ([]store.Version, error) { return nil, nil }
func (f *fakeStore) GetVersion(context.Context, string, int) (*store.Version, error) {
	return &store.Version{}, nil
}
func (f *fakeStore) RestoreVersion(context.Context, string, int) (*store.Script, error) {
	return &store.Script{}, nil
}
func (f *fakeStore) DeleteVersion(context.Context, string, int) (bool, error) { return true, nil }
func (f *fakeStore) LogRating(context.Context, store.RatingLogEntry) error    { return nil }

type errNotFound struct{}

func (errNotFound) Error() string { return "not found" }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &Server{
		Pipeline:      rating.NewPipeline("standard", "test"),
		Registry:      modify.NewDefaultRegistry(nil),
		Queue:         jobqueue.NewQueue(rdb),
		Store:         newFakeStore(),
		EmbedProvider: embed.NewHashEmbedder(32),
		Profile:       rating.StandardProfile,
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	app := srv.New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRateScriptRejectsEmptyText(t *testing.T) {
	srv := newTestServer(t)
	app := srv.New()

	body, _ := json.Marshal(rateScriptRequest{Text: "", ScriptID: "s1"})
	req := httptest.NewRequest(http.MethodPost, "/rate_script", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for empty text, got %d", resp.StatusCode)
	}
}

func TestRateScriptReturnsRating(t *testing.T) {
	srv := newTestServer(t)
	app := srv.New()

	body, _ := json.Marshal(rateScriptRequest{
		Text:     "INT. OFFICE - DAY\nThey chat quietly over coffee.",
		ScriptID: "s1",
	})
	req := httptest.NewRequest(http.MethodPost, "/rate_script", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	var out rateScriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.PredictedRating == "" {
		t.Errorf("expected a predicted rating, got empty")
	}
}

func TestWhatIfAppliesRemoveScenes(t *testing.T) {
	srv := newTestServer(t)
	app := srv.New()

	script := "INT. OFFICE - DAY\nThey talk.\n\nEXT. ALLEY - NIGHT\nA fight breaks out, he is punched hard.\n\nINT. KITCHEN - DAY\nCoffee.\n\nINT. HALL - DAY\nWalking.\n\nINT. ROOF - NIGHT\nStars."
	body, _ := json.Marshal(whatIfRequest{ScriptText: script, ModificationRequest: "remove scenes 1 to 1"})
	req := httptest.NewRequest(http.MethodPost, "/what_if", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
