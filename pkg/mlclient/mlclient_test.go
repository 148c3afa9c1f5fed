package mlclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openreel/ratingcore/pkg/ratingerrors"
)

func TestCheckResponseMapsStatusToKind(t *testing.T) {
	cases := []struct {
		status int
		want   ratingerrors.Kind
	}{
		{http.StatusServiceUnavailable, ratingerrors.MLUnavailable},
		{http.StatusTooManyRequests, ratingerrors.MLUnavailable},
		{http.StatusRequestTimeout, ratingerrors.MLTimeout},
		{http.StatusBadRequest, ratingerrors.MLProtocolError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		rec.WriteHeader(c.status)
		resp := rec.Result()

		err := CheckResponse(resp, "test-service")
		if err == nil {
			t.Fatalf("expected error for status %d", c.status)
		}
		rerr, ok := ratingerrors.As(err)
		if !ok {
			t.Fatalf("expected a ratingerrors.Error, got %T", err)
		}
		if rerr.Kind != c.want {
			t.Errorf("status %d: expected kind %s, got %s", c.status, c.want, rerr.Kind)
		}
	}
}

func TestCheckResponseOKReturnsNil(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.WriteHeader(http.StatusOK)
	if err := CheckResponse(rec.Result(), "test-service"); err != nil {
		t.Errorf("expected nil error for 200, got %v", err)
	}
}

func TestEmbedClientEmbedsAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(embedResponse{Vectors: [][]float32{{0.1, 0.2, 0.3}}})
	}))
	defer srv.Close()

	client := NewEmbedClient(srv.URL, 3)
	vec, err := client.Embed(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 3 {
		t.Errorf("expected 3-dim vector, got %d", len(vec))
	}
}

func TestWithRetryRetriesOnlyRetryableKinds(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts < 2 {
			return ratingerrors.New(ratingerrors.MLUnavailable, "transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

func TestWithRetryDoesNotRetryDomainErrors(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return ratingerrors.New(ratingerrors.InvalidInput, "bad request")
	})
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
	if attempts != 1 {
		t.Errorf("expected exactly 1 attempt for a non-retryable error, got %d", attempts)
	}
}
