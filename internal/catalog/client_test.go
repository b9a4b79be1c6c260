package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meltforce/liftlog/internal/models"
)

// fakeDB serves canned ExerciseDB responses and records requested paths.
type fakeDB struct {
	byName     map[string][]models.Exercise
	byBodyPart map[string][]models.Exercise
	byTarget   map[string][]models.Exercise
	paths      []string
}

func (f *fakeDB) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.paths = append(f.paths, r.URL.Path)
		var result []models.Exercise
		switch {
		case r.URL.Path == "/bodyPartList":
			json.NewEncoder(w).Encode([]string{"back", "chest", "upper legs"})
			return
		case strings.HasPrefix(r.URL.Path, "/name/"):
			result = f.byName[strings.TrimPrefix(r.URL.Path, "/name/")]
		case strings.HasPrefix(r.URL.Path, "/bodyPart/"):
			result = f.byBodyPart[strings.TrimPrefix(r.URL.Path, "/bodyPart/")]
		case strings.HasPrefix(r.URL.Path, "/target/"):
			result = f.byTarget[strings.TrimPrefix(r.URL.Path, "/target/")]
		}
		if result == nil {
			result = []models.Exercise{}
		}
		json.NewEncoder(w).Encode(result)
	})
}

func exercise(name string) models.Exercise {
	return models.Exercise{Name: name}
}

// TestBodyParts verifies the body part list decodes.
func TestBodyParts(t *testing.T) {
	srv := httptest.NewServer((&fakeDB{}).handler())
	defer srv.Close()

	parts, err := NewClient(srv.URL, "k").BodyParts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 3 || parts[0] != "back" {
		t.Errorf("parts = %v", parts)
	}
}

// TestSearchNameWins verifies the chain stops at the first non-empty source.
func TestSearchNameWins(t *testing.T) {
	db := &fakeDB{byName: map[string][]models.Exercise{"squat": {exercise("barbell squat")}}}
	srv := httptest.NewServer(db.handler())
	defer srv.Close()

	got, err := NewClient(srv.URL, "k").Search(context.Background(), "squat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "barbell squat" {
		t.Errorf("results = %v", got)
	}
	if len(db.paths) != 1 {
		t.Errorf("requests = %v, want name lookup only", db.paths)
	}
}

// TestSearchFallsBackLowercased verifies the body-part and target fallbacks
// receive the lowercased term.
func TestSearchFallsBackLowercased(t *testing.T) {
	db := &fakeDB{byTarget: map[string][]models.Exercise{"glutes": {exercise("hip thrust")}}}
	srv := httptest.NewServer(db.handler())
	defer srv.Close()

	got, err := NewClient(srv.URL, "k").Search(context.Background(), "Glutes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "hip thrust" {
		t.Errorf("results = %v", got)
	}
	want := []string{"/name/Glutes", "/bodyPart/glutes", "/target/glutes"}
	if len(db.paths) != 3 {
		t.Fatalf("requests = %v, want %v", db.paths, want)
	}
	for i := range want {
		if db.paths[i] != want[i] {
			t.Errorf("request %d = %q, want %q", i, db.paths[i], want[i])
		}
	}
}

// TestSearchAllEmpty verifies an exhausted chain returns empty, not error.
func TestSearchAllEmpty(t *testing.T) {
	srv := httptest.NewServer((&fakeDB{}).handler())
	defer srv.Close()

	got, err := NewClient(srv.URL, "k").Search(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("results = %v, want empty", got)
	}
}

// TestNon200SurfacesError verifies a failing upstream is an error with the
// status code, with no retry.
func TestNon200SurfacesError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad-key").ByName(context.Background(), "squat")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("err = %v, want status in message", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retries)", calls)
	}
}

// TestDecodeFailureSurfacesError verifies malformed JSON is an error.
func TestDecodeFailureSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "k").ByName(context.Background(), "squat"); err == nil {
		t.Fatal("expected decode error")
	}
}

// TestAPIKeyHeader verifies the RapidAPI headers go out on every request.
func TestAPIKeyHeader(t *testing.T) {
	var gotKey, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "secret-key").ByName(context.Background(), "squat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "secret-key" {
		t.Errorf("key header = %q, want secret-key", gotKey)
	}
	if gotHost == "" {
		t.Error("host header empty")
	}
}

// TestSearcherSupersede verifies a slow stale search cannot overwrite the
// results of a newer one.
func TestSearcherSupersede(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "slow") {
			arrived <- struct{}{}
			<-release
			json.NewEncoder(w).Encode([]models.Exercise{exercise("stale")})
			return
		}
		json.NewEncoder(w).Encode([]models.Exercise{exercise("fresh")})
	}))
	defer srv.Close()

	s := NewSearcher(NewClient(srv.URL, "k"))

	done := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), "slow")
		done <- err
	}()

	// Wait until the slow search is in flight, then start the newer one.
	<-arrived
	if _, err := s.Search(context.Background(), "fast"); err != nil {
		t.Fatalf("fast search: %v", err)
	}

	close(release)
	if err := <-done; !errors.Is(err, ErrSuperseded) {
		t.Errorf("stale search err = %v, want ErrSuperseded", err)
	}
	results := s.Results()
	if len(results) != 1 || results[0].Name != "fresh" {
		t.Errorf("published results = %v, want the newer search's", results)
	}
}

// TestSearcherErrorKeepsResults verifies a failed search leaves previously
// published results untouched.
func TestSearcherErrorKeepsResults(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]models.Exercise{exercise("good")})
	}))
	defer srv.Close()

	s := NewSearcher(NewClient(srv.URL, "k"))
	if _, err := s.Search(context.Background(), "squat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fail = true
	if _, err := s.Search(context.Background(), "squat"); err == nil {
		t.Fatal("expected error")
	}
	results := s.Results()
	if len(results) != 1 || results[0].Name != "good" {
		t.Errorf("results after failure = %v, want prior results kept", results)
	}
}
