package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	_ "github.com/vovakirdan/tui-farm/internal/games/farm"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

type fakeBoard struct {
	scores    []storage.ScoreEntry
	seasons   []storage.SeasonRecord
	stats     map[string]*storage.GameStats
	err       error
	lastLimit int
}

func (f *fakeBoard) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	f.lastLimit = limit
	return f.scores, f.err
}

func (f *fakeBoard) RecentSeasons(gameID string, limit int) ([]storage.SeasonRecord, error) {
	f.lastLimit = limit
	return f.seasons, f.err
}

func (f *fakeBoard) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.stats[gameID]; ok {
		return s, nil
	}
	return &storage.GameStats{GameID: gameID}, nil
}

func (f *fakeBoard) GetAllGamesStats() (map[string]*storage.GameStats, error) {
	return f.stats, f.err
}

func newTestServer(t *testing.T, board *fakeBoard) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewHandler(board, log.New(io.Discard)).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("GET %s: expected JSON content type, got %q", url, ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("GET %s: cannot decode body: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeBoard{})

	var body map[string]string
	if code := getJSON(t, srv.URL+"/api/health", &body); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestListGames(t *testing.T) {
	srv := newTestServer(t, &fakeBoard{})

	var games []gameDTO
	if code := getJSON(t, srv.URL+"/api/games", &games); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	ids := make(map[string]bool)
	for _, g := range games {
		ids[g.ID] = true
	}
	for _, want := range []string{"farm", "farm_endless"} {
		if !ids[want] {
			t.Errorf("Expected %s in game list, got %+v", want, games)
		}
	}
}

func TestTopScores(t *testing.T) {
	board := &fakeBoard{scores: []storage.ScoreEntry{
		{ID: 2, GameID: "farm", Score: 90, CreatedAt: time.Now()},
		{ID: 1, GameID: "farm", Score: 40, CreatedAt: time.Now()},
	}}
	srv := newTestServer(t, board)

	var scores []storage.ScoreEntry
	if code := getJSON(t, srv.URL+"/api/scores/farm?limit=5", &scores); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if len(scores) != 2 || scores[0].Score != 90 {
		t.Errorf("Unexpected scores %+v", scores)
	}
	if board.lastLimit != 5 {
		t.Errorf("Expected limit 5 to reach the store, got %d", board.lastLimit)
	}
}

func TestLimitParsing(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 10},
		{"?limit=3", 3},
		{"?limit=0", 10},
		{"?limit=-4", 10},
		{"?limit=abc", 10},
		{"?limit=1000", maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			board := &fakeBoard{}
			srv := newTestServer(t, board)
			getJSON(t, srv.URL+"/api/scores/farm"+tt.query, nil)
			if board.lastLimit != tt.want {
				t.Errorf("limit for %q = %d, want %d", tt.query, board.lastLimit, tt.want)
			}
		})
	}
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	srv := newTestServer(t, &fakeBoard{})

	for _, path := range []string{"/api/scores/farm", "/api/seasons/farm"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(body) != "[]\n" {
			t.Errorf("GET %s: expected empty array, got %q", path, body)
		}
	}
}

func TestRecentSeasons(t *testing.T) {
	board := &fakeBoard{seasons: []storage.SeasonRecord{
		{ID: 1, GameID: "farm", Score: 30, Harvested: 3, Stolen: 2, Duration: 180},
	}}
	srv := newTestServer(t, board)

	var seasons []storage.SeasonRecord
	if code := getJSON(t, srv.URL+"/api/seasons/farm", &seasons); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if len(seasons) != 1 || seasons[0].Stolen != 2 {
		t.Errorf("Unexpected seasons %+v", seasons)
	}
	if board.lastLimit != 20 {
		t.Errorf("Expected default season limit 20, got %d", board.lastLimit)
	}
}

func TestUnknownGame(t *testing.T) {
	srv := newTestServer(t, &fakeBoard{})

	for _, path := range []string{"/api/scores/pong", "/api/seasons/pong", "/api/stats/pong"} {
		var body map[string]string
		if code := getJSON(t, srv.URL+path, &body); code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, code)
		}
		if body["error"] == "" {
			t.Errorf("GET %s: expected an error message", path)
		}
	}
}

func TestStats(t *testing.T) {
	board := &fakeBoard{stats: map[string]*storage.GameStats{
		"farm": {GameID: "farm", GamesCount: 2, HighScore: 50, TotalHarvested: 8},
	}}
	srv := newTestServer(t, board)

	var one storage.GameStats
	if code := getJSON(t, srv.URL+"/api/stats/farm", &one); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if one.HighScore != 50 || one.TotalHarvested != 8 {
		t.Errorf("Unexpected stats %+v", one)
	}

	var all map[string]storage.GameStats
	if code := getJSON(t, srv.URL+"/api/stats", &all); code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if all["farm"].GamesCount != 2 {
		t.Errorf("Unexpected aggregated stats %+v", all)
	}
}

func TestStoreFailure(t *testing.T) {
	srv := newTestServer(t, &fakeBoard{err: errors.New("disk on fire")})

	var body map[string]string
	if code := getJSON(t, srv.URL+"/api/scores/farm", &body); code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", code)
	}
	if body["error"] != "internal error" {
		t.Errorf("Store errors should not leak, got %q", body["error"])
	}
}
