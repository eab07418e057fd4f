package seasondata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fplytics/fpl-insights/internal/domain/player"
)

func TestLoadPlayers(t *testing.T) {
	t.Parallel()

	players, err := LoadPlayers(filepath.Join("testdata", "players.json"))
	if err != nil {
		t.Fatalf("LoadPlayers error: %v", err)
	}

	// The manager entry (element_type 5) must be skipped.
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}

	raya := players[0]
	if raya.ID != 1 || raya.Name != "Raya" {
		t.Fatalf("unexpected first player: %+v", raya)
	}
	if raya.Team != "Arsenal" {
		t.Fatalf("team id must resolve to name, got %q", raya.Team)
	}
	if raya.Position != player.PositionGoalkeeper {
		t.Fatalf("unexpected position: %s", raya.Position)
	}
	if raya.Price != 5.5 {
		t.Fatalf("now_cost must be divided by ten, got %v", raya.Price)
	}
	if raya.SelectedBy != 20.4 {
		t.Fatalf("selected_by_percent must parse from string, got %v", raya.SelectedBy)
	}

	if players[2].Team != "Liverpool" {
		t.Fatalf("unexpected team for third player: %q", players[2].Team)
	}
}

func TestLoadPlayers_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadPlayers(filepath.Join("testdata", "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadPlayers_MalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "players.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadPlayers(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadWeekly(t *testing.T) {
	t.Parallel()

	weekly, err := LoadWeekly(filepath.Join("testdata", "weekly.json"))
	if err != nil {
		t.Fatalf("LoadWeekly error: %v", err)
	}

	if len(weekly) != 2 {
		t.Fatalf("expected 2 player histories, got %d", len(weekly))
	}

	history := weekly[1]
	if len(history) != 2 {
		t.Fatalf("expected 2 rounds for player 1, got %d", len(history))
	}
	if history[0].Round != 1 || history[1].Round != 2 {
		t.Fatalf("history must be sorted by round: %d, %d", history[0].Round, history[1].Round)
	}
	if history[0].PlayerID != 1 {
		t.Fatalf("player id must come from the map key, got %d", history[0].PlayerID)
	}
	if history[0].PenaltiesSaved != 1 || history[0].TotalPoints != 13 {
		t.Fatalf("unexpected round 1 record: %+v", history[0])
	}

	// defensive_contribution is optional and defaults to zero.
	if history[0].DefensiveContribution != 0 {
		t.Fatalf("missing defensive_contribution must default to zero")
	}
	if weekly[3][0].DefensiveContribution != 4 {
		t.Fatalf("defensive_contribution must decode when present")
	}
}

func TestLoadWeekly_NonNumericKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "weekly.json")
	if err := os.WriteFile(path, []byte(`{"abc": []}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadWeekly(path); err == nil {
		t.Fatalf("expected error for non-numeric player key")
	}
}
