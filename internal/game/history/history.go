package history

import (
	"context"
	"sort"
	"sync"
	"time"

	"CricketTrumps/internal/game/engine"
)

// MatchResult is one finished game.
type MatchResult struct {
	RoomID     string    `json:"roomId"`
	WinnerID   string    `json:"winnerId"` // "" when every hand was wiped out
	WinnerName string    `json:"winnerName"`
	Players    []string  `json:"players"`
	Rounds     int       `json:"rounds"`
	FinishedAt time.Time `json:"finishedAt"`
}

type Recorder interface {
	Record(ctx context.Context, res MatchResult) error
	// Recent returns at most limit results, newest first.
	Recent(ctx context.Context, limit int) ([]MatchResult, error)
}

// FromGame summarises a finished game. ok is false while it is still playing.
func FromGame(roomID string, g *engine.GameState, at time.Time) (MatchResult, bool) {
	if g == nil || g.Status != engine.Finished {
		return MatchResult{}, false
	}
	res := MatchResult{
		RoomID:     roomID,
		Players:    append([]string(nil), g.PlayerNames...),
		Rounds:     g.Round,
		FinishedAt: at,
	}
	if w := g.Winner; w != nil && *w >= 0 && *w < len(g.PlayerIDs) {
		res.WinnerID = g.PlayerIDs[*w]
		if *w < len(g.PlayerNames) {
			res.WinnerName = g.PlayerNames[*w]
		}
	}
	return res, true
}

type memRecorder struct {
	mu      sync.Mutex
	results []MatchResult
}

func NewMemoryRecorder() Recorder {
	return &memRecorder{}
}

func (m *memRecorder) Record(ctx context.Context, res MatchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
	return nil
}

func (m *memRecorder) Recent(ctx context.Context, limit int) ([]MatchResult, error) {
	m.mu.Lock()
	out := append([]MatchResult(nil), m.results...)
	m.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].FinishedAt.After(out[j].FinishedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
