package engine

import (
	"fmt"

	"CricketTrumps/internal/game/card"
)

func mkCard(id int, wickets float64) *card.Card {
	return &card.Card{
		ID:    id,
		Name:  fmt.Sprintf("card-%d", id),
		Role:  card.Bowler,
		Stats: card.Stats{Wickets: wickets},
	}
}

// filler returns n zero-stat cards with ids from start.
func filler(start, n int) []*card.Card {
	out := make([]*card.Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, mkCard(start+i, 0))
	}
	return out
}

func hand(cards ...[]*card.Card) card.Hand {
	h := card.Hand{}
	for _, cs := range cards {
		h = append(h, cs...)
	}
	return h
}

func one(c *card.Card) []*card.Card { return []*card.Card{c} }

// newGame builds a running game from explicit hands.
func newGame(hands ...card.Hand) *GameState {
	n := len(hands)
	total := 0
	ids := make([]string, n)
	names := make([]string, n)
	for i, h := range hands {
		total += h.Len()
		ids[i] = fmt.Sprintf("p%d", i)
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return &GameState{
		Hands:          hands,
		Pot:            card.Hand{},
		Scores:         make([]int, n),
		WinningStreak:  make([]int, n),
		DroppedPlayers: make([]bool, n),
		Round:          1,
		Status:         Playing,
		PlayerIDs:      ids,
		PlayerNames:    names,
		TotalCards:     total,
	}
}

func handIDs(h card.Hand) []int {
	out := make([]int, 0, len(h))
	for _, c := range h {
		out = append(out, c.ID)
	}
	return out
}

// play reveals attr and settles the round.
func play(g *GameState, attr card.Attribute) bool {
	if !g.Reveal(attr) {
		return false
	}
	return g.SettleTurn()
}
