package engine

import (
	"fmt"

	"CricketTrumps/internal/game/card"
	"CricketTrumps/internal/game/dealer"
)

// Status of a running game
type Status string

const (
	Playing  Status = "PLAYING"
	Finished Status = "FINISHED"
)

const (
	PowerStreak = 3  // consecutive wins that unlock a steal
	StealCount  = 2  // cards taken by one steal
	SpyUnlock   = 25 // hand size needed to activate spy mode
)

// StealState is a pending steal obligation. Ordinary play is suspended while Active.
type StealState struct {
	Active  bool `json:"active"`
	Stealer int  `json:"stealer"`
	Count   int  `json:"count"`
}

// SpyState tracks one marked card across hand transfers.
type SpyState struct {
	Active      bool `json:"active"`
	MakerIndex  int  `json:"makerIndex"`
	CardID      int  `json:"cardId"`
	HolderIndex *int `json:"holderIndex"`
}

// GameState is the whole state of one room's game. The JSON field names are
// the document broadcast to clients.
//
// All methods mutate in place and report whether anything changed; invalid
// requests are ignored. A GameState must only be touched by one goroutine at
// a time.
type GameState struct {
	Hands             []card.Hand `json:"hands"`
	ActivePlayerIndex int         `json:"activePlayerIndex"`
	Pot               card.Hand   `json:"pot"`
	Scores            []int       `json:"scores"`
	WinningStreak     []int       `json:"winningStreak"`
	DroppedPlayers    []bool      `json:"droppedPlayers"`
	Round             int         `json:"round"`
	Status            Status      `json:"gameState"`
	Revealed          bool        `json:"revealed"`
	LastResult        *TurnResult `json:"lastResult"`
	Feedback          string      `json:"feedback"`
	PowerModePlayer   *int        `json:"powerModePlayer"`
	StealState        StealState  `json:"stealState"`
	SpyState          SpyState    `json:"spyState"`
	PlayerIDs         []string    `json:"playerIds"`
	PlayerNames       []string    `json:"playerNames"`
	TotalCards        int         `json:"totalCards"`
	Winner            *int        `json:"winner"`
}

// InitializeGame shuffles deck, deals it to playerCount hands and resets all
// counters. Missing names default to "Player N". PlayerIDs are left blank for
// the caller to fill in.
func InitializeGame(d *dealer.Dealer, deck []*card.Card, playerCount int, playerNames []string) *GameState {
	if playerCount < 1 {
		playerCount = 1
	}
	names := make([]string, playerCount)
	for i := range names {
		if i < len(playerNames) && playerNames[i] != "" {
			names[i] = playerNames[i]
		} else {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
	}
	return &GameState{
		Hands:             d.Deal(deck, playerCount),
		ActivePlayerIndex: 0,
		Pot:               card.Hand{},
		Scores:            make([]int, playerCount),
		WinningStreak:     make([]int, playerCount),
		DroppedPlayers:    make([]bool, playerCount),
		Round:             1,
		Status:            Playing,
		Feedback:          "Game Started!",
		PlayerIDs:         make([]string, playerCount),
		PlayerNames:       names,
		TotalCards:        len(deck),
	}
}

// PlayerCount is the number of seats, dropped players included.
func (g *GameState) PlayerCount() int { return len(g.Hands) }

// IndexOf returns the seat of a participant id, or -1.
func (g *GameState) IndexOf(id string) int {
	for i, p := range g.PlayerIDs {
		if p == id {
			return i
		}
	}
	return -1
}

// ActivePlayerID is the participant whose turn it is.
func (g *GameState) ActivePlayerID() string {
	if g.ActivePlayerIndex < 0 || g.ActivePlayerIndex >= len(g.PlayerIDs) {
		return ""
	}
	return g.PlayerIDs[g.ActivePlayerIndex]
}

// CardsInPlay counts every card in hands and pot.
func (g *GameState) CardsInPlay() int {
	n := g.Pot.Len()
	for _, h := range g.Hands {
		n += h.Len()
	}
	return n
}

func (g *GameState) validIndex(i int) bool {
	return i >= 0 && i < len(g.Hands)
}

func (g *GameState) name(i int) string {
	if i >= 0 && i < len(g.PlayerNames) {
		return g.PlayerNames[i]
	}
	return fmt.Sprintf("Player %d", i+1)
}

// remaining lists non-dropped seats in index order.
func (g *GameState) remaining() []int {
	out := make([]int, 0, len(g.Hands))
	for i, dropped := range g.DroppedPlayers {
		if !dropped {
			out = append(out, i)
		}
	}
	return out
}

// advanceTurn moves the turn to the next non-dropped seat after the current
// one. With nobody else left the pointer stays where it is.
func (g *GameState) advanceTurn() {
	n := len(g.Hands)
	for step := 1; step < n; step++ {
		j := (g.ActivePlayerIndex + step) % n
		if !g.DroppedPlayers[j] {
			g.ActivePlayerIndex = j
			return
		}
	}
}

// eliminate marks every non-dropped player with an empty hand as dropped.
func (g *GameState) eliminate() []int {
	var out []int
	for i, h := range g.Hands {
		if !g.DroppedPlayers[i] && h.Len() == 0 {
			g.DroppedPlayers[i] = true
			g.WinningStreak[i] = 0
			out = append(out, i)
		}
	}
	return out
}

// checkWinner ends the game when one hand holds every card, when a single
// player is left (who also collects the pot), or when nobody is left.
func (g *GameState) checkWinner() bool {
	if g.Status == Finished {
		return true
	}
	for i, h := range g.Hands {
		if h.Len() == g.TotalCards {
			g.finish(intPtr(i))
			return true
		}
	}
	left := g.remaining()
	switch len(left) {
	case 0:
		g.finish(nil)
		return true
	case 1:
		w := left[0]
		g.Hands[w].PushBack(g.Pot.Clear()...)
		g.finish(intPtr(w))
		return true
	}
	return false
}

func (g *GameState) finish(winner *int) {
	g.Status = Finished
	g.Winner = winner
	g.Revealed = false
	g.LastResult = nil
	g.StealState = StealState{}
	g.PowerModePlayer = nil
	if winner != nil {
		g.ActivePlayerIndex = *winner
		g.Feedback = fmt.Sprintf("%s wins the game!", g.name(*winner))
	} else {
		g.Feedback = "Game over. No cards left to play."
	}
}

func intPtr(i int) *int { return &i }
