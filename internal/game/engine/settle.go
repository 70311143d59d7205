package engine

import (
	"fmt"

	"CricketTrumps/internal/game/card"
)

// SettleTurn moves the cards of a revealed round and advances the game:
//
//  1. every non-empty hand plays its front card
//  2. played cards plus the pot go to the winner, or become the new pot on a tie
//  3. scores and streaks update; a streak of PowerStreak opens a steal
//  4. round advances, spy holder is recomputed
//  5. emptied hands are eliminated, then the win check runs
//  6. the turn passes to the next player still in the game
//
// A winner takes the turn before it passes, so the seat after the winner
// leads the next round. Without a pending result it does nothing.
func (g *GameState) SettleTurn() bool {
	if g.LastResult == nil {
		return false
	}
	res := *g.LastResult

	played := make([]*card.Card, 0, len(g.Hands))
	for i := range g.Hands {
		if c, ok := g.Hands[i].PopFront(); ok {
			played = append(played, c)
		}
	}
	all := make(card.Hand, 0, len(played)+g.Pot.Len())
	all = append(all, played...)
	all = append(all, g.Pot.Clear()...)

	winner := -1
	if res.WinnerIndex != nil && g.validIndex(*res.WinnerIndex) {
		winner = *res.WinnerIndex
	}

	if winner >= 0 {
		g.Hands[winner].PushBack(all...)
		g.Scores[winner]++
		for i := range g.WinningStreak {
			if i == winner {
				g.WinningStreak[i]++
			} else {
				g.WinningStreak[i] = 0
			}
		}
		g.ActivePlayerIndex = winner
		g.Feedback = fmt.Sprintf("%s takes %d cards", g.name(winner), len(all))
		if g.WinningStreak[winner] >= PowerStreak {
			g.PowerModePlayer = intPtr(winner)
			g.StealState = StealState{Active: true, Stealer: winner, Count: StealCount}
			g.Feedback = fmt.Sprintf("%s is on fire! Power mode: steal %d cards", g.name(winner), StealCount)
		} else {
			g.PowerModePlayer = nil
		}
	} else {
		g.Pot = all
		for i := range g.WinningStreak {
			g.WinningStreak[i] = 0
		}
		g.PowerModePlayer = nil
		g.Feedback = fmt.Sprintf("Tie! %d cards in the pot", g.Pot.Len())
	}

	g.Round++
	g.Revealed = false
	g.LastResult = nil

	g.refreshSpyHolder()
	for _, i := range g.eliminate() {
		g.Feedback += fmt.Sprintf(". %s is out", g.name(i))
	}
	if !g.checkWinner() {
		g.advanceTurn()
	}
	return true
}
