package engine

import (
	"fmt"

	"CricketTrumps/internal/game/card"
)

// ActivateSpy marks the player's current front card. It needs a hand of at
// least SpyUnlock cards and no spy already running.
func (g *GameState) ActivateSpy(index int) bool {
	if g.Status != Playing || !g.validIndex(index) || g.DroppedPlayers[index] {
		return false
	}
	if g.Hands[index].Len() < SpyUnlock {
		return false
	}
	return g.markSpy(index)
}

func (g *GameState) markSpy(index int) bool {
	if g.SpyState.Active {
		return false
	}
	front := g.Hands[index].Front()
	if front == nil {
		return false
	}
	g.SpyState = SpyState{
		Active:      true,
		MakerIndex:  index,
		CardID:      front.ID,
		HolderIndex: intPtr(index),
	}
	g.Feedback = fmt.Sprintf("%s activated spy mode", g.name(index))
	return true
}

// refreshSpyHolder finds whichever hand holds the marked card now.
func (g *GameState) refreshSpyHolder() {
	if !g.SpyState.Active {
		return
	}
	for i, h := range g.Hands {
		if h.IndexOf(g.SpyState.CardID) >= 0 {
			g.SpyState.HolderIndex = intPtr(i)
			return
		}
	}
	g.SpyState.HolderIndex = nil
}

// SpyView returns a copy of the hand holding the marked card, but only for
// the player who activated spy mode.
func (g *GameState) SpyView(viewer int) card.Hand {
	sp := g.SpyState
	if !sp.Active || sp.MakerIndex != viewer || sp.HolderIndex == nil || !g.validIndex(*sp.HolderIndex) {
		return nil
	}
	h := g.Hands[*sp.HolderIndex]
	out := make(card.Hand, len(h))
	copy(out, h)
	return out
}
