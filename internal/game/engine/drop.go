package engine

import "fmt"

// DropPlayer removes a player voluntarily. Their hand is dealt round-robin
// to the remaining players in seat order and the seat stays, empty. A round
// revealed but not yet settled is voided.
func (g *GameState) DropPlayer(index int) bool {
	if g.Status != Playing || !g.validIndex(index) || g.DroppedPlayers[index] {
		return false
	}

	cards := g.Hands[index].Clear()
	g.DroppedPlayers[index] = true
	g.WinningStreak[index] = 0
	g.Feedback = fmt.Sprintf("%s dropped out", g.name(index))

	left := g.remaining()
	if len(left) == 0 {
		g.Pot.PushBack(cards...)
	} else {
		for i, c := range cards {
			s := left[i%len(left)]
			g.Hands[s].PushBack(c)
		}
	}

	if g.Revealed {
		g.Revealed = false
		g.LastResult = nil
	}
	if g.StealState.Active && g.StealState.Stealer == index {
		g.StealState = StealState{}
	}
	if g.PowerModePlayer != nil && *g.PowerModePlayer == index {
		g.PowerModePlayer = nil
	}
	g.refreshSpyHolder()

	if g.ActivePlayerIndex == index {
		g.advanceTurn()
	}
	g.checkWinner()
	return true
}
