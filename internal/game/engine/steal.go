package engine

import (
	"fmt"
	"sort"
)

// StealRequest names the victim and the hand positions to take.
type StealRequest struct {
	TargetIndex int   `json:"targetIndex"`
	CardIndices []int `json:"cardIndices"`
}

// ShopEffect is a purchasable power-up. Paying for it happens elsewhere.
type ShopEffect string

const (
	EffectPower ShopEffect = "power"
	EffectSpy   ShopEffect = "spy"
)

// HandleSteal resolves a pending steal. Positions refer to the target's
// current hand; duplicates and out-of-range positions are skipped and at most
// StealState.Count cards are taken. The steal is used up even when no
// position resolves. An invalid target leaves it pending.
func (g *GameState) HandleSteal(req StealRequest) bool {
	s := g.StealState
	if !s.Active || g.Status != Playing || g.Revealed {
		return false
	}
	t := req.TargetIndex
	if !g.validIndex(t) || t == s.Stealer || g.DroppedPlayers[t] {
		return false
	}

	seen := make(map[int]bool, len(req.CardIndices))
	picked := make([]int, 0, s.Count)
	for _, i := range req.CardIndices {
		if len(picked) == s.Count {
			break
		}
		if i < 0 || i >= g.Hands[t].Len() || seen[i] {
			continue
		}
		seen[i] = true
		picked = append(picked, i)
	}

	// highest position first so the rest stay valid
	sort.Sort(sort.Reverse(sort.IntSlice(picked)))
	for _, i := range picked {
		c, _ := g.Hands[t].RemoveAt(i)
		g.Hands[s.Stealer].PushBack(c)
	}

	g.StealState = StealState{}
	g.PowerModePlayer = nil
	g.WinningStreak[s.Stealer] = 0
	g.Feedback = fmt.Sprintf("%s stole %d cards from %s", g.name(s.Stealer), len(picked), g.name(t))

	g.refreshSpyHolder()
	for _, i := range g.eliminate() {
		g.Feedback += fmt.Sprintf(". %s is out", g.name(i))
	}
	if !g.checkWinner() && g.DroppedPlayers[g.ActivePlayerIndex] {
		g.advanceTurn()
	}
	return true
}

// ApplyShopEffect grants a bought power-up to a player.
//
// power opens a steal as if the player had won PowerStreak rounds in a row.
// spy marks the player's front card without the SpyUnlock hand size.
func (g *GameState) ApplyShopEffect(index int, effect ShopEffect) bool {
	if g.Status != Playing || !g.validIndex(index) || g.DroppedPlayers[index] {
		return false
	}
	switch effect {
	case EffectPower:
		if g.StealState.Active || g.Revealed {
			return false
		}
		g.PowerModePlayer = intPtr(index)
		g.StealState = StealState{Active: true, Stealer: index, Count: StealCount}
		g.Feedback = fmt.Sprintf("%s bought power mode: steal %d cards", g.name(index), StealCount)
		return true
	case EffectSpy:
		return g.markSpy(index)
	}
	return false
}
