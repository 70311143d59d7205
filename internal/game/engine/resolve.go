package engine

import (
	"fmt"

	"CricketTrumps/internal/game/card"
)

// ActiveCard is one player's front card entering a comparison.
type ActiveCard struct {
	PlayerIndex int        `json:"playerIndex"`
	Card        *card.Card `json:"card"`
}

// TurnResult is the outcome of comparing one attribute. WinnerIndex is nil
// when the top value is shared, in which case TiedIndices lists every player
// on that value.
type TurnResult struct {
	WinnerIndex  *int           `json:"winnerIndex"`
	TiedIndices  []int          `json:"tiedIndices"`
	WinningValue float64        `json:"winningValue"`
	Attribute    card.Attribute `json:"attribute"`
}

// Tied reports whether the round produced no single winner.
func (r TurnResult) Tied() bool { return r.WinnerIndex == nil }

// ResolveTurn compares attr across the given cards in a single pass. A
// strictly greater value takes the lead; an equal value joins the tie.
// Callers pass only players that still hold cards.
func ResolveTurn(active []ActiveCard, attr card.Attribute) TurnResult {
	highest := -1.0
	var leaders []int
	for _, ac := range active {
		if ac.Card == nil {
			continue
		}
		v, ok := ac.Card.Stats.Value(attr)
		if !ok {
			continue
		}
		switch {
		case v > highest:
			highest = v
			leaders = []int{ac.PlayerIndex}
		case v == highest:
			leaders = append(leaders, ac.PlayerIndex)
		}
	}

	res := TurnResult{TiedIndices: []int{}, WinningValue: highest, Attribute: attr}
	if len(leaders) == 1 {
		res.WinnerIndex = intPtr(leaders[0])
	} else if len(leaders) > 1 {
		res.TiedIndices = leaders
	}
	return res
}

// ActiveCards collects the front card of every player still in the game.
func (g *GameState) ActiveCards() []ActiveCard {
	out := make([]ActiveCard, 0, len(g.Hands))
	for i, h := range g.Hands {
		if g.DroppedPlayers[i] || h.Len() == 0 {
			continue
		}
		out = append(out, ActiveCard{PlayerIndex: i, Card: h.Front()})
	}
	return out
}

// Reveal plays attr for the current round and stores the result until
// SettleTurn consumes it.
func (g *GameState) Reveal(attr card.Attribute) bool {
	if g.Status != Playing || g.Revealed || g.StealState.Active {
		return false
	}
	if _, ok := card.ParseAttribute(string(attr)); !ok {
		return false
	}
	active := g.ActiveCards()
	if len(active) == 0 {
		return false
	}

	res := ResolveTurn(active, attr)
	g.LastResult = &res
	g.Revealed = true
	if res.WinnerIndex != nil {
		g.Feedback = fmt.Sprintf("%s wins the round on %s (%g)", g.name(*res.WinnerIndex), attr, res.WinningValue)
	} else {
		g.Feedback = fmt.Sprintf("Tie on %s (%g)! Cards go to the pot.", attr, res.WinningValue)
	}
	return true
}
