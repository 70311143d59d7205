package manager

import (
	"context"

	"CricketTrumps/internal/game/card"
	"CricketTrumps/internal/game/engine"
	"CricketTrumps/internal/lobby"
	"CricketTrumps/internal/utils"
)

type cpuAction int

const (
	cpuNone cpuAction = iota
	cpuReveal
	cpuSettle
	cpuSteal
)

// stamp identifies the state a CPU step was planned for. A step whose stamp
// no longer matches the room is stale and skipped.
type stamp struct {
	action   cpuAction
	round    int
	revealed bool
	seat     int
}

// nextCPUAction decides whether a computer player owes the next move.
func nextCPUAction(g *engine.GameState) stamp {
	s := stamp{action: cpuNone, round: g.Round, revealed: g.Revealed}
	if g.Status != engine.Playing {
		return s
	}
	if st := g.StealState; st.Active {
		if st.Stealer >= 0 && st.Stealer < len(g.PlayerIDs) && lobby.IsCPU(g.PlayerIDs[st.Stealer]) {
			s.action, s.seat = cpuSteal, st.Stealer
		}
		return s
	}
	seat := g.ActivePlayerIndex
	if seat < 0 || seat >= len(g.PlayerIDs) || !lobby.IsCPU(g.PlayerIDs[seat]) {
		return s
	}
	s.seat = seat
	if g.Revealed {
		s.action = cpuSettle
	} else {
		s.action = cpuReveal
	}
	return s
}

func (m *GameManager) scheduleCPU(room *lobby.Room) {
	if room.Game == nil {
		return
	}
	next := nextCPUAction(room.Game)
	if next.action == cpuNone {
		return
	}
	roomID := room.ID
	m.after(m.cpuDelay, func() { m.runCPU(roomID, next) })
}

func (m *GameManager) runCPU(roomID string, planned stamp) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var finished bool
	room, changed, err := m.svc.Update(ctx, roomID, func(r *lobby.Room) bool {
		g := r.Game
		if g == nil || nextCPUAction(g) != planned {
			return false
		}
		applied := cpuMove(g, planned)
		finished = g.Status == engine.Finished
		return applied
	})
	if err != nil {
		utils.Log.Error("cpu move", "room", roomID, "err", err)
		return
	}
	if !changed {
		return
	}
	m.afterChange(ctx, room, finished)
}

func cpuMove(g *engine.GameState, s stamp) bool {
	switch s.action {
	case cpuReveal:
		return g.Reveal(card.BestAttribute(g.Hands[s.seat].Front()))
	case cpuSettle:
		return g.SettleTurn()
	case cpuSteal:
		return g.HandleSteal(pickSteal(g, s.seat))
	}
	return false
}

// pickSteal targets the opponent holding the most cards, earliest seat on a
// tie, and takes the front positions.
func pickSteal(g *engine.GameState, stealer int) engine.StealRequest {
	target, most := -1, 0
	for i, h := range g.Hands {
		if i == stealer || g.DroppedPlayers[i] {
			continue
		}
		if h.Len() > most {
			target, most = i, h.Len()
		}
	}
	n := g.StealState.Count
	if n > most {
		n = most
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	return engine.StealRequest{TargetIndex: target, CardIndices: positions}
}
