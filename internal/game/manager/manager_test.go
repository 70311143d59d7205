package manager

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"CricketTrumps/internal/game/card"
	"CricketTrumps/internal/game/engine"
	"CricketTrumps/internal/game/history"
	"CricketTrumps/internal/lobby"
	"CricketTrumps/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHub implements HubInterface and records what every player received.
type mockHub struct {
	mu   sync.Mutex
	sent map[string][]websocket.OutgoingMessage
	all  []websocket.OutgoingMessage
}

func newMockHub() *mockHub {
	return &mockHub{sent: make(map[string][]websocket.OutgoingMessage)}
}

func (h *mockHub) BroadcastToPlayers(addrs []string, msg websocket.OutgoingMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, a := range addrs {
		h.sent[a] = append(h.sent[a], msg)
	}
}

func (h *mockHub) BroadcastAll(msg websocket.OutgoingMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.all = append(h.all, msg)
}

func (h *mockHub) SendToPlayer(addr string, msg websocket.OutgoingMessage) {
	h.BroadcastToPlayers([]string{addr}, msg)
}

func (h *mockHub) ClientByAddress(addr string) (*websocket.Client, bool) { return nil, false }

func (h *mockHub) Close() {}

func (h *mockHub) last(addr, event string) (websocket.OutgoingMessage, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := h.sent[addr]
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Event == event {
			return msgs[i], true
		}
	}
	return websocket.OutgoingMessage{}, false
}

func (h *mockHub) count(addr, event string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, m := range h.sent[addr] {
		if m.Event == event {
			n++
		}
	}
	return n
}

func (h *mockHub) lastError(t *testing.T, addr string) string {
	t.Helper()
	msg, ok := h.last(addr, websocket.EventError)
	require.True(t, ok, "%s got no error", addr)
	return msg.Data.(string)
}

func (h *mockHub) lastGame(t *testing.T, addr string) *engine.GameState {
	t.Helper()
	msg, ok := h.last(addr, websocket.EventGameUpdate)
	require.True(t, ok, "%s got no game_update", addr)
	return msg.Data.(*engine.GameState)
}

// scheduler queues CPU steps instead of running them on timers.
type scheduler struct {
	mu   sync.Mutex
	jobs []func()
}

func (s *scheduler) after(_ time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, f)
}

func (s *scheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func (s *scheduler) runOne() bool {
	s.mu.Lock()
	if len(s.jobs) == 0 {
		s.mu.Unlock()
		return false
	}
	f := s.jobs[0]
	s.jobs = s.jobs[1:]
	s.mu.Unlock()
	f()
	return true
}

func (s *scheduler) drain(limit int) int {
	n := 0
	for n < limit && s.runOne() {
		n++
	}
	return n
}

type fixture struct {
	svc   *lobby.Service
	hub   *mockHub
	mgr   *GameManager
	sched *scheduler
	rec   history.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hub := newMockHub()
	svc := lobby.NewService(lobby.NewMemoryRepo(), hub, 11)
	rec := history.NewMemoryRecorder()
	mgr := NewGameManager(svc, hub, rec, time.Second)
	sched := &scheduler{}
	mgr.after = sched.after
	mgr.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	svc.OnGameStarted = mgr.StartRoom
	return &fixture{svc: svc, hub: hub, mgr: mgr, sched: sched, rec: rec}
}

func (f *fixture) send(from, event, data string) {
	var raw json.RawMessage
	if data != "" {
		raw = json.RawMessage(data)
	}
	f.mgr.HandlePlayerMessage(websocket.IncomingMessage{From: from, Event: event, Data: raw})
}

func (f *fixture) roomOf(t *testing.T, id string) *lobby.Room {
	t.Helper()
	roomID, err := f.svc.RoomOf(context.Background(), id)
	require.NoError(t, err)
	room, err := f.svc.GetRoom(context.Background(), roomID)
	require.NoError(t, err)
	require.NotNil(t, room)
	return room
}

// setGame replaces the room's game with a hand-built one.
func (f *fixture) setGame(t *testing.T, roomID string, g *engine.GameState) *lobby.Room {
	t.Helper()
	room, ok, err := f.svc.Update(context.Background(), roomID, func(r *lobby.Room) bool {
		g.PlayerIDs = r.PlayerIDs()
		g.PlayerNames = r.PlayerNames()
		r.Game = g
		r.Status = lobby.StatusPlaying
		return true
	})
	require.NoError(t, err)
	require.True(t, ok)
	return room
}

func mk(id int, runs float64) *card.Card {
	return &card.Card{ID: id, Name: "c", Stats: card.Stats{Runs: runs}}
}

func game(hands ...card.Hand) *engine.GameState {
	n := len(hands)
	total := 0
	for _, h := range hands {
		total += h.Len()
	}
	return &engine.GameState{
		Hands:          hands,
		Pot:            card.Hand{},
		Scores:         make([]int, n),
		WinningStreak:  make([]int, n),
		DroppedPlayers: make([]bool, n),
		Round:          1,
		Status:         engine.Playing,
		TotalCards:     total,
	}
}

// host and guest in one room
func twoHumans(t *testing.T, f *fixture) string {
	f.send("host", websocket.EventCreateRoom, `{"playerName":"Asha"}`)
	created, ok := f.hub.last("host", websocket.EventRoomCreated)
	require.True(t, ok)
	roomID := created.Data.(string)
	f.send("guest", websocket.EventJoinRoom, `"`+roomID+`"`)
	require.Len(t, f.roomOf(t, "guest").Players, 2)
	return roomID
}

func TestLobbyEventsAndStart(t *testing.T) {
	f := newFixture(t)
	roomID := twoHumans(t, f)

	f.send("stranger", websocket.EventGetRooms, "")
	list, ok := f.hub.last("stranger", websocket.EventRoomsList)
	require.True(t, ok)
	assert.Equal(t, []lobby.RoomSummary{{ID: roomID, Players: 2}}, list.Data)

	f.send("stranger", websocket.EventJoinRoom, `{"roomId":"ZZZZ"}`)
	assert.Equal(t, "Room not found or full", f.hub.lastError(t, "stranger"))

	f.send("stranger", websocket.EventStartGame, "")
	assert.Equal(t, "not in this room", f.hub.lastError(t, "stranger"))

	f.send("guest", websocket.EventStartGame, "")
	assert.Equal(t, "only the host can start the game", f.hub.lastError(t, "guest"))

	f.send("host", websocket.EventStartGame, `"`+roomID+`"`)
	for _, p := range []string{"host", "guest"} {
		msg, ok := f.hub.last(p, websocket.EventGameStarted)
		require.True(t, ok, p)
		g := msg.Data.(*engine.GameState)
		assert.Equal(t, []string{"host", "guest"}, g.PlayerIDs)
		assert.Equal(t, 80, g.CardsInPlay())
	}
	assert.Equal(t, 0, f.sched.pending(), "no cpu seated")
}

func TestRevealAndSettle(t *testing.T) {
	f := newFixture(t)
	roomID := twoHumans(t, f)
	f.setGame(t, roomID, game(
		card.Hand{mk(1, 100), mk(3, 1)},
		card.Hand{mk(2, 50), mk(4, 2)},
	))

	f.send("guest", websocket.EventMakeMove, `{"roomId":"`+roomID+`","attribute":"runs"}`)
	assert.Equal(t, "not your turn", f.hub.lastError(t, "guest"))

	f.send("host", websocket.EventMakeMove, `{"attribute":"sixes"}`)
	assert.Equal(t, "unknown attribute sixes", f.hub.lastError(t, "host"))

	f.send("host", websocket.EventMakeMove, `{"attribute":"Runs"}`)
	g := f.hub.lastGame(t, "guest")
	assert.True(t, g.Revealed)
	require.NotNil(t, g.LastResult)
	require.NotNil(t, g.LastResult.WinnerIndex)
	assert.Equal(t, 0, *g.LastResult.WinnerIndex)

	f.send("host", websocket.EventMakeMove, `{"attribute":"runs"}`)
	assert.Equal(t, "make_move not allowed now", f.hub.lastError(t, "host"))

	f.send("guest", websocket.EventNextTurn, "")
	g = f.hub.lastGame(t, "host")
	assert.False(t, g.Revealed)
	assert.Equal(t, 2, g.Round)
	assert.Equal(t, []int{1, 0}, g.Scores)
	assert.Equal(t, 3, g.Hands[0].Len())
	assert.Equal(t, 1, g.Hands[1].Len())
	assert.Equal(t, 1, g.ActivePlayerIndex, "guest leads after the host's win")

	stored := f.roomOf(t, "host").Game
	assert.Equal(t, 2, stored.Round, "state is persisted")
}

func TestPayloadForAnotherRoomRejected(t *testing.T) {
	f := newFixture(t)
	twoHumans(t, f)

	f.send("host", websocket.EventNextTurn, `"QQQQ"`)
	assert.Equal(t, "not in this room", f.hub.lastError(t, "host"))

	f.send("host", websocket.EventNextTurn, `[1]`)
	assert.Contains(t, f.hub.lastError(t, "host"), "payload")

	f.send("host", "dance", "")
	assert.Equal(t, "unknown event dance", f.hub.lastError(t, "host"))

	f.send("host", websocket.EventDropGame, "")
	assert.Equal(t, "game not started", f.hub.lastError(t, "host"))
}

func TestFinishedGameIsRecorded(t *testing.T) {
	f := newFixture(t)
	roomID := twoHumans(t, f)
	f.setGame(t, roomID, game(card.Hand{mk(1, 100)}, card.Hand{mk(2, 50)}))

	f.send("host", websocket.EventMakeMove, `{"attribute":"runs"}`)
	f.send("host", websocket.EventNextTurn, "")

	g := f.hub.lastGame(t, "guest")
	assert.Equal(t, engine.Finished, g.Status)
	require.NotNil(t, g.Winner)
	assert.Equal(t, 0, *g.Winner)

	results, err := f.rec.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, roomID, results[0].RoomID)
	assert.Equal(t, "host", results[0].WinnerID)
	assert.Equal(t, "Asha", results[0].WinnerName)
	assert.Equal(t, 2, results[0].Rounds)

	// further moves on a finished game are rejected and not recorded again
	f.send("host", websocket.EventNextTurn, "")
	results, _ = f.rec.Recent(context.Background(), 10)
	assert.Len(t, results, 1)
}

func TestDropEndsTwoPlayerGame(t *testing.T) {
	f := newFixture(t)
	roomID := twoHumans(t, f)
	f.setGame(t, roomID, game(card.Hand{mk(1, 1), mk(3, 1)}, card.Hand{mk(2, 1)}))

	f.send("guest", websocket.EventDropGame, "")
	g := f.hub.lastGame(t, "host")
	assert.Equal(t, engine.Finished, g.Status)
	require.NotNil(t, g.Winner)
	assert.Equal(t, 0, *g.Winner)
	assert.Equal(t, 3, g.Hands[0].Len())
}

func TestBuySpySendsPrivateView(t *testing.T) {
	f := newFixture(t)
	roomID := twoHumans(t, f)
	f.setGame(t, roomID, game(
		card.Hand{mk(1, 100), mk(3, 1)},
		card.Hand{mk(2, 50), mk(4, 2)},
	))

	f.send("host", websocket.EventActivateSpy, "")
	assert.Equal(t, "activate_spy not allowed now", f.hub.lastError(t, "host"), "hand too small")

	f.send("host", websocket.EventBuyItem, `{"item":"spy"}`)
	view, ok := f.hub.last("host", websocket.EventSpyView)
	require.True(t, ok)
	hand := view.Data.(card.Hand)
	require.Len(t, hand, 2)
	assert.Equal(t, 1, hand[0].ID)
	assert.Equal(t, 0, f.hub.count("guest", websocket.EventSpyView))

	f.send("host", websocket.EventBuyItem, `{"item":"coins"}`)
	assert.Equal(t, "buy_item not allowed now", f.hub.lastError(t, "host"))
}

func TestStealMoveOnlyForStealer(t *testing.T) {
	f := newFixture(t)
	roomID := twoHumans(t, f)
	g := game(card.Hand{mk(1, 1)}, card.Hand{mk(2, 1), mk(4, 1), mk(6, 1)})
	f.setGame(t, roomID, g)

	f.send("host", websocket.EventBuyItem, `{"item":"power"}`)
	require.True(t, f.hub.lastGame(t, "host").StealState.Active)

	f.send("guest", websocket.EventStealMove, `{"targetIndex":0,"cardIndices":[0]}`)
	assert.Equal(t, "no steal pending for you", f.hub.lastError(t, "guest"))

	f.send("host", websocket.EventStealMove, `{"targetIndex":1,"cardIndices":[2,0,2]}`)
	after := f.hub.lastGame(t, "guest")
	assert.False(t, after.StealState.Active)
	assert.Equal(t, 3, after.Hands[0].Len())
	assert.Equal(t, 1, after.Hands[1].Len())
	assert.Equal(t, 4, after.Hands[1][0].ID)
}

// host against one CPU
func cpuRoom(t *testing.T, f *fixture) string {
	f.send("host", websocket.EventCreateRoom, "")
	created, ok := f.hub.last("host", websocket.EventRoomCreated)
	require.True(t, ok)
	f.send("host", websocket.EventAddCPU, "")
	require.Len(t, f.roomOf(t, "host").Players, 2)
	return created.Data.(string)
}

func TestCPUPlaysItsTurns(t *testing.T) {
	f := newFixture(t)
	roomID := cpuRoom(t, f)
	g := game(
		card.Hand{mk(1, 10), mk(3, 1)},
		card.Hand{
			{ID: 2, Stats: card.Stats{Runs: 50, Wickets: 5}},
			{ID: 4},
		},
	)
	g.ActivePlayerIndex = 1
	room := f.setGame(t, roomID, g)

	f.mgr.StartRoom(room)
	require.Equal(t, 1, f.sched.pending())

	// reveal then settle; the cpu wins and the turn passes to the host
	assert.Equal(t, 2, f.sched.drain(20))

	mid := f.roomOf(t, "host").Game
	assert.Equal(t, 2, mid.Round)
	assert.Equal(t, []int{0, 1}, mid.Scores)
	assert.Equal(t, 0, mid.ActivePlayerIndex)
	assert.False(t, mid.Revealed)
	assert.Equal(t, 2, f.hub.count("host", websocket.EventGameUpdate))

	// host wins the next round and hands the turn back to the cpu
	f.send("host", websocket.EventMakeMove, `{"attribute":"runs"}`)
	assert.Equal(t, 0, f.sched.pending())
	f.send("host", websocket.EventNextTurn, "")
	final := f.roomOf(t, "host").Game
	assert.Equal(t, 3, final.Round)
	assert.Equal(t, []int{1, 1}, final.Scores)
	assert.Equal(t, 1, final.ActivePlayerIndex)
	assert.Equal(t, 1, f.sched.pending(), "cpu owes a reveal")
}

func TestCPURevealsAfterLosingToHuman(t *testing.T) {
	f := newFixture(t)
	roomID := cpuRoom(t, f)
	f.setGame(t, roomID, game(card.Hand{mk(1, 50), mk(3, 1)}, card.Hand{mk(2, 10), mk(4, 2)}))

	f.send("host", websocket.EventMakeMove, `{"attribute":"runs"}`)
	assert.Equal(t, 0, f.sched.pending(), "host owns the revealed round")

	f.send("host", websocket.EventNextTurn, "")
	// host won, so the turn moved on to the cpu
	require.Equal(t, 1, f.sched.pending())
	f.sched.runOne()
	g := f.roomOf(t, "host").Game
	assert.True(t, g.Revealed)
	assert.Equal(t, card.Runs, g.LastResult.Attribute)
	assert.Equal(t, 1, g.ActivePlayerIndex)

	// the cpu settles the round it revealed
	require.Equal(t, 1, f.sched.pending())
	f.sched.runOne()
	g = f.roomOf(t, "host").Game
	assert.False(t, g.Revealed)
	assert.Equal(t, 3, g.Round)
	assert.Equal(t, 0, g.ActivePlayerIndex)
}

func TestStaleCPUStepIsSkipped(t *testing.T) {
	f := newFixture(t)
	roomID := cpuRoom(t, f)
	g := game(card.Hand{mk(1, 10)}, card.Hand{mk(2, 50), mk(4, 0)})
	g.ActivePlayerIndex = 1
	room := f.setGame(t, roomID, g)

	f.mgr.StartRoom(room)
	require.Equal(t, 1, f.sched.pending())

	_, _, err := f.svc.Update(context.Background(), roomID, func(r *lobby.Room) bool {
		r.Game.Round = 7
		return true
	})
	require.NoError(t, err)

	f.sched.runOne()
	assert.Equal(t, 0, f.sched.pending())
	assert.Equal(t, 0, f.hub.count("host", websocket.EventGameUpdate))
	assert.False(t, f.roomOf(t, "host").Game.Revealed)
}

func TestCPUStealsFromLargestHand(t *testing.T) {
	f := newFixture(t)
	f.send("host", websocket.EventCreateRoom, "")
	created, _ := f.hub.last("host", websocket.EventRoomCreated)
	roomID := created.Data.(string)
	f.send("guest", websocket.EventJoinRoom, `{"roomId":"`+roomID+`"}`)
	f.send("host", websocket.EventAddCPU, "")

	g := game(
		card.Hand{mk(1, 0), mk(2, 0), mk(3, 0)},
		card.Hand{mk(10, 0), mk(11, 0), mk(12, 0), mk(13, 0), mk(14, 0)},
		card.Hand{mk(20, 0)},
	)
	g.StealState = engine.StealState{Active: true, Stealer: 2, Count: engine.StealCount}
	room := f.setGame(t, roomID, g)

	f.mgr.StartRoom(room)
	require.Equal(t, 1, f.sched.pending())
	f.sched.runOne()

	after := f.roomOf(t, "host").Game
	assert.False(t, after.StealState.Active)
	assert.Equal(t, 3, after.Hands[0].Len())
	assert.Equal(t, []int{12, 13, 14}, ids(after.Hands[1]))
	assert.Equal(t, []int{20, 11, 10}, ids(after.Hands[2]))
	assert.Equal(t, 0, f.sched.pending(), "host is active")
}

func TestPickSteal(t *testing.T) {
	g := game(card.Hand{mk(1, 0), mk(2, 0)}, card.Hand{mk(3, 0)}, card.Hand{mk(4, 0), mk(5, 0)})
	g.StealState = engine.StealState{Active: true, Stealer: 1, Count: 2}
	req := pickSteal(g, 1)
	assert.Equal(t, 0, req.TargetIndex, "earliest seat wins a tie")
	assert.Equal(t, []int{0, 1}, req.CardIndices)

	g.DroppedPlayers[0] = true
	g.StealState.Count = 5
	req = pickSteal(g, 1)
	assert.Equal(t, 2, req.TargetIndex)
	assert.Equal(t, []int{0, 1}, req.CardIndices, "never more than the hand holds")
}

func TestNextCPUAction(t *testing.T) {
	g := game(card.Hand{mk(1, 0)}, card.Hand{mk(2, 0)})
	g.PlayerIDs = []string{"host", lobby.CPUPrefix + "1"}

	assert.Equal(t, cpuNone, nextCPUAction(g).action)

	g.ActivePlayerIndex = 1
	assert.Equal(t, cpuReveal, nextCPUAction(g).action)
	g.Revealed = true
	assert.Equal(t, cpuSettle, nextCPUAction(g).action)

	g.Revealed = false
	g.StealState = engine.StealState{Active: true, Stealer: 0, Count: 2}
	assert.Equal(t, cpuNone, nextCPUAction(g).action, "human steal blocks the cpu")

	g.Status = engine.Finished
	g.StealState = engine.StealState{}
	assert.Equal(t, cpuNone, nextCPUAction(g).action)
}

func TestDisconnectLeavesRoom(t *testing.T) {
	f := newFixture(t)
	roomID := twoHumans(t, f)

	f.mgr.HandleDisconnect("guest")
	room, err := f.svc.GetRoom(context.Background(), roomID)
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, []string{"host"}, room.Humans())

	f.send("host", websocket.EventLeaveRoom, "")
	room, err = f.svc.GetRoom(context.Background(), roomID)
	require.NoError(t, err)
	assert.Nil(t, room)
}

func ids(h card.Hand) []int {
	out := make([]int, 0, len(h))
	for _, c := range h {
		out = append(out, c.ID)
	}
	return out
}
