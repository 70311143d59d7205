package manager

import (
	"context"
	"time"

	"CricketTrumps/internal/game/card"
	"CricketTrumps/internal/game/engine"
	"CricketTrumps/internal/game/history"
	"CricketTrumps/internal/lobby"
	"CricketTrumps/internal/utils"
	"CricketTrumps/internal/websocket"
)

const requestTimeout = 5 * time.Second

// GameManager routes socket requests to the lobby and to each room's game.
// Game changes go through lobby.Service.Update, so one room sees one writer.
type GameManager struct {
	svc      *lobby.Service
	hub      websocket.HubInterface
	recorder history.Recorder
	cpuDelay time.Duration

	now   func() time.Time
	after func(time.Duration, func())
}

func NewGameManager(svc *lobby.Service, hub websocket.HubInterface, recorder history.Recorder, cpuDelay time.Duration) *GameManager {
	return &GameManager{
		svc:      svc,
		hub:      hub,
		recorder: recorder,
		cpuDelay: cpuDelay,
		now:      time.Now,
		after:    func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// StartRoom announces a freshly dealt game and hands the first turn to a CPU
// if one holds it. Wire it to lobby.Service.OnGameStarted.
func (m *GameManager) StartRoom(room *lobby.Room) {
	if room.Game == nil {
		return
	}
	m.hub.BroadcastToPlayers(room.Humans(), websocket.OutgoingMessage{
		Event: websocket.EventGameStarted,
		Data:  room.Game,
	})
	m.scheduleCPU(room)
}

// HandlePlayerMessage is the hub's OnIncoming.
func (m *GameManager) HandlePlayerMessage(msg websocket.IncomingMessage) {
	req, err := websocket.ParseRequest(msg)
	if err != nil {
		m.reject(msg.From, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch req.Event {
	case websocket.EventCreateRoom:
		m.createRoom(ctx, req)
	case websocket.EventJoinRoom:
		m.joinRoom(ctx, req)
	case websocket.EventGetRooms:
		m.sendRooms(ctx, req.From)
	case websocket.EventAddCPU:
		m.addCPU(ctx, req)
	case websocket.EventStartGame:
		m.startGame(ctx, req)
	case websocket.EventLeaveRoom:
		m.leave(ctx, req.From)

	case websocket.EventMakeMove,
		websocket.EventNextTurn,
		websocket.EventDropGame,
		websocket.EventStealMove,
		websocket.EventActivateSpy,
		websocket.EventBuyItem:
		m.play(ctx, req)

	default:
		m.reject(req.From, "unknown event "+req.Event)
	}
}

// HandleDisconnect is the hub's OnDisconnect. The seat in a running game
// is kept; only the room membership goes.
func (m *GameManager) HandleDisconnect(addr string) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	m.leave(ctx, addr)
}

func (m *GameManager) reject(to, text string) {
	m.hub.SendToPlayer(to, websocket.ErrorMessage(text))
}

func (m *GameManager) failed(to, op string, err error) {
	utils.Log.Error("request failed", "op", op, "player", to, "err", err)
	m.reject(to, "internal error")
}

func (m *GameManager) createRoom(ctx context.Context, req websocket.Request) {
	if _, err := m.svc.CreateRoom(ctx, req.From, req.Name); err != nil {
		m.failed(req.From, req.Event, err)
	}
}

func (m *GameManager) joinRoom(ctx context.Context, req websocket.Request) {
	ok, err := m.svc.JoinRoom(ctx, req.RoomID, req.From, req.Name)
	if err != nil {
		m.failed(req.From, req.Event, err)
		return
	}
	if !ok {
		m.reject(req.From, "Room not found or full")
	}
}

func (m *GameManager) sendRooms(ctx context.Context, to string) {
	rooms, err := m.svc.PublicRooms(ctx)
	if err != nil {
		m.failed(to, websocket.EventGetRooms, err)
		return
	}
	m.hub.SendToPlayer(to, websocket.OutgoingMessage{Event: websocket.EventRoomsList, Data: rooms})
}

// memberRoom returns the room req.From sits in. A room id in the payload
// must match it.
func (m *GameManager) memberRoom(ctx context.Context, req websocket.Request) (string, bool) {
	roomID, err := m.svc.RoomOf(ctx, req.From)
	if err != nil {
		m.failed(req.From, req.Event, err)
		return "", false
	}
	if roomID == "" || (req.RoomID != "" && req.RoomID != roomID) {
		m.reject(req.From, "not in this room")
		return "", false
	}
	return roomID, true
}

func (m *GameManager) addCPU(ctx context.Context, req websocket.Request) {
	roomID, ok := m.memberRoom(ctx, req)
	if !ok {
		return
	}
	added, err := m.svc.AddCpu(ctx, roomID)
	if err != nil {
		m.failed(req.From, req.Event, err)
		return
	}
	if !added {
		m.reject(req.From, "Room not found or full")
	}
}

func (m *GameManager) startGame(ctx context.Context, req websocket.Request) {
	roomID, ok := m.memberRoom(ctx, req)
	if !ok {
		return
	}
	room, err := m.svc.GetRoom(ctx, roomID)
	if err != nil {
		m.failed(req.From, req.Event, err)
		return
	}
	if room == nil || len(room.Players) == 0 || room.Players[0].ID != req.From {
		m.reject(req.From, "only the host can start the game")
		return
	}
	game, err := m.svc.StartGame(ctx, roomID)
	if err != nil {
		m.failed(req.From, req.Event, err)
		return
	}
	if game == nil {
		m.reject(req.From, "game cannot start")
	}
}

func (m *GameManager) leave(ctx context.Context, addr string) {
	if _, err := m.svc.LeaveRoom(ctx, addr); err != nil {
		utils.Log.Error("leave room", "player", addr, "err", err)
	}
}

// play applies one in-game action for the sender's seat.
func (m *GameManager) play(ctx context.Context, req websocket.Request) {
	roomID, ok := m.memberRoom(ctx, req)
	if !ok {
		return
	}

	reason := ""
	var finished bool
	room, changed, err := m.svc.Update(ctx, roomID, func(r *lobby.Room) bool {
		g := r.Game
		if g == nil {
			reason = "game not started"
			return false
		}
		seat := g.IndexOf(req.From)
		if seat < 0 {
			reason = "no seat in this game"
			return false
		}
		wasPlaying := g.Status == engine.Playing
		applied := apply(g, seat, req, &reason)
		finished = wasPlaying && g.Status == engine.Finished
		return applied
	})
	if err != nil {
		m.failed(req.From, req.Event, err)
		return
	}
	if room == nil {
		m.reject(req.From, "room closed")
		return
	}
	if !changed {
		if reason == "" {
			reason = req.Event + " not allowed now"
		}
		m.reject(req.From, reason)
		return
	}
	m.afterChange(ctx, room, finished)
}

func apply(g *engine.GameState, seat int, req websocket.Request, reason *string) bool {
	switch req.Event {
	case websocket.EventMakeMove:
		if seat != g.ActivePlayerIndex {
			*reason = "not your turn"
			return false
		}
		attr, ok := card.ParseAttribute(req.Attribute)
		if !ok {
			*reason = "unknown attribute " + req.Attribute
			return false
		}
		return g.Reveal(attr)
	case websocket.EventNextTurn:
		return g.SettleTurn()
	case websocket.EventDropGame:
		return g.DropPlayer(seat)
	case websocket.EventStealMove:
		if !g.StealState.Active || g.StealState.Stealer != seat {
			*reason = "no steal pending for you"
			return false
		}
		return g.HandleSteal(engine.StealRequest{TargetIndex: req.TargetIndex, CardIndices: req.CardIndices})
	case websocket.EventActivateSpy:
		return g.ActivateSpy(seat)
	case websocket.EventBuyItem:
		return g.ApplyShopEffect(seat, engine.ShopEffect(req.Item))
	}
	return false
}

// afterChange pushes the new state to the room, the private spy view to its
// maker, records a finished match and lines up the next CPU step.
func (m *GameManager) afterChange(ctx context.Context, room *lobby.Room, finished bool) {
	g := room.Game
	m.hub.BroadcastToPlayers(room.Humans(), websocket.OutgoingMessage{Event: websocket.EventGameUpdate, Data: g})

	if g.SpyState.Active {
		maker := g.SpyState.MakerIndex
		if maker >= 0 && maker < len(g.PlayerIDs) && !lobby.IsCPU(g.PlayerIDs[maker]) {
			m.hub.SendToPlayer(g.PlayerIDs[maker], websocket.OutgoingMessage{
				Event: websocket.EventSpyView,
				Data:  g.SpyView(maker),
			})
		}
	}

	if finished {
		m.record(ctx, room)
		return
	}
	m.scheduleCPU(room)
}

func (m *GameManager) record(ctx context.Context, room *lobby.Room) {
	res, ok := history.FromGame(room.ID, room.Game, m.now())
	if !ok {
		return
	}
	utils.Log.Info("game finished", "room", room.ID, "winner", res.WinnerName, "rounds", res.Rounds)
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Record(ctx, res); err != nil {
		utils.Log.Error("record match", "room", room.ID, "err", err)
	}
}
