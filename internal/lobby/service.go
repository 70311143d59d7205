package lobby

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"CricketTrumps/internal/game/card"
	"CricketTrumps/internal/game/dealer"
	"CricketTrumps/internal/game/engine"
	"CricketTrumps/internal/utils"
	"CricketTrumps/internal/websocket"

	"github.com/google/uuid"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 4
	codeAttempts = 32
)

// Service is the room directory. All changes to one room, game state
// included, run under that room's lock.
type Service struct {
	repo Repo
	hub  HubBroadcaster
	deck []*card.Card

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	rnd   *rand.Rand

	now           func() time.Time
	OnGameStarted func(*Room) // called after StartGame with the fresh room
}

type HubBroadcaster interface {
	BroadcastToPlayers(addrs []string, msg websocket.OutgoingMessage)
	BroadcastAll(msg websocket.OutgoingMessage)
}

// NewService builds a directory over repo. seed drives room codes and deck
// shuffles; 0 picks a time based seed.
func NewService(repo Repo, hub HubBroadcaster, seed int64) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{
		repo:  repo,
		hub:   hub,
		deck:  card.Catalog(),
		locks: make(map[string]*sync.Mutex),
		rnd:   rand.New(rand.NewSource(seed)),
		now:   time.Now,
	}
}

func (s *Service) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// forget drops the lock of a deleted room. Callers still waiting on it find
// the room gone.
func (s *Service) forget(id string) {
	s.mu.Lock()
	delete(s.locks, id)
	s.mu.Unlock()
}

func (s *Service) newCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[s.rnd.Intn(len(codeAlphabet))]
	}
	return string(b)
}

func (s *Service) newDealer() *dealer.Dealer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dealer.NewDealer(s.rnd.Int63())
}

// Update loads a room, applies fn and saves the room if fn reports a change.
// A missing room yields (nil, false, nil).
func (s *Service) Update(ctx context.Context, id string, fn func(*Room) bool) (*Room, bool, error) {
	unlock := s.lock(id)
	defer unlock()
	return s.update(ctx, id, fn)
}

func (s *Service) update(ctx context.Context, id string, fn func(*Room) bool) (*Room, bool, error) {
	room, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrRoomNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if !fn(room) {
		return room, false, nil
	}
	if err := s.repo.Save(ctx, room); err != nil {
		return nil, false, err
	}
	return room, true, nil
}

// GetRoom returns nil for an unknown room.
func (s *Service) GetRoom(ctx context.Context, id string) (*Room, error) {
	room, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrRoomNotFound) {
		return nil, nil
	}
	return room, err
}

// RoomOf returns the room a participant is seated in, or "".
func (s *Service) RoomOf(ctx context.Context, id string) (string, error) {
	return s.repo.RoomOf(ctx, id)
}

// CreateRoom opens a lobby with the host as its only player. A host already
// seated elsewhere leaves that room first.
func (s *Service) CreateRoom(ctx context.Context, hostID, hostName string) (string, error) {
	if _, err := s.LeaveRoom(ctx, hostID); err != nil {
		return "", err
	}

	for i := 0; i < codeAttempts; i++ {
		id := s.newCode()
		unlock := s.lock(id)
		_, err := s.repo.Get(ctx, id)
		if err == nil {
			unlock()
			continue
		}
		if !errors.Is(err, ErrRoomNotFound) {
			unlock()
			return "", err
		}
		room := &Room{
			ID:        id,
			Players:   []Participant{{ID: hostID, Name: hostName}},
			Status:    StatusLobby,
			CreatedAt: s.now(),
		}
		err = s.repo.Save(ctx, room)
		unlock()
		if err != nil {
			return "", err
		}

		utils.Log.Info("room created", "room", id, "host", hostID)
		s.hub.BroadcastToPlayers([]string{hostID}, websocket.OutgoingMessage{Event: websocket.EventRoomCreated, Data: id})
		s.broadcastRooms(ctx)
		return id, nil
	}
	return "", fmt.Errorf("no free room code after %d attempts", codeAttempts)
}

func canSeat(room *Room) bool {
	return room.Status == StatusLobby && len(room.Players) < MaxPlayers
}

// JoinRoom seats a participant. It fails for a missing, full or started room.
// Joining a room one is already in succeeds without changes.
func (s *Service) JoinRoom(ctx context.Context, roomID, id, name string) (bool, error) {
	prev, err := s.repo.RoomOf(ctx, id)
	if err != nil {
		return false, err
	}
	if prev != "" && prev != roomID {
		if _, err := s.LeaveRoom(ctx, id); err != nil {
			return false, err
		}
	}

	joined := false
	room, _, err := s.Update(ctx, roomID, func(r *Room) bool {
		if r.Has(id) {
			joined = true
			return false
		}
		if !canSeat(r) {
			return false
		}
		r.Players = append(r.Players, Participant{ID: id, Name: name})
		joined = true
		return true
	})
	if err != nil || !joined {
		return false, err
	}

	utils.Log.Info("player joined", "room", roomID, "player", id, "players", len(room.Players))
	s.notifyMembers(room)
	s.broadcastRooms(ctx)
	return true, nil
}

// AddCpu seats a computer player under the same rules as JoinRoom.
func (s *Service) AddCpu(ctx context.Context, roomID string) (bool, error) {
	room, ok, err := s.Update(ctx, roomID, func(r *Room) bool {
		if !canSeat(r) {
			return false
		}
		cpus := len(r.Players) - len(r.Humans())
		r.Players = append(r.Players, Participant{
			ID:   CPUPrefix + uuid.NewString()[:8],
			Name: fmt.Sprintf("CPU %d", cpus+1),
		})
		return true
	})
	if err != nil || !ok {
		return false, err
	}

	utils.Log.Info("cpu added", "room", roomID, "players", len(room.Players))
	s.notifyMembers(room)
	s.broadcastRooms(ctx)
	return true, nil
}

// StartGame deals a new game for the room's current players in seat order.
// It returns nil unless the room is a lobby with at least MinPlayers.
func (s *Service) StartGame(ctx context.Context, roomID string) (*engine.GameState, error) {
	room, ok, err := s.Update(ctx, roomID, func(r *Room) bool {
		if r.Status != StatusLobby || len(r.Players) < MinPlayers {
			return false
		}
		g := engine.InitializeGame(s.newDealer(), s.deck, len(r.Players), r.PlayerNames())
		g.PlayerIDs = r.PlayerIDs()
		r.Game = g
		r.Status = StatusPlaying
		return true
	})
	if err != nil || !ok {
		return nil, err
	}

	utils.Log.Info("game started", "room", roomID, "players", len(room.Players))
	s.broadcastRooms(ctx)
	if s.OnGameStarted != nil {
		s.OnGameStarted(room)
	}
	return room.Game, nil
}

// LeaveRoom removes a participant from whichever room holds them and returns
// that room's id, or "". A room is deleted once no human players are left,
// even if CPU seats remain. Leaving a running game does not drop the seat.
func (s *Service) LeaveRoom(ctx context.Context, id string) (string, error) {
	roomID, err := s.repo.RoomOf(ctx, id)
	if err != nil || roomID == "" {
		return "", err
	}

	unlock := s.lock(roomID)
	room, changed, err := s.update(ctx, roomID, func(r *Room) bool {
		for i, p := range r.Players {
			if p.ID == id {
				r.Players = append(r.Players[:i], r.Players[i+1:]...)
				return true
			}
		}
		return false
	})
	if err == nil {
		err = s.repo.Unbind(ctx, id, roomID)
	}
	if err == nil && room != nil && len(room.Humans()) == 0 {
		err = s.repo.Delete(ctx, roomID)
		if err == nil {
			s.forget(roomID)
		}
		room = nil
		utils.Log.Info("room closed", "room", roomID)
	}
	unlock()
	if err != nil {
		return "", err
	}

	if changed && room != nil {
		s.notifyMembers(room)
	}
	s.broadcastRooms(ctx)
	return roomID, nil
}

// PublicRooms lists rooms still waiting in the lobby.
func (s *Service) PublicRooms(ctx context.Context) ([]RoomSummary, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		if r.Status == StatusLobby {
			out = append(out, RoomSummary{ID: r.ID, Players: len(r.Players)})
		}
	}
	return out, nil
}

// SuggestCPU notifies lobbies that have waited longer than after, once per
// room, that a computer player could fill the table.
func (s *Service) SuggestCPU(ctx context.Context, after time.Duration) ([]string, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := s.now().Add(-after)
	var out []string
	for _, r := range rooms {
		if r.Status != StatusLobby || r.CPUSuggested || r.CreatedAt.After(cutoff) {
			continue
		}
		room, ok, err := s.Update(ctx, r.ID, func(r *Room) bool {
			if r.Status != StatusLobby || r.CPUSuggested {
				return false
			}
			r.CPUSuggested = true
			return true
		})
		if err != nil {
			return out, err
		}
		if !ok {
			continue
		}
		s.hub.BroadcastToPlayers(room.Humans(), websocket.OutgoingMessage{Event: websocket.EventSuggestCPU, Data: room.ID})
		out = append(out, room.ID)
	}
	return out, nil
}

func (s *Service) notifyMembers(room *Room) {
	s.hub.BroadcastToPlayers(room.Humans(), websocket.OutgoingMessage{
		Event: websocket.EventPlayerJoined,
		Data:  len(room.Players),
	})
}

func (s *Service) broadcastRooms(ctx context.Context) {
	list, err := s.PublicRooms(ctx)
	if err != nil {
		utils.Log.Error("list rooms", "err", err)
		return
	}
	s.hub.BroadcastAll(websocket.OutgoingMessage{Event: websocket.EventRoomsList, Data: list})
}
