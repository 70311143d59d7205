package lobby

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// memRepo keeps encoded rooms so readers never share state with a writer.
type memRepo struct {
	mu      sync.Mutex
	rooms   map[string][]byte // id -> room JSON
	players map[string]string // participant -> room id
}

func NewMemoryRepo() Repo {
	return &memRepo{
		rooms:   make(map[string][]byte),
		players: make(map[string]string),
	}
}

func (m *memRepo) Save(ctx context.Context, room *Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[room.ID] = data
	for _, p := range room.Players {
		m.players[p.ID] = room.ID
	}
	return nil
}

func (m *memRepo) Get(ctx context.Context, id string) (*Room, error) {
	m.mu.Lock()
	data, ok := m.rooms[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrRoomNotFound
	}
	var room Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, id)
	for p, r := range m.players {
		if r == id {
			delete(m.players, p)
		}
	}
	return nil
}

func (m *memRepo) List(ctx context.Context) ([]*Room, error) {
	m.mu.Lock()
	ids := make([]string, 0, len(m.rooms))
	for id := range m.rooms {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	sort.Strings(ids)

	out := make([]*Room, 0, len(ids))
	for _, id := range ids {
		room, err := m.Get(ctx, id)
		if err == ErrRoomNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, nil
}

func (m *memRepo) RoomOf(ctx context.Context, playerID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.players[playerID], nil
}

func (m *memRepo) Unbind(ctx context.Context, playerID, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.players[playerID] == roomID {
		delete(m.players, playerID)
	}
	return nil
}
