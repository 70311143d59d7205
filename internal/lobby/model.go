package lobby

import (
	"strings"
	"time"

	"CricketTrumps/internal/game/engine"
)

// Status of a room
type Status string

const (
	StatusLobby   Status = "LOBBY"
	StatusPlaying Status = "PLAYING"
)

const (
	MaxPlayers = 4
	MinPlayers = 2
	// CPUPrefix tags synthetic participants so turn logic can recognise them.
	CPUPrefix = "CPU-"
)

// IsCPU reports whether a participant id belongs to a computer player.
func IsCPU(id string) bool { return strings.HasPrefix(id, CPUPrefix) }

// Participant is one seat in a room.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room is a directory entry. Game is nil until the room starts playing.
type Room struct {
	ID           string            `json:"id"`
	Players      []Participant     `json:"players"`
	Game         *engine.GameState `json:"game"`
	Status       Status            `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	CPUSuggested bool              `json:"cpuSuggested"`
}

func (r *Room) PlayerIDs() []string {
	out := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, p.ID)
	}
	return out
}

func (r *Room) PlayerNames() []string {
	out := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, p.Name)
	}
	return out
}

// Humans lists participant ids that are not CPUs.
func (r *Room) Humans() []string {
	out := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		if !IsCPU(p.ID) {
			out = append(out, p.ID)
		}
	}
	return out
}

func (r *Room) Has(id string) bool {
	for _, p := range r.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// RoomSummary is an entry of the public room list.
type RoomSummary struct {
	ID      string `json:"id"`
	Players int    `json:"players"`
}

// NameRequest is the optional body of POST /rooms and POST /rooms/:id/join.
// An empty name falls back to the session's display name.
type NameRequest struct {
	Name string `json:"name" binding:"max=32"`
}

// JoinResponse reports whether a join or CPU add went through.
type JoinResponse struct {
	OK      bool   `json:"ok"`
	RoomID  string `json:"roomId"`
	Players int    `json:"players"`
}
