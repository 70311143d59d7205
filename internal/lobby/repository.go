package lobby

import (
	"context"
	"errors"
)

var ErrRoomNotFound = errors.New("room not found")

// Repo stores rooms and the participant -> room index.
type Repo interface {
	// Save writes the room and points each of its players at it.
	Save(ctx context.Context, room *Room) error
	// Get returns ErrRoomNotFound for a missing room.
	Get(ctx context.Context, id string) (*Room, error)
	// Delete removes the room and the index entries of its remaining players.
	Delete(ctx context.Context, id string) error
	// List returns every stored room.
	List(ctx context.Context) ([]*Room, error)
	// RoomOf returns the room a participant is in, or "".
	RoomOf(ctx context.Context, playerID string) (string, error)
	// Unbind clears the index entry of playerID if it still points at roomID.
	Unbind(ctx context.Context, playerID, roomID string) error
}
