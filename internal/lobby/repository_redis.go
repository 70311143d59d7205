package lobby

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisRepo stores rooms in Redis. Every save refreshes ttl so abandoned
// rooms eventually expire; ttl <= 0 keeps them forever.
func NewRedisRepo(rdb *redis.Client, ttl time.Duration) Repo {
	return &redisRepo{rdb: rdb, ttl: ttl}
}

// key layout:
//
//	string: trumps:room:{id}       -> room JSON (game snapshot included)
//	set   : trumps:rooms           -> room ids
//	string: trumps:player:{id}     -> room id
const roomIndexKey = "trumps:rooms"

func roomKey(id string) string {
	return fmt.Sprintf("trumps:room:%s", id)
}

func playerKey(id string) string {
	return fmt.Sprintf("trumps:player:%s", id)
}

// delete the index entry only while it still names the given room
var unbindScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

func (r *redisRepo) expiry() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	return r.ttl
}

func (r *redisRepo) Save(ctx context.Context, room *Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}
	p := r.rdb.Pipeline()
	p.Set(ctx, roomKey(room.ID), data, r.expiry())
	p.SAdd(ctx, roomIndexKey, room.ID)
	for _, pl := range room.Players {
		p.Set(ctx, playerKey(pl.ID), room.ID, r.expiry())
	}
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Room, error) {
	data, err := r.rdb.Get(ctx, roomKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	var room Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("decode room %s: %w", id, err)
	}
	return &room, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	room, err := r.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrRoomNotFound) {
		return err
	}
	p := r.rdb.Pipeline()
	p.Del(ctx, roomKey(id))
	p.SRem(ctx, roomIndexKey, id)
	if room != nil {
		for _, pl := range room.Players {
			unbindScript.Eval(ctx, p, []string{playerKey(pl.ID)}, id)
		}
	}
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) List(ctx context.Context) ([]*Room, error) {
	ids, err := r.rdb.SMembers(ctx, roomIndexKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	out := make([]*Room, 0, len(ids))
	for _, id := range ids {
		room, err := r.Get(ctx, id)
		if errors.Is(err, ErrRoomNotFound) {
			// expired room: drop the stale index entry
			_ = r.rdb.SRem(ctx, roomIndexKey, id).Err()
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, nil
}

func (r *redisRepo) RoomOf(ctx context.Context, playerID string) (string, error) {
	id, err := r.rdb.Get(ctx, playerKey(playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return id, err
}

func (r *redisRepo) Unbind(ctx context.Context, playerID, roomID string) error {
	return unbindScript.Run(ctx, r.rdb, []string{playerKey(playerID)}, roomID).Err()
}
