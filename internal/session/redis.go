package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis: a hash per session for identity and
// a list per session for pending flash messages.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore constructs a RedisStore on the given client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func sessionKey(id string) string {
	return "session:" + id
}

func flashKey(id string) string {
	return "session:" + id + ":flashes"
}

// Create registers a fresh anonymous session.
func (s *RedisStore) Create(ctx context.Context) (*Session, error) {
	id := uuid.NewString()
	key := sessionKey(id)
	if err := s.rdb.HSet(ctx, key, "email", "").Err(); err != nil {
		return nil, err
	}
	if err := s.rdb.Expire(ctx, key, TTL).Err(); err != nil {
		return nil, err
	}
	return &Session{ID: id}, nil
}

// Get loads a session by ID, returning ErrNotFound when it is missing or
// expired.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	vals, err := s.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, ErrNotFound
	}
	return &Session{ID: id, Email: vals["email"]}, nil
}

// SetIdentity attaches the given email to the session and refreshes its
// TTL.
func (s *RedisStore) SetIdentity(ctx context.Context, id, email string) error {
	key := sessionKey(id)
	exists, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	if err := s.rdb.HSet(ctx, key, "email", email).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, TTL).Err()
}

// ClearIdentity detaches any identity from the session, returning it to
// the anonymous state. Clearing an anonymous session is a no-op.
func (s *RedisStore) ClearIdentity(ctx context.Context, id string) error {
	err := s.SetIdentity(ctx, id, "")
	if err == ErrNotFound {
		return nil
	}
	return err
}

// AddFlash queues a one-shot message for the next rendered page.
func (s *RedisStore) AddFlash(ctx context.Context, id, message string) error {
	key := flashKey(id)
	if err := s.rdb.RPush(ctx, key, message).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, TTL).Err()
}

// PopFlashes atomically drains and returns all pending flash messages.
func (s *RedisStore) PopFlashes(ctx context.Context, id string) ([]string, error) {
	key := flashKey(id)
	pipe := s.rdb.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return rangeCmd.Val(), nil
}

// Destroy removes the session and any pending flashes.
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id), flashKey(id)).Err()
}
