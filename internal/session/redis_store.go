package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore cookie 中只保存会话 ID，内容存在 Redis
type RedisStore struct {
	Options
	client *redis.Client
}

// NewRedisStore 创建 Redis 会话存储
func NewRedisStore(client *redis.Client, opts Options) *RedisStore {
	return &RedisStore{Options: opts, client: client}
}

func key(id string) string { return redisKeyPrefix + id }

func (s *RedisStore) Load(r *http.Request) (*Data, error) {
	ck, err := r.Cookie(s.CookieName)
	if err != nil || ck.Value == "" {
		return &Data{}, nil
	}
	if _, err := uuid.Parse(ck.Value); err != nil {
		return &Data{}, nil
	}
	raw, err := s.client.Get(r.Context(), key(ck.Value)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Data{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return &Data{}, nil
	}
	d.ID = ck.Value
	return &d, nil
}

func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, d *Data) error {
	ctx := r.Context()
	if d.renew {
		// 旧 ID 作废，避免登录前的 cookie 被沿用
		if d.ID != "" {
			if err := s.client.Del(ctx, key(d.ID)).Err(); err != nil {
				return fmt.Errorf("redis del session: %w", err)
			}
			if d.Empty() {
				http.SetCookie(w, s.cookie("", -1))
			}
		}
		d.ID = ""
		d.renew = false
	}
	if d.Empty() {
		if d.ID == "" {
			return nil
		}
		if err := s.client.Del(ctx, key(d.ID)).Err(); err != nil {
			return fmt.Errorf("redis del session: %w", err)
		}
		d.ID = ""
		http.SetCookie(w, s.cookie("", -1))
		return nil
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(d.ID), payload, s.MaxAge).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	http.SetCookie(w, s.cookie(d.ID, int(s.MaxAge.Seconds())))
	return nil
}
