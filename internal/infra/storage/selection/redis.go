package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

// RedisStore хранилище сессий выбора дат в Redis
// Каждая сессия живет ttl с момента последнего изменения
type RedisStore struct {
	rdb      *redis.Client
	ttl      time.Duration
	location *time.Location
}

// NewRedisStore создает хранилище поверх готового клиента Redis
func NewRedisStore(rdb *redis.Client, ttl time.Duration, loc *time.Location) *RedisStore {
	if ttl <= 0 {
		ttl = domain.DefaultSelectionTTL
	}
	if loc == nil {
		loc = time.UTC
	}
	return &RedisStore{rdb: rdb, ttl: ttl, location: loc}
}

// Create сохраняет новую сессию
func (s *RedisStore) Create(ctx context.Context, session *domain.SelectionSession) error {
	data, err := encode(session)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, selectionKey(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Create - set: %v", ErrStorage, err)
	}
	return nil
}

// Get получает сессию по ID
func (s *RedisStore) Get(ctx context.Context, id string) (*domain.SelectionSession, error) {
	data, err := s.rdb.Get(ctx, selectionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSelectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrStorage, err)
	}

	return decode(id, data, s.location)
}

// releaseScript удаляет ключ отправки, только если он все еще принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Save перезаписывает существующую сессию и продлевает ее TTL
// Запись проходит только если в Redis лежит та же версия, что была прочитана (WATCH)
// Истекшая сессия не воскрешается: возвращается ErrSelectionNotFound
func (s *RedisStore) Save(ctx context.Context, session *domain.SelectionSession) error {
	next := nextVersion(session)
	data, err := encode(next)
	if err != nil {
		return err
	}

	key := selectionKey(session.ID)

	err = s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSelectionNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Save - get: %v", ErrStorage, err)
		}

		current, err := decode(session.ID, raw, s.location)
		if err != nil {
			return err
		}
		if current.Version != session.Version {
			return ErrSelectionConflict
		}

		var setCmd *redis.BoolCmd
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			setCmd = pipe.SetXX(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if !setCmd.Val() {
			return ErrSelectionNotFound
		}
		return nil
	}, key)

	switch {
	case err == nil:
		session.Version = next.Version
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return ErrSelectionConflict
	case errors.Is(err, ErrSelectionNotFound), errors.Is(err, ErrSelectionConflict),
		errors.Is(err, ErrDecode), errors.Is(err, ErrStorage):
		return err
	default:
		return fmt.Errorf("%w: Save - exec: %v", ErrStorage, err)
	}
}

// AcquireInFlight пытается занять ключ отправки (SET NX PX)
// Возвращает токен владельца; ok = false, если по этому ключу уже идет отправка
func (s *RedisStore) AcquireInFlight(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if ttl <= 0 {
		ttl = domain.DefaultInFlightTTL
	}

	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, inFlightKey(key), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("%w: AcquireInFlight - set nx: %v", ErrStorage, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// ReleaseInFlight освобождает ключ отправки, если он занят тем же токеном
// Чужой ключ (после истечения TTL его мог занять другой запрос) не трогается
func (s *RedisStore) ReleaseInFlight(ctx context.Context, key, token string) error {
	err := releaseScript.Run(ctx, s.rdb, []string{inFlightKey(key)}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: ReleaseInFlight - eval: %v", ErrStorage, err)
	}
	return nil
}

// NewRedisClient подключается к Redis по URL и проверяет соединение
func NewRedisClient(ctx context.Context, redisURL string, poolSize int) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url: %v", ErrStorage, err)
	}

	if poolSize > 0 {
		opt.PoolSize = poolSize
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrStorage, err)
	}

	return client, nil
}
