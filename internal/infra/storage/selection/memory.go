package selection

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

type memoryEntry struct {
	data      []byte
	version   int64
	expiresAt time.Time
}

type inFlightEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryStore хранилище сессий в памяти процесса (redis.enabled = false)
// Хранит тот же сериализованный формат, что и RedisStore
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	location *time.Location
	now      func() time.Time

	sessions map[string]memoryEntry
	inFlight map[string]inFlightEntry
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore(ttl time.Duration, loc *time.Location) *MemoryStore {
	if ttl <= 0 {
		ttl = domain.DefaultSelectionTTL
	}
	if loc == nil {
		loc = time.UTC
	}
	return &MemoryStore{
		ttl:      ttl,
		location: loc,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
		inFlight: make(map[string]inFlightEntry),
	}
}

func (s *MemoryStore) Create(ctx context.Context, session *domain.SelectionSession) error {
	data, err := encode(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = memoryEntry{data: data, version: session.Version, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.SelectionSession, error) {
	s.mu.Lock()
	entry, ok := s.lookup(id)
	s.mu.Unlock()

	if !ok {
		return nil, ErrSelectionNotFound
	}
	return decode(id, entry.data, s.location)
}

func (s *MemoryStore) Save(ctx context.Context, session *domain.SelectionSession) error {
	next := nextVersion(session)
	data, err := encode(next)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.lookup(session.ID)
	if !ok {
		return ErrSelectionNotFound
	}
	if current.version != session.Version {
		return ErrSelectionConflict
	}

	s.sessions[session.ID] = memoryEntry{data: data, version: next.Version, expiresAt: s.now().Add(s.ttl)}
	session.Version = next.Version
	return nil
}

func (s *MemoryStore) AcquireInFlight(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if ttl <= 0 {
		ttl = domain.DefaultInFlightTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if entry, ok := s.inFlight[key]; ok && now.Before(entry.expiresAt) {
		return "", false, nil
	}

	token := uuid.NewString()
	s.inFlight[key] = inFlightEntry{token: token, expiresAt: now.Add(ttl)}
	return token, true, nil
}

func (s *MemoryStore) ReleaseInFlight(ctx context.Context, key, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.inFlight[key]; ok && entry.token == token {
		delete(s.inFlight, key)
	}
	return nil
}

// lookup вызывается под мьютексом; истекшие записи удаляются
func (s *MemoryStore) lookup(id string) (memoryEntry, bool) {
	entry, ok := s.sessions[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.sessions, id)
		return memoryEntry{}, false
	}
	return entry, true
}
