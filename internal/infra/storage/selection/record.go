package selection

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

const (
	selectionKeyPrefix = "holidaze:selection:"
	inFlightKeyPrefix  = "holidaze:inflight:"
)

// record формат хранения сессии; даты хранятся как календарные дни
type record struct {
	VenueID   string                `json:"venue_id"`
	State     domain.SelectionState `json:"state"`
	DateFrom  types.Date            `json:"date_from"`
	DateTo    types.Date            `json:"date_to"`
	UpdatedAt time.Time             `json:"updated_at"`
	Version   int64                 `json:"version"`
}

func encode(session *domain.SelectionSession) ([]byte, error) {
	rec := record{
		VenueID:   session.VenueID,
		State:     session.Selection.State,
		UpdatedAt: session.UpdatedAt.UTC(),
		Version:   session.Version,
	}
	if !session.Selection.IsEmpty() {
		rec.DateFrom = types.NewDate(session.Selection.DateFrom)
	}
	if session.Selection.IsComplete() {
		rec.DateTo = types.NewDate(session.Selection.DateTo)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// decode восстанавливает сессию, привязывая дни к полуночи в поясе loc
func decode(id string, data []byte, loc *time.Location) (*domain.SelectionSession, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	sel := domain.EmptySelection()
	switch rec.State {
	case domain.SelectionHasStart:
		if rec.DateFrom.IsZero() {
			return nil, fmt.Errorf("%w: has_start without date_from", ErrDecode)
		}
		sel = domain.Selection{State: domain.SelectionHasStart, DateFrom: rec.DateFrom.In(loc)}
	case domain.SelectionComplete:
		if rec.DateFrom.IsZero() || rec.DateTo.IsZero() {
			return nil, fmt.Errorf("%w: complete without dates", ErrDecode)
		}
		sel = domain.Selection{
			State:    domain.SelectionComplete,
			DateFrom: rec.DateFrom.In(loc),
			DateTo:   rec.DateTo.In(loc),
		}
	}

	return &domain.SelectionSession{
		ID:        id,
		VenueID:   rec.VenueID,
		Selection: sel,
		UpdatedAt: rec.UpdatedAt,
		Version:   rec.Version,
	}, nil
}

// nextVersion копия сессии для записи поверх версии session.Version
func nextVersion(session *domain.SelectionSession) *domain.SelectionSession {
	next := *session
	next.Version++
	return &next
}

func selectionKey(id string) string {
	return selectionKeyPrefix + id
}

func inFlightKey(key string) string {
	return inFlightKeyPrefix + key
}
