package domain

import (
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// SubmissionStatus статус заявки на бронирование в журнале
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"  // Отправлена во внешний API, ответа еще нет
	SubmissionCreated  SubmissionStatus = "created"  // Бронирование создано
	SubmissionRejected SubmissionStatus = "rejected" // Внешний API отклонил заявку
	SubmissionFailed   SubmissionStatus = "failed"   // Сеть или 5xx
)

// BookingRequest данные, которые уходят в API создания бронирования
type BookingRequest struct {
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
	VenueID  string
}

// CreatedBooking ответ внешнего API о созданном бронировании
type CreatedBooking struct {
	ID        string
	DateFrom  time.Time
	DateTo    time.Time
	Guests    int
	CreatedAt time.Time
}

// Submission запись журнала отправленных заявок
type Submission struct {
	ID              int64
	Customer        string
	VenueID         string
	SelectionID     *string
	DateFrom        types.Date
	DateTo          types.Date
	Guests          int
	Nights          int
	TotalPrice      float64
	Status          SubmissionStatus
	RemoteBookingID *string
	Message         *string // Сообщение об ошибке от внешнего API

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinal возвращает true, если заявка получила окончательный ответ
func (s *Submission) IsFinal() bool {
	return s.Status != SubmissionPending
}

// IsSuccessful возвращает true, если бронирование создано
func (s *Submission) IsSuccessful() bool {
	return s.Status == SubmissionCreated
}

// SubmissionsFilter фильтр истории заявок
type SubmissionsFilter struct {
	Customer string            // Обязательный параметр
	VenueID  *string           // Фильтр по площадке (опционально)
	Status   *SubmissionStatus // Фильтр по статусу (опционально)
	Limit    uint64            // 0 = DefaultSubmissionsLimit
}
