package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	selectionStore "github.com/m04kA/SMC-HolidazeGateway/internal/infra/storage/selection"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/ptr"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/types"
)

// Исходы отправки для метрик
const (
	outcomeCreated    = "created"
	outcomeInvalid    = "invalid"
	outcomeInProgress = "in_progress"
	outcomeRejected   = "rejected"
	outcomeFailed     = "failed"
)

// UseCase use case отправки заявки на бронирование
type UseCase struct {
	venueClient    VenueClient
	bookingSink    BookingSink
	selectionStore SelectionStore
	guard          InFlightGuard
	submissions    SubmissionRepository
	metrics        Metrics
	location       *time.Location
	inFlightTTL    time.Duration
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueClient VenueClient,
	bookingSink BookingSink,
	selectionStore SelectionStore,
	guard InFlightGuard,
	submissions SubmissionRepository,
	metrics Metrics,
	loc *time.Location,
	inFlightTTL time.Duration,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	if inFlightTTL <= 0 {
		inFlightTTL = domain.DefaultInFlightTTL
	}
	return &UseCase{
		venueClient:    venueClient,
		bookingSink:    bookingSink,
		selectionStore: selectionStore,
		guard:          guard,
		submissions:    submissions,
		metrics:        metrics,
		location:       loc,
		inFlightTTL:    inFlightTTL,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute проверяет заявку и передает ее в Holidaze API
// Локальная проверка рекомендательная: окончательно конфликт решает удаленный API
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	customer := req.Customer.Identity()
	uc.logger.Info("CreateBooking: customer=%s, venue=%s, selection=%s, guests=%d",
		customer, req.VenueID, selectionLabel(req.SelectionID), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в поясе календаря
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Определяем даты и площадку: из сессии выбора или из запроса
	venueID := req.VenueID
	from := req.DateFrom.In(uc.location)
	to := req.DateTo.In(uc.location)

	var session *domain.SelectionSession
	if req.SelectionID != nil {
		s, err := uc.getSession(ctx, *req.SelectionID)
		if err != nil {
			return nil, err
		}
		if venueID != "" && venueID != s.VenueID {
			uc.logger.Warn("CreateBooking: selection id=%s belongs to venue=%s, not %s", s.ID, s.VenueID, venueID)
			return nil, ErrSelectionMismatch
		}

		session = s
		venueID = s.VenueID
		from, to = selectionDates(s.Selection)
	}

	// 4. Получаем площадку с актуальными бронированиями
	venue, err := uc.venueClient.GetVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, holidazeClient.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%s not found", venueID)
			return nil, ErrVenueNotFound
		}
		if errors.Is(err, holidazeClient.ErrUnavailable) {
			uc.logger.Error("CreateBooking: venue id=%s unavailable: %v", venueID, err)
			return nil, fmt.Errorf("%w: failed to get venue: %w", ErrRemoteUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%s: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 5. Проверка заявки
	if verr := validateSubmission(from, to, req.Guests, venue, now); verr != nil {
		uc.logger.Warn("CreateBooking: submission rejected locally: customer=%s, venue=%s, reason=%s",
			customer, venueID, verr.Code)
		uc.metrics.IncValidationFailure(verr.Code)
		uc.metrics.IncSubmission(outcomeInvalid)
		return nil, verr
	}

	// 6. Одна отправка за раз для выбора (или пары пользователь + площадка)
	key := inFlightKey(req, customer, venueID)
	token, acquired, err := uc.guard.AcquireInFlight(ctx, key, uc.inFlightTTL)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to acquire in-flight guard key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to acquire in-flight guard: %v", ErrInternal, err)
	}
	if !acquired {
		uc.logger.Warn("CreateBooking: submission already in progress: key=%s", key)
		uc.metrics.IncSubmission(outcomeInProgress)
		return nil, ErrSubmissionInProgress
	}
	defer uc.releaseGuard(ctx, key, token)

	pricing := domain.ComputePricing(from, to, venue.Price)

	// 7. Пишем заявку в журнал до обращения к API
	submission := uc.journalPending(ctx, req, customer, venueID, from, to, pricing)

	// 8. Отправляем заявку
	created, err := uc.bookingSink.CreateBooking(ctx, req.Customer.AccessToken, domain.BookingRequest{
		DateFrom: from,
		DateTo:   to,
		Guests:   req.Guests,
		VenueID:  venueID,
	})
	if err != nil {
		return nil, uc.handleRemoteError(ctx, submission, err)
	}

	// 9. Фиксируем результат и сбрасываем выбор
	uc.journalFinish(ctx, submission, domain.SubmissionCreated, &created.ID, nil)
	uc.metrics.IncSubmission(outcomeCreated)

	if session != nil {
		uc.resetSelection(ctx, session, now)
	}

	uc.logger.Info("CreateBooking: booking created: id=%s, customer=%s, venue=%s, nights=%d",
		created.ID, customer, venueID, pricing.Nights)

	createdAt := created.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return &Response{
		SubmissionID: submission.ID,
		BookingID:    created.ID,
		VenueID:      venueID,
		DateFrom:     types.NewDate(from),
		DateTo:       types.NewDate(to),
		Guests:       req.Guests,
		Nights:       pricing.Nights,
		TotalPrice:   pricing.TotalPrice,
		CreatedAt:    createdAt,
	}, nil
}

func (uc *UseCase) getSession(ctx context.Context, selectionID string) (*domain.SelectionSession, error) {
	session, err := uc.selectionStore.Get(ctx, selectionID)
	if err != nil {
		if errors.Is(err, selectionStore.ErrSelectionNotFound) {
			uc.logger.Warn("CreateBooking: selection id=%s not found", selectionID)
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("CreateBooking: failed to get selection id=%s: %v", selectionID, err)
		return nil, fmt.Errorf("%w: failed to get selection: %v", ErrInternal, err)
	}
	return session, nil
}

// handleRemoteError журналирует отказ и сохраняет *RemoteError в цепочке ошибок
func (uc *UseCase) handleRemoteError(ctx context.Context, submission *domain.Submission, err error) error {
	var remoteErr *holidazeClient.RemoteError
	if errors.As(err, &remoteErr) {
		message := remoteErr.Message
		if errors.Is(err, holidazeClient.ErrRejected) {
			uc.logger.Warn("CreateBooking: rejected by Holidaze API: status=%d, message=%s", remoteErr.StatusCode, message)
			uc.journalFinish(ctx, submission, domain.SubmissionRejected, nil, ptr.Ptr(message))
			uc.metrics.IncSubmission(outcomeRejected)
			return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
		}

		uc.logger.Error("CreateBooking: Holidaze API error: status=%d, message=%s", remoteErr.StatusCode, message)
		uc.journalFinish(ctx, submission, domain.SubmissionFailed, nil, ptr.Ptr(message))
		uc.metrics.IncSubmission(outcomeFailed)
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	uc.journalFinish(ctx, submission, domain.SubmissionFailed, nil, ptr.Ptr(err.Error()))
	uc.metrics.IncSubmission(outcomeFailed)

	if errors.Is(err, holidazeClient.ErrUnavailable) {
		uc.logger.Error("CreateBooking: Holidaze API unavailable: %v", err)
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	uc.logger.Error("CreateBooking: failed to create booking: %v", err)
	return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
}

// journalPending ошибки журнала не блокируют бронирование
func (uc *UseCase) journalPending(
	ctx context.Context,
	req *Request,
	customer, venueID string,
	from, to time.Time,
	pricing domain.Pricing,
) *domain.Submission {
	submission := &domain.Submission{
		Customer:    customer,
		VenueID:     venueID,
		SelectionID: req.SelectionID,
		DateFrom:    types.NewDate(from),
		DateTo:      types.NewDate(to),
		Guests:      req.Guests,
		Nights:      pricing.Nights,
		TotalPrice:  pricing.TotalPrice,
		Status:      domain.SubmissionPending,
	}

	stored, err := uc.submissions.Create(ctx, submission)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to journal submission: customer=%s, venue=%s: %v", customer, venueID, err)
		return submission
	}
	return stored
}

func (uc *UseCase) journalFinish(
	ctx context.Context,
	submission *domain.Submission,
	status domain.SubmissionStatus,
	remoteBookingID, message *string,
) {
	submission.Status = status
	submission.RemoteBookingID = remoteBookingID
	submission.Message = message

	if submission.ID == 0 {
		return
	}

	// Результат фиксируется даже если клиент уже отключился
	if err := uc.submissions.Finish(context.WithoutCancel(ctx), submission.ID, status, remoteBookingID, message); err != nil {
		uc.logger.Error("CreateBooking: failed to finish submission id=%d: %v", submission.ID, err)
	}
}

func (uc *UseCase) releaseGuard(ctx context.Context, key, token string) {
	if err := uc.guard.ReleaseInFlight(context.WithoutCancel(ctx), key, token); err != nil {
		uc.logger.Error("CreateBooking: failed to release in-flight guard key=%s: %v", key, err)
	}
}

// resetSelection после успешной отправки выбор возвращается в Empty
func (uc *UseCase) resetSelection(ctx context.Context, session *domain.SelectionSession, now time.Time) {
	session.Selection = domain.EmptySelection()
	session.UpdatedAt = now

	err := uc.selectionStore.Save(context.WithoutCancel(ctx), session)
	switch {
	case err == nil:
	case errors.Is(err, selectionStore.ErrSelectionConflict):
		// Пользователь уже выбрал новые даты, их не затираем
		uc.logger.Info("CreateBooking: selection id=%s changed during submission, reset skipped", session.ID)
	default:
		uc.logger.Warn("CreateBooking: failed to reset selection id=%s: %v", session.ID, err)
	}
}

// selectionDates возвращает даты завершенного выбора; для незавершенного нули
func selectionDates(s domain.Selection) (time.Time, time.Time) {
	if !s.IsComplete() {
		return time.Time{}, time.Time{}
	}
	return s.DateFrom, s.DateTo
}

func selectionLabel(id *string) string {
	if id == nil {
		return "-"
	}
	return *id
}
