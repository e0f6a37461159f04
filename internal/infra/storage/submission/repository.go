package submission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/psqlbuilder"
)

const tableName = "booking_submissions"

var submissionColumns = []string{
	"id",
	"customer",
	"venue_id",
	"selection_id",
	"date_from",
	"date_to",
	"guests",
	"nights",
	"total_price",
	"status",
	"remote_booking_id",
	"message",
	"created_at",
	"updated_at",
}

// Repository журнал заявок на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр журнала заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает новую заявку (обычно в статусе pending)
func (r *Repository) Create(ctx context.Context, submission *domain.Submission) (*domain.Submission, error) {
	query, args, err := buildInsertQuery(submission)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&submission.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	submission.CreatedAt = createdAt.Time
	submission.UpdatedAt = updatedAt.Time

	return submission, nil
}

// Finish фиксирует окончательный результат заявки
// Допустимы только финальные статусы (created, rejected, failed)
func (r *Repository) Finish(ctx context.Context, id int64, status domain.SubmissionStatus, remoteBookingID, message *string) error {
	if !isFinalStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	query, args, err := buildFinishQuery(id, status, remoteBookingID, message)
	if err != nil {
		return fmt.Errorf("%w: Finish - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finish - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finish - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	query, args, err := psqlbuilder.Select(submissionColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	submission, err := scanSubmission(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan submission: %v", ErrScanRow, err)
	}

	return submission, nil
}

// GetByCustomer получает историю заявок пользователя, новые первыми
func (r *Repository) GetByCustomer(ctx context.Context, filter domain.SubmissionsFilter) ([]*domain.Submission, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomer - scan row: %v", ErrScanRow, err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - rows error: %v", ErrScanRow, err)
	}

	return submissions, nil
}

func buildInsertQuery(s *domain.Submission) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(
			"customer",
			"venue_id",
			"selection_id",
			"date_from",
			"date_to",
			"guests",
			"nights",
			"total_price",
			"status",
		).
		Values(
			s.Customer,
			s.VenueID,
			s.SelectionID,
			s.DateFrom,
			s.DateTo,
			s.Guests,
			s.Nights,
			s.TotalPrice,
			s.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildFinishQuery(id int64, status domain.SubmissionStatus, remoteBookingID, message *string) (string, []interface{}, error) {
	return psqlbuilder.Update(tableName).
		Set("status", status).
		Set("remote_booking_id", remoteBookingID).
		Set("message", message).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func buildListQuery(filter domain.SubmissionsFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(submissionColumns...).
		From(tableName).
		Where(squirrel.Eq{"customer": filter.Customer})

	if filter.VenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": *filter.VenueID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	return selectBuilder.
		OrderBy("created_at DESC", "id DESC").
		Limit(normalizeLimit(filter.Limit)).
		ToSql()
}

func normalizeLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return domain.DefaultSubmissionsLimit
	case limit > domain.MaxSubmissionsLimit:
		return domain.MaxSubmissionsLimit
	default:
		return limit
	}
}

func isFinalStatus(status domain.SubmissionStatus) bool {
	for _, s := range domain.FinalSubmissionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row rowScanner) (*domain.Submission, error) {
	var s domain.Submission
	var selectionID, remoteBookingID, message sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Customer,
		&s.VenueID,
		&selectionID,
		&s.DateFrom,
		&s.DateTo,
		&s.Guests,
		&s.Nights,
		&s.TotalPrice,
		&s.Status,
		&remoteBookingID,
		&message,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if selectionID.Valid {
		s.SelectionID = &selectionID.String
	}
	if remoteBookingID.Valid {
		s.RemoteBookingID = &remoteBookingID.String
	}
	if message.Valid {
		s.Message = &message.String
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
