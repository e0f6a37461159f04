package domain

import "time"

// Ограничения бронирования
const (
	MinGuests = 1
)

// Значения по умолчанию
const (
	DefaultSelectionTTL     = 24 * time.Hour
	DefaultInFlightTTL      = 30 * time.Second
	DefaultSubmissionsLimit = 50
	MaxSubmissionsLimit     = 200
)

// Форматы дат
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// FinalSubmissionStatuses статусы заявок, по которым получен окончательный ответ
var FinalSubmissionStatuses = []SubmissionStatus{
	SubmissionCreated,
	SubmissionRejected,
	SubmissionFailed,
}

// AllSubmissionStatuses все допустимые статусы заявок
var AllSubmissionStatuses = []SubmissionStatus{
	SubmissionPending,
	SubmissionCreated,
	SubmissionRejected,
	SubmissionFailed,
}

// ParseSubmissionStatus проверяет строку статуса
func ParseSubmissionStatus(s string) (SubmissionStatus, bool) {
	for _, status := range AllSubmissionStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}
