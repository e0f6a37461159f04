package holidaze

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
)

const (
	headerAPIKey = "X-Noroff-API-Key"

	opGetVenue      = "get_venue"
	opCreateBooking = "create_booking"
	opGetProfile    = "get_profile"
)

// Client клиент для работы с Holidaze API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	location   *time.Location
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента Holidaze API
// loc - часовой пояс, в котором даты бронирований приводятся к календарным дням
func NewClient(baseURL, apiKey string, timeout time.Duration, loc *time.Location, metrics Metrics, log Logger) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		location: loc,
		metrics:  metrics,
		log:      log,
	}
}

// GetVenue получает площадку вместе с ее бронированиями
func (c *Client) GetVenue(ctx context.Context, venueID string) (*domain.Venue, error) {
	endpoint := fmt.Sprintf("%s/holidaze/venues/%s?_bookings=true", c.baseURL, url.PathEscape(venueID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, "")

	resp, err := c.do(req, opGetVenue)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrVenueNotFound
	default:
		return nil, c.remoteError(resp)
	}

	// Парсим ответ
	var body envelope[Venue]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	venue, err := toDomainVenue(&body.Data, c.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return venue, nil
}

// CreateBooking отправляет заявку на бронирование от имени пользователя
// accessToken - токен пользователя, сервис его не проверяет
func (c *Client) CreateBooking(ctx context.Context, accessToken string, booking domain.BookingRequest) (*domain.CreatedBooking, error) {
	payload, err := json.Marshal(CreateBookingRequest{
		DateFrom: booking.DateFrom.Format(time.RFC3339),
		DateTo:   booking.DateTo.Format(time.RFC3339),
		Guests:   booking.Guests,
		VenueID:  booking.VenueID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/holidaze/bookings", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.do(req, opCreateBooking)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, c.remoteError(resp)
	}

	var body envelope[Booking]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	created, err := toDomainCreatedBooking(&body.Data, c.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Holidaze booking created: id=%s, venue=%s", created.ID, booking.VenueID)
	return created, nil
}

// GetProfile получает профиль пользователя его же токеном
// Holidaze API отвечает 401/403 на поддельный или чужой токен
func (c *Client) GetProfile(ctx context.Context, accessToken, name string) (*domain.Profile, error) {
	endpoint := fmt.Sprintf("%s/holidaze/profiles/%s", c.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.do(req, opGetProfile)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrProfileNotFound
	default:
		return nil, c.remoteError(resp)
	}

	var body envelope[Profile]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if body.Data.Name == "" {
		return nil, fmt.Errorf("%w: profile name is empty", ErrInvalidResponse)
	}

	return &domain.Profile{Name: body.Data.Name, Email: body.Data.Email}, nil
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
}

// do выполняет запрос и пишет метрику длительности
func (c *Client) do(req *http.Request, operation string) (*http.Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRemoteCall(operation, "error", time.Since(start))
		c.log.Error("Holidaze API %s failed: %v", operation, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}

	c.metrics.ObserveRemoteCall(operation, strconv.Itoa(resp.StatusCode), time.Since(start))
	return resp, nil
}

// remoteError собирает RemoteError из тела ответа с ошибкой
func (c *Client) remoteError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	message := http.StatusText(resp.StatusCode)

	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Errors) > 0 {
		messages := make([]string, 0, len(body.Errors))
		for _, e := range body.Errors {
			if e.Message != "" {
				messages = append(messages, e.Message)
			}
		}
		if len(messages) > 0 {
			message = strings.Join(messages, "; ")
		}
	}

	c.log.Warn("Holidaze API returned status=%d: %s", resp.StatusCode, message)
	return &RemoteError{StatusCode: resp.StatusCode, Message: message}
}

// toDomainVenue приводит даты бронирований к календарным дням в поясе loc
func toDomainVenue(v *Venue, loc *time.Location) (*domain.Venue, error) {
	if v.ID == "" {
		return nil, errors.New("venue id is empty")
	}

	bookings := make([]domain.ReservedInterval, 0, len(v.Bookings))
	for _, b := range v.Bookings {
		from, err := parseDay(b.DateFrom, loc)
		if err != nil {
			return nil, fmt.Errorf("booking %s: dateFrom: %v", b.ID, err)
		}
		to, err := parseDay(b.DateTo, loc)
		if err != nil {
			return nil, fmt.Errorf("booking %s: dateTo: %v", b.ID, err)
		}
		bookings = append(bookings, domain.ReservedInterval{
			ID:       b.ID,
			DateFrom: from,
			DateTo:   to,
			Guests:   b.Guests,
		})
	}

	return &domain.Venue{
		ID:        v.ID,
		Name:      v.Name,
		Price:     v.Price,
		MaxGuests: v.MaxGuests,
		Bookings:  bookings,
	}, nil
}

func toDomainCreatedBooking(b *Booking, loc *time.Location) (*domain.CreatedBooking, error) {
	from, err := parseDay(b.DateFrom, loc)
	if err != nil {
		return nil, fmt.Errorf("dateFrom: %v", err)
	}
	to, err := parseDay(b.DateTo, loc)
	if err != nil {
		return nil, fmt.Errorf("dateTo: %v", err)
	}

	created := &domain.CreatedBooking{
		ID:       b.ID,
		DateFrom: from,
		DateTo:   to,
		Guests:   b.Guests,
	}
	if b.Created != "" {
		if ts, err := time.Parse(time.RFC3339, b.Created); err == nil {
			created.CreatedAt = ts
		}
	}
	return created, nil
}

// parseDay разбирает ISO 8601 и возвращает полночь соответствующего дня в поясе loc
func parseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.StartOfDay(t.In(loc)), nil
}
