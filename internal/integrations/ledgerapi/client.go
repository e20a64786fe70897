package ledgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент удаленного реестра заявок
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента. baseURL указывает на префикс API, например http://host:8080/api
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchAll получает весь реестр заявок
func (c *Client) FetchAll(ctx context.Context) ([]domain.Request, error) {
	var body ListResponse
	if err := c.do(ctx, http.MethodGet, "/requests", nil, &body); err != nil {
		return nil, err
	}
	if body.Requests == nil {
		body.Requests = []domain.Request{}
	}

	c.log.Info("LedgerAPI: fetched %d requests", len(body.Requests))
	return body.Requests, nil
}

// Create добавляет заявку в конец удаленного реестра
func (c *Client) Create(ctx context.Context, request domain.Request) (*domain.Request, error) {
	var body RequestEnvelope
	if err := c.do(ctx, http.MethodPost, "/requests", request, &body); err != nil {
		return nil, err
	}
	if body.Request == nil {
		return nil, fmt.Errorf("%w: create response has no request", ErrInvalidResponse)
	}
	return body.Request, nil
}

// Patch частично обновляет заявку; для неизвестного id возвращает ErrRequestNotFound
func (c *Client) Patch(ctx context.Context, id string, patch domain.RequestPatch) (*domain.Request, error) {
	var body RequestEnvelope
	path := "/requests/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, patch, &body); err != nil {
		return nil, err
	}
	if body.Request == nil {
		return nil, fmt.Errorf("%w: patch response has no request", ErrInvalidResponse)
	}
	return body.Request, nil
}

// AppendBooking добавляет запись в список одобренных бронирований
func (c *Client) AppendBooking(ctx context.Context, booking domain.Booking) error {
	var body BookingEnvelope
	return c.do(ctx, http.MethodPost, "/bookings", booking, &body)
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrRequestNotFound, method, path)
	case resp.StatusCode >= 500:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
