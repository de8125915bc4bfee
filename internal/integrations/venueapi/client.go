package venueapi

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

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Client клиент для backend API заведения (бронирования и события)
type Client struct {
	baseURL    string
	params     Params
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, params Params, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		params:  params,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBookings получает разовые бронирования гостей в окне дат
func (c *Client) GetBookings(ctx context.Context, window domain.DateWindow) ([]domain.Record, error) {
	endpoint := c.endpoint(c.params.BookingPath,
		c.dateStart(window),
		c.dateEnd(window),
	)

	rows, err := c.getRecords(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, len(rows))
	for i, row := range rows {
		records[i] = row.toBooking()
	}
	return records, nil
}

// GetEvents получает разовые (неповторяющиеся) события в окне дат
func (c *Client) GetEvents(ctx context.Context, window domain.DateWindow) ([]domain.Record, error) {
	endpoint := c.endpoint(c.params.EventPath,
		c.params.NotRepeatParam,
		c.dateStart(window),
		c.dateEnd(window),
	)

	rows, err := c.getRecords(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, len(rows))
	for i, row := range rows {
		records[i] = row.toEvent()
	}
	return records, nil
}

// GetRepeatingEvents получает повторяющиеся события.
// У них нет даты, поэтому передаётся только верхняя граница окна.
func (c *Client) GetRepeatingEvents(ctx context.Context, window domain.DateWindow) ([]domain.Record, error) {
	endpoint := c.endpoint(c.params.EventPath,
		c.params.RepeatParam,
		c.dateEnd(window),
	)

	rows, err := c.getRecords(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, len(rows))
	for i, row := range rows {
		records[i] = row.toRepeatingEvent()
	}
	return records, nil
}

// CreateReservation отправляет бронирование гостя на backend
func (c *Client) CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	body, err := json.Marshal(fromReservation(reservation))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode reservation: %v", ErrInternal, err)
	}

	endpoint := c.endpoint(c.params.BookingPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var created ReservationPayload
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("VenueAPI: reservation created id=%d, date=%s, hour=%s, table=%s",
		created.ID, created.Date, created.Hour, created.Table)

	return created.toReservation(), nil
}

func (c *Client) getRecords(ctx context.Context, endpoint string) ([]RecordPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var rows []RecordPayload
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return rows, nil
}

// endpoint собирает URL вида {base}/{path}?a=b&c=d.
// Параметры фильтра повторения уже записаны как готовые фрагменты query, поэтому url.Values не используется.
func (c *Client) endpoint(path string, params ...string) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")

	nonEmpty := make([]string, 0, len(params))
	for _, p := range params {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return u
	}
	return u + "?" + strings.Join(nonEmpty, "&")
}

func (c *Client) dateStart(window domain.DateWindow) string {
	return c.params.DateStartParam + "=" + url.QueryEscape(string(domain.FormatDate(window.Min)))
}

func (c *Client) dateEnd(window domain.DateWindow) string {
	return c.params.DateEndParam + "=" + url.QueryEscape(string(domain.FormatDate(window.Max)))
}
