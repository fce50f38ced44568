package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aizah-hospitality/booking-api/internal/domain/availability"
	"github.com/aizah-hospitality/booking-api/internal/domain/pricing"
	"github.com/aizah-hospitality/booking-api/internal/pkg/dateutil"
)

const defaultTimeout = 10 * time.Second

// Client is the storefront's view of the booking API. It speaks the same
// wire contracts the browser widgets do: priceView, chekoutview, keyview,
// checkout and checkoutSubmit.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a booking API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// BookingPayload is what the widget posts to /api/checkout and
// /api/checkoutSubmit. Dates are ISO-8601; total uses the capital-P
// spelling this surface has always sent.
type BookingPayload struct {
	RoomName   string  `json:"roomname"`
	Checkin    string  `json:"checkin"`
	Checkout   string  `json:"checkout"`
	Guests     int     `json:"guests"`
	Children   int     `json:"children"`
	Nights     int     `json:"night"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
	PaymentID  string  `json:"paymentID,omitempty"`
}

// bookedEntry is the slice of a chekoutview row the widget needs.
type bookedEntry struct {
	RoomName string `json:"roomname"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

// FetchPrices loads the price table for one room.
func (c *Client) FetchPrices(ctx context.Context, room string) (*pricing.Table, error) {
	var out struct {
		Prices *pricing.Table `json:"prices"`
	}
	if err := c.get(ctx, "/api/priceView/"+url.PathEscape(room), &out); err != nil {
		return nil, err
	}
	return out.Prices, nil
}

// FetchBookings loads all bookings and keeps the ones for roomName. The
// endpoint returns every room's bookings; filtering happens client-side.
func (c *Client) FetchBookings(ctx context.Context, roomName string) ([]availability.Interval, error) {
	var out struct {
		Data []bookedEntry `json:"data"`
	}
	if err := c.get(ctx, "/api/chekoutview", &out); err != nil {
		return nil, err
	}

	var intervals []availability.Interval
	for _, e := range out.Data {
		if e.RoomName != roomName {
			continue
		}
		in, err := dateutil.Parse(e.Checkin)
		if err != nil {
			continue
		}
		outd, err := dateutil.Parse(e.Checkout)
		if err != nil {
			continue
		}
		intervals = append(intervals, availability.Interval{Checkin: in, Checkout: outd})
	}
	return intervals, nil
}

// FetchGatewayKey returns the first published gateway key.
func (c *Client) FetchGatewayKey(ctx context.Context) (string, error) {
	var out struct {
		Data []struct {
			Key string `json:"key"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/keyview", &out); err != nil {
		return "", err
	}
	if len(out.Data) == 0 {
		return "", errors.New("booking api error: no gateway key published")
	}
	return out.Data[0].Key, nil
}

// SubmitBooking posts a card booking to /api/checkout.
func (c *Client) SubmitBooking(ctx context.Context, p BookingPayload) error {
	return c.post(ctx, "/api/checkout", p)
}

// SubmitPayAtCheckin posts a pay-at-check-in booking to /api/checkoutSubmit.
func (c *Client) SubmitPayAtCheckin(ctx context.Context, p BookingPayload) error {
	return c.post(ctx, "/api/checkoutSubmit", p)
}

// ErrDatesTaken is returned when the server rejects a booking because the
// dates were taken between selection and submit.
var ErrDatesTaken = errors.New("booking api error: dates no longer available")

func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("booking api request error: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("booking api request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("booking api http error: status=%d body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("booking api decode error: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("booking api request error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("booking api request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("booking api request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return ErrDatesTaken
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("booking api http error: status=%d body=%s", resp.StatusCode, string(respBody))
	}
	return nil
}
