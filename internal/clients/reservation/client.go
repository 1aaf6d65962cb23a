package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	reservationHTTP "github.com/bookstore/fulfillment/internal/delivery/http/reservation"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

// Client is the order service's view of the reservation RPC. It maps the
// wire-level outcome enum back to domain errors; anything that is not an
// explicit business outcome is an internal fault and must not be taken as
// success.
type Client struct {
	log *slog.Logger

	baseURL    string
	httpClient *http.Client
}

func NewClient(log *slog.Logger, baseURL string) *Client {
	return &Client{
		log:        log,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) Reserve(ctx context.Context, isbn string, quantity int32) error {
	const op = "clients.reservation.Reserve"

	body, err := json.Marshal(reservationHTTP.ReserveRequest{
		BookISBN: isbn,
		Quantity: quantity,
	})
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/rpc/reserve",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusInternalServerError {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var response reservationHTTP.ReserveResponse
	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	c.log.DebugContext(ctx, "reserve response",
		slog.String("isbn", isbn),
		slog.Int("quantity", int(quantity)),
		slog.String("outcome", string(response.Outcome)),
	)

	switch response.Outcome {
	case reservationHTTP.OutcomeOK:
		return nil
	case reservationHTTP.OutcomeNotFound:
		return internalErrors.ErrBookNotFound
	case reservationHTTP.OutcomeInsufficientStock:
		return internalErrors.ErrInsufficientStock
	default:
		return fmt.Errorf("%s: reservation service fault: %s", op, response.Message)
	}
}
