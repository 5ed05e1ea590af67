package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/config"
)

// GatewayClient authorizes payments against an external HTTP gateway. This is
// the production-intent seam the simulated provider stands in for.
type GatewayClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGatewayClient creates an HTTP-based payment provider.
func NewGatewayClient(cfg config.PaymentConfig, logger *slog.Logger) *GatewayClient {
	return &GatewayClient{
		baseURL: cfg.GatewayURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type chargeRequest struct {
	OrderID string `json:"order_id"`
	Amount  string `json:"amount"`
}

type chargeResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Authorize posts a charge to the gateway and maps its response onto the
// provider contract.
func (c *GatewayClient) Authorize(ctx context.Context, orderID string, amount decimal.Decimal) error {
	body, err := json.Marshal(chargeRequest{
		OrderID: orderID,
		Amount:  amount.StringFixed(2),
	})
	if err != nil {
		return err
	}

	url := c.baseURL + "/api/v1/charges"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("charge request failed", "order_id", orderID, "error", err)
		return fmt.Errorf("payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var charge chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return fmt.Errorf("decode charge response: %w", err)
	}

	if charge.Status != "captured" {
		c.logger.Info("charge declined by gateway",
			"order_id", orderID,
			"reason", charge.Reason,
		)
		return apperr.ErrPaymentDeclined
	}

	return nil
}
