// Package payment holds the payment step of checkout: an interface the
// orchestrator calls, a simulated provider, and an HTTP gateway client.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/shopeasy-commerce-service/internal/apperr"
	"github.com/shopeasy/shopeasy-commerce-service/internal/config"
)

// Provider resolves the payment step of a checkout attempt. A nil return
// means the payment was captured; apperr.ErrPaymentDeclined means the draw
// failed; any other error means the step could not complete.
type Provider interface {
	Authorize(ctx context.Context, orderID string, amount decimal.Decimal) error
}

// SimulatedProvider models an external gateway as a fixed delay followed by
// a random success draw. It exists because the real gateway is out of scope;
// only the observable contract (delay, then success or failure) is kept.
type SimulatedProvider struct {
	delay       time.Duration
	successRate float64
	draw        func() float64
	logger      *slog.Logger
}

// NewSimulatedProvider builds a provider from config. The random draw uses
// the shared math/rand source, which is safe for concurrent use.
func NewSimulatedProvider(cfg config.PaymentConfig, logger *slog.Logger) *SimulatedProvider {
	return &SimulatedProvider{
		delay:       cfg.SimDelay,
		successRate: cfg.SimSuccess,
		draw:        rand.Float64,
		logger:      logger,
	}
}

// Authorize waits out the simulated processing delay, then draws the outcome.
// Context cancellation during the delay aborts without a capture.
func (p *SimulatedProvider) Authorize(ctx context.Context, orderID string, amount decimal.Decimal) error {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("payment aborted: %w", ctx.Err())
	case <-timer.C:
	}

	if p.draw() >= p.successRate {
		p.logger.Info("payment declined", "order_id", orderID, "amount", amount.String())
		return apperr.ErrPaymentDeclined
	}

	p.logger.Info("payment captured", "order_id", orderID, "amount", amount.String())
	return nil
}

// New picks the configured provider implementation.
func New(cfg config.PaymentConfig, logger *slog.Logger) Provider {
	if cfg.Provider == "http" {
		return NewGatewayClient(cfg, logger)
	}
	return NewSimulatedProvider(cfg, logger)
}
