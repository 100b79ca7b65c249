// Package payment models the external charge capability: request a charge,
// then receive a single asynchronous approval carrying optional payer
// identity. The engine only consumes that event; verification is out of
// scope.
package payment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Charge is an in-flight checkout attempt.
type Charge struct {
	ID          string
	AmountUSD   float64
	Description string
}

// Approval is the payer metadata a provider reports on success.
type Approval struct {
	PayerName  string
	PayerEmail string
}

// Provider is the consumed payment capability.
type Provider interface {
	Name() string
	CreateCharge(ctx context.Context, amountUSD float64, description string) (*Charge, error)
	// Await resolves the charge's single approval event. It fires at most
	// once per charge; there is no retry.
	Await(ctx context.Context, c *Charge) (Approval, error)
}

// ErrDeclined reports a charge the provider refused.
var ErrDeclined = errors.New("charge declined")

// Simulated approves every charge instantly with a configured payer.
// It stands in for both the test-pay button and the hosted SDK.
type Simulated struct {
	Payer   Approval
	Decline bool

	label   string
	log     *zap.Logger
	counter int
}

func NewSimulated(payer Approval, log *zap.Logger) *Simulated {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulated{label: "simulated", Payer: payer, log: log}
}

// NewPayPalSandbox is the simulated stand-in for the hosted PayPal
// buttons; orders it produces are tagged with the paypal provider.
func NewPayPalSandbox(payer Approval, log *zap.Logger) *Simulated {
	p := NewSimulated(payer, log)
	p.label = "paypal"
	return p
}

func (s *Simulated) Name() string { return s.label }

func (s *Simulated) CreateCharge(ctx context.Context, amountUSD float64, description string) (*Charge, error) {
	if amountUSD < 0 {
		return nil, fmt.Errorf("invalid charge amount %v", amountUSD)
	}
	s.counter++
	c := &Charge{
		ID:          fmt.Sprintf("sim-%04d", s.counter),
		AmountUSD:   amountUSD,
		Description: description,
	}
	s.log.Debug("charge created",
		zap.String("charge_id", c.ID),
		zap.Float64("amount_usd", amountUSD),
		zap.String("description", description))
	return c, nil
}

func (s *Simulated) Await(ctx context.Context, c *Charge) (Approval, error) {
	select {
	case <-ctx.Done():
		return Approval{}, ctx.Err()
	default:
	}
	if s.Decline {
		s.log.Warn("charge declined", zap.String("charge_id", c.ID))
		return Approval{}, ErrDeclined
	}
	s.log.Info("charge approved",
		zap.String("charge_id", c.ID),
		zap.String("payer", s.Payer.PayerName))
	return s.Payer, nil
}
