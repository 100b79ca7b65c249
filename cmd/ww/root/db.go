package root

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"workwise/internal/config"
	"workwise/internal/engine"
	"workwise/internal/locale"
	"workwise/internal/payment"
	"workwise/internal/storage"
)

func newLogger() (*zap.Logger, error) {
	if !flagVerbose {
		return zap.NewNop(), nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

func localeSource() locale.Source {
	if flagLocale != "" {
		return locale.Static{LangTag: flagLocale}
	}
	return locale.EnvSource{}
}

// buildProvider maps the --provider flag to a payment capability. "none"
// simulates the SDK failing to load: checkout reports itself unavailable
// and everything else keeps working.
func buildProvider(name string, cfg *config.Config, log *zap.Logger) (payment.Provider, error) {
	payer := payment.Approval{PayerName: cfg.PayerName, PayerEmail: cfg.PayerEmail}
	switch name {
	case "simulated", "":
		return payment.NewSimulated(payer, log), nil
	case "paypal":
		return payment.NewPayPalSandbox(payer, log), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", name)
	}
}

func openService(ctx context.Context, providerName string) (*engine.Service, func(), error) {
	log, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	provider, err := buildProvider(providerName, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}

	svc := engine.NewService(db, engine.Options{
		Locale:           localeSource(),
		Rates:            cfg.RateTable(),
		CurrencyOverride: cfg.Currency,
		Provider:         provider,
		Logger:           log,
	})
	return svc, cleanup, nil
}
