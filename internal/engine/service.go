package engine

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"workwise/internal/catalog"
	"workwise/internal/currency"
	"workwise/internal/locale"
	"workwise/internal/payment"
	"workwise/internal/storage"
)

// Options is the explicit application context: the static catalog, the
// locale source, the rate table, and the (optional) payment capability.
// Zero values get working defaults; a nil Provider disables checkout only.
type Options struct {
	Catalog          *catalog.Catalog
	Locale           locale.Source
	Rates            map[currency.Code]float64
	CurrencyOverride string // config-level override; the persisted one wins
	Provider         payment.Provider
	Logger           *zap.Logger
	Now              func() time.Time
}

type Service struct {
	db       *sql.DB
	profiles *storage.ProfileRepo
	wishlist *storage.WishlistRepo
	orders   *storage.OrderRepo
	bookings *storage.BookingRepo
	tracker  *storage.TrackerRepo
	contacts *storage.ContactRepo
	settings *storage.SettingsRepo

	catalog      *catalog.Catalog
	localeSource locale.Source
	rates        map[currency.Code]float64
	cfgOverride  string
	provider     payment.Provider
	log          *zap.Logger
	now          func() time.Time

	// Weight-1 guards: the async photo and checkout completions must not
	// interleave with a second call on the same store.
	photoGuard    *semaphore.Weighted
	checkoutGuard *semaphore.Weighted
}

func NewService(db *sql.DB, opts Options) *Service {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Locale == nil {
		opts.Locale = locale.EnvSource{}
	}
	if opts.Rates == nil {
		opts.Rates = currency.DefaultRates
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		db:            db,
		profiles:      storage.NewProfileRepo(db),
		wishlist:      storage.NewWishlistRepo(db),
		orders:        storage.NewOrderRepo(db),
		bookings:      storage.NewBookingRepo(db),
		tracker:       storage.NewTrackerRepo(db),
		contacts:      storage.NewContactRepo(db),
		settings:      storage.NewSettingsRepo(db),
		catalog:       opts.Catalog,
		localeSource:  opts.Locale,
		rates:         opts.Rates,
		cfgOverride:   opts.CurrencyOverride,
		provider:      opts.Provider,
		log:           opts.Logger,
		now:           opts.Now,
		photoGuard:    semaphore.NewWeighted(1),
		checkoutGuard: semaphore.NewWeighted(1),
	}
}

func (s *Service) ProfileRepo() *storage.ProfileRepo   { return s.profiles }
func (s *Service) WishlistRepo() *storage.WishlistRepo { return s.wishlist }
func (s *Service) OrderRepo() *storage.OrderRepo       { return s.orders }
func (s *Service) BookingRepo() *storage.BookingRepo   { return s.bookings }
func (s *Service) TrackerRepo() *storage.TrackerRepo   { return s.tracker }
func (s *Service) ContactRepo() *storage.ContactRepo   { return s.contacts }
func (s *Service) Catalog() *catalog.Catalog           { return s.catalog }

// formatter resolves the display currency with persisted-override, then
// config-override, then locale-detection precedence.
func (s *Service) formatter(ctx context.Context) (*currency.Formatter, error) {
	override, err := s.settings.CurrencyOverride(ctx)
	if err != nil {
		return nil, err
	}
	if override == "" || override == currency.Auto {
		override = s.cfgOverride
	}
	code := currency.Resolve(override, s.localeSource)
	return currency.NewFormatter(code, s.rates), nil
}

// Price returns the default product's formatted price in the resolved
// currency.
func (s *Service) Price(ctx context.Context) (string, error) {
	f, err := s.formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Format(catalog.DefaultProduct.PriceUSD), nil
}

// SetCurrency persists the display-currency override. "AUTO" re-enables
// locale detection.
func (s *Service) SetCurrency(ctx context.Context, code string) error {
	if code == "" {
		return MissingFieldError{Field: "currency code"}
	}
	return s.settings.SetCurrencyOverride(ctx, code)
}
