package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"workwise/internal/locale"
	"workwise/internal/payment"
	"workwise/internal/storage"
)

func newTestService(t *testing.T, opts Options) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if opts.Locale == nil {
		opts.Locale = locale.Static{LangTag: "en-US"}
	}
	return NewService(db, opts)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.AddToWishlist(ctx, "workwise-mini-guide"); err != nil {
			t.Fatalf("add #%d: %v", i+1, err)
		}
	}
	ids, err := svc.Wishlist(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 1 || ids[0] != "workwise-mini-guide" {
		t.Fatalf("wishlist=%v, want single workwise-mini-guide", ids)
	}
}

func TestCheckoutINREndToEnd(t *testing.T) {
	provider := payment.NewSimulated(payment.Approval{PayerName: "Ravi", PayerEmail: "ravi@example.com"}, nil)
	svc := newTestService(t, Options{Provider: provider})
	ctx := context.Background()

	if err := svc.SetCurrency(ctx, "INR"); err != nil {
		t.Fatalf("set currency: %v", err)
	}

	order, err := svc.Checkout(ctx)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Currency != "INR" {
		t.Fatalf("currency=%q, want INR", order.Currency)
	}
	if !strings.Contains(order.AmountDisplay, "1577") {
		t.Fatalf("display=%q, want the 19*83 scaled value", order.AmountDisplay)
	}
	if order.Status != storage.StatusCompleted || order.Provider != "simulated" {
		t.Fatalf("status=%q provider=%q", order.Status, order.Provider)
	}
	if order.Payer == nil || order.Payer.Name != "Ravi" {
		t.Fatalf("payer=%+v, want Ravi", order.Payer)
	}

	orders, err := svc.Orders(ctx)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("orders=%d, want exactly the recorded one", len(orders))
	}
}

func TestCheckoutDeclineRecordsNothing(t *testing.T) {
	provider := payment.NewSimulated(payment.Approval{}, nil)
	provider.Decline = true
	svc := newTestService(t, Options{Provider: provider})
	ctx := context.Background()

	if _, err := svc.Checkout(ctx); !errors.Is(err, payment.ErrDeclined) {
		t.Fatalf("checkout err=%v, want ErrDeclined", err)
	}
	orders, err := svc.Orders(ctx)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("declined charge recorded %d orders", len(orders))
	}
}

func TestCheckoutWithoutProvider(t *testing.T) {
	svc := newTestService(t, Options{})
	if _, err := svc.Checkout(context.Background()); !errors.Is(err, ErrPaymentUnavailable) {
		t.Fatalf("err=%v, want ErrPaymentUnavailable", err)
	}
}

// blockingProvider parks Await until released, to exercise the overlap
// guard.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Name() string { return "simulated" }

func (p *blockingProvider) CreateCharge(ctx context.Context, amountUSD float64, description string) (*payment.Charge, error) {
	return &payment.Charge{ID: "blk-1", AmountUSD: amountUSD, Description: description}, nil
}

func (p *blockingProvider) Await(ctx context.Context, c *payment.Charge) (payment.Approval, error) {
	close(p.started)
	<-p.release
	return payment.Approval{}, nil
}

func TestOverlappingCheckoutRejected(t *testing.T) {
	provider := &blockingProvider{started: make(chan struct{}), release: make(chan struct{})}
	svc := newTestService(t, Options{Provider: provider})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Checkout(ctx)
		done <- err
	}()
	<-provider.started

	if _, err := svc.Checkout(ctx); !errors.Is(err, ErrBusy) {
		t.Fatalf("overlapping checkout err=%v, want ErrBusy", err)
	}

	close(provider.release)
	if err := <-done; err != nil {
		t.Fatalf("first checkout: %v", err)
	}
	orders, err := svc.Orders(ctx)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("orders=%d, want 1", len(orders))
	}
}

func TestPreorderIsReserved(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	order, err := svc.Preorder(ctx)
	if err != nil {
		t.Fatalf("preorder: %v", err)
	}
	if order.Provider != storage.ProviderPreorder || order.Status != storage.StatusReserved {
		t.Fatalf("provider=%q status=%q", order.Provider, order.Status)
	}
	if order.Currency != "USD" || !strings.Contains(order.AmountDisplay, "$") {
		t.Fatalf("en-US preorder rendered as %q %q", order.Currency, order.AmountDisplay)
	}
}

func TestSignInThenBookCrossLinksProfile(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	if _, err := svc.SignIn(ctx, "Priya", "India"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	booking, err := svc.Book(ctx, 2, "Priya", "2025-01-01")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if booking.Status != storage.BookingStatusPending {
		t.Fatalf("status=%q, want Pending", booking.Status)
	}
	if booking.WorkerName != "Ravi Kumar" || booking.Country != "India" {
		t.Fatalf("booking=%+v", booking)
	}

	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Bookings != 1 {
		t.Fatalf("profile.Bookings=%d, want 1", p.Bookings)
	}
	if len(p.Activities) == 0 ||
		!strings.Contains(p.Activities[0], "Ravi Kumar") ||
		!strings.Contains(p.Activities[0], "2025-01-01") {
		t.Fatalf("activities=%v, want worker name and date first", p.Activities)
	}
}

func TestBookUnknownWorkerWritesNothing(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	_, err := svc.Book(ctx, 999, "Alice", "2025-01-01")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
	bookings, err := svc.Bookings(ctx)
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("unknown worker persisted %d bookings", len(bookings))
	}
}

func TestBookMissingInputs(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	var mf MissingFieldError
	if _, err := svc.Book(ctx, 1, "", "2025-01-01"); !errors.As(err, &mf) {
		t.Fatalf("empty customer err=%v, want MissingFieldError", err)
	}
	if _, err := svc.Book(ctx, 1, "Alice", "  "); !errors.As(err, &mf) {
		t.Fatalf("empty date err=%v, want MissingFieldError", err)
	}
	bookings, _ := svc.Bookings(ctx)
	if len(bookings) != 0 {
		t.Fatalf("invalid input persisted %d bookings", len(bookings))
	}
}

func TestBookWithoutProfileSkipsCrossLink(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	if _, err := svc.Book(ctx, 1, "Walk-in", "2025-02-02"); err != nil {
		t.Fatalf("book: %v", err)
	}
	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p != nil {
		t.Fatalf("guest booking created a profile: %+v", p)
	}
}

func TestTrackerToggleIsExact(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	milk, err := svc.AddTask(ctx, "buy milk")
	if err != nil {
		t.Fatalf("add milk: %v", err)
	}
	bread, err := svc.AddTask(ctx, "buy bread")
	if err != nil {
		t.Fatalf("add bread: %v", err)
	}

	today, day, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(day.Tasks) != 2 || day.Tasks[0].ID != bread.ID {
		t.Fatalf("today=%+v, want bread first", day.Tasks)
	}

	flipped, err := svc.ToggleTask(ctx, today, milk.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !flipped {
		t.Fatalf("toggle reported no-op for a known id")
	}

	_, day, err = svc.Today(ctx)
	if err != nil {
		t.Fatalf("today after toggle: %v", err)
	}
	for _, task := range day.Tasks {
		switch task.ID {
		case milk.ID:
			if !task.Done {
				t.Fatalf("milk not done after toggle")
			}
		case bread.ID:
			if task.Done {
				t.Fatalf("bread flipped by someone else's toggle")
			}
		}
	}

	flipped, err = svc.ToggleTask(ctx, today, "no-such-id")
	if err != nil {
		t.Fatalf("toggle unknown: %v", err)
	}
	if flipped {
		t.Fatalf("unknown id reported a flip")
	}
	flipped, err = svc.ToggleTask(ctx, "1999-12-31", milk.ID)
	if err != nil {
		t.Fatalf("toggle unknown date: %v", err)
	}
	if flipped {
		t.Fatalf("unknown date reported a flip")
	}
}

func TestProfileMergeIsFieldWise(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	if _, err := svc.SignIn(ctx, "  Priya  ", "India"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	dob := "1994-06-01"
	p, err := svc.SaveProfile(ctx, ProfileUpdate{DOB: &dob})
	if err != nil {
		t.Fatalf("save dob: %v", err)
	}
	if p.Name != "Priya" || p.Country != "India" || p.DOB != dob {
		t.Fatalf("merged profile=%+v", p)
	}
	if p.UpdatedAt.IsZero() {
		t.Fatalf("updatedAt not stamped")
	}

	if err := svc.ClearProfile(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	p, err = svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile after clear: %v", err)
	}
	if p != nil {
		t.Fatalf("profile survives clear: %+v", p)
	}
	if p.DisplayName() != "Guest" {
		t.Fatalf("guest display name=%q", p.DisplayName())
	}
}

func TestAttachPhotoEmbedsDataURI(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	// Minimal PNG header.
	path := filepath.Join(t.TempDir(), "avatar.png")
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		t.Fatalf("write photo: %v", err)
	}

	p, err := svc.AttachPhoto(ctx, path)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if !strings.HasPrefix(p.Photo, "data:image/png;base64,") {
		t.Fatalf("photo=%q, want a png data URI", p.Photo)
	}

	if _, err := svc.AttachPhoto(ctx, filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestContactAndLeadValidation(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	var mf MissingFieldError
	if err := svc.SendMessage(ctx, "A", "a@example.com", ""); !errors.As(err, &mf) {
		t.Fatalf("empty message err=%v, want MissingFieldError", err)
	}
	if err := svc.SendMessage(ctx, "A", "a@example.com", "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	msgs, err := svc.ContactRepo().Messages(ctx)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Message != "hello" {
		t.Fatalf("messages=%+v", msgs)
	}

	if err := svc.CaptureLead(ctx, " "); !errors.As(err, &mf) {
		t.Fatalf("empty lead err=%v, want MissingFieldError", err)
	}
	if err := svc.CaptureLead(ctx, "b@example.com"); err != nil {
		t.Fatalf("lead: %v", err)
	}
	leads, err := svc.ContactRepo().Leads(ctx)
	if err != nil {
		t.Fatalf("leads: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("leads=%d, want 1", len(leads))
	}
}

func TestPriceFollowsOverrideThenLocale(t *testing.T) {
	svc := newTestService(t, Options{Locale: locale.Static{LangTag: "ja-JP"}})
	ctx := context.Background()

	price, err := svc.Price(ctx)
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	if !strings.HasPrefix(price, "¥") || strings.Contains(price, ".") {
		t.Fatalf("ja-JP price=%q, want integer yen", price)
	}

	if err := svc.SetCurrency(ctx, "EUR"); err != nil {
		t.Fatalf("set currency: %v", err)
	}
	price, err = svc.Price(ctx)
	if err != nil {
		t.Fatalf("price after override: %v", err)
	}
	if !strings.HasPrefix(price, "€") {
		t.Fatalf("override price=%q, want euro", price)
	}
}
