package storage

import "time"

// Profile is the single demo-user record. Absent means "guest".
type Profile struct {
	Name       string    `json:"name"`
	Country    string    `json:"country"`
	DOB        string    `json:"dob"`
	Photo      string    `json:"photo"` // data URI
	Bookings   int       `json:"bookings"`
	Completed  int       `json:"completed"`
	Earnings   float64   `json:"earnings"`
	Activities []string  `json:"activities"` // newest first
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DisplayName is the render-time fallback; storage keeps the name verbatim.
func (p *Profile) DisplayName() string {
	if p == nil || p.Name == "" {
		return "Guest"
	}
	return p.Name
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	PriceUSD  float64 `json:"priceUSD"`
	Qty       int     `json:"qty"`
}

type Payer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Order is one recorded transaction. Orders are never mutated or deleted.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	AmountUSD     float64     `json:"amountUSD"`
	AmountDisplay string      `json:"amountDisplay"`
	Currency      string      `json:"currency"`
	Provider      string      `json:"paymentProvider"` // simulated | paypal | preorder
	Status        string      `json:"paymentStatus"`   // completed | reserved
	CreatedAt     time.Time   `json:"createdAt"`
	Payer         *Payer      `json:"payer,omitempty"`
}

const (
	ProviderSimulated = "simulated"
	ProviderPayPal    = "paypal"
	ProviderPreorder  = "preorder"

	StatusCompleted = "completed"
	StatusReserved  = "reserved"
)

// Booking is one worker-booking request. "Pending" is the only status the
// system ever produces.
type Booking struct {
	ID         int64   `json:"id"` // unix milliseconds at creation
	WorkerID   int     `json:"workerId"`
	WorkerName string  `json:"workerName"`
	Customer   string  `json:"customer"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	PriceUSD   float64 `json:"priceUSD"`
	Country    string  `json:"country"`
}

const BookingStatusPending = "Pending"

type TrackerTask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// TrackerDay is one calendar day's bucket, keyed by "2006-01-02".
type TrackerDay struct {
	Tasks []TrackerTask `json:"tasks"` // newest first
	Notes string        `json:"notes"`
}

type ContactMessage struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Lead is one captured email from the free-guide flow.
type Lead struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
