package bill

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a bill.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// Category classifies a recurring bill. CategoryCustom requires a CustomLabel.
type Category string

const (
	CategoryUtilities      Category = "utilities"
	CategoryRent           Category = "rent"
	CategoryInsurance      Category = "insurance"
	CategorySubscriptions  Category = "subscriptions"
	CategoryInternet       Category = "internet"
	CategoryPhone          Category = "phone"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryHealthcare     Category = "healthcare"
	CategoryEntertainment  Category = "entertainment"
	CategoryOther          Category = "other"
	CategoryCustom         Category = "custom"
)

// ErrCustomLabelRequired is returned when a custom-category bill has no label.
var ErrCustomLabelRequired = errors.New("custom label is required when category is custom")

// Payment is one entry in a bill's payment history.
type Payment struct {
	PaidDate time.Time
	Amount   float64
	Method   string
	Notes    string
}

// Bill represents a recurring obligation. IsActive=false marks soft deletion;
// inactive bills never participate in analytics.
type Bill struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Amount         float64
	Category       Category
	CustomLabel    string
	DueDate        time.Time
	Status         Status
	IsActive       bool
	PaymentHistory []Payment
	CreatedAt      time.Time
}

// Validate enforces the custom-label rule.
func (b *Bill) Validate() error {
	if b.Category == CategoryCustom && b.CustomLabel == "" {
		return ErrCustomLabelRequired
	}

	return nil
}

// Label returns the display label for the bill's category.
func (b *Bill) Label() string {
	if b.Category == CategoryCustom && b.CustomLabel != "" {
		return b.CustomLabel
	}

	return string(b.Category)
}
