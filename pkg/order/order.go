// Package order holds the bakery's order domain: the order record, its
// status lifecycle, the storage contract, and the lifecycle service.
package order

import (
	"context"
	"errors"
)

// Status tracks the fulfillment stage of an order. Any status may move
// to any other status, including itself.
type Status string

const (
	StatusNew       Status = "new"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every member of the closed status set.
var Statuses = []Status{StatusNew, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Item is a single line of an order.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Message is a timestamped note on an order's communication log. Type is
// either a caller-supplied tag (e.g. "email", "whatsapp") or the
// synthetic "status_update" emitted when a status change carries a message.
type Message struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// MessageTypeStatusUpdate marks messages appended automatically by a
// status change.
const MessageTypeStatusUpdate = "status_update"

// Order represents a customer purchase order. Timestamps are ISO-8601
// strings; UpdatedAt is empty until the first status change. Total is
// computed once at creation and never recomputed.
type Order struct {
	ID                  string    `json:"id"`
	CustomerName        string    `json:"customerName"`
	CustomerPhone       string    `json:"customerPhone"`
	CustomerEmail       string    `json:"customerEmail"`
	CustomerAddress     string    `json:"customerAddress"`
	DeliveryTime        string    `json:"deliveryTime"`
	SpecialInstructions string    `json:"specialInstructions"`
	Items               []Item    `json:"items"`
	Total               float64   `json:"total"`
	Status              Status    `json:"status"`
	Timestamp           string    `json:"timestamp"`
	UpdatedAt           string    `json:"updatedAt,omitempty"`
	Messages            []Message `json:"messages"`
}

// Repository defines behavior for keeping orders. List returns orders
// most-recently-created first; Insert adds at the front. Update applies
// fn to the stored order under the store's lock, so a read-modify-write
// cannot interleave with another mutation of the same order; if fn
// returns an error the order is left unmodified.
type Repository interface {
	Insert(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Replace(ctx context.Context, o Order) error
	Update(ctx context.Context, id string, fn func(*Order) error) (Order, error)
}

var (
	// ErrNotFound indicates the requested order does not exist.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidStatus indicates a status outside the closed set.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrDuplicateID indicates an insert with an id already in the store.
	ErrDuplicateID = errors.New("duplicate order id")
)
