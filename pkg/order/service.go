package order

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Notifier delivers customer emails for order events. Implementations
// must not block the caller; delivery failures are reported out of band
// (logged), never returned here.
type Notifier interface {
	OrderConfirmation(o Order)
	StatusUpdate(o Order, message string)
	Enabled() bool
}

// Service owns the order lifecycle rules: creation, status transitions,
// and the communication log. It mutates orders through the Repository
// and fires notifications through the Notifier.
type Service struct {
	repo     Repository
	notifier Notifier
	lastID   atomic.Int64
}

// NewService creates a lifecycle service over the given store.
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// nextID issues a time-based order id, strictly increasing within the
// process even when two orders land in the same millisecond.
func (s *Service) nextID() string {
	for {
		now := time.Now().UnixMilli()
		last := s.lastID.Load()
		if now <= last {
			now = last + 1
		}
		if s.lastID.CompareAndSwap(last, now) {
			return "AD" + strconv.FormatInt(now, 10)
		}
	}
}

// CreateOrder validates in, stores a new order with a computed total and
// status "new", and fires a confirmation email without waiting for it.
// On any constraint violation it returns a *ValidationError and stores
// nothing.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (Order, error) {
	if err := in.Validate(); err != nil {
		return Order{}, err
	}

	items := make([]Item, len(in.Items))
	total := 0.0
	for i, it := range in.Items {
		items[i] = Item{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity}
		total += it.Price * float64(it.Quantity)
	}

	o := Order{
		ID:                  s.nextID(),
		CustomerName:        in.CustomerName,
		CustomerPhone:       in.CustomerPhone,
		CustomerEmail:       in.CustomerEmail,
		CustomerAddress:     in.CustomerAddress,
		DeliveryTime:        in.DeliveryTime,
		SpecialInstructions: in.SpecialInstructions,
		Items:               items,
		Total:               total,
		Status:              StatusNew,
		Timestamp:           time.Now().Format(time.RFC3339),
		Messages:            []Message{},
	}

	if err := s.repo.Insert(ctx, o); err != nil {
		return Order{}, err
	}
	s.notifier.OrderConfirmation(o)
	return o, nil
}

// GetOrder fetches one order by id.
func (s *Service) GetOrder(ctx context.Context, id string) (Order, error) {
	return s.repo.Get(ctx, id)
}

// ListOrders returns all orders, most-recently-created first.
func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves an order to status, stamping UpdatedAt. There is no
// transition table: any status may move to any other. If message is
// non-empty a "status_update" entry is appended to the communication log
// and a status-update email is fired without waiting for it.
//
// An unknown order id yields ErrNotFound even when the status is also
// invalid; ErrInvalidStatus is only reported for orders that exist.
func (s *Service) UpdateStatus(ctx context.Context, id, status, message string) (Order, error) {
	st := Status(status)
	o, err := s.repo.Update(ctx, id, func(o *Order) error {
		if !st.Valid() {
			return ErrInvalidStatus
		}
		o.Status = st
		o.UpdatedAt = time.Now().Format(time.RFC3339)
		if message != "" {
			o.Messages = append(o.Messages, Message{
				ID:        uuid.NewString(),
				Type:      MessageTypeStatusUpdate,
				Content:   message,
				Timestamp: time.Now().Format(time.RFC3339),
			})
		}
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	if message != "" {
		s.notifier.StatusUpdate(o, message)
	}
	return o, nil
}

// AppendMessage adds a manual entry to an order's communication log and
// returns it. No notification is tied to this path.
func (s *Service) AppendMessage(ctx context.Context, id, typ, content string) (Message, error) {
	m, _, err := s.appendMessage(ctx, id, typ, content)
	return m, err
}

func (s *Service) appendMessage(ctx context.Context, id, typ, content string) (Message, Order, error) {
	if typ == "" || content == "" {
		ve := &ValidationError{}
		if typ == "" {
			ve.Fields = append(ve.Fields, FieldError{Field: "type", Message: "is required"})
		}
		if content == "" {
			ve.Fields = append(ve.Fields, FieldError{Field: "content", Message: "is required"})
		}
		return Message{}, Order{}, ve
	}

	m := Message{
		ID:        uuid.NewString(),
		Type:      typ,
		Content:   content,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	o, err := s.repo.Update(ctx, id, func(o *Order) error {
		o.Messages = append(o.Messages, m)
		return nil
	})
	if err != nil {
		return Message{}, Order{}, err
	}
	return m, o, nil
}

// SendMessage is the vendor-side variant of AppendMessage: it also fires
// a notification email carrying the message content. The returned flag
// reports whether a delivery was actually dispatched (false when the
// mail transport is unconfigured).
func (s *Service) SendMessage(ctx context.Context, id, typ, content string) (Message, bool, error) {
	m, o, err := s.appendMessage(ctx, id, typ, content)
	if err != nil {
		return Message{}, false, err
	}
	sent := s.notifier.Enabled()
	if sent {
		s.notifier.StatusUpdate(o, content)
	}
	return m, sent, nil
}
