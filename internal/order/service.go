package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"museum-shop/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StatusConfirmed is the only order status in this system; there is no
// state machine and no transitions.
const StatusConfirmed = "confirmed"

// idPrefix starts every generated order identifier.
const idPrefix = "ORD"

// Service defines operations for order intake.
type Service interface {
	// Submit validates and records a proposed order, returning a receipt.
	Submit(ctx context.Context, req *model.OrderRequest) (*model.OrderReceipt, error)

	// List returns summaries of every recorded order.
	List(ctx context.Context) ([]model.OrderSummary, error)
}

// orderService implements Service over an injectable order store.
type orderService struct {
	store    Store
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewService creates a new order service.
func NewService(store Store, logger zerolog.Logger) Service {
	return &orderService{
		store:    store,
		validate: validator.New(),
		logger:   logger.With().Str("service", "order").Logger(),
	}
}

// Submit validates and records a proposed order. Customer fields are checked
// for structural presence only; the declared total is stored as submitted,
// never recomputed. No partial order is recorded on failure.
func (s *orderService) Submit(ctx context.Context, req *model.OrderRequest) (*model.OrderReceipt, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	// Deep snapshot of the submitted lines: later cart mutations must not
	// affect the stored order.
	items := make([]model.OrderLine, len(req.Items))
	copy(items, req.Items)

	order := &model.Order{
		ID:        newOrderID(),
		Customer:  *req.Customer,
		Items:     items,
		Total:     req.Total,
		Timestamp: time.Now().UTC(),
		Status:    StatusConfirmed,
	}

	if err := s.store.Append(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to record order")
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created")

	return &model.OrderReceipt{
		Success: true,
		OrderID: order.ID,
		Message: "Order placed successfully",
	}, nil
}

// List returns summaries of every recorded order, in append order. There is
// no pagination, filtering, or access control.
func (s *orderService) List(ctx context.Context) ([]model.OrderSummary, error) {
	orders, err := s.store.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	summaries := make([]model.OrderSummary, len(orders))
	for i, o := range orders {
		count := 0
		for _, item := range o.Items {
			count += item.Quantity
		}
		summaries[i] = model.OrderSummary{
			ID:        o.ID,
			Total:     o.Total,
			Timestamp: o.Timestamp,
			Status:    o.Status,
			ItemCount: count,
		}
	}

	return summaries, nil
}

// validateRequest checks the structural shape of a submission: items must be
// present and every customer field non-empty. Email format, address validity
// and the like are accepted as-is.
func (s *orderService) validateRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.ErrMissingItems
	}

	if len(req.Items) == 0 {
		s.logger.Warn().Msg("order submitted without items")
		return model.ErrMissingItems
	}

	if req.Customer == nil {
		s.logger.Warn().Msg("order submitted without customer record")
		return model.ErrMissingCustomer
	}

	if err := s.validate.Struct(req.Customer); err != nil {
		s.logger.Warn().Err(err).Msg("order submitted with incomplete customer record")
		return model.ErrMissingCustomer
	}

	return nil
}

// newOrderID generates an order identifier with a time-derived component and
// a random suffix, making collisions negligible.
func newOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", idPrefix, time.Now().UnixMilli(), suffix)
}
