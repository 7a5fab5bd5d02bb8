package cart

import (
	"encoding/json"
	"fmt"

	"museum-shop/internal/model"

	"github.com/rs/zerolog"
)

// DefaultSlot is the storage slot name carts are persisted under.
const DefaultSlot = "cart"

// Store is a single-owner shopping cart: an ordered list of lines merged by
// object ID, persisted to its KV slot after every mutation and loaded back
// on construction.
type Store struct {
	kv     KV
	slot   string
	lines  []model.CartLine
	logger zerolog.Logger
}

// NewStore creates a cart store over the given KV slot, restoring any
// previously persisted contents.
func NewStore(kv KV, slot string, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		kv:     kv,
		slot:   slot,
		logger: logger.With().Str("component", "cart").Logger(),
	}

	raw, ok, err := kv.Get(slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.lines); err != nil {
			return nil, fmt.Errorf("failed to decode persisted cart: %w", err)
		}
		s.logger.Debug().Int("lines", len(s.lines)).Msg("restored persisted cart")
	}

	return s, nil
}

// Add puts quantity units of item into the cart. Adding an object ID already
// present increments that line instead of duplicating it. Quantities below
// one are treated as one; no upper bound is enforced.
func (s *Store) Add(item model.MerchandiseItem, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	merged := false
	for i := range s.lines {
		if s.lines[i].ObjectID == item.ObjectID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, model.CartLine{MerchandiseItem: item, Quantity: quantity})
	}

	return s.save()
}

// Remove deletes the line with the given object ID. Removing an absent ID is
// a no-op, not an error.
func (s *Store) Remove(objectID int) error {
	for i := range s.lines {
		if s.lines[i].ObjectID == objectID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Total returns the sum of price times quantity over all lines. The value is
// not rounded; two-digit formatting is a display concern.
func (s *Store) Total() float64 {
	var total float64
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count returns the sum of quantities, used for the cart badge.
func (s *Store) Count() int {
	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Clear empties the cart and its persisted slot, invoked after a successful
// order submission.
func (s *Store) Clear() error {
	s.lines = nil
	if err := s.kv.Delete(s.slot); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	s.logger.Debug().Msg("cart cleared")
	return nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (s *Store) Lines() []model.CartLine {
	lines := make([]model.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// save persists the current lines into the KV slot.
func (s *Store) save() error {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.kv.Put(s.slot, raw); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
