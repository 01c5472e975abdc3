package stayapi

import (
	"context"
	"net/http"
	"net/url"
)

// Cart operations. The cart lives upstream and all pricing/availability math
// happens there; the session only carries the calls.

type cartEnvelope struct {
	Envelope
	Data Cart `json:"data"`
}

type bookingEnvelope struct {
	Envelope
	Data Booking `json:"data"`
}

// GetCart fetches the current shopping cart.
func (s *Session) GetCart(ctx context.Context) (*Cart, error) {
	var env cartEnvelope
	if err := s.getJSON(ctx, "/cart", &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// AddCartItem adds a room reservation line to the cart and returns the
// updated cart.
func (s *Session) AddCartItem(ctx context.Context, item AddCartItemRequest) (*Cart, error) {
	var env cartEnvelope
	if err := s.sendJSON(ctx, http.MethodPost, "/cart", item, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// RemoveCartItem removes one line from the cart and returns the updated cart.
func (s *Session) RemoveCartItem(ctx context.Context, itemID string) (*Cart, error) {
	var env cartEnvelope
	if err := s.sendJSON(ctx, http.MethodDelete, "/cart/items/"+url.PathEscape(itemID), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Checkout converts the current cart into a booking. The upstream owns the
// booking state machine; a successful response starts in whatever state the
// platform assigns (typically pending payment).
func (s *Session) Checkout(ctx context.Context, req CheckoutRequest) (*Booking, error) {
	var env bookingEnvelope
	if err := s.sendJSON(ctx, http.MethodPost, "/checkout", req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
