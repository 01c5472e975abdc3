package http

import (
	"encoding/json"
	"net/http"

	"github.com/trippath/innkeeper/pkg/httpx"
	"github.com/trippath/innkeeper/pkg/stayapi"
)

// CartHandler proxies the signed-in user's shopping cart and checkout.
type CartHandler struct {
	Cookies httpx.CookieConfig
}

// HandleGetCart godoc
//
//	@Summary		Get Cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	Envelope	"cart"
//	@Failure		401	{object}	Envelope
//	@Router			/api/cart [get].
func (h *CartHandler) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := sessionFrom(r.Context()).Session().GetCart(r.Context())
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "ok", cart)
}

// HandleAddItem godoc
//
//	@Summary		Add Cart Item
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	Envelope	"cart"
//	@Failure		400	{object}	Envelope
//	@Failure		401	{object}	Envelope
//	@Router			/api/cart [post].
func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req stayapi.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := sessionFrom(r.Context()).Session().AddCartItem(r.Context(), req)
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "item added", cart)
}

// HandleRemoveItem godoc
//
//	@Summary		Remove Cart Item
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string	true	"Cart item ID"
//	@Success		200	{object}	Envelope	"cart"
//	@Failure		401	{object}	Envelope
//	@Router			/api/cart/items/{id} [delete].
func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := sessionFrom(r.Context()).Session().RemoveCartItem(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "item removed", cart)
}

// HandleCheckout godoc
//
//	@Summary		Checkout
//	@Description	Turns the current cart into a booking. Pricing and availability are decided upstream.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	Envelope	"booking"
//	@Failure		400	{object}	Envelope
//	@Failure		401	{object}	Envelope
//	@Router			/api/checkout [post].
func (h *CartHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req stayapi.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := sessionFrom(r.Context()).Session().Checkout(r.Context(), req)
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "booking created", booking)
}
