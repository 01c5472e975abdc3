package http

import (
	"net/http"
	"strconv"

	"github.com/trippath/innkeeper/pkg/httpx"
	"github.com/trippath/innkeeper/pkg/stayapi"
)

// CatalogueHandler proxies the public hotel catalogue. No session is
// involved; browsing works signed out.
type CatalogueHandler struct {
	Client  *stayapi.Client
	Cookies httpx.CookieConfig
}

// HandleListHotels godoc
//
//	@Summary		Search Hotels
//	@Description	Lists hotels, optionally filtered by city, stay dates, and guest count.
//	@Tags			Catalogue
//	@Produce		json
//	@Param			city		query		string	false	"City filter"
//	@Param			check_in	query		string	false	"Check-in date (YYYY-MM-DD)"
//	@Param			check_out	query		string	false	"Check-out date (YYYY-MM-DD)"
//	@Param			guests		query		int		false	"Guest count"
//	@Success		200			{object}	Envelope	"hotels"
//	@Router			/api/hotels [get].
func (h *CatalogueHandler) HandleListHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	guests, _ := strconv.Atoi(q.Get("guests"))

	hotels, err := h.Client.ListHotels(r.Context(), stayapi.HotelSearch{
		City:     q.Get("city"),
		CheckIn:  q.Get("check_in"),
		CheckOut: q.Get("check_out"),
		Guests:   guests,
	})
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "ok", hotels)
}

// HandleGetHotel godoc
//
//	@Summary		Hotel Detail
//	@Tags			Catalogue
//	@Produce		json
//	@Param			id	path		string	true	"Hotel ID"
//	@Success		200	{object}	Envelope	"hotel"
//	@Failure		404	{object}	Envelope
//	@Router			/api/hotels/{id} [get].
func (h *CatalogueHandler) HandleGetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Client.GetHotel(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "ok", hotel)
}

// HandleListRooms godoc
//
//	@Summary		Hotel Rooms
//	@Tags			Catalogue
//	@Produce		json
//	@Param			id	path		string	true	"Hotel ID"
//	@Success		200	{object}	Envelope	"rooms"
//	@Router			/api/hotels/{id}/rooms [get].
func (h *CatalogueHandler) HandleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Client.ListHotelRooms(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "ok", rooms)
}

// HandleGetRoom godoc
//
//	@Summary		Room Detail
//	@Tags			Catalogue
//	@Produce		json
//	@Param			id	path		string	true	"Room ID"
//	@Success		200	{object}	Envelope	"room"
//	@Failure		404	{object}	Envelope
//	@Router			/api/rooms/{id} [get].
func (h *CatalogueHandler) HandleGetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Client.GetRoom(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "ok", room)
}
