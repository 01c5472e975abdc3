package http

import (
	"io"
	"net/http"

	"github.com/trippath/innkeeper/pkg/httpx"
	"github.com/trippath/innkeeper/pkg/slogx"
)

// maxReceiptBytes bounds receipt uploads before they are streamed upstream.
const maxReceiptBytes = 10 << 20

// BookingsHandler proxies booking history, receipt uploads, and invoice
// downloads.
type BookingsHandler struct {
	Cookies httpx.CookieConfig
}

// HandleList godoc
//
//	@Summary		List Bookings
//	@Tags			Bookings
//	@Produce		json
//	@Success		200	{object}	Envelope	"bookings"
//	@Failure		401	{object}	Envelope
//	@Router			/api/bookings [get].
func (h *BookingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	bookings, err := sessionFrom(r.Context()).Session().ListBookings(r.Context())
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "ok", bookings)
}

// HandleGet godoc
//
//	@Summary		Booking Detail
//	@Tags			Bookings
//	@Produce		json
//	@Param			id	path		string	true	"Booking ID"
//	@Success		200	{object}	Envelope	"booking"
//	@Failure		401	{object}	Envelope
//	@Failure		404	{object}	Envelope
//	@Router			/api/bookings/{id} [get].
func (h *BookingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	booking, err := sessionFrom(r.Context()).Session().GetBooking(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "ok", booking)
}

// HandleUploadReceipt godoc
//
//	@Summary		Upload Payment Receipt
//	@Description	Accepts a multipart receipt file and streams it to the upstream API unchanged.
//	@Tags			Bookings
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Booking ID"
//	@Param			receipt	formData	file	true	"Receipt file"
//	@Success		200		{object}	Envelope	"upload result"
//	@Failure		400		{object}	Envelope
//	@Failure		401		{object}	Envelope
//	@Router			/api/bookings/{id}/receipt [post].
func (h *BookingsHandler) HandleUploadReceipt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptBytes)

	file, header, err := r.FormFile("receipt")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "receipt file is required")
		return
	}
	defer file.Close()

	result, err := sessionFrom(r.Context()).Session().UploadReceipt(
		r.Context(), r.PathValue("id"), header.Filename, file,
	)
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	respondData(w, http.StatusOK, "receipt uploaded", result)
}

// HandleDownloadInvoice godoc
//
//	@Summary		Download Invoice
//	@Description	Streams the upstream-rendered invoice document to the browser.
//	@Tags			Bookings
//	@Produce		application/pdf
//	@Param			id	path	string	true	"Booking ID"
//	@Success		200	{file}		binary
//	@Failure		401	{object}	Envelope
//	@Failure		404	{object}	Envelope
//	@Router			/api/bookings/{id}/invoice [get].
func (h *BookingsHandler) HandleDownloadInvoice(w http.ResponseWriter, r *http.Request) {
	resp, err := sessionFrom(r.Context()).Session().DownloadInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.Cookies, err)
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		w.Header().Set("Content-Disposition", cd)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		slogx.FromContext(r.Context()).Warn("invoice stream interrupted", "error", err)
	}
}
