package stayapi

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

type bookingListEnvelope struct {
	Envelope
	Data []Booking `json:"data"`
}

type receiptEnvelope struct {
	Envelope
	Data ReceiptUploadResult `json:"data"`
}

// ListBookings fetches the booking history for the authenticated user.
func (s *Session) ListBookings(ctx context.Context) ([]Booking, error) {
	var env bookingListEnvelope
	if err := s.getJSON(ctx, "/bookings", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetBooking fetches a single booking's detail.
func (s *Session) GetBooking(ctx context.Context, bookingID string) (*Booking, error) {
	var env bookingEnvelope
	if err := s.getJSON(ctx, "/bookings/"+url.PathEscape(bookingID), &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UploadReceipt streams a payment receipt file to the upstream as a
// multipart form. The multipart content type (with its boundary) is passed
// through untouched; the gateway never forces JSON onto form bodies.
func (s *Session) UploadReceipt(
	ctx context.Context,
	bookingID, filename string,
	file io.Reader,
) (*ReceiptUploadResult, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("receipt", filename)
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(writer.Close())
	}()

	headers := map[string]string{
		"Content-Type": writer.FormDataContentType(),
	}

	resp, err := s.Do(
		ctx,
		http.MethodPost,
		"/bookings/"+url.PathEscape(bookingID)+"/receipt",
		pr,
		headers,
	)
	if err != nil {
		return nil, err
	}

	var env receiptEnvelope
	if err := decodeJSON(resp, &env, http.StatusOK); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// DownloadInvoice fetches the rendered invoice document for a booking. The
// raw response is returned so the caller can stream the bytes and propagate
// the upstream content type; the invoice itself is rendered upstream.
// The caller owns closing the response body.
func (s *Session) DownloadInvoice(ctx context.Context, bookingID string) (*http.Response, error) {
	resp, err := s.Do(
		ctx,
		http.MethodGet,
		"/bookings/"+url.PathEscape(bookingID)+"/invoice",
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %w", readErr)
		}
		return nil, parseErrorResponse(resp, bodyBytes)
	}

	return resp, nil
}
