package stayapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Catalogue browsing. These endpoints are public upstream, so they hang off
// the Client rather than a Session.

type hotelListEnvelope struct {
	Envelope
	Data []Hotel `json:"data"`
}

type hotelEnvelope struct {
	Envelope
	Data Hotel `json:"data"`
}

type roomListEnvelope struct {
	Envelope
	Data []Room `json:"data"`
}

type roomEnvelope struct {
	Envelope
	Data Room `json:"data"`
}

// ListHotels searches the hotel catalogue. Zero-valued filters are omitted
// from the query so the upstream applies its own defaults.
func (c *Client) ListHotels(ctx context.Context, search HotelSearch) ([]Hotel, error) {
	query := url.Values{}
	if search.City != "" {
		query.Set("city", search.City)
	}
	if search.CheckIn != "" {
		query.Set("check_in", search.CheckIn)
	}
	if search.CheckOut != "" {
		query.Set("check_out", search.CheckOut)
	}
	if search.Guests > 0 {
		query.Set("guests", strconv.Itoa(search.Guests))
	}

	path := "/hotels"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var env hotelListEnvelope
	if err := decodeJSON(resp, &env, http.StatusOK); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetHotel fetches a single hotel's detail.
func (c *Client) GetHotel(ctx context.Context, hotelID string) (*Hotel, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/hotels/"+url.PathEscape(hotelID), nil, nil)
	if err != nil {
		return nil, err
	}

	var env hotelEnvelope
	if err := decodeJSON(resp, &env, http.StatusOK); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ListHotelRooms fetches the room types of a hotel.
func (c *Client) ListHotelRooms(ctx context.Context, hotelID string) ([]Room, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/hotels/"+url.PathEscape(hotelID)+"/rooms", nil, nil)
	if err != nil {
		return nil, err
	}

	var env roomListEnvelope
	if err := decodeJSON(resp, &env, http.StatusOK); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetRoom fetches a single room's detail.
func (c *Client) GetRoom(ctx context.Context, roomID string) (*Room, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/rooms/"+url.PathEscape(roomID), nil, nil)
	if err != nil {
		return nil, err
	}

	var env roomEnvelope
	if err := decodeJSON(resp, &env, http.StatusOK); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
