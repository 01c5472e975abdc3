package gateway_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// envelope mirrors the gateway's response wrapper.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TestBookingJourney walks the whole guest flow against the real stack:
// login, browse the catalogue, fill the cart, check out, upload a payment
// receipt, download the invoice, and log out.
func TestBookingJourney(t *testing.T) {
	t.Parallel()

	up := newUpstream(t)
	baseURL, client, _ := startGateway(t, up)

	login(t, baseURL, client)

	// Session endpoint reflects the logged-in user.
	var sessionEnv envelope
	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/auth/session", &sessionEnv))
	var session struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(sessionEnv.Data, &session))
	require.Equal(t, testUsername, session.User.Username)

	// Browse hotels and rooms. Catalogue endpoints are public.
	var hotelsEnv envelope
	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/hotels", &hotelsEnv))
	var hotels []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(hotelsEnv.Data, &hotels))
	require.Len(t, hotels, 2)

	var roomsEnv envelope
	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/hotels/h-1/rooms", &roomsEnv))

	// Add a room to the cart and read it back.
	addBody := `{"room_id":"room-1","check_in":"2026-09-05","check_out":"2026-09-07","guests":2}`
	var cartEnv envelope
	require.Equal(t, http.StatusOK, postJSON(t, client, baseURL+"/api/cart", addBody, &cartEnv))
	var cart struct {
		Items []json.RawMessage `json:"items"`
		Total int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(cartEnv.Data, &cart))
	require.Len(t, cart.Items, 1)
	require.Equal(t, int64(36000), cart.Total)

	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/cart", &cartEnv))

	// Checkout converts the cart into a booking.
	checkoutBody := `{"guest_name":"Alice Nguyen","guest_email":"alice@example.com"}`
	var bookingEnv envelope
	require.Equal(t, http.StatusOK, postJSON(t, client, baseURL+"/api/checkout", checkoutBody, &bookingEnv))
	var booking struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(bookingEnv.Data, &booking))
	require.Equal(t, "bk-1", booking.ID)
	require.Equal(t, "pending_payment", booking.Status)

	// The upstream cart is drained after checkout.
	up.mu.Lock()
	require.Empty(t, up.cart)
	up.mu.Unlock()

	var listEnv envelope
	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/bookings", &listEnv))

	// Upload the bank transfer receipt; the stub records the filename.
	status := uploadReceipt(t, client, baseURL+"/api/bookings/bk-1/receipt", "transfer.jpg", "jpeg-bytes")
	require.Equal(t, http.StatusOK, status)
	up.mu.Lock()
	require.Equal(t, "transfer.jpg", up.receipts["bk-1"])
	up.mu.Unlock()

	// The invoice streams through untouched.
	resp, err := client.Get(baseURL + "/api/bookings/bk-1/invoice")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(pdf), "invoice bk-1")

	// Profile reads work through the same session.
	var profileEnv envelope
	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/profile", &profileEnv))

	// Logout, then the session endpoint rejects us.
	require.Equal(t, http.StatusOK, postJSON(t, client, baseURL+"/api/auth/logout", `{}`, nil))
	require.Equal(t, http.StatusUnauthorized, getJSON(t, client, baseURL+"/api/auth/session", nil))
}

// TestExpiredAccessTokenRefreshesTransparently logs in with an already
// expired access token and checks the first authenticated call triggers
// exactly one upstream refresh without surfacing to the browser.
func TestExpiredAccessTokenRefreshesTransparently(t *testing.T) {
	t.Parallel()

	up := newUpstream(t)
	up.setTokenTTL(-time.Minute)
	baseURL, client, _ := startGateway(t, up)

	login(t, baseURL, client)
	up.setTokenTTL(time.Hour)

	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/bookings", nil))
	require.Equal(t, int64(1), up.refreshCalls.Load())

	// The refreshed token is persisted; the next call stays local.
	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/bookings", nil))
	require.Equal(t, int64(1), up.refreshCalls.Load())
}

// TestExplicitRefreshRotatesCookies drives the refresh endpoint directly
// and checks both browser cookies rotate.
func TestExplicitRefreshRotatesCookies(t *testing.T) {
	t.Parallel()

	up := newUpstream(t)
	baseURL, client, _ := startGateway(t, up)

	login(t, baseURL, client)

	gatewayURL, err := url.Parse(baseURL)
	require.NoError(t, err)
	before := cookieValue(client, gatewayURL, "access_token")
	require.NotEmpty(t, before)

	resp, err := client.Get(baseURL + "/api/auth/refresh-token")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, int64(1), up.refreshCalls.Load())

	after := cookieValue(client, gatewayURL, "access_token")
	require.NotEmpty(t, after)
	require.NotEqual(t, before, after)
	require.Equal(t, "rt-1", cookieValue(client, gatewayURL, "refresh_token"))
}

// TestSessionSurvivesRestart logs in, rebuilds the HTTP layer on the same
// store, and checks the sealed session cookie still resumes. Session state
// lives in sqlite, so a gateway restart must not log anyone out.
func TestSessionSurvivesRestart(t *testing.T) {
	t.Parallel()

	up := newUpstream(t)
	baseURL, client, st := startGateway(t, up)

	login(t, baseURL, client)
	require.Equal(t, http.StatusOK, getJSON(t, client, baseURL+"/api/auth/session", nil))

	// Fresh router and server on the same store. The jar keys cookies by
	// host, so replay the login cookies against the new server explicitly.
	restartedURL := newGatewayServer(t, up, st)

	oldURL, err := url.Parse(baseURL)
	require.NoError(t, err)
	cookies := client.Jar.Cookies(oldURL)
	require.NotEmpty(t, cookies)

	req, err := http.NewRequest(http.MethodGet, restartedURL+"/api/auth/session", nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func cookieValue(client *http.Client, u *url.URL, name string) string {
	for _, c := range client.Jar.Cookies(u) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
