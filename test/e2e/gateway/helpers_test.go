package gateway_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	gatewayhttp "github.com/trippath/innkeeper/internal/gateway/http"
	"github.com/trippath/innkeeper/internal/gateway/service"
	"github.com/trippath/innkeeper/internal/gateway/store/drivers/sqlite"
	"github.com/trippath/innkeeper/pkg/stayapi"
)

/*
 * End-to-end tests for the booking gateway. The full stack runs in-process
 * (real sqlite store, real router, real session sealing) against a fake
 * upstream that plays both the booking API and the authentication service.
 */

const (
	testUsername = "alice"
	testPassword = "Sunset123!"
)

// upstream is the fake booking platform. It tracks a tiny amount of state
// (cart contents, uploaded receipts) so flow tests read their own writes.
type upstream struct {
	srv *httptest.Server

	mu       sync.Mutex
	cart     []map[string]any
	receipts map[string]string // booking ID -> filename

	refreshCalls atomic.Int64
	tokenTTL     atomic.Int64 // nanoseconds, adjustable mid-test
}

func (up *upstream) setTokenTTL(d time.Duration) { up.tokenTTL.Store(int64(d)) }

func signedInToken(t *testing.T, ttl time.Duration) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(fmt.Sprintf(`{"exp":%d,"sub":"user-1"}`, time.Now().Add(ttl).Unix())),
	)
	return header + "." + payload + "."
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()

	up := &upstream{receipts: make(map[string]string)}
	up.setTokenTTL(time.Hour)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != testUsername || req.Password != testPassword {
			up.writeJSON(w, http.StatusOK, map[string]any{"status": 401, "message": "invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "rt-0", HttpOnly: true, Path: "/"})
		up.writeToken(w, signedInToken(t, time.Duration(up.tokenTTL.Load())))
	})

	mux.HandleFunc("GET /refresh-token", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("refresh_token")
		if err != nil || cookie.Value == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		n := up.refreshCalls.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: fmt.Sprintf("rt-%d", n), HttpOnly: true, Path: "/"})
		up.writeToken(w, signedInToken(t, time.Duration(up.tokenTTL.Load())))
	})

	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /hotels", func(w http.ResponseWriter, r *http.Request) {
		up.writeJSON(w, http.StatusOK, map[string]any{
			"status": 200, "message": "ok",
			"data": []map[string]any{
				{"id": "h-1", "name": "Seaside Inn", "city": "Sydney", "min_price": 18000},
				{"id": "h-2", "name": "Harbour View", "city": "Sydney", "min_price": 24000},
			},
		})
	})

	mux.HandleFunc("GET /hotels/{id}/rooms", func(w http.ResponseWriter, r *http.Request) {
		up.writeJSON(w, http.StatusOK, map[string]any{
			"status": 200, "message": "ok",
			"data": []map[string]any{
				{"id": "room-1", "hotel_id": r.PathValue("id"), "name": "Deluxe King", "price_per_night": 18000, "available": true},
			},
		})
	})

	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		if !up.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		up.mu.Lock()
		defer up.mu.Unlock()
		up.writeJSON(w, http.StatusOK, map[string]any{
			"status": 200, "message": "ok",
			"data": map[string]any{"items": up.cart, "total": int64(len(up.cart)) * 36000},
		})
	})

	mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		if !up.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var item map[string]any
		_ = json.NewDecoder(r.Body).Decode(&item)
		up.mu.Lock()
		item["id"] = fmt.Sprintf("ci-%d", len(up.cart)+1)
		up.cart = append(up.cart, item)
		cart := map[string]any{"items": up.cart, "total": int64(len(up.cart)) * 36000}
		up.mu.Unlock()
		up.writeJSON(w, http.StatusOK, map[string]any{"status": 200, "message": "ok", "data": cart})
	})

	mux.HandleFunc("POST /checkout", func(w http.ResponseWriter, r *http.Request) {
		if !up.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		up.mu.Lock()
		items := up.cart
		up.cart = nil
		up.mu.Unlock()
		up.writeJSON(w, http.StatusOK, map[string]any{
			"status": 200, "message": "ok",
			"data": map[string]any{
				"id": "bk-1", "status": "pending_payment",
				"items": items, "total": int64(len(items)) * 36000,
				"created_at": time.Now().UTC().Format(time.RFC3339),
			},
		})
	})

	mux.HandleFunc("GET /bookings", func(w http.ResponseWriter, r *http.Request) {
		if !up.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		up.writeJSON(w, http.StatusOK, map[string]any{
			"status": 200, "message": "ok",
			"data": []map[string]any{{"id": "bk-1", "status": "pending_payment"}},
		})
	})

	mux.HandleFunc("POST /bookings/{id}/receipt", func(w http.ResponseWriter, r *http.Request) {
		if !up.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		file, header, err := r.FormFile("receipt")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		up.mu.Lock()
		up.receipts[r.PathValue("id")] = header.Filename
		up.mu.Unlock()
		up.writeJSON(w, http.StatusOK, map[string]any{
			"status": 200, "message": "ok",
			"data": map[string]any{
				"booking_id": r.PathValue("id"), "receipt_url": "/receipts/" + header.Filename, "status": "pending_review",
			},
		})
	})

	mux.HandleFunc("GET /bookings/{id}/invoice", func(w http.ResponseWriter, r *http.Request) {
		if !up.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 invoice " + r.PathValue("id")))
	})

	mux.HandleFunc("GET /profile", func(w http.ResponseWriter, r *http.Request) {
		if !up.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		up.writeJSON(w, http.StatusOK, map[string]any{
			"status": 200, "message": "ok",
			"data": map[string]any{"id": "user-1", "username": testUsername, "email": "alice@example.com"},
		})
	})

	up.srv = httptest.NewServer(mux)
	t.Cleanup(up.srv.Close)
	return up
}

// authorized checks for a bearer token. The token's validity window is not
// re-verified here; the gateway is responsible for refreshing before use.
func (up *upstream) authorized(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return len(auth) > len("Bearer ") && auth[:len("Bearer ")] == "Bearer "
}

func (up *upstream) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (up *upstream) writeToken(w http.ResponseWriter, token string) {
	up.writeJSON(w, http.StatusOK, map[string]any{
		"status": 200, "message": "ok",
		"data": map[string]any{
			"token": token,
			"user":  map[string]any{"id": "user-1", "username": testUsername, "display_name": "Alice", "role": "guest"},
		},
	})
}

// newGatewayServer wires the router against the given store and starts an
// HTTP server for it. Restart tests call it twice on the same store.
func newGatewayServer(t *testing.T, up *upstream, st *sqlite.Store) string {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	client := stayapi.NewClient(up.srv.URL, up.srv.URL)

	rt := gatewayhttp.NewRouter("e2e", st, logger)
	rt.Client = client
	rt.SessionService = &service.SessionService{
		Store:  st,
		Client: client,
		Logger: logger,
	}
	rt.AccessTokenTTL = 2 * time.Hour
	rt.SessionTTL = 7 * 24 * time.Hour
	rt.ApplyRoutes()

	srv := httptest.NewServer(rt)
	t.Cleanup(srv.Close)
	return srv.URL
}

// startGateway builds the full stack with a real sqlite store and returns
// the gateway URL, a cookie-jar client, and the store.
func startGateway(t *testing.T, up *upstream) (string, *http.Client, *sqlite.Store) {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "gateway.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	baseURL := newGatewayServer(t, up, st)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return baseURL, &http.Client{Jar: jar}, st
}

func login(t *testing.T, baseURL string, client *http.Client) {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, testUsername, testPassword)
	resp, err := client.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func getJSON(t *testing.T, client *http.Client, url string, target any) int {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if target != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, client *http.Client, url, body string, target any) int {
	t.Helper()

	resp, err := client.Post(url, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	defer resp.Body.Close()

	if target != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode
}

func uploadReceipt(t *testing.T, client *http.Client, url, filename, content string) int {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("receipt", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}
