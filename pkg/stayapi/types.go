package stayapi

import "time"

// ============================================================================
// Envelope Types
// ============================================================================

// Envelope is the response wrapper every upstream endpoint uses. Status
// mirrors an HTTP status code inside the body; a 2xx HTTP response can still
// carry a non-200 envelope status, which callers must treat as a failure.
type Envelope struct {
	// Status is the application-level status code (200 on success)
	Status int `json:"status"`

	// Message is a human-readable outcome description
	Message string `json:"message"`
}

// loginEnvelope is the wire shape of the login and refresh-token responses.
type loginEnvelope struct {
	Envelope
	Data struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	} `json:"data"`
}

// ============================================================================
// Identity Types
// ============================================================================

// User is the denormalized identity attached to a session at login and
// refresh time.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

// Credentials is the decoded result of a successful login or refresh call:
// the access token with its locally derived expiry, the refresh token
// extracted from the response's Set-Cookie header (empty when the upstream
// did not rotate it), and the user identity from the envelope.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         User

	// RefreshSetCookie is the raw Set-Cookie header the refresh token was
	// extracted from, kept so a proxy can forward it to the browser without
	// re-deriving the upstream's cookie attributes.
	RefreshSetCookie string
}

// ============================================================================
// Auth Request Types
// ============================================================================

// LoginRequest carries the credentials for the login proxy.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account on the remote authentication service.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// ForgotPasswordRequest starts a password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes a password reset flow.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ============================================================================
// Hotel Types
// ============================================================================

// Hotel is a bookable property in the catalogue.
type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Amenities   []string `json:"amenities,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
	MinPrice    int64    `json:"min_price"` // minor currency units per night
}

// Room is a bookable room type within a hotel.
type Room struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity"`
	PricePerNight int64    `json:"price_per_night"` // minor currency units
	ImageURLs     []string `json:"image_urls,omitempty"`
	Available     bool     `json:"available"`
}

// HotelSearch are the catalogue browse filters, passed through to the
// upstream API as query parameters.
type HotelSearch struct {
	City     string
	CheckIn  string // YYYY-MM-DD
	CheckOut string // YYYY-MM-DD
	Guests   int
}

// ============================================================================
// Cart Types
// ============================================================================

// CartItem is one room reservation line in the shopping cart. Pricing is
// computed upstream; the gateway never derives totals locally.
type CartItem struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	HotelID  string `json:"hotel_id"`
	Hotel    string `json:"hotel_name"`
	Room     string `json:"room_name"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
	Nights   int    `json:"nights"`
	Price    int64  `json:"price"` // minor currency units, all nights
}

// Cart is the current shopping cart with its upstream-computed total.
type Cart struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

// AddCartItemRequest adds a room reservation to the cart.
type AddCartItemRequest struct {
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

// ============================================================================
// Booking Types
// ============================================================================

// Booking is a confirmed (or pending-payment) reservation produced by
// checkout. State transitions are owned by the upstream API.
type Booking struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"` // e.g. "pending_payment", "confirmed", "cancelled"
	Items      []CartItem `json:"items"`
	Total      int64      `json:"total"`
	CreatedAt  time.Time  `json:"created_at"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	ReceiptURL string     `json:"receipt_url,omitempty"`
}

// CheckoutRequest turns the current cart into a booking.
type CheckoutRequest struct {
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone,omitempty"`
	Note       string `json:"note,omitempty"`
}

// ReceiptUploadResult is returned after a payment receipt upload.
type ReceiptUploadResult struct {
	BookingID  string `json:"booking_id"`
	ReceiptURL string `json:"receipt_url"`
	Status     string `json:"status"`
}

// ============================================================================
// Profile Types
// ============================================================================

// Profile is the account settings record.
type Profile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone,omitempty"`
}

// UpdateProfileRequest updates the mutable profile fields.
type UpdateProfileRequest struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
