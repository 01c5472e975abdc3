// Package stayapi is a Go client for the Trippath booking platform.
//
// A Client holds the booking and auth endpoints and is safe to share; a
// Session wraps a Client with the credentials of one signed-in user and
// keeps them usable transparently. Every authenticated call goes through
// Session.Do, which checks the access token's decoded expiry and, when it
// has lapsed, refreshes it with the stored refresh token before sending
// the request. Concurrent callers hitting an expired token share a single
// refresh round trip.
//
// Typical usage:
//
//	client := stayapi.NewClient("https://api.example.com", "https://auth.example.com")
//
//	creds, err := client.Login(ctx, "alice", "hunter2")
//	if err != nil {
//		log.Fatal(err)
//	}
//	session := client.NewSession(creds)
//
//	hotels, err := client.ListHotels(ctx, stayapi.HotelSearch{City: "Sydney"})
//	...
//	cart, err := session.GetCart(ctx)
//
// A refresh that fails because the refresh token itself is missing or
// rejected parks the session in a terminal state: every later call returns
// the same error until Login replaces the credentials. An upstream 401 on
// any authenticated request clears the session and surfaces
// ErrUnauthorized so the caller can route the user back through sign-in.
package stayapi
