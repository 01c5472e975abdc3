package tokenx_test

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trippath/innkeeper/pkg/tokenx"
)

// unsignedToken builds a structurally valid JWT with the given payload JSON
// and an empty signature part. Signature validity is irrelevant to the codec.
func unsignedToken(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".sig"
}

func TestDecodeExpiration(t *testing.T) {
	t.Parallel()

	t.Run("valid token returns exp as wall-clock time", func(t *testing.T) {
		exp := time.Now().Add(2 * time.Hour).Unix()
		token := unsignedToken(fmt.Sprintf(`{"sub":"agent1","exp":%d}`, exp))

		got, ok := tokenx.DecodeExpiration(token)
		require.True(t, ok)
		require.Equal(t, exp, got.Unix())
		require.Equal(t, exp*1000, got.UnixMilli())
	})

	t.Run("past expiry still decodes", func(t *testing.T) {
		exp := time.Now().Add(-10 * time.Second).Unix()
		token := unsignedToken(fmt.Sprintf(`{"exp":%d}`, exp))

		got, ok := tokenx.DecodeExpiration(token)
		require.True(t, ok)
		require.Equal(t, exp, got.Unix())
	})

	t.Run("missing exp claim", func(t *testing.T) {
		token := unsignedToken(`{"sub":"agent1"}`)

		_, ok := tokenx.DecodeExpiration(token)
		require.False(t, ok)
	})

	t.Run("fewer than three parts", func(t *testing.T) {
		_, ok := tokenx.DecodeExpiration("onlyonepart")
		require.False(t, ok)

		_, ok = tokenx.DecodeExpiration("two.parts")
		require.False(t, ok)
	})

	t.Run("invalid encoding", func(t *testing.T) {
		_, ok := tokenx.DecodeExpiration("not!base64.not!base64.sig")
		require.False(t, ok)
	})

	t.Run("payload is not json", func(t *testing.T) {
		body := base64.RawURLEncoding.EncodeToString([]byte("plain text"))
		_, ok := tokenx.DecodeExpiration("eyJhbGciOiJIUzI1NiJ9." + body + ".sig")
		require.False(t, ok)
	})

	t.Run("empty token", func(t *testing.T) {
		_, ok := tokenx.DecodeExpiration("")
		require.False(t, ok)
	})
}

func TestExtractRefreshToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setCookie string
		want      string
	}{
		{
			name:      "simple assignment",
			setCookie: "refresh_token=abc123",
			want:      "abc123",
		},
		{
			name:      "with attributes",
			setCookie: "refresh_token=abc123; Path=/; HttpOnly; Max-Age=604800",
			want:      "abc123",
		},
		{
			name:      "preceded by another cookie",
			setCookie: "theme=dark; refresh_token=xyz789; Secure",
			want:      "xyz789",
		},
		{
			name:      "absent",
			setCookie: "access_token=abc123; Path=/",
			want:      "",
		},
		{
			name:      "empty header",
			setCookie: "",
			want:      "",
		},
		{
			name:      "similarly named cookie is skipped",
			setCookie: "old_refresh_token=stale; refresh_token=fresh",
			want:      "fresh",
		},
		{
			name:      "first assignment wins",
			setCookie: "refresh_token=first; Path=/, refresh_token=second",
			want:      "first",
		},
		{
			name:      "empty value",
			setCookie: "refresh_token=; Max-Age=-1",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tokenx.ExtractRefreshToken(tt.setCookie))
		})
	}
}
