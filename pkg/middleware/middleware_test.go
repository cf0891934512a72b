package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/skhanzad/libralite/pkg/auth"
	md "github.com/skhanzad/libralite/pkg/middleware"
	"github.com/stretchr/testify/require"
)

func TestAdminKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		configured string
		header     string
		wantCode   int
	}{
		{name: "ok", configured: "k3y", header: "k3y", wantCode: http.StatusOK},
		{name: "wrong key", configured: "k3y", header: "nope", wantCode: http.StatusUnauthorized},
		{name: "missing header", configured: "k3y", wantCode: http.StatusUnauthorized},
		{name: "not configured", configured: "", header: "", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, md.AdminKey(tt.configured))

			r := httptest.NewRequest(http.MethodGet, "/admin", http.NoBody)
			if tt.header != "" {
				r.Header.Set(md.AdminKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)
			require.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	m := auth.NewManager(auth.Config{Secret: "s", Issuer: "libralite", TTL: time.Hour})
	token, err := m.Mint("LIB-12345678", "Jane")
	require.NoError(t, err)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		card, _ := auth.CardNumberFromContext(c.Request().Context())
		return c.String(http.StatusOK, card)
	}, md.JwtAuthentication(m))

	for _, tc := range []struct {
		header string
		code   int
		body   string
	}{
		{header: "Bearer " + token, code: http.StatusOK, body: "LIB-12345678"},
		{header: "", code: http.StatusUnauthorized},
		{header: "Basic abc", code: http.StatusUnauthorized},
		{header: "Bearer garbage", code: http.StatusUnauthorized},
	} {
		r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		if tc.header != "" {
			r.Header.Set(md.AuthorizationHeader, tc.header)
		}
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, tc.code, w.Code)
		if tc.body != "" {
			require.Equal(t, tc.body, w.Body.String())
		}
	}
}
