package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/CommunityDirectory/internal/config"
	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

func echoRemoteAddr(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(r.RemoteAddr))
}

func TestTrustedRealIP(t *testing.T) {
	handler := TrustedRealIP([]string{"10.0.0.0/8", "192.168.1.1", "garbage"})(http.HandlerFunc(echoRemoteAddr))

	tests := []struct {
		name   string
		remote string
		header map[string]string
		want   string
	}{
		{"untrusted keeps socket address", "203.0.113.5:4000", map[string]string{"X-Real-IP": "1.1.1.1"}, "203.0.113.5:4000"},
		{"trusted cidr uses X-Real-IP", "10.1.2.3:4000", map[string]string{"X-Real-IP": "1.1.1.1"}, "1.1.1.1"},
		{"trusted single ip uses XFF first hop", "192.168.1.1:80", map[string]string{"X-Forwarded-For": "2.2.2.2, 10.0.0.1"}, "2.2.2.2"},
		{"trusted but invalid header", "10.1.2.3:4000", map[string]string{"X-Real-IP": "not-an-ip"}, "10.1.2.3:4000"},
		{"trusted without headers", "10.1.2.3:4000", nil, "10.1.2.3:4000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestAPIKeyAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name string
		cfg  config.SecurityConfig
		key  string
		want int
	}{
		{"disabled passes", config.SecurityConfig{}, "", http.StatusNoContent},
		{"missing key", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, "", http.StatusUnauthorized},
		{"wrong key", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, "k2", http.StatusForbidden},
		{"second key matches", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1", "k2"}}, "k2", http.StatusNoContent},
		{"no keys configured rejects", config.SecurityConfig{RequireAPIKey: true}, "k1", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/resources/x/save", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()

			APIKeyAuth(&tt.cfg)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if rec.Code >= 400 {
				assert.Contains(t, rec.Body.String(), `"code":"AUTH00`)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	var got *core.Actor
	var found bool
	handler := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = core.ContextAuth{}.Actor(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserName, " Maria ")
	req.Header.Set(HeaderUserEmail, "Maria@Example.org")
	req.Header.Set(HeaderUserRole, "Social Worker")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, found)
	assert.Equal(t, &core.Actor{Name: "Maria", Email: "maria@example.org", Role: "Social Worker"}, got)

	found = true
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, found)
}

func TestLogger_CapturesStatus(t *testing.T) {
	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
