package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		forwarded string
		tls       bool
		policy    SchemePolicy
		want      bool
	}{
		{name: "plain http", want: false},
		{name: "tls", tls: true, want: true},
		{name: "forwarded ignored by default", forwarded: "https", want: false},
		{name: "forwarded trusted", forwarded: "https", policy: SchemePolicy{TrustForwardedProto: true}, want: true},
		{name: "forwarded garbage", forwarded: "ftp", policy: SchemePolicy{TrustForwardedProto: true}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/signup", nil)
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-Proto", tc.forwarded)
			}
			if tc.tls {
				r.TLS = &tls.ConnectionState{}
			}
			if got := IsHTTPSWithPolicy(r, tc.policy); got != tc.want {
				t.Fatalf("IsHTTPSWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasSameOriginProofWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "matching origin", origin: "http://example.com", want: true},
		{name: "matching referer", referer: "http://example.com/signup", want: true},
		{name: "foreign origin", origin: "http://evil.test", want: false},
		{name: "port mismatch", origin: "http://example.com:8080", want: false},
		{name: "scheme mismatch", origin: "https://example.com", want: false},
		{name: "no proof", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "http://example.com/signup/next", nil)
			if tc.origin != "" {
				r.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				r.Header.Set("Referer", tc.referer)
			}
			if got := HasSameOriginProofWithPolicy(r, SchemePolicy{}); got != tc.want {
				t.Fatalf("HasSameOriginProofWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}
