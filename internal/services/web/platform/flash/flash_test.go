package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/accountform/internal/services/web/platform/requestmeta"
)

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	writeRR := httptest.NewRecorder()

	WriteWithPolicy(writeRR, req, NoticeError("비밀번호가 일치하지 않습니다."), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(writeRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)

	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClearWithPolicy(readRR, req, requestmeta.SchemePolicy{})
	if !ok {
		t.Fatalf("ReadAndClearWithPolicy() ok = false, want true")
	}
	if notice.Kind != KindError {
		t.Fatalf("notice.Kind = %q, want %q", notice.Kind, KindError)
	}
	if notice.Title != "비밀번호가 일치하지 않습니다." {
		t.Fatalf("notice.Title = %q", notice.Title)
	}
	if readRR.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected clear Set-Cookie header")
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64"})
	rr := httptest.NewRecorder()

	if _, ok := ReadAndClearWithPolicy(rr, req, requestmeta.SchemePolicy{}); ok {
		t.Fatalf("ReadAndClearWithPolicy() ok = true, want false")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected clear Set-Cookie header")
	}
}

func TestWriteIgnoresInvalidNotice(t *testing.T) {
	t.Parallel()

	tests := []Notice{
		{Kind: KindError, Title: " "},
		{Kind: "destructive", Title: "x"},
	}
	for _, notice := range tests {
		rr := httptest.NewRecorder()
		WriteWithPolicy(rr, httptest.NewRequest(http.MethodGet, "/signup", nil), notice, requestmeta.SchemePolicy{})
		if got := rr.Header().Get("Set-Cookie"); got != "" {
			t.Fatalf("Set-Cookie = %q for %+v, want empty", got, notice)
		}
	}
}
