package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("ko-KR")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	fallback := GetCatalog("missing-locale")
	if fallback != base {
		t.Fatal("expected fallback to ko-KR catalog")
	}
}

func TestGetCatalogFormatsMismatch(t *testing.T) {
	cat := GetCatalog("")
	if got, want := cat.Format(CodePasswordMismatch, nil), "비밀번호가 일치하지 않습니다."; got != want {
		t.Fatalf("Format(%s) = %q, want %q", CodePasswordMismatch, got, want)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog(map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog(map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}
