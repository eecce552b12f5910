package pkgrouter

import (
	"net/http"
	"strings"
	"testing"
)

func TestNormalizeCID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  abc  ", "abc"},
		{"plain-cid", "plain-cid"},
		{"bad\nvalue", ""},
		{"bad\rvalue", ""},
		{strings.Repeat("a", 200), strings.Repeat("a", 128)},
		{"", ""},
	}

	for _, tc := range cases {
		if got := normalizeCID(tc.in); got != tc.want {
			t.Fatalf("normalizeCID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "secret")
	headers.Set("Cookie", "session=1")
	headers.Set("X-Trace", "ok")

	masked := maskHeaders(headers)

	if got := masked.Get("Authorization"); got != "***" {
		t.Fatalf("Authorization = %q, want ***", got)
	}
	if got := masked.Get("Cookie"); got != "***" {
		t.Fatalf("Cookie = %q, want ***", got)
	}
	if got := masked.Get("X-Trace"); got != "ok" {
		t.Fatalf("X-Trace = %q, want ok", got)
	}
	if got := headers.Get("Authorization"); got != "secret" {
		t.Fatalf("original header mutated, got %q", got)
	}
}

func TestMaskDataNested(t *testing.T) {
	input := map[string]any{
		"password": "secret",
		"profile": map[string]any{
			"access_token": "token",
		},
		"items": []any{
			map[string]any{"refresh_token": "rt"},
		},
		"name": "bob",
	}

	masked := maskData(input).(map[string]any)

	if masked["password"] != "***" {
		t.Fatal("password not masked")
	}
	if masked["profile"].(map[string]any)["access_token"] != "***" {
		t.Fatal("nested access_token not masked")
	}
	if masked["items"].([]any)[0].(map[string]any)["refresh_token"] != "***" {
		t.Fatal("refresh_token inside slice not masked")
	}
	if masked["name"] != "bob" {
		t.Fatalf("name = %v, want bob", masked["name"])
	}
}

func TestParseAndMaskBodyJSON(t *testing.T) {
	parsed := parseAndMaskBody("application/json", []byte(`{"password":"secret","name":"bob"}`))

	m, ok := parsed.(map[string]any)
	if !ok {
		t.Fatalf("parsed = %T, want map", parsed)
	}
	if m["password"] != "***" {
		t.Fatal("password not masked")
	}
	if m["name"] != "bob" {
		t.Fatalf("name = %v, want bob", m["name"])
	}
}

func TestParseAndMaskBodyForm(t *testing.T) {
	parsed := parseAndMaskBody("application/x-www-form-urlencoded", []byte("password=secret&name=bob"))

	m, ok := parsed.(map[string]any)
	if !ok {
		t.Fatalf("parsed = %T, want map", parsed)
	}
	if m["password"] != "***" {
		t.Fatal("password not masked")
	}
	if m["name"] != "bob" {
		t.Fatalf("name = %v, want bob", m["name"])
	}
}

func TestParseAndMaskBodyBinary(t *testing.T) {
	parsed := parseAndMaskBody("text/plain", []byte{0xff, 0xfe, 0xfd})
	if parsed != "<binary body omitted>" {
		t.Fatalf("parsed = %v, want binary omission marker", parsed)
	}
}

func TestParseAndMaskBodyEmpty(t *testing.T) {
	if parsed := parseAndMaskBody("application/json", nil); parsed != nil {
		t.Fatalf("parsed = %v, want nil", parsed)
	}
}
