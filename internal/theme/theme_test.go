package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	for _, p := range Choices() {
		got, err := Parse(string(p))
		if err != nil {
			t.Fatalf("parse %q: %v", p, err)
		}
		if got != p {
			t.Fatalf("parse %q = %q", p, got)
		}
	}
	if _, err := Parse("Dark"); err == nil {
		t.Fatal("expected case-sensitive parse to reject Dark")
	}
	if _, err := Parse(""); err == nil {
		t.Fatal("expected empty value to be rejected")
	}
}

func TestFromRequestDefaultsToSystem(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := FromRequest(r); got != System {
		t.Fatalf("preference = %q, want system", got)
	}

	r.AddCookie(&http.Cookie{Name: CookieName, Value: "neon"})
	if got := FromRequest(r); got != System {
		t.Fatalf("preference = %q, want system for bad cookie", got)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	Store(rec, Dark)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != "dark" || c.Path != "/" {
		t.Fatalf("unexpected cookie: %+v", c)
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie SameSite = %v, want Lax", c.SameSite)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	if got := FromRequest(r); got != Dark {
		t.Fatalf("preference = %q, want dark", got)
	}
}

func TestHTMLClass(t *testing.T) {
	if Dark.HTMLClass() != "dark" || Light.HTMLClass() != "light" || System.HTMLClass() != "" {
		t.Fatal("unexpected html classes")
	}
}
