// Package theme persists the visitor's colour scheme choice in a cookie.
package theme

import (
	"fmt"
	"net/http"
	"time"
)

// Preference is the visitor's colour scheme choice.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"
)

// CookieName is the cookie holding the stored preference.
const CookieName = "theme"

const cookieMaxAge = 365 * 24 * time.Hour

// Choices lists the preferences in menu order.
func Choices() []Preference {
	return []Preference{Light, Dark, System}
}

// Parse validates a submitted preference value.
func Parse(value string) (Preference, error) {
	switch p := Preference(value); p {
	case Light, Dark, System:
		return p, nil
	default:
		return "", fmt.Errorf("unknown theme %q", value)
	}
}

// FromRequest returns the stored preference, or System when the cookie is
// missing or holds something unexpected.
func FromRequest(r *http.Request) Preference {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return System
	}
	p, err := Parse(c.Value)
	if err != nil {
		return System
	}
	return p
}

// Store writes the preference cookie.
func Store(w http.ResponseWriter, p Preference) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(p),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HTMLClass is the class put on the root element. System leaves it empty and
// lets the stylesheet follow prefers-color-scheme.
func (p Preference) HTMLClass() string {
	switch p {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return ""
	}
}

// Label is the menu text for the preference.
func (p Preference) Label() string {
	switch p {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return "System"
	}
}
