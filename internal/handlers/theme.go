package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"alexjohnson.dev/internal/theme"
)

// SetTheme handles POST /theme: stores the chosen colour scheme and sends
// the visitor back to the page they came from.
func SetTheme(w http.ResponseWriter, r *http.Request) {
	pref, err := theme.Parse(r.PostFormValue("theme"))
	if err != nil {
		http.Error(w, "Invalid theme", http.StatusBadRequest)
		return
	}
	theme.Store(w, pref)
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// returnPath picks a same-site path to go back to: the form's return_to
// field, then the Referer, then the home page.
func returnPath(r *http.Request) string {
	if p := r.PostFormValue("return_to"); isLocalPath(p) {
		return p
	}
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Host == r.Host && isLocalPath(ref.Path) {
		return ref.Path
	}
	return "/"
}

// isLocalPath reports whether p stays on this site. Browsers drop tabs and
// newlines from URLs, so "/\t/host" would become "//host".
func isLocalPath(p string) bool {
	if strings.ContainsFunc(p, unicode.IsControl) {
		return false
	}
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.Contains(p, `\`)
}
