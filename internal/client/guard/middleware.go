package guard

import (
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

// FromParam is the query parameter carrying the originally requested location
// on a redirect to the login view.
const FromParam = "from"

// Middleware enforces Decide on every request. state is read per request so
// the guard always sees the latest committed session.
func Middleware(state func() State) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := Decide(r.URL.RequestURI(), state())

			switch d.Outcome {
			case OutcomeLoading:
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "loading"})

			case OutcomeRedirect:
				to := d.To
				if d.From != "" {
					to += "?" + url.Values{FromParam: {d.From}}.Encode()
				}
				http.Redirect(w, r, to, http.StatusSeeOther)

			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
