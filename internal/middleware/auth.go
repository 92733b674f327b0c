package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PinHeader carries the shared app PIN on every protected request.
const PinHeader = "X-App-Pin"

// PinConfig is the shared-secret configuration for PinAuth. When both
// fields are empty the check is disabled and every request is authorized.
type PinConfig struct {
	// PIN is compared verbatim against the supplied header.
	PIN string
	// PINHash, when set, is a bcrypt hash the supplied header must match.
	// Takes precedence over PIN.
	PINHash string
}

// Enabled reports whether a PIN is configured at all.
func (c PinConfig) Enabled() bool {
	return strings.TrimSpace(c.PIN) != "" || strings.TrimSpace(c.PINHash) != ""
}

// Authorize checks a supplied PIN value against the configuration.
func (c PinConfig) Authorize(supplied string) bool {
	if !c.Enabled() {
		return true
	}
	supplied = strings.TrimSpace(supplied)

	if hash := strings.TrimSpace(c.PINHash); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(supplied)) == nil
	}

	configured := strings.TrimSpace(c.PIN)
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}

// PinAuth enforces the app PIN header. Websocket clients may pass the PIN
// as a ?pin= query parameter instead, since browsers cannot set headers on
// websocket upgrades.
func PinAuth(cfg PinConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(PinHeader)
			if supplied == "" {
				supplied = r.URL.Query().Get("pin")
			}

			if !cfg.Authorize(supplied) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Unauthorized. Invalid app PIN.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
