package middleware

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/whiteshadows42/AccountManager/src/internal/logger"
	"github.com/whiteshadows42/AccountManager/src/internal/platform"
)

// BasicAuth authenticates the calling channel and stamps its identity onto
// the request context so movements can carry the creating actor. The channel
// key is hashed once at startup; requests are verified against the hash.
func BasicAuth(channelID, channelKey string) func(http.Handler) http.Handler {
	var keyHash []byte
	if channelKey != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(channelKey), bcrypt.DefaultCost)
		if err == nil {
			keyHash = hashed
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if channelID == "" || keyHash == nil {
				logger.Error("basic auth middleware missing server configuration", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "server auth configuration is missing", http.StatusInternalServerError)
				return
			}

			id, key, ok := r.BasicAuth()
			if !ok || !secureEqual(id, channelID) || bcrypt.CompareHashAndPassword(keyHash, []byte(key)) != nil {
				logger.Info("basic auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "invalid_or_missing",
				})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(platform.WithActor(r.Context(), id)))
		})
	}
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
