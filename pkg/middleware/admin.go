package middleware

import (
	"crypto/subtle"
	"net/http"

	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "adminkey"

// AdminKey rejects requests whose adminkey header does not equal secret.
// An empty secret rejects everything.
func AdminKey(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)

			if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				logger.Warn("Admin check: rejected request",
					zap.String("path", r.URL.Path),
					zap.Bool("header_present", key != ""),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Unauthorized access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
