package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	jwtpkg "github.com/linkstream-org/backend/internal/jwt"
	ormpkg "github.com/linkstream-org/backend/internal/orm"
)

// NewAuthorizationMiddleware resolves the Bearer access token to a user and
// stores the user ID in the request context. The token must belong to a user
// the database knows about; anything else is a 401.
func NewAuthorizationMiddleware(logger *zap.Logger, jwt *jwtpkg.JWT, database *ormpkg.PostgresClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				logger.Debug("missing authorization header")
				writeUnauthorized(w)
				return
			}
			if !strings.HasPrefix(header, "Bearer ") {
				logger.Debug("missing bearer prefix")
				writeUnauthorized(w)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")

			userID, err := jwt.ParseAccessToken(token)
			if err != nil {
				logger.Debug("invalid access token", zap.Error(err))
				writeUnauthorized(w)
				return
			}

			_, err = database.SelectUserByID(userID)
			if err == gorm.ErrRecordNotFound {
				logger.Debug("token for unknown user", zap.String("user_id", userID))
				writeUnauthorized(w)
				return
			}
			if err != nil {
				logger.Error("database error resolving user", zap.Error(err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error":   "InternalServerError",
					"message": "An internal error occurred",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserID(r.Context(), userID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": "Authentication required",
	})
}
