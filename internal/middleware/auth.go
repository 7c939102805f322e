package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/appointment-manager/internal/config"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/i18n"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"

	CodeMissingToken = "missing_token"
	CodeInvalidToken = "invalid_token"
)

// Identity is what a verified session token carries.
type Identity struct {
	UserID   uint
	Username string
}

// AuthMiddleware admits requests carrying a valid bearer token issued at
// login and exposes the consultant under ContextUserID and ContextUsername.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, CodeMissingToken)
			return
		}

		id, err := ParseToken(raw, secret)
		if err != nil {
			unauthorized(c, CodeInvalidToken)
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextUsername, id.Username)

		c.Next()
	}
}

// ParseToken verifies an HMAC-signed token and extracts the identity.
func ParseToken(raw string, secret []byte) (Identity, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	sub, ok1 := claims["sub"].(float64)
	username, ok2 := claims["username"].(string)
	if !ok1 || !ok2 || sub <= 0 || username == "" {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	return Identity{UserID: uint(sub), Username: username}, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, code string) {
	httperr.Abort(c, http.StatusUnauthorized, code, i18n.T(Locale(c), code))
}
