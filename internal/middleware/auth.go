package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/vendorhub/vendor-approval-api/internal/config"
	"github.com/vendorhub/vendor-approval-api/internal/models"
	"github.com/vendorhub/vendor-approval-api/internal/serviceerror"
	"github.com/vendorhub/vendor-approval-api/internal/utils"
)

// Claims are the bearer token claims. The subject is the actor id; role is informational.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Authenticate verifies HS256 bearer tokens and stores the actor in the context.
// Requests without a valid token are refused with 401.
func Authenticate(cfg config.JWTConfig, logger *logrus.Logger) gin.HandlerFunc {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(options...)
	secret := []byte(cfg.Secret)

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.AbortWithServiceError(c, serviceerror.CustomServiceError(serviceerror.Unauthenticated, "A bearer token is required"))
			return
		}

		claims := &Claims{}
		_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || claims.Subject == "" {
			if err == nil {
				err = errors.New("token has no subject")
			}
			logger.WithError(err).WithField("correlation_id", utils.GetCorrelationIDFromContext(c)).Debug("Bearer token rejected")
			utils.AbortWithServiceError(c, serviceerror.CustomServiceError(serviceerror.Unauthenticated, "The bearer token is invalid or expired"))
			return
		}

		utils.SetActor(c, models.Actor{ID: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// IssueToken signs a token for an actor. Used by tests and local tooling.
func IssueToken(cfg config.JWTConfig, actor models.Actor, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = actor.ID
	if claims.Issuer == "" {
		claims.Issuer = cfg.Issuer
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: actor.Role, RegisteredClaims: claims})
	return token.SignedString([]byte(cfg.Secret))
}
