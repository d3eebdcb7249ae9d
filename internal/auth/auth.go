// Package auth resolves the caller of a request from its bearer token.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const userKey = "bw-user"

var (
	ErrUnauthenticated = errors.New("you must authenticate with a valid bearer token")
	ErrForbidden       = errors.New("you are not allowed to perform this request")
)

// Token returns the bearer token of the request, or an empty string.
func Token(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// Authenticate aborts requests without a valid bearer token with
// 401 Unauthorized. The user is available with User afterwards.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Token(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.HTTPError{Error: ErrUnauthenticated.Error()})
			return
		}

		var user models.User
		err := models.DB.WithContext(c).Where("token_hash = ?", models.HashToken(token)).First(&user).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.HTTPError{Error: ErrUnauthenticated.Error()})
			return
		}

		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("authentication failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, httputil.HTTPError{Error: models.ErrGeneral.Error()})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin aborts requests of non-admin users with 403 Forbidden.
// It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := User(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.HTTPError{Error: ErrUnauthenticated.Error()})
			return
		}

		if !user.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, httputil.HTTPError{Error: ErrForbidden.Error()})
			return
		}

		c.Next()
	}
}

// User returns the authenticated user of the request.
func User(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}

// Bootstrap creates the admin user with the given token if no user with
// the email exists yet. The token of an existing user is not changed.
func Bootstrap(email, token string) (models.User, error) {
	var user models.User
	err := models.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, err
	}

	user = models.User{
		Email:     email,
		Name:      "Administrator",
		Admin:     true,
		TokenHash: models.HashToken(token),
	}

	err = models.DB.Create(&user).Error
	return user, err
}
