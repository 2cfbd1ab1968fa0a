package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/session"
	"rental-backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	TokenCookie = "rb_token"

	currentAdminKey = "currentAdmin"
	sessionIDKey    = "sessionID"
)

// tokenFrom reads the bearer header, then ?token= (export downloads),
// then the cookie.
func tokenFrom(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if t := c.Query("token"); t != "" {
		return t
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// Auth accepts a token only while its session is active, then puts the
// admin and session id on the context.
func Auth(jwtCfg config.JWTConfig, sessions session.Store, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFrom(c)
		if tokenStr == "" {
			util.Abort(c, http.StatusUnauthorized, util.CodeAuth, "Please sign in.")
			return
		}

		claims, err := util.ParseToken(jwtCfg.Secret, jwtCfg.Issuer, tokenStr)
		if err != nil {
			util.Abort(c, http.StatusUnauthorized, util.CodeAuth, "Your session has expired. Please sign in again.")
			return
		}

		adminID, err := sessions.Active(c.Request.Context(), claims.ID)
		if err != nil {
			if !errors.Is(err, session.ErrInactive) {
				log.Printf("auth: check session %s: %v", claims.ID, err)
				util.Abort(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to verify session. Please try again.")
				return
			}
			util.Abort(c, http.StatusUnauthorized, util.CodeAuth, "Your session has expired. Please sign in again.")
			return
		}
		if adminID != claims.AdminID {
			util.Abort(c, http.StatusUnauthorized, util.CodeAuth, "Your session has expired. Please sign in again.")
			return
		}

		var admin models.Admin
		if err := db.WithContext(c.Request.Context()).First(&admin, claims.AdminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Abort(c, http.StatusUnauthorized, util.CodeAuth, "Account no longer exists.")
			} else {
				log.Printf("auth: load admin %d: %v", claims.AdminID, err)
				util.Abort(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to load account. Please try again.")
			}
			return
		}

		c.Set(currentAdminKey, &admin)
		c.Set(sessionIDKey, claims.ID)
		c.Next()
	}
}

// CurrentAdmin returns the admin set by Auth.
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	v, ok := c.Get(currentAdminKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*models.Admin)
	return admin, ok && admin != nil
}

func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
