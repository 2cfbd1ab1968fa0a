package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/middleware"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/session"
	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler signs admins in and out.
type AuthHandler struct {
	DB       *gorm.DB
	Sessions session.Store
	JWT      config.JWTConfig
	TokenTTL time.Duration
}

func NewAuthHandler(db *gorm.DB, sessions session.Store, jwtCfg config.JWTConfig) *AuthHandler {
	hours := jwtCfg.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	return &AuthHandler{
		DB:       db,
		Sessions: sessions,
		JWT:      jwtCfg,
		TokenTTL: time.Duration(hours) * time.Hour,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func adminJSON(a *models.Admin) gin.H {
	return gin.H{
		"id":            a.ID,
		"username":      a.Username,
		"display_name":  a.DisplayName,
		"last_login_at": a.LastLoginAt,
		"created_at":    a.CreatedAt,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Username and password are required.")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	ctx := c.Request.Context()

	var admin models.Admin
	err := h.DB.WithContext(ctx).Where("LOWER(username) = LOWER(?)", req.Username).First(&admin).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, "sign in", err)
		return
	}
	if err != nil || !util.CheckPassword(req.Password, admin.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Incorrect username or password.")
		return
	}

	sid, err := h.Sessions.Create(ctx, admin.ID, h.TokenTTL)
	if err != nil {
		fail(c, "sign in", err)
		return
	}
	token, err := util.GenerateToken(h.JWT.Secret, h.JWT.Issuer, admin.ID, sid, h.TokenTTL)
	if err != nil {
		fail(c, "sign in", err)
		return
	}

	now := time.Now()
	admin.LastLoginAt = &now
	admin.LastLoginIP = c.ClientIP()
	if err := h.DB.WithContext(ctx).Model(&admin).
		Updates(map[string]any{"last_login_at": now, "last_login_ip": admin.LastLoginIP}).Error; err != nil {
		c.Error(err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.TokenTTL.Seconds()), "/", "", false, true)
	util.Success(c, util.Response{
		"token":    token,
		"admin":    adminJSON(&admin),
		"redirect": "/dashboard",
	})
}

// Logout revokes the session behind the token and sends the client back
// to the login view.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Sessions.Revoke(c.Request.Context(), middleware.SessionID(c)); err != nil {
		fail(c, "sign out", err)
		return
	}
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	util.Success(c, util.Response{"redirect": view.Login.Path})
}
