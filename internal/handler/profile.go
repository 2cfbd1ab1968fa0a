package handler

import (
	"net/http"
	"strings"

	"rental-backoffice/internal/middleware"
	"rental-backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileReq struct {
	DisplayName string `json:"display_name" binding:"max=64"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// GetProfile returns the signed-in admin.
func GetProfile(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Please sign in.")
		return
	}
	util.Success(c, util.Response{"admin": adminJSON(admin)})
}

func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := middleware.CurrentAdmin(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Please sign in.")
			return
		}

		var req UpdateProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Display name is too long.")
			return
		}
		req.DisplayName = strings.TrimSpace(req.DisplayName)

		if err := db.WithContext(c.Request.Context()).Model(admin).Update("display_name", req.DisplayName).Error; err != nil {
			fail(c, "update profile", err)
			return
		}
		admin.DisplayName = req.DisplayName

		util.Success(c, util.Response{"admin": adminJSON(admin)})
	}
}

// ChangePassword checks the old password before storing the new hash.
// Existing sessions stay valid.
func ChangePassword(db *gorm.DB, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := middleware.CurrentAdmin(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Please sign in.")
			return
		}

		var req ChangePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "New password must be 8 to 64 characters.")
			return
		}
		if len(req.NewPassword) > util.MaxPasswordBytes {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "New password is too long.")
			return
		}
		if !util.CheckPassword(req.OldPassword, admin.PasswordHash) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Current password is incorrect.")
			return
		}

		hash, err := util.HashPassword(req.NewPassword, bcryptCost)
		if err != nil {
			fail(c, "change password", err)
			return
		}
		if err := db.WithContext(c.Request.Context()).Model(admin).Update("password_hash", hash).Error; err != nil {
			fail(c, "change password", err)
			return
		}

		util.Success(c, util.Response{"message": "Password changed."})
	}
}
