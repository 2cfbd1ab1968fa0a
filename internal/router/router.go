package router

import (
	"fmt"
	"net/http"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/handler"
	"rental-backoffice/internal/middleware"
	"rental-backoffice/internal/session"
	"rental-backoffice/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// SetupRouter wires the API: sign-in is public, every view sits behind
// Auth, and the whole group is rate limited per client IP.
func SetupRouter(cfg *config.Config, db *gorm.DB, sessions session.Store) (*gin.Engine, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.ErrorLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limit, err := middleware.RateLimit(cfg.RateLimit.Rate)
	if err != nil {
		return nil, fmt.Errorf("setup router: %w", err)
	}
	api := r.Group("/api", limit)

	authHandler := handler.NewAuthHandler(db, sessions, cfg.JWT)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWT, sessions, db))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/views", handler.ListViews)

	protected.GET("/profile", handler.GetProfile)
	protected.PUT("/profile", handler.UpdateProfile(db))
	protected.PUT("/profile/password", handler.ChangePassword(db, cfg.Security.BcryptCost))

	h := handler.New(store.NewGormStore(db))

	protected.GET("/dashboard", h.Dashboard)
	protected.PUT("/dashboard/employees/:id/assignment", h.AssignDepartment)

	protected.GET("/employees", h.ListEmployees)
	protected.GET("/employees/export", h.ExportEmployees)
	protected.DELETE("/employees/:id", h.DeleteEmployee)

	protected.GET("/tenants", h.ListTenants)
	protected.GET("/tenants/export", h.ExportTenants)
	protected.PUT("/tenants/:id/rent", h.UpdateRent)
	protected.POST("/tenants/:id/bill", h.AddBill)
	protected.POST("/tenants/:id/bill/preview", h.PreviewBill)
	protected.DELETE("/tenants/:id", h.DeleteTenant)

	protected.GET("/history", h.ListHistory)
	protected.GET("/history/export", h.ExportHistory)
	protected.POST("/history/:id/paid", h.MarkPaid)
	protected.GET("/unpaid", h.ListUnpaid)

	protected.GET("/sanctions", h.ListSanctions)
	protected.POST("/sanctions", h.AddSanction)
	protected.POST("/sanctions/:id/resolve", h.ResolveSanction)

	protected.GET("/accounts", h.ListAccounts)
	protected.PUT("/accounts/:kind/:id/status", h.UpdateAccountStatus)
	protected.DELETE("/accounts/:kind/:id", h.DeleteAccount)

	protected.GET("/gcash", h.ListGcash)
	protected.GET("/gcash/export", h.ExportGcash)
	protected.POST("/gcash", h.CreateGcash)
	protected.PUT("/gcash/:id", h.UpdateGcash)
	protected.DELETE("/gcash/:id", h.DeleteGcash)

	return r, nil
}

// WithCORS lets the browser front end call the API with credentials and
// read the download name of exports.
func WithCORS(cfg config.CORSConfig, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	}).Handler(next)
}
