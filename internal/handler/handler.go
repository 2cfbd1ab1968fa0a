// Package handler exposes the back-office views over HTTP. Each request
// builds fresh view state from the store; handlers share only the store
// and the guard that refuses a second mutation of a row already in flight.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"rental-backoffice/internal/billing"
	"rental-backoffice/internal/export"
	"rental-backoffice/internal/lifecycle"
	"rental-backoffice/internal/store"
	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store store.Store
	Now   func() time.Time

	inflight *view.InFlight
}

func New(st store.Store) *Handler {
	return &Handler{Store: st, Now: time.Now, inflight: view.NewInFlight()}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

// fail maps a view, lifecycle or store error to the response envelope.
// action completes "Failed to ..." in the message shown to the admin.
func fail(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, view.ErrNotInView), errors.Is(err, store.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Failed to "+action+": record not found.")
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		util.Error(c, http.StatusConflict, util.CodeConflict, "Failed to "+action+": "+err.Error()+".")
	case errors.Is(err, view.ErrBusy):
		util.Error(c, http.StatusConflict, util.CodeConflict, "Failed to "+action+": another action is still in progress.")
	case errors.Is(err, lifecycle.ErrUnknownStatus),
		errors.Is(err, view.ErrUnknownKind),
		errors.Is(err, view.ErrUnknownStore),
		errors.Is(err, billing.ErrInvalidPeriod):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Failed to "+action+": "+err.Error()+".")
	default:
		c.Error(err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to "+action+". Please try again.")
	}
}

func badRequest(c *gin.Context, msg string) {
	util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
}

// sendSheet streams an xlsx download named after the sheet and today.
func (h *Handler) sendSheet(c *gin.Context, s export.Sheet) {
	f, err := s.Workbook()
	if err != nil {
		fail(c, "export "+s.Entity, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", `attachment; filename="`+s.FileName(h.Now())+`"`)
	if err := f.Write(c.Writer); err != nil {
		c.Error(err)
	}
}
