package handler

import (
	"rental-backoffice/internal/export"
	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListEmployees(c *gin.Context) {
	v := view.NewEmployees(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load employees", err)
		return
	}
	v.List.Search(c.Query("q"))

	rows := v.List.Visible()
	util.Success(c, util.Response{"employees": rows, "total": len(rows)})
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v := view.NewEmployees(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load employees", err)
		return
	}
	if err := v.Delete(c.Request.Context(), id); err != nil {
		fail(c, "delete employee", err)
		return
	}
	util.Success(c, util.Response{"id": id})
}

// ExportEmployees downloads the whole directory; the search box is ignored.
func (h *Handler) ExportEmployees(c *gin.Context) {
	v := view.NewEmployees(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "export employees", err)
		return
	}
	h.sendSheet(c, export.Employees(v.List.Rows()))
}
