package handler

import (
	"strings"

	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
)

type assignmentReq struct {
	DepartmentAssigned string `json:"department_assigned" binding:"required,max=64"`
}

func (h *Handler) Dashboard(c *gin.Context) {
	v := view.NewDashboard(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load dashboard", err)
		return
	}
	v.Employees.List.Search(c.Query("q"))

	util.Success(c, util.Response{
		"counts":    v.Counts,
		"employees": v.Employees.List.Visible(),
	})
}

// AssignDepartment moves an employee to another market section.
func (h *Handler) AssignDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req assignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Department is required.")
		return
	}
	dept := strings.TrimSpace(req.DepartmentAssigned)
	if dept == "" {
		badRequest(c, "Department is required.")
		return
	}

	v := view.NewDashboard(h.Store).Guard(h.inflight)
	if err := v.Employees.Load(c.Request.Context()); err != nil {
		fail(c, "load employees", err)
		return
	}
	if err := v.Assign(c.Request.Context(), id, dept); err != nil {
		fail(c, "update assignment", err)
		return
	}
	row, _ := v.Employees.List.Find(id)
	util.Success(c, util.Response{"employee": row})
}
