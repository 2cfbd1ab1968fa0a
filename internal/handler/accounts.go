package handler

import (
	"rental-backoffice/internal/lifecycle"
	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
)

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) accounts() *view.Accounts {
	return view.NewAccounts(view.NewEmployees(h.Store).Guard(h.inflight), view.NewTenants(h.Store).Guard(h.inflight))
}

// ListAccounts returns both tabs filtered by the same query.
func (h *Handler) ListAccounts(c *gin.Context) {
	v := h.accounts()
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load accounts", err)
		return
	}
	v.Search(c.Query("q"))

	util.Success(c, util.Response{
		"employees": v.Employees.List.Visible(),
		"tenants":   v.Tenants.List.Visible(),
	})
}

// accountTarget reads :kind and :id, writing a 400 on bad input.
func accountTarget(c *gin.Context) (view.Kind, uint, bool) {
	kind, err := view.ParseKind(c.Param("kind"))
	if err != nil {
		badRequest(c, "Account type must be employees or tenants.")
		return "", 0, false
	}
	id, ok := parseID(c)
	return kind, id, ok
}

func (h *Handler) UpdateAccountStatus(c *gin.Context) {
	kind, id, ok := accountTarget(c)
	if !ok {
		return
	}
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Status is required.")
		return
	}
	status, err := lifecycle.ParseAccountStatus(req.Status)
	if err != nil {
		badRequest(c, "Status must be Pending, Accepted or Rejected.")
		return
	}

	v := h.accounts()
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load accounts", err)
		return
	}
	if err := v.SetStatus(c.Request.Context(), kind, id, status); err != nil {
		fail(c, "update status", err)
		return
	}
	util.Success(c, util.Response{"kind": kind, "id": id, "status": status})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	kind, id, ok := accountTarget(c)
	if !ok {
		return
	}
	v := h.accounts()
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load accounts", err)
		return
	}
	if err := v.Delete(c.Request.Context(), kind, id); err != nil {
		fail(c, "delete account", err)
		return
	}
	util.Success(c, util.Response{"kind": kind, "id": id})
}
