package handler

import (
	"strings"

	"rental-backoffice/internal/export"
	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
)

type gcashReq struct {
	Name   string `json:"name" binding:"required"`
	Number string `json:"number" binding:"required"`
}

func (r *gcashReq) validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Number = strings.TrimSpace(r.Number)
	if err := util.ValidateText("name", r.Name, 128); err != nil {
		return err
	}
	return util.ValidateMobile(r.Number)
}

func (h *Handler) ListGcash(c *gin.Context) {
	v := view.NewGcash(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load GCash accounts", err)
		return
	}
	v.List.Search(c.Query("q"))

	rows := v.List.Visible()
	util.Success(c, util.Response{"accounts": rows, "total": len(rows)})
}

func (h *Handler) CreateGcash(c *gin.Context) {
	var req gcashReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name and number are required.")
		return
	}
	if err := req.validate(); err != nil {
		badRequest(c, err.Error())
		return
	}
	v := view.NewGcash(h.Store).Guard(h.inflight)
	row, err := v.Create(c.Request.Context(), req.Name, req.Number)
	if err != nil {
		fail(c, "add GCash account", err)
		return
	}
	util.Success(c, util.Response{"account": row})
}

func (h *Handler) UpdateGcash(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req gcashReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name and number are required.")
		return
	}
	if err := req.validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	v := view.NewGcash(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load GCash accounts", err)
		return
	}
	if err := v.Update(c.Request.Context(), id, req.Name, req.Number); err != nil {
		fail(c, "update GCash account", err)
		return
	}
	row, _ := v.List.Find(id)
	util.Success(c, util.Response{"account": row})
}

func (h *Handler) DeleteGcash(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v := view.NewGcash(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load GCash accounts", err)
		return
	}
	if err := v.Delete(c.Request.Context(), id); err != nil {
		fail(c, "delete GCash account", err)
		return
	}
	util.Success(c, util.Response{"id": id})
}

func (h *Handler) ExportGcash(c *gin.Context) {
	v := view.NewGcash(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "export GCash accounts", err)
		return
	}
	h.sendSheet(c, export.GcashAccounts(v.List.Rows()))
}
