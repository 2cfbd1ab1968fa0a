package handler

import (
	"strings"

	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListSanctions(c *gin.Context) {
	v := view.NewSanctions(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load sanctions", err)
		return
	}
	v.List.Search(c.Query("q"))

	rows := v.List.Visible()
	util.Success(c, util.Response{
		"sanctions":   rows,
		"total":       len(rows),
		"store_names": v.StoreNames(),
	})
}

func (h *Handler) AddSanction(c *gin.Context) {
	var req view.NewSanction
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Store name, complaint and sanction are required.")
		return
	}
	req.StoreName = strings.TrimSpace(req.StoreName)
	req.Complain = strings.TrimSpace(req.Complain)
	req.Sanction = strings.TrimSpace(req.Sanction)
	req.Clearance = strings.TrimSpace(req.Clearance)
	if err := util.ValidateText("complaint", req.Complain, 1000); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := util.ValidateText("sanction", req.Sanction, 1000); err != nil {
		badRequest(c, err.Error())
		return
	}

	v := view.NewSanctions(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load sanctions", err)
		return
	}
	row, err := v.Add(c.Request.Context(), req)
	if err != nil {
		fail(c, "add sanction", err)
		return
	}
	util.Success(c, util.Response{"sanction": row})
}

func (h *Handler) ResolveSanction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v := view.NewSanctions(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load sanctions", err)
		return
	}
	if err := v.Resolve(c.Request.Context(), id); err != nil {
		fail(c, "resolve sanction", err)
		return
	}
	util.Success(c, util.Response{"id": id})
}
