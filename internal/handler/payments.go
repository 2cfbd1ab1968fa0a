package handler

import (
	"rental-backoffice/internal/export"
	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listPayments(c *gin.Context, v *view.Payments, action string) {
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, action, err)
		return
	}
	v.List.Search(c.Query("q"))

	rows := v.List.Visible()
	util.Success(c, util.Response{"payments": rows, "total": len(rows)})
}

// ListHistory shows every bill past Pending.
func (h *Handler) ListHistory(c *gin.Context) {
	h.listPayments(c, view.NewHistory(h.Store).Guard(h.inflight), "load payment history")
}

// ListUnpaid shows Pending bills.
func (h *Handler) ListUnpaid(c *gin.Context) {
	h.listPayments(c, view.NewUnpaid(h.Store).Guard(h.inflight), "load unpaid payments")
}

// MarkPaid confirms an On-Process payment.
func (h *Handler) MarkPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v := view.NewHistory(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load payment history", err)
		return
	}
	if err := v.MarkPaid(c.Request.Context(), id, h.Now()); err != nil {
		fail(c, "mark payment as paid", err)
		return
	}
	row, _ := v.List.Find(id)
	util.Success(c, util.Response{"payment": row})
}

func (h *Handler) ExportHistory(c *gin.Context) {
	v := view.NewHistory(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "export payment history", err)
		return
	}
	h.sendSheet(c, export.PaymentHistory(v.List.Rows()))
}
