package handler

import (
	"bytes"
	"encoding/json"
	"strings"

	"rental-backoffice/internal/billing"
	"rental-backoffice/internal/export"
	"rental-backoffice/internal/util"
	"rental-backoffice/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// amountField takes a JSON number or string as typed into the form.
type amountField string

func (a *amountField) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = amountField(s)
		return nil
	}
	*a = amountField(b)
	return nil
}

type rentReq struct {
	Rent amountField `json:"rent"`
}

// billReq leaves month and year blank for the current period. Blank or
// non-numeric bills count as zero.
type billReq struct {
	Month        string      `json:"month"`
	Year         string      `json:"year"`
	WaterBill    amountField `json:"water_bill"`
	ElectricBill amountField `json:"electric_bill"`
}

func (h *Handler) ListTenants(c *gin.Context) {
	v := view.NewTenants(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load tenants", err)
		return
	}
	v.List.Search(c.Query("q"))

	rows := v.List.Visible()
	util.Success(c, util.Response{"tenants": rows, "total": len(rows)})
}

func (h *Handler) UpdateRent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req rentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Rent must be a number.")
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(string(req.Rent)))
	if err != nil {
		badRequest(c, "Rent must be a number.")
		return
	}
	if err := util.ValidateAmount(amount); err != nil {
		badRequest(c, "Invalid rent: "+err.Error()+".")
		return
	}

	v := view.NewTenants(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load tenants", err)
		return
	}
	if err := v.EditRent(c.Request.Context(), id, amount); err != nil {
		fail(c, "update rent", err)
		return
	}
	row, _ := v.List.Find(id)
	util.Success(c, util.Response{"tenant": row})
}

// draft loads the tenant and fills the add-bill form from req. It writes
// the error response itself and reports false on failure.
func (h *Handler) draft(c *gin.Context, v *view.Tenants, id uint, req billReq) (billing.Draft, bool) {
	period := billing.CurrentPeriod(h.Now())
	if req.Month != "" || req.Year != "" {
		p, err := billing.ParsePeriod(req.Month, req.Year)
		if err != nil {
			badRequest(c, "Invalid billing period: "+err.Error()+".")
			return billing.Draft{}, false
		}
		period = p
	}
	bills := []struct {
		name string
		raw  amountField
	}{
		{"water bill", req.WaterBill},
		{"electric bill", req.ElectricBill},
	}
	for _, b := range bills {
		if err := util.ValidateAmount(billing.ParseAmount(string(b.raw))); err != nil {
			badRequest(c, "Invalid "+b.name+": "+err.Error()+".")
			return billing.Draft{}, false
		}
	}

	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load tenants", err)
		return billing.Draft{}, false
	}
	d, err := v.Draft(id, period)
	if err != nil {
		fail(c, "open bill", err)
		return billing.Draft{}, false
	}
	return d.SetWater(string(req.WaterBill)).SetElectric(string(req.ElectricBill)), true
}

// PreviewBill returns the running total without saving anything.
func (h *Handler) PreviewBill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req billReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid bill.")
		return
	}
	d, ok := h.draft(c, view.NewTenants(h.Store).Guard(h.inflight), id, req)
	if !ok {
		return
	}
	util.Success(c, util.Response{"bill": d.Rent(), "total": d.Total()})
}

func (h *Handler) AddBill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req billReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid bill.")
		return
	}
	v := view.NewTenants(h.Store).Guard(h.inflight)
	d, ok := h.draft(c, v, id, req)
	if !ok {
		return
	}
	rent, err := v.AddBill(c.Request.Context(), d)
	if err != nil {
		fail(c, "add bill", err)
		return
	}
	util.Success(c, util.Response{"bill": rent})
}

func (h *Handler) DeleteTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	v := view.NewTenants(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "load tenants", err)
		return
	}
	if err := v.Delete(c.Request.Context(), id); err != nil {
		fail(c, "delete tenant", err)
		return
	}
	util.Success(c, util.Response{"id": id})
}

func (h *Handler) ExportTenants(c *gin.Context) {
	v := view.NewTenants(h.Store).Guard(h.inflight)
	if err := v.Load(c.Request.Context()); err != nil {
		fail(c, "export tenants", err)
		return
	}
	h.sendSheet(c, export.Tenants(v.List.Rows()))
}
