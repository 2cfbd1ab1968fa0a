package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-backoffice/internal/billing"
	"rental-backoffice/internal/lifecycle"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store"
	"rental-backoffice/internal/store/storetest"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func seedTenant(t *testing.T, db *gorm.DB, bn, name, storeName string, rent int64) models.Tenant {
	t.Helper()
	tn := models.Tenant{
		BusinessNumber: bn,
		TenantName:     name,
		StoreName:      storeName,
		BusinessType:   "Dry Goods",
		Rent:           decimal.NewFromInt(rent),
		Status:         models.AccountAccepted,
	}
	if err := db.Create(&tn).Error; err != nil {
		t.Fatalf("seed tenant: %v", err)
	}
	return tn
}

func seedEmployees(t *testing.T, db *gorm.DB, names ...string) []models.Employee {
	t.Helper()
	out := make([]models.Employee, 0, len(names))
	for i, n := range names {
		e := models.Employee{
			IDNumber:           string(rune('A'+i)) + "-001",
			EmployeeName:       n,
			DepartmentAssigned: "Meat",
			Status:             models.AccountPending,
		}
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("seed employee: %v", err)
		}
		out = append(out, e)
	}
	return out
}

func TestEmployees_Delete(t *testing.T) {
	rec, db := storetest.Open(t)
	emps := seedEmployees(t, db, "Juan", "Maria", "Jose")
	ctx := context.Background()

	v := NewEmployees(rec)
	if err := v.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	rec.Reset()

	if err := v.Delete(ctx, emps[1].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	deletes := rec.Calls("delete")
	if len(deletes) != 1 || deletes[0].ID != emps[1].ID || deletes[0].Table != store.Employee {
		t.Fatalf("delete calls = %+v, want one for id %d", deletes, emps[1].ID)
	}
	rows := v.List.Rows()
	if len(rows) != 2 || rows[0].ID != emps[0].ID || rows[1].ID != emps[2].ID {
		t.Errorf("rows after delete = %+v", rows)
	}
	if v.List.ModalOpen || v.List.Busy {
		t.Error("modal should close and busy clear after a successful delete")
	}
}

func TestEmployees_DeleteFailureKeepsState(t *testing.T) {
	rec, db := storetest.Open(t)
	emps := seedEmployees(t, db, "Juan", "Maria")
	ctx := context.Background()

	v := NewEmployees(rec)
	v.Load(ctx)
	rec.FailNext("delete", errors.New("connection reset"))

	err := v.Delete(ctx, emps[0].ID)
	var serr *store.Error
	if !errors.As(err, &serr) {
		t.Fatalf("Delete() error = %v, want *store.Error", err)
	}
	if len(v.List.Rows()) != 2 {
		t.Error("failed delete must leave rows untouched")
	}
	if !v.List.ModalOpen || v.List.Busy {
		t.Errorf("state after failure = open %v busy %v, want open and idle", v.List.ModalOpen, v.List.Busy)
	}
}

func TestEmployees_NotInView(t *testing.T) {
	rec, _ := storetest.Open(t)
	v := NewEmployees(rec)
	v.Load(context.Background())
	rec.Reset()

	if err := v.Delete(context.Background(), 42); !errors.Is(err, ErrNotInView) {
		t.Errorf("Delete(42) error = %v, want ErrNotInView", err)
	}
	if len(rec.Calls("")) != 0 {
		t.Error("unknown id must not reach the store")
	}
}

func TestEmployees_Busy(t *testing.T) {
	rec, db := storetest.Open(t)
	emps := seedEmployees(t, db, "Juan")
	v := NewEmployees(rec)
	v.Load(context.Background())
	rec.Reset()

	v.List.Begin()
	if err := v.Delete(context.Background(), emps[0].ID); !errors.Is(err, ErrBusy) {
		t.Errorf("Delete() while busy error = %v, want ErrBusy", err)
	}
	if len(rec.Calls("")) != 0 {
		t.Error("duplicate submit must not reach the store")
	}
}

// blockingStore holds the first insert until release is closed.
type blockingStore struct {
	store.Store
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) Insert(ctx context.Context, table store.Table, row any) error {
	b.entered <- struct{}{}
	<-b.release
	return b.Store.Insert(ctx, table, row)
}

func TestTenants_SharedGuard(t *testing.T) {
	rec, db := storetest.Open(t)
	tn := seedTenant(t, db, "B-1", "Nena", "Aling Nena", 5000)
	ctx := context.Background()
	bs := &blockingStore{Store: rec, entered: make(chan struct{}, 1), release: make(chan struct{})}
	g := NewInFlight()
	period := billing.Period{Month: time.May, Year: 2025}

	first := NewTenants(bs).Guard(g)
	second := NewTenants(bs).Guard(g)
	first.Load(ctx)
	second.Load(ctx)

	done := make(chan error, 1)
	go func() {
		d, _ := first.Draft(tn.ID, period)
		_, err := first.AddBill(ctx, d)
		done <- err
	}()
	<-bs.entered

	d, _ := second.Draft(tn.ID, period)
	if _, err := second.AddBill(ctx, d); !errors.Is(err, ErrBusy) {
		t.Errorf("second AddBill() error = %v, want ErrBusy", err)
	}
	if err := second.EditRent(ctx, tn.ID, decimal.NewFromInt(6000)); !errors.Is(err, ErrBusy) {
		t.Errorf("EditRent() during AddBill error = %v, want ErrBusy", err)
	}

	close(bs.release)
	if err := <-done; err != nil {
		t.Fatalf("first AddBill() error = %v", err)
	}
	if n := len(rec.Calls("insert")); n != 1 {
		t.Errorf("insert calls = %d, want 1", n)
	}

	// released rows can be mutated again
	if err := second.EditRent(ctx, tn.ID, decimal.NewFromInt(6000)); err != nil {
		t.Errorf("EditRent() after release error = %v", err)
	}
}

func TestEmployees_SetStatus(t *testing.T) {
	rec, db := storetest.Open(t)
	emps := seedEmployees(t, db, "Juan", "Maria")
	ctx := context.Background()

	v := NewEmployees(rec)
	v.Load(ctx)
	rec.Reset()

	if err := v.SetStatus(ctx, emps[0].ID, models.AccountAccepted); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	updates := rec.Calls("update")
	if len(updates) != 1 {
		t.Fatalf("update calls = %d, want 1", len(updates))
	}
	if len(updates[0].Fields) != 1 || updates[0].Fields["status"] != "Accepted" {
		t.Errorf("fields = %v, want {status: Accepted}", updates[0].Fields)
	}

	got, _ := v.List.Find(emps[0].ID)
	want := emps[0]
	want.Status = models.AccountAccepted
	if got.Status != want.Status || got.EmployeeName != want.EmployeeName ||
		got.DepartmentAssigned != want.DepartmentAssigned || got.IDNumber != want.IDNumber {
		t.Errorf("row = %+v, want %+v", got, want)
	}
	if other, _ := v.List.Find(emps[1].ID); other.Status != models.AccountPending {
		t.Errorf("other row status = %s, want Pending", other.Status)
	}

	if err := v.SetStatus(ctx, emps[0].ID, "Banned"); !errors.Is(err, lifecycle.ErrUnknownStatus) {
		t.Errorf("SetStatus(Banned) error = %v, want ErrUnknownStatus", err)
	}
}

func TestDashboard_LoadAndAssign(t *testing.T) {
	rec, db := storetest.Open(t)
	emps := seedEmployees(t, db, "Juan", "Maria")
	seedTenant(t, db, "B-1", "Nena", "Aling Nena", 5000)
	db.Create(&models.Rent{BusinessNumber: "B-1", Date: "May 2025", Status: models.PaymentPending})
	db.Create(&models.Rent{BusinessNumber: "B-1", Date: "April 2025", Status: models.PaymentPaid})
	db.Create(&models.Sanction{BusinessNumber: "B-1", StoreName: "Aling Nena", Complain: "noise", Sanction: "warning", Status: models.SanctionUnresolved})
	ctx := context.Background()

	v := NewDashboard(rec)
	if err := v.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Counts{Employees: 2, Tenants: 1, PendingPayments: 1, UnresolvedSanction: 1}
	if v.Counts != want {
		t.Errorf("Counts = %+v, want %+v", v.Counts, want)
	}

	rec.Reset()
	if err := v.Assign(ctx, emps[1].ID, "Fish"); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	updates := rec.Calls("update")
	if len(updates) != 1 || updates[0].Fields["department_assigned"] != "Fish" {
		t.Errorf("update calls = %+v", updates)
	}
	if e, _ := v.Employees.List.Find(emps[1].ID); e.DepartmentAssigned != "Fish" {
		t.Errorf("department = %q, want Fish", e.DepartmentAssigned)
	}
}

func TestTenants_AddBill(t *testing.T) {
	rec, db := storetest.Open(t)
	tn := seedTenant(t, db, "B-7", "Nena", "Aling Nena", 5000)
	ctx := context.Background()

	v := NewTenants(rec)
	v.Load(ctx)

	d, err := v.Draft(tn.ID, billing.Period{Month: time.May, Year: 2025})
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	d = d.SetWater("200").SetElectric("150")
	if !d.Total().Equal(decimal.NewFromInt(5350)) {
		t.Errorf("draft total = %s, want 5350", d.Total())
	}

	rent, err := v.AddBill(ctx, d)
	if err != nil {
		t.Fatalf("AddBill() error = %v", err)
	}
	if rent.ID == 0 || rent.Status != models.PaymentPending || rent.Date != "May 2025" {
		t.Errorf("rent = %+v", rent)
	}

	unpaid := NewUnpaid(rec)
	history := NewHistory(rec)
	unpaid.Load(ctx)
	history.Load(ctx)
	if _, ok := unpaid.List.Find(rent.ID); !ok {
		t.Error("new bill missing from unpaid")
	}
	if _, ok := history.List.Find(rent.ID); ok {
		t.Error("new bill must not show in history")
	}
	if got, _ := unpaid.List.Find(rent.ID); !got.Total.Equal(decimal.NewFromInt(5350)) {
		t.Errorf("stored total = %s, want 5350", got.Total)
	}
}

func TestTenants_EditRentKeepsIssuedBills(t *testing.T) {
	rec, db := storetest.Open(t)
	tn := seedTenant(t, db, "B-8", "Kanor", "Mang Kanor", 5000)
	ctx := context.Background()

	v := NewTenants(rec)
	v.Load(ctx)
	d, _ := v.Draft(tn.ID, billing.Period{Month: time.June, Year: 2025})
	rent, err := v.AddBill(ctx, d)
	if err != nil {
		t.Fatalf("AddBill() error = %v", err)
	}

	if err := v.EditRent(ctx, tn.ID, decimal.NewFromInt(6000)); err != nil {
		t.Fatalf("EditRent() error = %v", err)
	}
	if got, _ := v.List.Find(tn.ID); !got.Rent.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("tenant rent = %s, want 6000", got.Rent)
	}

	var stored models.Rent
	db.First(&stored, rent.ID)
	if !stored.Rent.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("issued bill rent = %s, want 5000", stored.Rent)
	}
}

func TestPayments_MarkPaid(t *testing.T) {
	rec, db := storetest.Open(t)
	onProcess := models.Rent{BusinessNumber: "B-1", StoreName: "Aling Nena", Date: "May 2025", Total: decimal.NewFromInt(100), Status: models.PaymentOnProcess}
	pending := models.Rent{BusinessNumber: "B-2", StoreName: "Tindahan", Date: "May 2025", Total: decimal.NewFromInt(100), Status: models.PaymentPending}
	db.Create(&onProcess)
	db.Create(&pending)
	ctx := context.Background()
	now := time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC)

	history := NewHistory(rec)
	history.Load(ctx)
	rec.Reset()

	if err := history.MarkPaid(ctx, onProcess.ID, now); err != nil {
		t.Fatalf("MarkPaid() error = %v", err)
	}
	updates := rec.Calls("update")
	if len(updates) != 1 {
		t.Fatalf("update calls = %d, want 1", len(updates))
	}
	if updates[0].Fields["status"] != "Paid" || updates[0].Fields["date_paid"] == nil {
		t.Errorf("fields = %v, want status Paid with date_paid", updates[0].Fields)
	}
	got, ok := history.List.Find(onProcess.ID)
	if !ok || got.Status != models.PaymentPaid || got.DatePaid == nil || !got.DatePaid.Equal(now) {
		t.Errorf("row = %+v, want Paid at %v", got, now)
	}

	// Paid rows are gone from any Pending or On-Process view.
	unpaid := NewUnpaid(rec)
	unpaid.Load(ctx)
	if _, ok := unpaid.List.Find(onProcess.ID); ok {
		t.Error("paid row shows in unpaid")
	}
	var still []models.Rent
	rec.FetchWhere(ctx, store.Rent, store.Eq("status", string(models.PaymentOnProcess)), &still)
	if len(still) != 0 {
		t.Errorf("On-Process rows = %d, want 0", len(still))
	}
}

func TestPayments_MarkPaidRejected(t *testing.T) {
	rec, db := storetest.Open(t)
	paid := models.Rent{BusinessNumber: "B-1", Date: "May 2025", Status: models.PaymentPaid}
	pending := models.Rent{BusinessNumber: "B-2", Date: "May 2025", Status: models.PaymentPending}
	db.Create(&paid)
	db.Create(&pending)
	ctx := context.Background()

	history := NewHistory(rec)
	history.Load(ctx)
	rec.Reset()
	if err := history.MarkPaid(ctx, paid.ID, time.Now()); !errors.Is(err, lifecycle.ErrInvalidTransition) {
		t.Errorf("MarkPaid(Paid) error = %v, want ErrInvalidTransition", err)
	}

	unpaid := NewUnpaid(rec)
	unpaid.Load(ctx)
	if err := unpaid.MarkPaid(ctx, pending.ID, time.Now()); !errors.Is(err, lifecycle.ErrInvalidTransition) {
		t.Errorf("MarkPaid(Pending) error = %v, want ErrInvalidTransition", err)
	}
	if n := len(rec.Calls("update")); n != 0 {
		t.Errorf("update calls = %d, want 0", n)
	}
	if r, _ := unpaid.List.Find(pending.ID); r.Status != models.PaymentPending {
		t.Error("rejected change modified the row")
	}
}

func TestPayments_Search(t *testing.T) {
	rec, db := storetest.Open(t)
	db.Create(&models.Rent{BusinessNumber: "B-1", StoreName: "Aling Nena", Date: "May 2025", Status: models.PaymentPending})
	db.Create(&models.Rent{BusinessNumber: "B-2", StoreName: "Mang Kanor", Date: "May 2025", Status: models.PaymentPending})

	v := NewUnpaid(rec)
	v.Load(context.Background())
	selects := len(rec.Calls("select"))

	v.List.Search("NENA")
	if got := v.List.Visible(); len(got) != 1 || got[0].BusinessNumber != "B-1" {
		t.Errorf("Visible() = %+v, want B-1", got)
	}
	v.List.Search("zzz")
	if got := v.List.Visible(); len(got) != 0 {
		t.Errorf("Visible() = %d rows, want 0", len(got))
	}
	if len(rec.Calls("select")) != selects {
		t.Error("search must not query the store")
	}
}

func TestSanctions_AddAndResolve(t *testing.T) {
	rec, db := storetest.Open(t)
	seedTenant(t, db, "B-9", "Nena", "Aling Nena", 5000)
	ctx := context.Background()

	v := NewSanctions(rec)
	if err := v.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if names := v.StoreNames(); len(names) != 1 || names[0] != "Aling Nena" {
		t.Errorf("StoreNames() = %v", names)
	}

	if _, err := v.Add(ctx, NewSanction{StoreName: "Nowhere", Complain: "x", Sanction: "y"}); !errors.Is(err, ErrUnknownStore) {
		t.Errorf("Add(unknown store) error = %v, want ErrUnknownStore", err)
	}

	s, err := v.Add(ctx, NewSanction{StoreName: "Aling Nena", Complain: "blocking aisle", Sanction: "warning"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if s.BusinessNumber != "B-9" || s.Status != models.SanctionUnresolved {
		t.Errorf("sanction = %+v", s)
	}
	if len(v.List.Rows()) != 1 {
		t.Fatalf("rows = %d, want 1", len(v.List.Rows()))
	}

	if err := v.Resolve(ctx, s.ID); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(v.List.Rows()) != 0 {
		t.Error("resolved sanction still listed")
	}
	v.Load(ctx)
	if len(v.List.Rows()) != 0 {
		t.Error("resolved sanction returned by reload")
	}
}

func TestSanctions_AddUsesTenantStoreName(t *testing.T) {
	rec, db := storetest.Open(t)
	seedTenant(t, db, "B-9", "Nena", "Aling Nena", 5000)
	ctx := context.Background()

	v := NewSanctions(rec)
	if err := v.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	s, err := v.Add(ctx, NewSanction{StoreName: " aling NENA", Complain: "noise", Sanction: "warning"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if s.StoreName != "Aling Nena" || s.BusinessNumber != "B-9" {
		t.Errorf("sanction = %+v, want store Aling Nena B-9", s)
	}
	var stored models.Sanction
	db.First(&stored, s.ID)
	if stored.StoreName != "Aling Nena" {
		t.Errorf("stored store name = %q, want Aling Nena", stored.StoreName)
	}
}

func TestAccounts(t *testing.T) {
	rec, db := storetest.Open(t)
	emps := seedEmployees(t, db, "Juan")
	tn := seedTenant(t, db, "B-1", "Nena", "Aling Nena", 5000)
	ctx := context.Background()

	v := NewAccounts(NewEmployees(rec), NewTenants(rec))
	if err := v.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := v.SetStatus(ctx, KindTenant, tn.ID, models.AccountRejected); err != nil {
		t.Fatalf("SetStatus(tenant) error = %v", err)
	}
	// any-to-any: a rejected account can go back to pending
	if err := v.SetStatus(ctx, KindTenant, tn.ID, models.AccountPending); err != nil {
		t.Fatalf("SetStatus(tenant, Pending) error = %v", err)
	}
	if got, _ := v.Tenants.List.Find(tn.ID); got.Status != models.AccountPending {
		t.Errorf("tenant status = %s, want Pending", got.Status)
	}

	if err := v.Delete(ctx, KindEmployee, emps[0].ID); err != nil {
		t.Fatalf("Delete(employee) error = %v", err)
	}
	if len(v.Employees.List.Rows()) != 0 || len(v.Tenants.List.Rows()) != 1 {
		t.Error("delete touched the wrong tab")
	}

	if _, err := ParseKind("admins"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(admins) error = %v, want ErrUnknownKind", err)
	}
}

func TestGcash_CRUD(t *testing.T) {
	rec, _ := storetest.Open(t)
	ctx := context.Background()

	v := NewGcash(rec)
	v.Load(ctx)

	acc, err := v.Create(ctx, "Market Office", "09171234567")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := v.Update(ctx, acc.ID, "Market Office 2", "09179999999"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got, _ := v.List.Find(acc.ID); got.Name != "Market Office 2" || got.Number != "09179999999" {
		t.Errorf("row = %+v", got)
	}

	reload := NewGcash(rec)
	reload.Load(ctx)
	if got, _ := reload.List.Find(acc.ID); got.Number != "09179999999" {
		t.Errorf("stored number = %q", got.Number)
	}

	if err := v.Delete(ctx, acc.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(v.List.Rows()) != 0 {
		t.Error("row still listed after delete")
	}
}
