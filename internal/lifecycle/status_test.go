package lifecycle

import (
	"context"
	"errors"
	"testing"

	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store"
	"rental-backoffice/internal/store/storetest"
)

func TestAccountRule_FreeGraph(t *testing.T) {
	all := []models.AccountStatus{models.AccountPending, models.AccountAccepted, models.AccountRejected}
	for _, from := range all {
		for _, to := range all {
			if err := AccountRule(from, to); err != nil {
				t.Errorf("AccountRule(%s, %s) error = %v, want nil", from, to, err)
			}
		}
	}
	if err := AccountRule(models.AccountPending, "Banned"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("AccountRule(Pending, Banned) error = %v, want ErrUnknownStatus", err)
	}
}

func TestPaymentRule(t *testing.T) {
	tests := []struct {
		name  string
		from  models.PaymentStatus
		to    models.PaymentStatus
		allow bool
	}{
		{"pending to on-process", models.PaymentPending, models.PaymentOnProcess, true},
		{"on-process to paid", models.PaymentOnProcess, models.PaymentPaid, true},
		{"pending to paid", models.PaymentPending, models.PaymentPaid, false},
		{"on-process to pending", models.PaymentOnProcess, models.PaymentPending, false},
		{"paid to on-process", models.PaymentPaid, models.PaymentOnProcess, false},
		{"paid to pending", models.PaymentPaid, models.PaymentPending, false},
		{"paid to paid", models.PaymentPaid, models.PaymentPaid, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PaymentRule(tt.from, tt.to)
			if (err == nil) != tt.allow {
				t.Errorf("PaymentRule(%s, %s) error = %v, allow = %v", tt.from, tt.to, err, tt.allow)
			}
		})
	}
}

func TestAdminPaymentRule(t *testing.T) {
	if err := AdminPaymentRule(models.PaymentOnProcess, models.PaymentPaid); err != nil {
		t.Errorf("On-Process -> Paid error = %v, want nil", err)
	}
	// the payer-side step is not available to the admin
	if err := AdminPaymentRule(models.PaymentPending, models.PaymentOnProcess); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Pending -> On-Process error = %v, want ErrInvalidTransition", err)
	}
	if err := AdminPaymentRule(models.PaymentPaid, models.PaymentPending); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Paid -> Pending error = %v, want ErrInvalidTransition", err)
	}
}

func TestViewMembership(t *testing.T) {
	if InHistory(models.PaymentPending) || !InUnpaid(models.PaymentPending) {
		t.Error("Pending must be unpaid only")
	}
	for _, s := range []models.PaymentStatus{models.PaymentOnProcess, models.PaymentPaid} {
		if !InHistory(s) || InUnpaid(s) {
			t.Errorf("%s must be history only", s)
		}
	}
}

func TestSanctionRule(t *testing.T) {
	if err := SanctionRule(models.SanctionUnresolved, models.SanctionResolved); err != nil {
		t.Errorf("Unresolved -> Resolved error = %v", err)
	}
	if err := SanctionRule(models.SanctionResolved, models.SanctionUnresolved); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Resolved -> Unresolved error = %v, want ErrInvalidTransition", err)
	}
	if err := SanctionRule(models.SanctionUnresolved, "Dismissed"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("Unresolved -> Dismissed error = %v, want ErrUnknownStatus", err)
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseAccountStatus("accepted"); err == nil {
		t.Error("ParseAccountStatus is case sensitive, want error for lower case")
	}
	if s, err := ParsePaymentStatus("On-Process"); err != nil || s != models.PaymentOnProcess {
		t.Errorf("ParsePaymentStatus(On-Process) = %q, %v", s, err)
	}
}

func TestApply_SingleUpdate(t *testing.T) {
	rec, db := storetest.Open(t)
	emp := models.Employee{EmployeeName: "Juan", DepartmentAssigned: "Meat", Status: models.AccountPending}
	db.Create(&emp)

	applied := false
	err := Apply(context.Background(), rec, AccountRule, Change[models.AccountStatus]{
		Table: store.Employee, ID: emp.ID, From: emp.Status, To: models.AccountAccepted,
	}, func() { applied = true })
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !applied {
		t.Error("onSuccess not called")
	}

	updates := rec.Calls("update")
	if len(updates) != 1 {
		t.Fatalf("update calls = %d, want 1", len(updates))
	}
	if len(updates[0].Fields) != 1 || updates[0].Fields["status"] != "Accepted" {
		t.Errorf("update fields = %v, want {status: Accepted}", updates[0].Fields)
	}
}

func TestApply_RuleRejects(t *testing.T) {
	rec, _ := storetest.Open(t)

	applied := false
	err := Apply(context.Background(), rec, AdminPaymentRule, Change[models.PaymentStatus]{
		Table: store.Rent, ID: 1, From: models.PaymentPending, To: models.PaymentPaid,
	}, func() { applied = true })
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Apply() error = %v, want ErrInvalidTransition", err)
	}
	if applied || len(rec.Calls("")) != 0 {
		t.Error("rejected change must not touch the store or the caller state")
	}
}

func TestApply_StoreFailure(t *testing.T) {
	rec, _ := storetest.Open(t)
	rec.FailNext("update", errors.New("service unavailable"))

	applied := false
	err := Apply(context.Background(), rec, SanctionRule, Change[models.SanctionStatus]{
		Table: store.Sanction, ID: 3, From: models.SanctionUnresolved, To: models.SanctionResolved,
	}, func() { applied = true })
	if err == nil {
		t.Fatal("Apply() error = nil, want store error")
	}
	if applied {
		t.Error("onSuccess called after failed update")
	}
}
