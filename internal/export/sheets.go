package export

import (
	"rental-backoffice/internal/models"

	"github.com/shopspring/decimal"
)

const (
	startedLayout = "01-02-2006"
	paidLayout    = "January 2, 2006"
)

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func Employees(rows []models.Employee) Sheet {
	s := Sheet{
		Entity: "Employees",
		Columns: []Column{
			{"Employee ID", 15},
			{"Employee Name", 25},
			{"Current Assignment", 25},
			{"Status", 15},
		},
	}
	for _, e := range rows {
		assignment := ""
		if e.DepartmentAssigned != "" {
			assignment = e.DepartmentAssigned + " Section"
		}
		s.Rows = append(s.Rows, []any{e.IDNumber, e.EmployeeName, assignment, string(e.Status)})
	}
	return s
}

func Tenants(rows []models.Tenant) Sheet {
	s := Sheet{
		Entity: "Tenants",
		Columns: []Column{
			{"Business Number", 15},
			{"Tenant Name", 25},
			{"Store Name", 25},
			{"Business Type", 20},
			{"Date Started", 15},
			{"Monthly Rent", 15},
			{"Status", 15},
		},
	}
	for _, t := range rows {
		s.Rows = append(s.Rows, []any{
			t.BusinessNumber,
			t.TenantName,
			t.StoreName,
			t.BusinessType,
			t.CreatedAt.Format(startedLayout),
			amount(t.Rent),
			string(t.Status),
		})
	}
	return s
}

// PaymentHistory exports the history screen; unpaid bills have no date paid.
func PaymentHistory(rows []models.Rent) Sheet {
	s := Sheet{
		Entity: "Payment_History",
		Columns: []Column{
			{"Business Number", 15},
			{"Store Name", 25},
			{"Section", 20},
			{"Payment Amount", 15},
			{"For Month of", 15},
			{"Date Paid", 15},
			{"Payment Collector", 25},
		},
	}
	for _, r := range rows {
		paid := ""
		if r.DatePaid != nil {
			paid = r.DatePaid.Format(paidLayout)
		}
		s.Rows = append(s.Rows, []any{
			r.BusinessNumber,
			r.StoreName,
			r.Department,
			amount(r.Total),
			r.Date,
			paid,
			r.EmployeeName,
		})
	}
	return s
}

func GcashAccounts(rows []models.GcashAccount) Sheet {
	s := Sheet{
		Entity: "GCash_Accounts",
		Columns: []Column{
			{"Name", 30},
			{"GCash Number", 20},
		},
	}
	for _, g := range rows {
		s.Rows = append(s.Rows, []any{g.Name, g.Number})
	}
	return s
}
