package models

// AccountStatus is the membership status shared by employees and tenants.
type AccountStatus string

const (
	AccountPending  AccountStatus = "Pending"
	AccountAccepted AccountStatus = "Accepted"
	AccountRejected AccountStatus = "Rejected"
)

// PaymentStatus tracks a rent record from billing to settlement.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"    // billed, nothing submitted yet
	PaymentOnProcess PaymentStatus = "On-Process" // proof submitted, awaiting confirmation
	PaymentPaid      PaymentStatus = "Paid"
)

// SanctionStatus tracks a complaint against a tenant.
type SanctionStatus string

const (
	SanctionUnresolved SanctionStatus = "Unresolved"
	SanctionResolved   SanctionStatus = "Resolved"
)
