// Package lifecycle holds the status rules for accounts, rent payments and
// sanctions, and the single-update algorithm that applies them.
package lifecycle

import (
	"errors"
	"fmt"

	"rental-backoffice/internal/models"
)

var (
	ErrUnknownStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Rule reports whether from may move to to.
type Rule[S ~string] func(from, to S) error

// Account statuses form a free graph: any known status may be set from any
// other by an administrator.
func ParseAccountStatus(s string) (models.AccountStatus, error) {
	switch st := models.AccountStatus(s); st {
	case models.AccountPending, models.AccountAccepted, models.AccountRejected:
		return st, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownStatus, s)
}

func AccountRule(from, to models.AccountStatus) error {
	if _, err := ParseAccountStatus(string(to)); err != nil {
		return err
	}
	return nil
}

// Payments only move forward. Pending→On-Process happens on the payer side.
var paymentTransitions = map[models.PaymentStatus][]models.PaymentStatus{
	models.PaymentPending:   {models.PaymentOnProcess},
	models.PaymentOnProcess: {models.PaymentPaid},
	models.PaymentPaid:      {}, // terminal
}

func ParsePaymentStatus(s string) (models.PaymentStatus, error) {
	st := models.PaymentStatus(s)
	if _, ok := paymentTransitions[st]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// PaymentRule is the full forward-only graph.
func PaymentRule(from, to models.PaymentStatus) error {
	if _, err := ParsePaymentStatus(string(to)); err != nil {
		return err
	}
	for _, s := range paymentTransitions[from] {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// AdminPaymentRule is the subset the back-office may perform: confirming an
// On-Process payment as Paid.
func AdminPaymentRule(from, to models.PaymentStatus) error {
	if from != models.PaymentOnProcess || to != models.PaymentPaid {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// InHistory reports whether a payment shows on the history view.
func InHistory(s models.PaymentStatus) bool { return s != models.PaymentPending }

// InUnpaid reports whether a payment shows on the unpaid view.
func InUnpaid(s models.PaymentStatus) bool { return s == models.PaymentPending }

func SanctionRule(from, to models.SanctionStatus) error {
	if to != models.SanctionUnresolved && to != models.SanctionResolved {
		return fmt.Errorf("%w %q", ErrUnknownStatus, to)
	}
	if from == models.SanctionUnresolved && to == models.SanctionResolved {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
