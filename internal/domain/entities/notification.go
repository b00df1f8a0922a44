package entities

import (
	"strings"
	"time"
)

// NotificationType is the notificationType PagSeguro posts alongside a code.
type NotificationType string

const (
	NotificationTransaction NotificationType = "transaction"
	NotificationPreApproval NotificationType = "preApproval"
)

// ParseNotificationType accepts the posted value in any case, with or without
// separators ("preApproval", "pre_approval", "pre-approval").
func ParseNotificationType(s string) (NotificationType, bool) {
	norm := strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "transaction":
		return NotificationTransaction, true
	case "preapproval":
		return NotificationPreApproval, true
	}
	return "", false
}

// Notification is a resolved notification: exactly one of Transaction and
// PreApproval is set, matching Type.
type Notification struct {
	Type        NotificationType
	Code        string
	ReceivedAt  time.Time
	Transaction *Transaction
	PreApproval *PreApproval
}

func (n Notification) Status() string {
	switch {
	case n.Transaction != nil:
		return TransactionStatus(n.Transaction.Status).String()
	case n.PreApproval != nil:
		return n.PreApproval.Status
	}
	return ""
}

// TransactionStatus is the numeric status of a legacy transaction.
type TransactionStatus int

const (
	TransactionAwaitingPayment TransactionStatus = iota + 1
	TransactionInAnalysis
	TransactionPaid
	TransactionAvailable
	TransactionInDispute
	TransactionReturned
	TransactionCancelled
	TransactionDebited
	TransactionTemporaryRetention
)

var transactionStatusNames = map[TransactionStatus]string{
	TransactionAwaitingPayment:    "AWAITING_PAYMENT",
	TransactionInAnalysis:         "IN_ANALYSIS",
	TransactionPaid:               "PAID",
	TransactionAvailable:          "AVAILABLE",
	TransactionInDispute:          "IN_DISPUTE",
	TransactionReturned:           "RETURNED",
	TransactionCancelled:          "CANCELLED",
	TransactionDebited:            "DEBITED",
	TransactionTemporaryRetention: "TEMPORARY_RETENTION",
}

func (s TransactionStatus) String() string {
	if name, ok := transactionStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}
