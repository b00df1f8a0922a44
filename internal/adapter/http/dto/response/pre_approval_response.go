package response

import (
	"time"

	"pagseguro_gateway/internal/domain/entities"
)

type PreApprovalResponse struct {
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Tracker       string    `json:"tracker,omitempty"`
	Status        string    `json:"status"`
	Reference     string    `json:"reference"`
	Charge        string    `json:"charge,omitempty"`
	Date          time.Time `json:"date"`
	LastEventDate time.Time `json:"last_event_date"`
}

func FromPreApproval(pa entities.PreApproval) PreApprovalResponse {
	return PreApprovalResponse(pa)
}

func FromPreApprovals(pas []entities.PreApproval) []PreApprovalResponse {
	out := make([]PreApprovalResponse, 0, len(pas))
	for _, pa := range pas {
		out = append(out, FromPreApproval(pa))
	}
	return out
}

type PreApprovalPaymentResponse struct {
	TransactionCode string    `json:"transaction_code"`
	Date            time.Time `json:"date"`
}

func FromPreApprovalPayment(p entities.PreApprovalPayment) PreApprovalPaymentResponse {
	return PreApprovalPaymentResponse(p)
}

type PreApprovalCancelResponse struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

func FromPreApprovalCancel(c entities.PreApprovalCancel) PreApprovalCancelResponse {
	return PreApprovalCancelResponse(c)
}
