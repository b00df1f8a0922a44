package response

import (
	"time"

	"pagseguro_gateway/internal/domain/entities"
)

type TransactionItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
}

type TransactionSenderResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	AreaCode string `json:"area_code,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// TransactionResponse amounts are decimal reais, as reported by PagSeguro.
type TransactionResponse struct {
	Code              string                     `json:"code"`
	Reference         string                     `json:"reference"`
	Type              int                        `json:"type"`
	Status            int                        `json:"status"`
	StatusName        string                     `json:"status_name"`
	Date              time.Time                  `json:"date"`
	LastEventDate     time.Time                  `json:"last_event_date"`
	PaymentMethodType int                        `json:"payment_method_type"`
	PaymentMethodCode int                        `json:"payment_method_code"`
	GrossAmount       float64                    `json:"gross_amount"`
	DiscountAmount    float64                    `json:"discount_amount"`
	FeeAmount         float64                    `json:"fee_amount"`
	NetAmount         float64                    `json:"net_amount"`
	ExtraAmount       float64                    `json:"extra_amount"`
	InstallmentCount  int                        `json:"installment_count"`
	Items             []TransactionItemResponse  `json:"items"`
	Sender            *TransactionSenderResponse `json:"sender,omitempty"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	res := TransactionResponse{
		Code:              tx.Code,
		Reference:         tx.Reference,
		Type:              tx.Type,
		Status:            tx.Status,
		StatusName:        entities.TransactionStatus(tx.Status).String(),
		Date:              tx.Date,
		LastEventDate:     tx.LastEventDate,
		PaymentMethodType: tx.PaymentMethodType,
		PaymentMethodCode: tx.PaymentMethodCode,
		GrossAmount:       tx.GrossAmount,
		DiscountAmount:    tx.DiscountAmount,
		FeeAmount:         tx.FeeAmount,
		NetAmount:         tx.NetAmount,
		ExtraAmount:       tx.ExtraAmount,
		InstallmentCount:  tx.InstallmentCount,
		Items:             make([]TransactionItemResponse, 0, len(tx.Items)),
	}
	for _, it := range tx.Items {
		res.Items = append(res.Items, TransactionItemResponse(it))
	}
	if tx.Sender != nil {
		s := TransactionSenderResponse(*tx.Sender)
		res.Sender = &s
	}
	return res
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}
