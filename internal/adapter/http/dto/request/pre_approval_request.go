package request

import "pagseguro_gateway/internal/domain/entities"

// PreApprovalChargeRequest is the body of POST /v1/pre-approvals/:code/payments.
type PreApprovalChargeRequest struct {
	Reference string         `json:"reference"`
	Sender    SenderRequest  `json:"sender"`
	Items     []ItemRequest  `json:"items" binding:"required,min=1,dive"`
	Extra     map[string]any `json:"extra"`
}

func (r PreApprovalChargeRequest) ToState(code string) entities.TransactionState {
	state := CheckoutRequest{Reference: r.Reference, Sender: r.Sender, Items: r.Items}.ToState()
	state.PreApprovalCode = code
	return state
}
