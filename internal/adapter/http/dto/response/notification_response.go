package response

import (
	"time"

	"pagseguro_gateway/internal/domain/entities"
)

// NotificationResponse carries the resolved resource: transaction for transaction
// notifications, pre_approval for pre-approval ones.
type NotificationResponse struct {
	Type        string               `json:"type"`
	Code        string               `json:"code"`
	Status      string               `json:"status"`
	ReceivedAt  time.Time            `json:"received_at"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	PreApproval *PreApprovalResponse `json:"pre_approval,omitempty"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	res := NotificationResponse{
		Type:       string(n.Type),
		Code:       n.Code,
		Status:     n.Status(),
		ReceivedAt: n.ReceivedAt,
	}
	if n.Transaction != nil {
		tx := FromTransaction(*n.Transaction)
		res.Transaction = &tx
	}
	if n.PreApproval != nil {
		pa := FromPreApproval(*n.PreApproval)
		res.PreApproval = &pa
	}
	return res
}
