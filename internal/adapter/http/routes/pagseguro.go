package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathCheckouts     = "/checkouts"
	PathSubscriptions = "/subscriptions"
	PathTransactions  = "/transactions"
	PathNotifications = "/notifications"
	PathPreApprovals  = "/pre-approvals"
)

func addPagSeguroRoutes(rg *gin.RouterGroup, h Handlers) {
	checkouts := rg.Group(PathCheckouts)
	{
		checkouts.POST("", h.Checkout.CreateCheckout)
		checkouts.GET("", h.Checkout.ListCheckouts)
		checkouts.POST("/session", h.Checkout.CreateSession)
		checkouts.GET("/:id", h.Checkout.GetCheckout)
	}

	rg.POST(PathSubscriptions, h.Checkout.Subscribe)

	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("", h.Transaction.SearchTransactions)
		transactions.GET("/:code", h.Transaction.GetTransaction)
	}

	// PagSeguro posts notificationCode/notificationType here.
	rg.POST(PathNotifications, h.Notification.ReceiveNotification)

	preApprovals := rg.Group(PathPreApprovals)
	{
		preApprovals.GET("", h.PreApproval.SearchPreApprovals)
		preApprovals.GET("/:code", h.PreApproval.GetPreApproval)
		preApprovals.POST("/:code/payments", h.PreApproval.ChargePreApproval)
		preApprovals.POST("/:code/cancel", h.PreApproval.CancelPreApproval)
	}
}
