package request

// NotificationRequest is the form PagSeguro posts to the notification URL.
type NotificationRequest struct {
	NotificationCode string `form:"notificationCode" binding:"required"`
	NotificationType string `form:"notificationType" binding:"required"`
}
