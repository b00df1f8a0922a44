package handlers

import (
	"net/http"

	"pagseguro_gateway/internal/adapter/http/dto/request"
	"pagseguro_gateway/internal/adapter/http/dto/response"
	"pagseguro_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler receives the notificationCode/notificationType form PagSeguro
// posts when a transaction or pre-approval changes.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	logger  *zap.Logger
}

func NewNotificationHandler(uc usecase.INotificationUseCase, logger *zap.Logger) *NotificationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationHandler{usecase: uc, logger: logger}
}

// ReceiveNotification godoc
// @Summary      Resolve a PagSeguro notification
// @Tags         notifications
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        notificationCode  formData  string  true  "Notification code"
// @Param        notificationType  formData  string  true  "transaction or preApproval"
// @Success      200               {object}  response.NotificationResponse
// @Failure      400               {object}  pkg.HTTPError
// @Router       /notifications [post]
func (h *NotificationHandler) ReceiveNotification(c *gin.Context) {
	var req request.NotificationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Info("[notification][handler] invalid form", zap.Error(err))
		invalidRequest(c)
		return
	}

	n, err := h.usecase.Handle(c.Request.Context(), req.NotificationType, req.NotificationCode)
	if err != nil {
		h.logger.Warn("[notification][handler] handle failed",
			zap.String("type", req.NotificationType),
			zap.String("code", req.NotificationCode),
			zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}
