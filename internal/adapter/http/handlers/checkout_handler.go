package handlers

import (
	"net/http"
	"strings"

	"pagseguro_gateway/internal/adapter/http/dto/request"
	"pagseguro_gateway/internal/adapter/http/dto/response"
	"pagseguro_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler handles checkout, session and subscription requests.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, logger *zap.Logger) *CheckoutHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutHandler{usecase: uc, logger: logger}
}

// CreateCheckout godoc
// @Summary      Create a PagSeguro order
// @Tags         checkouts
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Checkout"
// @Success      201   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /checkouts [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("[checkout][handler] invalid payload", zap.Error(err))
		invalidRequest(c)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), req.ToState(), req.Extra)
	if err != nil {
		h.logger.Warn("[checkout][handler] create failed", zap.String("reference", req.Reference), zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	h.logger.Info("[checkout][handler] create success", zap.String("id", created.ID), zap.String("status", created.Status))

	c.JSON(http.StatusCreated, response.FromCheckoutRecord(created))
}

// CreateSession godoc
// @Summary      Open a transparent checkout session
// @Tags         checkouts
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /checkouts/session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	session, err := h.usecase.CreateSession(c.Request.Context())
	if err != nil {
		h.logger.Warn("[checkout][handler] session failed", zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(session))
}

// GetCheckout godoc
// @Summary      Get a stored checkout
// @Tags         checkouts
// @Produce      json
// @Param        id   path      string  true  "Checkout id"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkouts/{id} [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutRecord(rec))
}

// ListCheckouts godoc
// @Summary      List stored checkouts for a reference
// @Tags         checkouts
// @Produce      json
// @Param        reference  query     string  true  "Checkout reference"
// @Success      200        {array}   response.CheckoutResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /checkouts [get]
func (h *CheckoutHandler) ListCheckouts(c *gin.Context) {
	reference := strings.TrimSpace(c.Query("reference"))
	records, err := h.usecase.ListByReference(c.Request.Context(), reference)
	if err != nil {
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutRecords(records))
}

// Subscribe godoc
// @Summary      Subscribe a customer to a recurring plan
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubscriptionRequest  true  "Subscription"
// @Success      201   {object}  response.SubscriptionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /subscriptions [post]
func (h *CheckoutHandler) Subscribe(c *gin.Context) {
	var req request.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("[subscription][handler] invalid payload", zap.Error(err))
		invalidRequest(c)
		return
	}

	sub, err := h.usecase.Subscribe(c.Request.Context(), req.ToState())
	if err != nil {
		h.logger.Warn("[subscription][handler] subscribe failed", zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSubscription(sub))
}
