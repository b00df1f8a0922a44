package handlers

import (
	"net/http"

	"pagseguro_gateway/internal/adapter/http/dto/request"
	"pagseguro_gateway/internal/adapter/http/dto/response"
	"pagseguro_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PreApprovalHandler struct {
	usecase usecase.IPreApprovalUseCase
	logger  *zap.Logger
}

func NewPreApprovalHandler(uc usecase.IPreApprovalUseCase, logger *zap.Logger) *PreApprovalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreApprovalHandler{usecase: uc, logger: logger}
}

// GetPreApproval godoc
// @Summary      Look up a pre-approval by code
// @Tags         pre-approvals
// @Produce      json
// @Param        code  path      string  true  "Pre-approval code"
// @Success      200   {object}  response.PreApprovalResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /pre-approvals/{code} [get]
func (h *PreApprovalHandler) GetPreApproval(c *gin.Context) {
	pa, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreApproval(pa))
}

// SearchPreApprovals godoc
// @Summary      Search pre-approvals in a date range, across all pages
// @Tags         pre-approvals
// @Produce      json
// @Param        initial_date  query     string  true   "Start of the range"
// @Param        final_date    query     string  false  "End of the range"
// @Param        page          query     int     false  "First page"
// @Param        max_results   query     int     false  "Page size"
// @Success      200           {array}   response.PreApprovalResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /pre-approvals [get]
func (h *PreApprovalHandler) SearchPreApprovals(c *gin.Context) {
	q, ok := bindSearchQuery(c)
	if !ok {
		return
	}
	pas, err := h.usecase.Search(c.Request.Context(), q)
	if err != nil {
		h.logger.Warn("[pre-approval][handler] search failed", zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreApprovals(pas))
}

// ChargePreApproval godoc
// @Summary      Charge items against a pre-approval
// @Tags         pre-approvals
// @Accept       json
// @Produce      json
// @Param        code  path      string                            true  "Pre-approval code"
// @Param        body  body      request.PreApprovalChargeRequest  true  "Charge"
// @Success      201   {object}  response.PreApprovalPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /pre-approvals/{code}/payments [post]
func (h *PreApprovalHandler) ChargePreApproval(c *gin.Context) {
	code := c.Param("code")
	var req request.PreApprovalChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info("[pre-approval][handler] invalid payload", zap.String("code", code), zap.Error(err))
		invalidRequest(c)
		return
	}

	payment, err := h.usecase.Charge(c.Request.Context(), code, req.ToState(code), req.Extra)
	if err != nil {
		h.logger.Warn("[pre-approval][handler] charge failed", zap.String("code", code), zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPreApprovalPayment(payment))
}

// CancelPreApproval godoc
// @Summary      Cancel a pre-approval
// @Tags         pre-approvals
// @Produce      json
// @Param        code  path      string  true  "Pre-approval code"
// @Success      200   {object}  response.PreApprovalCancelResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /pre-approvals/{code}/cancel [post]
func (h *PreApprovalHandler) CancelPreApproval(c *gin.Context) {
	code := c.Param("code")
	res, err := h.usecase.Cancel(c.Request.Context(), code)
	if err != nil {
		h.logger.Warn("[pre-approval][handler] cancel failed", zap.String("code", code), zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreApprovalCancel(res))
}
