package handlers

import (
	"net/http"

	"pagseguro_gateway/internal/adapter/http/dto/response"
	"pagseguro_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
	logger  *zap.Logger
}

func NewTransactionHandler(uc usecase.ITransactionUseCase, logger *zap.Logger) *TransactionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionHandler{usecase: uc, logger: logger}
}

// GetTransaction godoc
// @Summary      Look up a transaction by code
// @Tags         transactions
// @Produce      json
// @Param        code  path      string  true  "Transaction code"
// @Success      200   {object}  response.TransactionResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /transactions/{code} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.logger.Warn("[transaction][handler] lookup failed", zap.String("code", c.Param("code")), zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// SearchTransactions godoc
// @Summary      Search transactions in a date range, across all pages
// @Tags         transactions
// @Produce      json
// @Param        initial_date  query     string  true   "Start of the range"
// @Param        final_date    query     string  false  "End of the range"
// @Param        page          query     int     false  "First page"
// @Param        max_results   query     int     false  "Page size"
// @Success      200           {array}   response.TransactionResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /transactions [get]
func (h *TransactionHandler) SearchTransactions(c *gin.Context) {
	q, ok := bindSearchQuery(c)
	if !ok {
		return
	}
	txs, err := h.usecase.Search(c.Request.Context(), q)
	if err != nil {
		h.logger.Warn("[transaction][handler] search failed", zap.Error(err))
		writeError(c, mapGatewayUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}
