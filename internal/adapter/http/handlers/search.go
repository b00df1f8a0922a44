package handlers

import (
	"pagseguro_gateway/internal/adapter/http/dto/request"
	"pagseguro_gateway/pkg/pagination"

	"github.com/gin-gonic/gin"
)

func bindSearchQuery(c *gin.Context) (pagination.Query, bool) {
	var sq request.SearchQuery
	if err := c.ShouldBindQuery(&sq); err != nil {
		invalidRequest(c)
		return pagination.Query{}, false
	}
	q, err := sq.ToQuery()
	if err != nil {
		writeError(c, mapGatewayUseCaseError(err))
		return pagination.Query{}, false
	}
	return q, true
}
