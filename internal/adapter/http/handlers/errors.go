package handlers

import (
	"errors"
	"net/http"

	"pagseguro_gateway/internal/adapter/http/dto/request"
	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/usecase"
	"pagseguro_gateway/pkg"

	"github.com/gin-gonic/gin"
)

func mapGatewayUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckout),
		errors.Is(err, usecase.ErrInvalidCheckoutID),
		errors.Is(err, usecase.ErrInvalidReference),
		errors.Is(err, usecase.ErrInvalidCode),
		errors.Is(err, usecase.ErrInvalidNotificationType),
		errors.Is(err, request.ErrInvalidSearchQuery):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPagination):
		return pkg.NewDomainErrorSimple("INVALID_PAGINATION", "Invalid pagination", http.StatusBadRequest)
	case errors.Is(err, entities.ErrBoletoWithoutShipping):
		return pkg.NewDomainErrorSimple("BOLETO_REQUIRES_SHIPPING", "Boleto charges require a shipping address", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrMissingSubscription), errors.Is(err, entities.ErrMissingPlan):
		return pkg.NewDomainErrorSimple("INVALID_SUBSCRIPTION", "Subscription requires a plan", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrMissingCard):
		return pkg.NewDomainErrorSimple("MISSING_CARD", "Card data is required to create the subscriber", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrSubscriberNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIBER_NOT_FOUND", "Subscriber not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_FOUND", "Resource not found at payment provider", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(c *gin.Context) {
	writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
}
