package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/pkg/pagination"
)

var (
	ErrInvalidCheckout            = errors.New("invalid checkout")
	ErrCheckoutNotFound           = errors.New("checkout not found")
	ErrInvalidCheckoutID          = errors.New("invalid checkout id")
	ErrInvalidReference           = errors.New("invalid reference")
	ErrInvalidCode                = errors.New("invalid code")
	ErrInvalidDateRange           = errors.New("invalid date range")
	ErrInvalidPagination          = errors.New("invalid pagination")
	ErrInvalidNotificationType    = errors.New("invalid notification type")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayNotFound     = errors.New("payment gateway resource not found")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway unavailable")
)

const maxPageResults = 1000

// mapGatewayError classifies a PagSeguro rejection. The original error stays in the
// chain so callers can still reach the *entities.GatewayError.
func mapGatewayError(err error) error {
	var gerr *entities.GatewayError
	if !errors.As(err, &gerr) {
		return err
	}
	switch {
	case gerr.IsUnauthorized():
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
	case gerr.IsBadRequest():
		return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
	case gerr.IsNotFound():
		return fmt.Errorf("%w: %w", ErrPaymentGatewayNotFound, err)
	case gerr.Status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
	}
	return err
}

func validateQuery(q pagination.Query) error {
	if q.InitialDate.IsZero() {
		return fmt.Errorf("%w: initial date is required", ErrInvalidDateRange)
	}
	if !q.FinalDate.IsZero() && q.FinalDate.Before(q.InitialDate) {
		return fmt.Errorf("%w: final date before initial date", ErrInvalidDateRange)
	}
	if q.Page != nil && *q.Page < 1 {
		return fmt.Errorf("%w: page must be positive", ErrInvalidPagination)
	}
	if q.MaxResults != nil && (*q.MaxResults < 1 || *q.MaxResults > maxPageResults) {
		return fmt.Errorf("%w: max results must be between 1 and %d", ErrInvalidPagination, maxPageResults)
	}
	return nil
}
