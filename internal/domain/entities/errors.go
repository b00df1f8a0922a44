package entities

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrPlanNotFound          = errors.New("plan not found")
	ErrSubscriberNotFound    = errors.New("subscriber not found")
	ErrBoletoWithoutShipping = errors.New("boleto charge requires a shipping address")
	ErrMissingSubscription   = errors.New("missing subscription data")
	ErrMissingPlan           = errors.New("missing plan id or plan reference id")
	ErrMissingCard           = errors.New("missing card data for subscriber")
)

// GatewayMessage is one error entry reported by PagSeguro.
type GatewayMessage struct {
	Code          string
	Message       string
	ParameterName string
}

// GatewayError is returned for every non-2xx response from PagSeguro.
type GatewayError struct {
	Status   int
	Messages []GatewayMessage
	Body     string
}

func (e *GatewayError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("pagseguro: status=%d body=%s", e.Status, e.Body)
	}
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		parts = append(parts, fmt.Sprintf("%s: %s", m.Code, m.Message))
	}
	return fmt.Sprintf("pagseguro: status=%d %s", e.Status, strings.Join(parts, "; "))
}

func (e *GatewayError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

func (e *GatewayError) IsBadRequest() bool {
	return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
}

func (e *GatewayError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}
