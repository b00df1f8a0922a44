package payload

import (
	"context"
	"fmt"

	"pagseguro_gateway/internal/domain/entities"
)

// SubscriptionResolver looks up plans and subscribers by their reference ids.
// Missing records are reported as entities.ErrPlanNotFound and
// entities.ErrSubscriberNotFound.
type SubscriptionResolver interface {
	PlanByReference(ctx context.Context, referenceID string) (entities.Plan, error)
	SubscriberByReference(ctx context.Context, referenceID string) (entities.Subscriber, error)
}

// BuildSubscription renders the subscription body. The checkout payload is built
// first and only its card, customer and charge amount are carried over; no other
// checkout field reaches the result.
func BuildSubscription(ctx context.Context, state entities.TransactionState, opts Options, resolver SubscriptionResolver) (RequestMap, error) {
	sub := state.Subscription
	if sub == nil {
		return nil, entities.ErrMissingSubscription
	}

	checkout, err := NewCheckoutPayload(state, opts)
	if err != nil {
		return nil, err
	}

	plan, err := resolvePlan(ctx, *sub, resolver)
	if err != nil {
		return nil, err
	}
	customer, err := resolveCustomer(ctx, *sub, checkout, resolver)
	if err != nil {
		return nil, err
	}

	params := RequestMap{
		"reference_id": sub.ReferenceID,
		"plan":         plan,
		"customer":     customer,
		"amount":       checkout.ChargeAmount,
		"payment_method": subscriptionPaymentMethod(checkout.Card),
	}
	if d := sub.BestInvoiceDate; d != nil {
		params["best_invoice_date"] = RequestMap{"day": d.Day, "month": d.Month}
	}

	return Prune(params), nil
}

// resolvePlan prefers a literal plan id and only looks up the reference id otherwise.
func resolvePlan(ctx context.Context, sub entities.Subscription, resolver SubscriptionResolver) (RequestMap, error) {
	switch {
	case sub.PlanID != "":
		return RequestMap{"id": sub.PlanID}, nil
	case sub.PlanReferenceID != "":
		if resolver == nil {
			return nil, fmt.Errorf("resolve plan %q: %w", sub.PlanReferenceID, entities.ErrPlanNotFound)
		}
		plan, err := resolver.PlanByReference(ctx, sub.PlanReferenceID)
		if err != nil {
			return nil, fmt.Errorf("resolve plan %q: %w", sub.PlanReferenceID, err)
		}
		return RequestMap{"id": plan.ID}, nil
	default:
		return nil, entities.ErrMissingPlan
	}
}

func resolveCustomer(ctx context.Context, sub entities.Subscription, checkout CheckoutPayload, resolver SubscriptionResolver) (RequestMap, error) {
	switch {
	case sub.CustomerID != "":
		return RequestMap{"id": sub.CustomerID}, nil
	case sub.CustomerReferenceID != "":
		if resolver == nil {
			return nil, fmt.Errorf("resolve subscriber %q: %w", sub.CustomerReferenceID, entities.ErrSubscriberNotFound)
		}
		subscriber, err := resolver.SubscriberByReference(ctx, sub.CustomerReferenceID)
		if err != nil {
			return nil, fmt.Errorf("resolve subscriber %q: %w", sub.CustomerReferenceID, err)
		}
		return RequestMap{"id": subscriber.ID}, nil
	}

	if checkout.Card == nil {
		return nil, entities.ErrMissingCard
	}
	customer := make(RequestMap, len(checkout.Customer)+1)
	for k, v := range checkout.Customer {
		customer[k] = v
	}
	customer["billing_info"] = []RequestMap{{
		"type": entities.PaymentMethodCreditCard,
		"card": card(*checkout.Card),
	}}
	return customer, nil
}

// subscriptionPaymentMethod leaves card out when there is no security code to send.
func subscriptionPaymentMethod(c *entities.Card) RequestMap {
	m := RequestMap{"type": entities.PaymentMethodCreditCard}
	if c != nil && c.SecurityCode != "" {
		m["card"] = RequestMap{"security_code": c.SecurityCode}
	}
	return m
}
