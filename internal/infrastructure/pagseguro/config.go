package pagseguro

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pagseguro_gateway/internal/domain/entities"
)

const (
	productionBaseURL         = "https://api.pagseguro.com"
	productionPaymentHost     = "https://api.pagseguro.com"
	productionSubscriptionURL = "https://api.assinaturas.pagseguro.com"
	sandboxBaseURL            = "https://sandbox.api.pagseguro.com"
	sandboxPaymentHost        = "https://sandbox.api.pagseguro.com"
	sandboxSubscriptionURL    = "https://sandbox.api.assinaturas.pagseguro.com"
	notificationHost          = "https://ws.pagseguro.uol.com.br"

	apiVersion    = "/v3/"
	formMediaType = "application/x-www-form-urlencoded; charset=UTF-8"

	// searchDateFormat is the layout of initialDate/finalDate in search queries.
	searchDateFormat = "2006-01-02T15:04"

	defaultTimeout = 30 * time.Second
)

var ErrInvalidConfig = errors.New("invalid pagseguro config")

// Config holds the endpoint templates and flags resolved once per client.
// Templates marked "%s" receive a notification, transaction or pre-approval code.
type Config struct {
	Sandbox bool

	OrderURL                   string
	PlanURL                    string
	SubscriberURL              string
	SubscriptionURL            string
	PreApprovalPaymentURL      string
	PreApprovalCancelURL       string // %s
	SessionCheckoutURL         string
	TransparentCheckoutURL     string
	CheckoutURL                string
	NotificationURL            string // %s
	PreApprovalNotificationURL string // %s
	TransactionURL             string // %s
	QueryTransactionURL        string
	QueryPreApprovalURL        string
	PaymentURL                 string // %s

	Currency        string
	Headers         map[string]string
	DateTimeFormat  string
	ReferencePrefix entities.ReferenceTemplate
	UseShipping     bool
	// AbandonURLKey is the body key abandoned-cart URLs are sent under. Empty keeps
	// the legacy "notifcation_urls" key.
	AbandonURLKey string
	StrictTaxID   bool
	Timeout       time.Duration
}

// NewConfig returns the default production or sandbox configuration.
func NewConfig(sandbox bool) Config {
	baseURL, paymentHost, subscriptionHost := productionBaseURL, productionPaymentHost, productionSubscriptionURL
	if sandbox {
		baseURL, paymentHost, subscriptionHost = sandboxBaseURL, sandboxPaymentHost, sandboxSubscriptionURL
	}
	checkoutSuffix := apiVersion + "checkout"

	return Config{
		Sandbox:                    sandbox,
		OrderURL:                   baseURL + "/orders",
		PlanURL:                    subscriptionHost + "/plans",
		SubscriberURL:              subscriptionHost + "/customers",
		SubscriptionURL:            subscriptionHost + "/subscriptions",
		PreApprovalPaymentURL:      baseURL + apiVersion + "pre-approvals/payment",
		PreApprovalCancelURL:       baseURL + apiVersion + "pre-approvals/cancel/%s",
		SessionCheckoutURL:         baseURL + apiVersion + "sessions/",
		TransparentCheckoutURL:     baseURL + apiVersion + "transactions",
		CheckoutURL:                baseURL + checkoutSuffix,
		NotificationURL:            notificationHost + apiVersion + "transactions/notifications/%s",
		PreApprovalNotificationURL: baseURL + apiVersion + "pre-approvals/notifications/%s",
		TransactionURL:             baseURL + apiVersion + "transactions/%s",
		QueryTransactionURL:        baseURL + apiVersion + "transactions",
		QueryPreApprovalURL:        baseURL + apiVersion + "pre-approvals",
		PaymentURL:                 paymentHost + checkoutSuffix + "/payment.html?code=%s",
		Currency:                   "BRL",
		Headers:                    map[string]string{"Content-Type": formMediaType},
		DateTimeFormat:             "2006-01-02T15:04:05",
		ReferencePrefix:            "%s",
		UseShipping:                true,
		Timeout:                    defaultTimeout,
	}
}

// Validate reports the first malformed setting.
func (c Config) Validate() error {
	plain := map[string]string{
		"ORDER_URL":                c.OrderURL,
		"PLAN_URL":                 c.PlanURL,
		"SUBSCRIBER_URL":           c.SubscriberURL,
		"SUBSCRIPTION_URL":         c.SubscriptionURL,
		"PRE_APPROVAL_PAYMENT_URL": c.PreApprovalPaymentURL,
		"SESSION_CHECKOUT_URL":     c.SessionCheckoutURL,
		"TRANSPARENT_CHECKOUT_URL": c.TransparentCheckoutURL,
		"CHECKOUT_URL":             c.CheckoutURL,
		"QUERY_TRANSACTION_URL":    c.QueryTransactionURL,
		"QUERY_PRE_APPROVAL_URL":   c.QueryPreApprovalURL,
	}
	for name, raw := range plain {
		if err := validateURL(name, raw); err != nil {
			return err
		}
	}

	templated := map[string]string{
		"PRE_APPROVAL_CANCEL_URL":       c.PreApprovalCancelURL,
		"NOTIFICATION_URL":              c.NotificationURL,
		"PRE_APPROVAL_NOTIFICATION_URL": c.PreApprovalNotificationURL,
		"TRANSACTION_URL":               c.TransactionURL,
		"PAYMENT_URL":                   c.PaymentURL,
	}
	for name, raw := range templated {
		if strings.Count(raw, "%s") != 1 {
			return fmt.Errorf("%w: %s must contain exactly one %%s", ErrInvalidConfig, name)
		}
		if err := validateURL(name, expand(raw, "code")); err != nil {
			return err
		}
	}

	if !c.ReferencePrefix.Valid() {
		return fmt.Errorf("%w: REFERENCE_PREFIX %q must contain exactly one %%s", ErrInvalidConfig, c.ReferencePrefix)
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("%w: CURRENCY %q must be an ISO 4217 code", ErrInvalidConfig, c.Currency)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: TIMEOUT must not be negative", ErrInvalidConfig)
	}
	return nil
}

// PaymentLink returns the hosted payment page for a legacy checkout code.
func (c Config) PaymentLink(code string) string {
	return expand(c.PaymentURL, code)
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, name)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s %q is not an absolute http(s) url", ErrInvalidConfig, name, raw)
	}
	return nil
}

func expand(template, code string) string {
	return strings.Replace(template, "%s", url.PathEscape(code), 1)
}
