package pagseguro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/infrastructure/pagseguro/payload"
	"pagseguro_gateway/pkg/pagination"
	"pagseguro_gateway/pkg/validation"
)

var ErrMissingToken = errors.New("missing pagseguro token")

var _ payload.SubscriptionResolver = (*Client)(nil)

// Client talks to PagSeguro. Every request carries the bearer token; GET requests
// also send the legacy email/token query pair when an email is configured.
type Client struct {
	cfg       Config
	token     string
	email     string
	publicKey string
	transport Transport
	opts      payload.Options
	logger    *zap.Logger
}

type Option func(*Client)

func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithEmail enables the legacy email/token credentials on GET requests.
func WithEmail(email string) Option {
	return func(c *Client) { c.email = email }
}

// WithPublicKey sets the key used by card encryption on the storefront.
func WithPublicKey(key string) Option {
	return func(c *Client) { c.publicKey = key }
}

func NewClient(token string, cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:   cfg,
		token: token,
		opts: payload.Options{
			UseShipping:     cfg.UseShipping,
			ReferencePrefix: cfg.ReferencePrefix,
			Currency:        cfg.Currency,
			AbandonURLKey:   cfg.AbandonURLKey,
			Validator:       validation.New(cfg.StrictTaxID),
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(cfg.Timeout)
	}
	c.logger = c.logger.With(zap.Bool("sandbox", cfg.Sandbox))
	return c, nil
}

// PublicKey is handed to storefronts so they can encrypt card data.
func (c *Client) PublicKey() string { return c.publicKey }

// ReferencePrefix is the template applied to references on the wire.
func (c *Client) ReferencePrefix() entities.ReferenceTemplate { return c.cfg.ReferencePrefix }

// Checkout creates an order from state. extra is merged under the builder's keys.
func (c *Client) Checkout(ctx context.Context, state entities.TransactionState, extra map[string]any) (entities.CheckoutResponse, error) {
	body, err := payload.BuildCheckout(state, extra, c.opts)
	if err != nil {
		return entities.CheckoutResponse{}, err
	}

	c.logger.Info("[pagseguro][client] checkout", zap.String("reference", state.Reference), zap.Int("items", len(state.Items)))
	resp, err := c.post(ctx, c.cfg.OrderURL, body)
	if err != nil {
		c.logger.Error("[pagseguro][client] checkout failed", zap.String("reference", state.Reference), zap.Error(err))
		return entities.CheckoutResponse{}, err
	}
	return parseCheckout(resp.Body)
}

// CheckoutSession opens a transparent-checkout session and returns its id.
func (c *Client) CheckoutSession(ctx context.Context) (string, error) {
	resp, err := c.post(ctx, c.cfg.SessionCheckoutURL, payload.RequestMap{})
	if err != nil {
		return "", err
	}
	return parseSession(resp.Body)
}

// Subscribe creates a subscription, resolving plan and subscriber references
// through this client.
func (c *Client) Subscribe(ctx context.Context, state entities.TransactionState) (entities.SubscriptionResponse, error) {
	body, err := payload.BuildSubscription(ctx, state, c.opts, c)
	if err != nil {
		return entities.SubscriptionResponse{}, err
	}

	c.logger.Info("[pagseguro][client] subscribe", zap.String("reference", state.Reference))
	resp, err := c.post(ctx, c.cfg.SubscriptionURL, body)
	if err != nil {
		return entities.SubscriptionResponse{}, err
	}
	return parseSubscription(resp.Body)
}

func (c *Client) PlanByReference(ctx context.Context, ref string) (entities.Plan, error) {
	resp, err := c.get(ctx, c.cfg.PlanURL, url.Values{"reference_id": {ref}})
	if err != nil {
		return entities.Plan{}, notFoundAs(err, entities.ErrPlanNotFound)
	}
	plans, err := parsePlans(resp.Body)
	if err != nil {
		return entities.Plan{}, err
	}
	for _, p := range plans {
		if p.ReferenceID == ref {
			return p, nil
		}
	}
	return entities.Plan{}, entities.ErrPlanNotFound
}

func (c *Client) SubscriberByReference(ctx context.Context, ref string) (entities.Subscriber, error) {
	resp, err := c.get(ctx, c.cfg.SubscriberURL, url.Values{"reference_id": {ref}})
	if err != nil {
		return entities.Subscriber{}, notFoundAs(err, entities.ErrSubscriberNotFound)
	}
	subscribers, err := parseSubscribers(resp.Body)
	if err != nil {
		return entities.Subscriber{}, err
	}
	for _, s := range subscribers {
		if s.ReferenceID == ref {
			return s, nil
		}
	}
	return entities.Subscriber{}, entities.ErrSubscriberNotFound
}

// CheckNotification resolves a transaction notification code.
func (c *Client) CheckNotification(ctx context.Context, code string) (entities.Transaction, error) {
	resp, err := c.get(ctx, expand(c.cfg.NotificationURL, code), nil)
	if err != nil {
		return entities.Transaction{}, err
	}
	return c.stripTransaction(parseTransaction(resp.Body))
}

func (c *Client) CheckTransaction(ctx context.Context, code string) (entities.Transaction, error) {
	resp, err := c.get(ctx, expand(c.cfg.TransactionURL, code), nil)
	if err != nil {
		return entities.Transaction{}, err
	}
	return c.stripTransaction(parseTransaction(resp.Body))
}

func (c *Client) CheckPreApprovalNotification(ctx context.Context, code string) (entities.PreApproval, error) {
	resp, err := c.get(ctx, expand(c.cfg.PreApprovalNotificationURL, code), nil)
	if err != nil {
		return entities.PreApproval{}, err
	}
	return c.stripPreApproval(parsePreApproval(resp.Body))
}

// PreApprovalAskPayment charges an existing pre-approval for the items in state.
func (c *Client) PreApprovalAskPayment(ctx context.Context, state entities.TransactionState, extra map[string]any) (entities.PreApprovalPayment, error) {
	body := payload.BuildPreApprovalPayment(state, extra, c.opts)

	c.logger.Info("[pagseguro][client] pre-approval payment", zap.String("code", state.PreApprovalCode))
	resp, err := c.post(ctx, c.cfg.PreApprovalPaymentURL, body)
	if err != nil {
		return entities.PreApprovalPayment{}, err
	}
	return parsePreApprovalPayment(resp.Body)
}

func (c *Client) PreApprovalCancel(ctx context.Context, code string) (entities.PreApprovalCancel, error) {
	c.logger.Info("[pagseguro][client] pre-approval cancel", zap.String("code", code))
	resp, err := c.get(ctx, expand(c.cfg.PreApprovalCancelURL, code), nil)
	if err != nil {
		return entities.PreApprovalCancel{}, err
	}
	return parsePreApprovalCancel(resp.Body)
}

// QueryTransactions walks every page of the transaction search for q.
func (c *Client) QueryTransactions(ctx context.Context, q pagination.Query) ([]entities.Transaction, error) {
	txs, err := pagination.Collect(ctx, q, c.transactionPage)
	if err != nil {
		return nil, err
	}
	for i := range txs {
		txs[i].Reference = c.cfg.ReferencePrefix.Strip(txs[i].Reference)
	}
	return txs, nil
}

func (c *Client) QueryPreApprovals(ctx context.Context, q pagination.Query) ([]entities.PreApproval, error) {
	pas, err := pagination.Collect(ctx, q, c.preApprovalPage)
	if err != nil {
		return nil, err
	}
	for i := range pas {
		pas[i].Reference = c.cfg.ReferencePrefix.Strip(pas[i].Reference)
	}
	return pas, nil
}

func (c *Client) QueryPreApprovalByCode(ctx context.Context, code string) (entities.PreApproval, error) {
	resp, err := c.get(ctx, strings.TrimRight(c.cfg.QueryPreApprovalURL, "/")+"/"+url.PathEscape(code), nil)
	if err != nil {
		return entities.PreApproval{}, err
	}
	return c.stripPreApproval(parsePreApproval(resp.Body))
}

func (c *Client) transactionPage(ctx context.Context, q pagination.Query) (pagination.Page[entities.Transaction], error) {
	resp, err := c.get(ctx, c.cfg.QueryTransactionURL, searchParams(q))
	if err != nil {
		return pagination.Page[entities.Transaction]{}, err
	}
	return parseTransactionSearch(resp.Body)
}

func (c *Client) preApprovalPage(ctx context.Context, q pagination.Query) (pagination.Page[entities.PreApproval], error) {
	resp, err := c.get(ctx, c.cfg.QueryPreApprovalURL, searchParams(q))
	if err != nil {
		return pagination.Page[entities.PreApproval]{}, err
	}
	return parsePreApprovalSearch(resp.Body)
}

func (c *Client) post(ctx context.Context, target string, body payload.RequestMap) (Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, Request{
		Method: http.MethodPost,
		URL:    target,
		Headers: map[string]string{
			"Accept":        "*/*",
			"Authorization": "Bearer " + c.token,
			"Content-Type":  "application/json",
		},
		Body: data,
	})
}

func (c *Client) get(ctx context.Context, target string, params url.Values) (Response, error) {
	query := url.Values{}
	for k, vs := range params {
		query[k] = append([]string(nil), vs...)
	}
	if c.email != "" {
		query.Set("email", c.email)
		query.Set("token", c.token)
	}

	headers := make(map[string]string, len(c.cfg.Headers)+1)
	for k, v := range c.cfg.Headers {
		headers[k] = v
	}
	headers["Authorization"] = "Bearer " + c.token

	return c.do(ctx, Request{Method: http.MethodGet, URL: target, Headers: headers, Query: query})
}

func (c *Client) do(ctx context.Context, req Request) (Response, error) {
	c.logger.Debug("[pagseguro][client] request", zap.String("method", req.Method), zap.String("url", req.URL))

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("pagseguro %s %s: %w", req.Method, req.URL, err)
	}
	if resp.Status < 200 || resp.Status > 299 {
		gerr := parseGatewayError(resp.Status, resp.Body)
		c.logger.Warn("[pagseguro][client] gateway error",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Int("status", resp.Status),
			zap.Int("messages", len(gerr.Messages)),
		)
		return Response{}, gerr
	}
	return resp, nil
}

func (c *Client) stripTransaction(tx entities.Transaction, err error) (entities.Transaction, error) {
	if err != nil {
		return entities.Transaction{}, err
	}
	tx.Reference = c.cfg.ReferencePrefix.Strip(tx.Reference)
	return tx, nil
}

func (c *Client) stripPreApproval(pa entities.PreApproval, err error) (entities.PreApproval, error) {
	if err != nil {
		return entities.PreApproval{}, err
	}
	pa.Reference = c.cfg.ReferencePrefix.Strip(pa.Reference)
	return pa, nil
}

func searchParams(q pagination.Query) url.Values {
	params := url.Values{}
	if !q.InitialDate.IsZero() {
		params.Set("initialDate", q.InitialDate.Format(searchDateFormat))
	}
	if !q.FinalDate.IsZero() {
		params.Set("finalDate", q.FinalDate.Format(searchDateFormat))
	}
	if q.Page != nil {
		params.Set("page", strconv.Itoa(*q.Page))
	}
	if q.MaxResults != nil {
		params.Set("maxPageResults", strconv.Itoa(*q.MaxResults))
	}
	return params
}

// notFoundAs maps a 404 from a lookup endpoint to sentinel.
func notFoundAs(err, sentinel error) error {
	var gerr *entities.GatewayError
	if errors.As(err, &gerr) && gerr.IsNotFound() {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return err
}
