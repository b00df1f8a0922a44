package pagseguro

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/pkg/pagination"
)

// The legacy v3 endpoints answer in XML, the orders and subscriptions APIs in JSON.

type xmlTransaction struct {
	XMLName       xml.Name `xml:"transaction"`
	Code          string   `xml:"code"`
	Reference     string   `xml:"reference"`
	Type          int      `xml:"type"`
	Status        int      `xml:"status"`
	Date          string   `xml:"date"`
	LastEventDate string   `xml:"lastEventDate"`
	PaymentMethod struct {
		Type int `xml:"type"`
		Code int `xml:"code"`
	} `xml:"paymentMethod"`
	GrossAmount      float64 `xml:"grossAmount"`
	DiscountAmount   float64 `xml:"discountAmount"`
	FeeAmount        float64 `xml:"feeAmount"`
	NetAmount        float64 `xml:"netAmount"`
	ExtraAmount      float64 `xml:"extraAmount"`
	InstallmentCount int     `xml:"installmentCount"`
	Items            []struct {
		ID          string  `xml:"id"`
		Description string  `xml:"description"`
		Quantity    int     `xml:"quantity"`
		Amount      float64 `xml:"amount"`
	} `xml:"items>item"`
	Sender *struct {
		Name  string `xml:"name"`
		Email string `xml:"email"`
		Phone struct {
			AreaCode string `xml:"areaCode"`
			Number   string `xml:"number"`
		} `xml:"phone"`
	} `xml:"sender"`
}

type xmlTransactionSearch struct {
	XMLName      xml.Name         `xml:"transactionSearchResult"`
	CurrentPage  *int             `xml:"currentPage"`
	TotalPages   *int             `xml:"totalPages"`
	Transactions []xmlTransaction `xml:"transactions>transaction"`
}

type xmlPreApproval struct {
	XMLName       xml.Name `xml:"preApproval"`
	Code          string   `xml:"code"`
	Name          string   `xml:"name"`
	Tracker       string   `xml:"tracker"`
	Status        string   `xml:"status"`
	Reference     string   `xml:"reference"`
	Charge        string   `xml:"charge"`
	Date          string   `xml:"date"`
	LastEventDate string   `xml:"lastEventDate"`
}

type xmlPreApprovalSearch struct {
	XMLName      xml.Name         `xml:"preApprovalSearchResult"`
	CurrentPage  *int             `xml:"currentPage"`
	TotalPages   *int             `xml:"totalPages"`
	PreApprovals []xmlPreApproval `xml:"preApprovals>preApproval"`
}

type xmlResult struct {
	XMLName         xml.Name `xml:"result"`
	TransactionCode string   `xml:"transactionCode"`
	Status          string   `xml:"status"`
	Date            string   `xml:"date"`
}

type xmlSession struct {
	XMLName xml.Name `xml:"session"`
	ID      string   `xml:"id"`
}

type xmlErrors struct {
	XMLName xml.Name `xml:"errors"`
	Errors  []struct {
		Code    string `xml:"code"`
		Message string `xml:"message"`
	} `xml:"error"`
}

type jsonOrder struct {
	ID          string `json:"id"`
	ReferenceID string `json:"reference_id"`
	CreatedAt   string `json:"created_at"`
	Charges     []struct {
		ID          string `json:"id"`
		ReferenceID string `json:"reference_id"`
		Status      string `json:"status"`
		PaidAt      string `json:"paid_at"`
		Amount      struct {
			Value    int64  `json:"value"`
			Currency string `json:"currency"`
		} `json:"amount"`
	} `json:"charges"`
	Links []struct {
		Rel   string `json:"rel"`
		Href  string `json:"href"`
		Media string `json:"media"`
		Type  string `json:"type"`
	} `json:"links"`
}

type jsonSubscription struct {
	ID          string `json:"id"`
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
	Plan        struct {
		ID string `json:"id"`
	} `json:"plan"`
	Customer struct {
		ID string `json:"id"`
	} `json:"customer"`
}

type jsonPlans struct {
	Plans []struct {
		ID          string `json:"id"`
		ReferenceID string `json:"reference_id"`
		Name        string `json:"name"`
		Status      string `json:"status"`
	} `json:"plans"`
}

type jsonCustomers struct {
	Customers []struct {
		ID          string `json:"id"`
		ReferenceID string `json:"reference_id"`
		Name        string `json:"name"`
		Email       string `json:"email"`
	} `json:"customers"`
}

type jsonErrors struct {
	ErrorMessages []struct {
		Code          string `json:"code"`
		Description   string `json:"description"`
		ParameterName string `json:"parameter_name"`
	} `json:"error_messages"`
}

func parseCheckout(body []byte) (entities.CheckoutResponse, error) {
	var o jsonOrder
	if err := json.Unmarshal(body, &o); err != nil {
		return entities.CheckoutResponse{}, fmt.Errorf("decode checkout response: %w", err)
	}

	resp := entities.CheckoutResponse{
		ID:          o.ID,
		ReferenceID: o.ReferenceID,
		CreatedAt:   parseTime(o.CreatedAt),
		Raw:         append(json.RawMessage(nil), body...),
	}
	for _, c := range o.Charges {
		charge := entities.Charge{
			ID:          c.ID,
			ReferenceID: c.ReferenceID,
			Status:      c.Status,
			Amount:      c.Amount.Value,
			Currency:    c.Amount.Currency,
		}
		if paid := parseTime(c.PaidAt); !paid.IsZero() {
			charge.PaidAt = &paid
		}
		resp.Charges = append(resp.Charges, charge)
	}
	for _, l := range o.Links {
		resp.Links = append(resp.Links, entities.Link{Rel: l.Rel, Href: l.Href, Media: l.Media, Type: l.Type})
		if resp.PaymentURL == "" && (strings.EqualFold(l.Rel, "PAY") || strings.EqualFold(l.Rel, "PAYMENT")) {
			resp.PaymentURL = l.Href
		}
	}
	return resp, nil
}

func parseSession(body []byte) (string, error) {
	var s xmlSession
	if err := decodeXML(body, &s); err != nil {
		return "", fmt.Errorf("decode session response: %w", err)
	}
	return s.ID, nil
}

func parseSubscription(body []byte) (entities.SubscriptionResponse, error) {
	var s jsonSubscription
	if err := json.Unmarshal(body, &s); err != nil {
		return entities.SubscriptionResponse{}, fmt.Errorf("decode subscription response: %w", err)
	}
	return entities.SubscriptionResponse{
		ID:          s.ID,
		ReferenceID: s.ReferenceID,
		Status:      s.Status,
		PlanID:      s.Plan.ID,
		CustomerID:  s.Customer.ID,
		Raw:         append(json.RawMessage(nil), body...),
	}, nil
}

func parsePlans(body []byte) ([]entities.Plan, error) {
	var p jsonPlans
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode plans response: %w", err)
	}
	plans := make([]entities.Plan, 0, len(p.Plans))
	for _, pl := range p.Plans {
		plans = append(plans, entities.Plan{ID: pl.ID, ReferenceID: pl.ReferenceID, Name: pl.Name, Status: pl.Status})
	}
	return plans, nil
}

func parseSubscribers(body []byte) ([]entities.Subscriber, error) {
	var c jsonCustomers
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, fmt.Errorf("decode customers response: %w", err)
	}
	subscribers := make([]entities.Subscriber, 0, len(c.Customers))
	for _, cu := range c.Customers {
		subscribers = append(subscribers, entities.Subscriber{ID: cu.ID, ReferenceID: cu.ReferenceID, Name: cu.Name, Email: cu.Email})
	}
	return subscribers, nil
}

func parseTransaction(body []byte) (entities.Transaction, error) {
	var t xmlTransaction
	if err := decodeXML(body, &t); err != nil {
		return entities.Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	return t.toEntity(), nil
}

func parseTransactionSearch(body []byte) (pagination.Page[entities.Transaction], error) {
	var s xmlTransactionSearch
	if err := decodeXML(body, &s); err != nil {
		return pagination.Page[entities.Transaction]{}, fmt.Errorf("decode transaction search: %w", err)
	}
	page := pagination.Page[entities.Transaction]{CurrentPage: s.CurrentPage, TotalPages: s.TotalPages}
	for _, t := range s.Transactions {
		page.Items = append(page.Items, t.toEntity())
	}
	return page, nil
}

func parsePreApproval(body []byte) (entities.PreApproval, error) {
	var p xmlPreApproval
	if err := decodeXML(body, &p); err != nil {
		return entities.PreApproval{}, fmt.Errorf("decode pre-approval: %w", err)
	}
	return p.toEntity(), nil
}

func parsePreApprovalSearch(body []byte) (pagination.Page[entities.PreApproval], error) {
	var s xmlPreApprovalSearch
	if err := decodeXML(body, &s); err != nil {
		return pagination.Page[entities.PreApproval]{}, fmt.Errorf("decode pre-approval search: %w", err)
	}
	page := pagination.Page[entities.PreApproval]{CurrentPage: s.CurrentPage, TotalPages: s.TotalPages}
	for _, p := range s.PreApprovals {
		page.Items = append(page.Items, p.toEntity())
	}
	return page, nil
}

func parsePreApprovalPayment(body []byte) (entities.PreApprovalPayment, error) {
	var r xmlResult
	if err := decodeXML(body, &r); err != nil {
		return entities.PreApprovalPayment{}, fmt.Errorf("decode pre-approval payment: %w", err)
	}
	return entities.PreApprovalPayment{TransactionCode: r.TransactionCode, Date: parseTime(r.Date)}, nil
}

func parsePreApprovalCancel(body []byte) (entities.PreApprovalCancel, error) {
	var r xmlResult
	if err := decodeXML(body, &r); err != nil {
		return entities.PreApprovalCancel{}, fmt.Errorf("decode pre-approval cancel: %w", err)
	}
	return entities.PreApprovalCancel{Status: r.Status, Date: parseTime(r.Date)}, nil
}

// parseGatewayError never fails: bodies it cannot decode are kept verbatim.
func parseGatewayError(status int, body []byte) *entities.GatewayError {
	gerr := &entities.GatewayError{Status: status, Body: string(body)}
	trimmed := bytes.TrimSpace(body)

	switch {
	case bytes.HasPrefix(trimmed, []byte("<")):
		var x xmlErrors
		if decodeXML(trimmed, &x) == nil {
			for _, e := range x.Errors {
				gerr.Messages = append(gerr.Messages, entities.GatewayMessage{Code: e.Code, Message: e.Message})
			}
		}
	case bytes.HasPrefix(trimmed, []byte("{")):
		var j jsonErrors
		if json.Unmarshal(trimmed, &j) == nil {
			for _, e := range j.ErrorMessages {
				gerr.Messages = append(gerr.Messages, entities.GatewayMessage{
					Code:          e.Code,
					Message:       e.Description,
					ParameterName: e.ParameterName,
				})
			}
		}
	}
	return gerr
}

func (t xmlTransaction) toEntity() entities.Transaction {
	tx := entities.Transaction{
		Code:              t.Code,
		Reference:         t.Reference,
		Type:              t.Type,
		Status:            t.Status,
		Date:              parseTime(t.Date),
		LastEventDate:     parseTime(t.LastEventDate),
		PaymentMethodType: t.PaymentMethod.Type,
		PaymentMethodCode: t.PaymentMethod.Code,
		GrossAmount:       t.GrossAmount,
		DiscountAmount:    t.DiscountAmount,
		FeeAmount:         t.FeeAmount,
		NetAmount:         t.NetAmount,
		ExtraAmount:       t.ExtraAmount,
		InstallmentCount:  t.InstallmentCount,
	}
	for _, it := range t.Items {
		tx.Items = append(tx.Items, entities.TransactionItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
		})
	}
	if t.Sender != nil {
		tx.Sender = &entities.TransactionSender{
			Name:     t.Sender.Name,
			Email:    t.Sender.Email,
			AreaCode: t.Sender.Phone.AreaCode,
			Phone:    t.Sender.Phone.Number,
		}
	}
	return tx
}

func (p xmlPreApproval) toEntity() entities.PreApproval {
	return entities.PreApproval{
		Code:          p.Code,
		Name:          p.Name,
		Tracker:       p.Tracker,
		Status:        p.Status,
		Reference:     p.Reference,
		Charge:        p.Charge,
		Date:          parseTime(p.Date),
		LastEventDate: parseTime(p.LastEventDate),
	}
}

// decodeXML honours the ISO-8859-1 declaration the legacy endpoints send.
func decodeXML(body []byte, v any) error {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.CharsetReader = charset.NewReaderLabel
	return d.Decode(v)
}

// parseTime accepts RFC 3339 with or without fractional seconds. Unparseable
// values yield the zero time.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
