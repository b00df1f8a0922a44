package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pagseguro_gateway/internal/adapter/http/handlers/mocks"
	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/usecase"
	"pagseguro_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validCheckoutBody = `{"reference":"order-1","items":[{"id":"1","description":"Plano","quantity":1,"amount":4990}],"extra":{"custom":"x"}}`

func newCheckoutRouter(uc *mocks.MockICheckoutUseCase) *gin.Engine {
	h := NewCheckoutHandler(uc, nil)
	r := gin.New()
	r.POST("/v1/checkouts", h.CreateCheckout)
	r.POST("/v1/checkouts/session", h.CreateSession)
	r.GET("/v1/checkouts", h.ListCheckouts)
	r.GET("/v1/checkouts/:id", h.GetCheckout)
	r.POST("/v1/subscriptions", h.Subscribe)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newCheckoutRouter(mocks.NewMockICheckoutUseCase(ctrl))

		for _, body := range []string{"{", `{"items":[]}`, `{"items":[{"id":"1","quantity":0}]}`} {
			req := httptest.NewRequest(http.MethodPost, "/v1/checkouts", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("boleto without shipping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CheckoutRecord{}, entities.ErrBoletoWithoutShipping)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts", bytes.NewBufferString(validCheckoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "BOLETO_REQUIRES_SHIPPING" {
			t.Fatalf("unexpected error code: %+v", body)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CheckoutRecord{}, usecase.ErrPaymentGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts", bytes.NewBufferString(validCheckoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), map[string]any{"custom": "x"}).DoAndReturn(func(_ any, s entities.TransactionState, _ map[string]any) (entities.CheckoutRecord, error) {
			if s.Reference != "order-1" || len(s.Items) != 1 || s.Items[0].Amount != 4990 {
				t.Fatalf("unexpected state: %+v", s)
			}
			return entities.CheckoutRecord{ID: "ORDE_1", OrderID: "ORDE_1", ReferenceID: "order-1", Status: "WAITING", Date: now}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/checkouts", bytes.NewBufferString(validCheckoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "ORDE_1" || body["status"] != "WAITING" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestCheckoutHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	r := newCheckoutRouter(uc)

	uc.EXPECT().CreateSession(gomock.Any()).Return(entities.CheckoutSession{ID: "sess-1", PublicKey: "pk-1"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/checkouts/session", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"session_id":"sess-1","public_key":"pk-1"`)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCheckoutHandler_GetCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.CheckoutRecord{}, usecase.ErrCheckoutNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkouts/nope", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "ORDE_1").Return(entities.CheckoutRecord{}, errors.New("dynamodb: secret detail"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkouts/ORDE_1", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("secret detail")) {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "ORDE_1").Return(entities.CheckoutRecord{ID: "ORDE_1", Status: "PAID"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkouts/ORDE_1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_ListCheckouts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	r := newCheckoutRouter(uc)

	uc.EXPECT().ListByReference(gomock.Any(), "").Return(nil, usecase.ErrInvalidReference)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkouts", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().ListByReference(gomock.Any(), "order-1").Return([]entities.CheckoutRecord{{ID: "a"}, {ID: "b"}}, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/checkouts?reference=order-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCheckoutHandler_Subscribe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("plan required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newCheckoutRouter(mocks.NewMockICheckoutUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions", bytes.NewBufferString(`{"subscription":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("plan not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(entities.SubscriptionResponse{}, entities.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions", bytes.NewBufferString(`{"subscription":{"plan_reference_id":"gold"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Subscribe(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, s entities.TransactionState) (entities.SubscriptionResponse, error) {
			if s.Subscription == nil || s.Subscription.PlanID != "PLAN_1" {
				t.Fatalf("unexpected subscription: %+v", s.Subscription)
			}
			return entities.SubscriptionResponse{ID: "SUBS_1", Status: "ACTIVE"}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions", bytes.NewBufferString(`{"subscription":{"plan_id":"PLAN_1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}
