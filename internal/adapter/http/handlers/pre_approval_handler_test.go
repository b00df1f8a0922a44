package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pagseguro_gateway/internal/adapter/http/handlers/mocks"
	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPreApprovalRouter(uc *mocks.MockIPreApprovalUseCase) *gin.Engine {
	h := NewPreApprovalHandler(uc, nil)
	r := gin.New()
	r.GET("/v1/pre-approvals", h.SearchPreApprovals)
	r.GET("/v1/pre-approvals/:code", h.GetPreApproval)
	r.POST("/v1/pre-approvals/:code/payments", h.ChargePreApproval)
	r.POST("/v1/pre-approvals/:code/cancel", h.CancelPreApproval)
	return r
}

func TestPreApprovalHandler_GetAndSearch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPreApprovalUseCase(ctrl)
	r := newPreApprovalRouter(uc)

	uc.EXPECT().GetByCode(gomock.Any(), "PA-1").Return(entities.PreApproval{Code: "PA-1", Status: "ACTIVE"}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pre-approvals/PA-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByCode(gomock.Any(), "PA-2").Return(entities.PreApproval{}, usecase.ErrPaymentGatewayNotFound)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pre-approvals/PA-2", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]entities.PreApproval{{Code: "PA-1"}}, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pre-approvals?initial_date=2024-03-01", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPreApprovalHandler_ChargePreApproval(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("items required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newPreApprovalRouter(mocks.NewMockIPreApprovalUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/pre-approvals/PA-1/payments", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPreApprovalUseCase(ctrl)
		r := newPreApprovalRouter(uc)

		uc.EXPECT().Charge(gomock.Any(), "PA-1", gomock.Any(), gomock.Nil()).DoAndReturn(func(_ any, _ string, s entities.TransactionState, _ map[string]any) (entities.PreApprovalPayment, error) {
			if s.PreApprovalCode != "PA-1" || len(s.Items) != 1 {
				t.Fatalf("unexpected state: %+v", s)
			}
			return entities.PreApprovalPayment{TransactionCode: "TX-9", Date: time.Now().UTC()}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/pre-approvals/PA-1/payments", bytes.NewBufferString(`{"items":[{"id":"1","description":"Mensalidade","quantity":1,"amount":4990}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"transaction_code":"TX-9"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPreApprovalHandler_CancelPreApproval(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPreApprovalUseCase(ctrl)
	r := newPreApprovalRouter(uc)

	uc.EXPECT().Cancel(gomock.Any(), "PA-1").Return(entities.PreApprovalCancel{Status: "OK"}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pre-approvals/PA-1/cancel", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Cancel(gomock.Any(), "PA-2").Return(entities.PreApprovalCancel{}, usecase.ErrPaymentGatewayBadRequest)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pre-approvals/PA-2/cancel", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("pong")) {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}
