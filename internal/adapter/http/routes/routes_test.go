package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pagseguro_gateway/internal/adapter/http/handlers"
	"pagseguro_gateway/internal/adapter/http/handlers/mocks"
	"pagseguro_gateway/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testHandlers(ctrl *gomock.Controller) (Handlers, *mocks.MockIPreApprovalUseCase) {
	pa := mocks.NewMockIPreApprovalUseCase(ctrl)
	return Handlers{
		Checkout:     handlers.NewCheckoutHandler(mocks.NewMockICheckoutUseCase(ctrl), nil),
		Transaction:  handlers.NewTransactionHandler(mocks.NewMockITransactionUseCase(ctrl), nil),
		Notification: handlers.NewNotificationHandler(mocks.NewMockINotificationUseCase(ctrl), nil),
		PreApproval:  handlers.NewPreApprovalHandler(pa, nil),
	}, pa
}

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h, _ := testHandlers(ctrl)

	router := NewRouter(h, zap.NewNop())

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /v1/ping",
		"GET /swagger/*any",
		"POST /v1/checkouts",
		"GET /v1/checkouts",
		"POST /v1/checkouts/session",
		"GET /v1/checkouts/:id",
		"POST /v1/subscriptions",
		"GET /v1/transactions",
		"GET /v1/transactions/:code",
		"POST /v1/notifications",
		"GET /v1/pre-approvals",
		"GET /v1/pre-approvals/:code",
		"POST /v1/pre-approvals/:code/payments",
		"POST /v1/pre-approvals/:code/cancel",
	}
	for _, route := range want {
		if !registered[route] {
			t.Fatalf("route %q not registered", route)
		}
	}
}

func TestNewRouter_Dispatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h, pa := testHandlers(ctrl)
	router := NewRouter(h, zap.NewNop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from ping, got %d", w.Code)
	}

	pa.EXPECT().GetByCode(gomock.Any(), "session").Return(entities.PreApproval{Code: "session"}, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pre-approvals/session", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from pre-approval lookup, got %d", w.Code)
	}
}

func TestNewRouter_RecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h, pa := testHandlers(ctrl)
	router := NewRouter(h, zap.NewNop())

	pa.EXPECT().Cancel(gomock.Any(), "PA-1").DoAndReturn(func(_ any, _ string) (entities.PreApprovalCancel, error) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/pre-approvals/PA-1/cancel", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
