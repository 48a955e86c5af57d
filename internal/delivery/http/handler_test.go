package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	paychangu "github.com/Xausdorf/paychangu-go"
	httpdelivery "github.com/Xausdorf/paychangu-go/internal/delivery/http"
	"github.com/Xausdorf/paychangu-go/internal/domain/checkout"
	"github.com/Xausdorf/paychangu-go/internal/domain/entity"
	"github.com/Xausdorf/paychangu-go/internal/domain/repository"
	"github.com/Xausdorf/paychangu-go/internal/mocks"
	"github.com/Xausdorf/paychangu-go/internal/usecase/createlink"
	"github.com/Xausdorf/paychangu-go/internal/usecase/generateqr"
	"github.com/Xausdorf/paychangu-go/internal/usecase/verify"
)

type fixture struct {
	uow         *mocks.MockUnitOfWork
	txUow       *mocks.MockUnitOfWork
	payments    *mocks.MockPaymentRepository
	idempotency *mocks.MockIdempotencyRepository
	gateway     *mocks.MockGateway
	generator   *mocks.MockGenerator
	router      http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:         mocks.NewMockUnitOfWork(ctrl),
		txUow:       mocks.NewMockUnitOfWork(ctrl),
		payments:    mocks.NewMockPaymentRepository(ctrl),
		idempotency: mocks.NewMockIdempotencyRepository(ctrl),
		gateway:     mocks.NewMockGateway(ctrl),
		generator:   mocks.NewMockGenerator(ctrl),
	}

	handler := httpdelivery.NewHandler(
		createlink.NewUseCase(f.uow, f.gateway),
		verify.NewUseCase(f.uow, f.gateway),
		generateqr.NewUseCase(f.payments, f.generator),
		slog.New(slog.DiscardHandler),
	)
	f.router = httpdelivery.NewRouter(handler)
	return f
}

// expectFreshKey sets up a first-time idempotency key up to the provider call.
func (f *fixture) expectFreshKey(key string) {
	f.uow.EXPECT().Idempotency().Return(f.idempotency)
	f.idempotency.EXPECT().Find(gomock.Any(), key).Return(nil, nil)
	f.uow.EXPECT().Begin(gomock.Any()).Return(f.txUow, nil)
	f.txUow.EXPECT().Rollback(gomock.Any()).Return(nil)
	f.txUow.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.idempotency.EXPECT().Lock(gomock.Any(), key).Return(nil)
	f.idempotency.EXPECT().Find(gomock.Any(), key).Return(nil, nil)
}

func (f *fixture) do(method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

const linkBody = `{
	"amount": 2500,
	"currency": "MWK",
	"email": "jane@example.com",
	"first_name": "Jane",
	"last_name": "Banda",
	"callback_url": "https://shop.example.com/callback",
	"return_url": "https://shop.example.com/done",
	"title": "Order 17"
}`

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleCreateLink_RequiresIdempotencyKey(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/payment-links", linkBody, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "X-Idempotency-Key")
}

func TestHandleCreateLink_InvalidJSON(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/payment-links", `{"amount":`, map[string]string{"X-Idempotency-Key": "k"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid json", decodeBody(t, rec)["error"])
}

func TestHandleCreateLink_Created(t *testing.T) {
	f := newFixture(t)
	f.expectFreshKey("key-1")

	f.gateway.EXPECT().CreateLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req checkout.LinkRequest) (*checkout.Link, error) {
			assert.True(t, decimal.NewFromInt(2500).Equal(req.Amount.Decimal))
			assert.Equal(t, "Jane", req.FirstName)
			return &checkout.Link{TxRef: req.TxRef, CheckoutURL: "https://checkout.paychangu.com/" + req.TxRef}, nil
		},
	)
	f.txUow.EXPECT().Payments().Return(f.payments)
	f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.idempotency.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	f.txUow.EXPECT().Commit(gomock.Any()).Return(nil)

	rec := f.do(http.MethodPost, "/api/payment-links", linkBody, map[string]string{"X-Idempotency-Key": "key-1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	txRef, _ := body["tx_ref"].(string)
	assert.Regexp(t, `^[0-9a-f]{20}$`, txRef)
	assert.Equal(t, "https://checkout.paychangu.com/"+txRef, body["checkout_url"])
	assert.Equal(t, "pending", body["status"])
}

func TestHandleCreateLink_Replayed(t *testing.T) {
	f := newFixture(t)

	cached := []byte(`{"tx_ref":"first","checkout_url":"https://checkout.paychangu.com/first","status":"pending"}`)
	f.uow.EXPECT().Idempotency().Return(f.idempotency)
	f.idempotency.EXPECT().Find(gomock.Any(), "key-2").
		Return(entity.NewIdempotencyRecord("key-2", "first", cached), nil)

	rec := f.do(http.MethodPost, "/api/payment-links", linkBody, map[string]string{"X-Idempotency-Key": "key-2"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "first", decodeBody(t, rec)["tx_ref"])
}

func TestHandleCreateLink_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "invalid input",
			err:    &paychangu.InvalidInputError{Message: "Missing required parameter: amount"},
			status: http.StatusBadRequest,
		},
		{
			name:   "provider rejected key",
			err:    &paychangu.APIError{Kind: paychangu.KindAuthentication, Message: "Invalid API key", StatusCode: 401},
			status: http.StatusBadGateway,
		},
		{
			name:   "provider unreachable",
			err:    &paychangu.APIError{Kind: paychangu.KindAPI, Message: "Connection error: refused"},
			status: http.StatusBadGateway,
		},
		{
			name:   "malformed provider answer",
			err:    checkout.ErrMalformedResponse,
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectFreshKey("key-err")
			f.gateway.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := f.do(http.MethodPost, "/api/payment-links", linkBody, map[string]string{"X-Idempotency-Key": "key-err"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, decodeBody(t, rec)["error"], tt.err.Error())
		})
	}
}

func storedPayment(status entity.PaymentStatus) *entity.Payment {
	return entity.ReconstructPayment(
		uuid.New(), "ref-1", decimal.NewFromInt(2500), "MWK", "jane@example.com",
		"https://checkout.paychangu.com/ref-1", status, time.Now(), time.Now(),
	)
}

func TestHandleVerify(t *testing.T) {
	f := newFixture(t)

	f.uow.EXPECT().Payments().Return(f.payments).Times(2)
	f.payments.EXPECT().FindByTxRef(gomock.Any(), "ref-1").Return(storedPayment(entity.StatusPending), nil)
	f.gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(&checkout.Verification{
		TxRef: "ref-1", Status: "success", Amount: decimal.NewFromInt(2500), Currency: "MWK",
	}, nil)
	f.payments.EXPECT().UpdateStatus(gomock.Any(), "ref-1", entity.StatusSuccess).Return(nil)

	rec := f.do(http.MethodGet, "/api/payments/ref-1/verify", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ref-1", body["tx_ref"])
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "2500", body["amount"])
	assert.Equal(t, "MWK", body["currency"])
}

func TestHandleVerify_UnknownPayment(t *testing.T) {
	f := newFixture(t)

	f.uow.EXPECT().Payments().Return(f.payments)
	f.payments.EXPECT().FindByTxRef(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)

	rec := f.do(http.MethodGet, "/api/payments/nope/verify", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleVerify_AmountMismatch(t *testing.T) {
	f := newFixture(t)

	f.uow.EXPECT().Payments().Return(f.payments)
	f.payments.EXPECT().FindByTxRef(gomock.Any(), "ref-1").Return(storedPayment(entity.StatusPending), nil)
	f.gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(&checkout.Verification{
		TxRef: "ref-1", Status: "success", Amount: decimal.NewFromInt(1), Currency: "MWK",
	}, nil)

	rec := f.do(http.MethodGet, "/api/payments/ref-1/verify", "", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleVerify_ProviderNotFound(t *testing.T) {
	f := newFixture(t)

	f.uow.EXPECT().Payments().Return(f.payments)
	f.payments.EXPECT().FindByTxRef(gomock.Any(), "ref-1").Return(storedPayment(entity.StatusPending), nil)
	f.gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(nil, &paychangu.APIError{
		Kind: paychangu.KindNotFound, Message: "Transaction not found", StatusCode: 404,
	})

	rec := f.do(http.MethodGet, "/api/payments/ref-1/verify", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleQR(t *testing.T) {
	f := newFixture(t)

	f.payments.EXPECT().FindByTxRef(gomock.Any(), "ref-1").Return(storedPayment(entity.StatusPending), nil)
	f.generator.EXPECT().Generate("https://checkout.paychangu.com/ref-1").Return([]byte("\x89PNG"), nil)

	rec := f.do(http.MethodGet, "/api/payments/ref-1/qr", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes())
}

func TestHandleQR_SettledPayment(t *testing.T) {
	f := newFixture(t)

	f.payments.EXPECT().FindByTxRef(gomock.Any(), "ref-1").Return(storedPayment(entity.StatusFailed), nil)

	rec := f.do(http.MethodGet, "/api/payments/ref-1/qr", "", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
