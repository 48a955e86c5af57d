package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paychangu "github.com/Xausdorf/paychangu-go"
	"github.com/Xausdorf/paychangu-go/internal/domain/checkout"
	"github.com/Xausdorf/paychangu-go/internal/infrastructure/provider"
)

func newProvider(t *testing.T, h http.HandlerFunc) *provider.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	api, err := paychangu.New("sk-test", paychangu.WithBaseURL(srv.URL), paychangu.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return provider.NewClient(api)
}

func TestClient_CreateLink(t *testing.T) {
	var got map[string]any
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status":"success","data":{"tx_ref":"abc","checkout_url":"https://checkout.paychangu.com/abc"}}`))
	})

	link, err := p.CreateLink(context.Background(), checkout.LinkRequest{
		TxRef:       "abc",
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("12.50")),
		Currency:    "USD",
		Email:       "a@b.com",
		FirstName:   "A",
		LastName:    "B",
		CallbackURL: "https://cb",
		ReturnURL:   "https://rt",
		Title:       "Order",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc", link.TxRef)
	assert.Equal(t, "https://checkout.paychangu.com/abc", link.CheckoutURL)
	assert.Equal(t, "abc", got["tx_ref"])
	assert.Equal(t, "USD", got["currency"])
	assert.Equal(t, 12.5, got["amount"])
}

func TestClient_CreateLink_MissingCheckoutURL(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":{}}`))
	})

	_, err := p.CreateLink(context.Background(), checkout.LinkRequest{
		TxRef:       "abc",
		Amount:      decimal.NewNullDecimal(decimal.NewFromInt(1)),
		Currency:    "MWK",
		Email:       "a@b.com",
		FirstName:   "A",
		LastName:    "B",
		CallbackURL: "https://cb",
		ReturnURL:   "https://rt",
	})

	require.ErrorIs(t, err, checkout.ErrMalformedResponse)
}

func TestClient_CreateLink_InvalidInputNeverReachesServer(t *testing.T) {
	p := newProvider(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("unexpected request")
	})

	_, err := p.CreateLink(context.Background(), checkout.LinkRequest{Currency: "MWK"})

	require.ErrorIs(t, err, paychangu.ErrInvalidInput)
	assert.EqualError(t, err, "Missing required parameter: amount")
}

func TestClient_Verify(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/verify-payment/abc", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success","data":{"tx_ref":"abc","status":"success","amount":"2500.00","currency":"MWK"}}`))
	})

	v, err := p.Verify(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "abc", v.TxRef)
	assert.Equal(t, "success", v.Status)
	assert.Equal(t, "MWK", v.Currency)
	assert.True(t, decimal.NewFromInt(2500).Equal(v.Amount))
}

func TestClient_Verify_NotFound(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Transaction not found"}`))
	})

	_, err := p.Verify(context.Background(), "abc")

	require.ErrorIs(t, err, paychangu.ErrNotFound)
	assert.Contains(t, err.Error(), "Transaction not found")
}

func TestClient_Verify_MissingStatus(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"tx_ref":"abc"}}`))
	})

	_, err := p.Verify(context.Background(), "abc")

	require.ErrorIs(t, err, checkout.ErrMalformedResponse)
}
