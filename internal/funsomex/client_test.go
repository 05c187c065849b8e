package funsomex

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"funsomex-web/internal/domain"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Options{})
	require.ErrorIs(t, err, ErrMissingBaseURL)
}

func TestCreatePaymentSendsNullDonorFields(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/donations/create-payment", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"payment_id":   "PAY-1",
			"approval_url": "https://provider.example/approve?token=abc",
			"donation_id":  "don-1",
		})
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	order, err := client.CreatePayment(context.Background(), PaymentRequest{
		Amount:   25,
		Currency: "USD",
	})
	require.NoError(t, err)
	require.Equal(t, "PAY-1", order.PaymentID)
	require.Equal(t, "https://provider.example/approve?token=abc", order.ApprovalURL)

	require.Equal(t, float64(25), captured["amount"])
	require.Equal(t, "USD", captured["currency"])
	for _, key := range []string{"donor_name", "donor_email", "message"} {
		val, ok := captured[key]
		require.True(t, ok, "missing key %q", key)
		require.Nil(t, val, "%q should serialize as null", key)
	}
}

func TestCreatePaymentRejectsMissingApprovalURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.CreatePayment(context.Background(), PaymentRequest{Amount: 10, Currency: "USD"})
	require.ErrorIs(t, err, domain.ErrCollaborator)
}

func TestExecutePaymentPassesCorrelationIdentifiers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/donations/execute-payment", r.URL.Path)
		require.Equal(t, "PAY-7", r.URL.Query().Get("payment_id"))
		require.Equal(t, "PAYER-9", r.URL.Query().Get("payer_id"))
		json.NewEncoder(w).Encode(map[string]any{"success": true, "payment_id": "PAY-7"})
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	result, err := client.ExecutePayment(context.Background(), "PAY-7", "PAYER-9")
	require.NoError(t, err)
	require.True(t, result.Success)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer stale-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Token inválido o expirado"})
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.ListContacts(context.Background(), "stale-token")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	err = client.VerifyToken(context.Background(), "stale-token")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyTokenRejectsEmptyTokenWithoutNetworkCall(t *testing.T) {
	client, err := NewClient(Options{
		BaseURL: "http://collaborator.invalid",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			t.Fatalf("no request should be issued for an empty token")
			return nil, nil
		})},
	})
	require.NoError(t, err)

	require.ErrorIs(t, client.VerifyToken(context.Background(), ""), domain.ErrUnauthorized)
}

func TestCollaboratorErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Error al crear pago"})
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.CreatePayment(context.Background(), PaymentRequest{Amount: 10, Currency: "USD"})
	require.ErrorIs(t, err, domain.ErrCollaborator)
	require.Contains(t, err.Error(), "Error al crear pago")
}

func TestListNewsBuildsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/news", r.URL.Path)
		require.Equal(t, "educacion", r.URL.Query().Get("category"))
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]map[string]any{{"id": "n1", "title": "Taller"}})
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	items, err := client.ListNews(context.Background(), "educacion", 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "n1", items[0].ID)
}

func TestDeleteNewsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Noticia no encontrada"})
	}))
	defer srv.Close()

	client, err := NewClient(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	err = client.DeleteNews(context.Background(), "token", "missing")
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
