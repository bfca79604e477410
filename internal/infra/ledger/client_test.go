package ledger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greenlake/config"
	"greenlake/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSigner struct {
	address    string
	credential string
	err        error
}

func (s staticSigner) Address() string { return s.address }

func (s staticSigner) Credential(context.Context) (string, error) { return s.credential, s.err }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Ledger: &config.LedgerConfig{BaseURL: server.URL + "/", Timeout: time.Second}}
	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client.(*Client)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(&config.Config{Ledger: &config.LedgerConfig{}}, slog.Default())
	assert.Error(t, err)

	_, err = NewClient(&config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestClient_Balance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tokens/balance/cb42", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"address": "cb42", "balance": "125.5"})
	})

	balance, err := client.Balance(context.Background(), "cb42")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("125.5").Equal(balance))
}

func TestClient_BurnSendsCredential(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tokens/burn", r.URL.Path)

		var req burnRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cb42", req.Address)
		assert.Equal(t, int64(30), req.Amount)
		assert.Equal(t, "secret-key", req.PrivateKey)

		writeJSON(w, http.StatusOK, map[string]any{
			"success":         true,
			"transactionHash": "0xabc",
			"burnedAmount":    30,
			"oldBalance":      100,
			"newBalance":      70,
		})
	})

	receipt, err := client.Burn(context.Background(), staticSigner{address: "cb42", credential: "secret-key"}, 30)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", receipt.TransactionHash)
	assert.True(t, decimal.NewFromInt(70).Equal(receipt.NewBalance))
}

func TestClient_BurnWithoutSuccessFlagFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false})
	})

	_, err := client.Burn(context.Background(), staticSigner{address: "cb42"}, 10)
	ledgerErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "burn", ledgerErr.Operation)
}

func TestClient_BurnCredentialError(t *testing.T) {
	called := false
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) { called = true })

	_, err := client.Burn(context.Background(), staticSigner{err: errors.New("locked")}, 10)
	assert.Error(t, err)
	assert.False(t, called)
}

func TestClient_ErrorBody(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "structured",
			status:      http.StatusBadRequest,
			body:        `{"error":"insufficient balance","code":"INSUFFICIENT_BALANCE","details":"has 3"}`,
			wantCode:    "INSUFFICIENT_BALANCE",
			wantMessage: "insufficient balance",
			wantDetails: "has 3",
		},
		{
			name:        "object details",
			status:      http.StatusInternalServerError,
			body:        `{"error":"reverted","details":{"reason":"paused"}}`,
			wantMessage: "reverted",
			wantDetails: `{"reason":"paused"}`,
		},
		{
			name:        "plain text",
			status:      http.StatusBadGateway,
			body:        "upstream down",
			wantMessage: "upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Mint(context.Background(), "cb42", 5)
			ledgerErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, ledgerErr.StatusCode)
			assert.Equal(t, tt.wantCode, ledgerErr.Code)
			assert.Equal(t, tt.wantMessage, ledgerErr.Message)
			assert.Equal(t, tt.wantDetails, ledgerErr.Details)
		})
	}
}

func TestClient_TransferAndCreateWallet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tokens/transfer":
			var req transferRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "cb01", req.From)
			assert.Equal(t, "cb02", req.To)
			assert.Equal(t, "k1", req.PrivateKey)
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "transactionHash": "0xt"})
		case "/users/create-wallet":
			var req createWalletRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice", req.Username)
			writeJSON(w, http.StatusOK, map[string]any{"address": "cb99", "privateKey": "pk99"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	receipt, err := client.Transfer(context.Background(), staticSigner{address: "cb01", credential: "k1"}, "cb02", 4)
	require.NoError(t, err)
	assert.Equal(t, "0xt", receipt.TransactionHash)

	wallet, err := client.CreateWallet(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "cb99", wallet.Address)
	assert.Equal(t, "pk99", wallet.PrivateKey)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	cfg := &config.Config{Ledger: &config.LedgerConfig{BaseURL: server.URL, Timeout: time.Second}}
	server.Close()

	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = client.Balance(context.Background(), "cb42")
	require.Error(t, err)
	_, isLedgerErr := AsError(err)
	assert.False(t, isLedgerErr)
}
