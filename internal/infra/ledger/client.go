// Package ledger is the HTTP client of the token-ledger collaborator.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"greenlake/config"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"
	"greenlake/internal/infra/metrics"

	"github.com/shopspring/decimal"
)

const maxErrorBodySize = 64 << 10

// Client implements service.TokenLedger over HTTP/JSON. Calls are never retried:
// a failed burn is reported to the caller as is.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a ledger client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.TokenLedger, error) {
	if cfg.Ledger == nil || strings.TrimSpace(cfg.Ledger.BaseURL) == "" {
		return nil, errors.New("ledger base URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.Ledger.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid ledger base URL")
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Ledger.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Ledger.Timeout,
		},
		logger: logger,
	}, nil
}

type balanceResponse struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

type burnRequest struct {
	Address    string `json:"address"`
	Amount     int64  `json:"amount"`
	PrivateKey string `json:"privateKey,omitempty"`
}

type mintRequest struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

type transferRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Amount     int64  `json:"amount"`
	PrivateKey string `json:"privateKey"`
}

type txResponse struct {
	Success         *bool           `json:"success"`
	TransactionHash string          `json:"transactionHash"`
	BurnedAmount    decimal.Decimal `json:"burnedAmount"`
	Amount          decimal.Decimal `json:"amount"`
	OldBalance      decimal.Decimal `json:"oldBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
}

type createWalletRequest struct {
	Username string `json:"username"`
}

type createWalletResponse struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// Balance returns the token balance at address.
func (c *Client) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := c.do(ctx, "balance", http.MethodGet, "/tokens/balance/"+url.PathEscape(address), nil, &resp); err != nil {
		return decimal.Zero, err
	}

	return resp.Balance, nil
}

// Burn debits amount from the signer's wallet. Only an explicit success answer counts.
func (c *Client) Burn(ctx context.Context, signer service.Signer, amount int64) (*service.Receipt, error) {
	credential, err := signer.Credential(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve burn credential")
	}

	var resp txResponse
	req := burnRequest{Address: signer.Address(), Amount: amount, PrivateKey: credential}
	if err := c.do(ctx, "burn", http.MethodPost, "/tokens/burn", req, &resp); err != nil {
		return nil, err
	}
	if resp.Success == nil || !*resp.Success {
		return nil, &Error{Operation: "burn", StatusCode: http.StatusOK, Message: "ledger did not confirm the burn"}
	}

	return &service.Receipt{
		TransactionHash: resp.TransactionHash,
		Amount:          resp.BurnedAmount,
		OldBalance:      resp.OldBalance,
		NewBalance:      resp.NewBalance,
	}, nil
}

// Mint credits amount to address.
func (c *Client) Mint(ctx context.Context, address string, amount int64) (*service.Receipt, error) {
	var resp txResponse
	if err := c.do(ctx, "mint", http.MethodPost, "/tokens/mint", mintRequest{Address: address, Amount: amount}, &resp); err != nil {
		return nil, err
	}
	if resp.Success != nil && !*resp.Success {
		return nil, &Error{Operation: "mint", StatusCode: http.StatusOK, Message: "ledger did not confirm the mint"}
	}

	return &service.Receipt{
		TransactionHash: resp.TransactionHash,
		Amount:          resp.Amount,
		OldBalance:      resp.OldBalance,
		NewBalance:      resp.NewBalance,
	}, nil
}

// Transfer moves amount from the signer's wallet to another address.
func (c *Client) Transfer(ctx context.Context, from service.Signer, to string, amount int64) (*service.Receipt, error) {
	credential, err := from.Credential(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve transfer credential")
	}

	var resp txResponse
	req := transferRequest{From: from.Address(), To: to, Amount: amount, PrivateKey: credential}
	if err := c.do(ctx, "transfer", http.MethodPost, "/tokens/transfer", req, &resp); err != nil {
		return nil, err
	}
	if resp.Success != nil && !*resp.Success {
		return nil, &Error{Operation: "transfer", StatusCode: http.StatusOK, Message: "ledger did not confirm the transfer"}
	}

	return &service.Receipt{
		TransactionHash: resp.TransactionHash,
		Amount:          resp.Amount,
		OldBalance:      resp.OldBalance,
		NewBalance:      resp.NewBalance,
	}, nil
}

// CreateWallet registers a wallet for username on the ledger's user registry.
func (c *Client) CreateWallet(ctx context.Context, username string) (*service.Wallet, error) {
	var resp createWalletResponse
	if err := c.do(ctx, "create_wallet", http.MethodPost, "/users/create-wallet", createWalletRequest{Username: username}, &resp); err != nil {
		return nil, err
	}
	if resp.Address == "" || resp.PrivateKey == "" {
		return nil, &Error{Operation: "create_wallet", StatusCode: http.StatusOK, Message: "ledger returned an incomplete wallet"}
	}

	return &service.Wallet{Address: resp.Address, PrivateKey: resp.PrivateKey}, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		metrics.LedgerRequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
	}()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return errors.WithStack(marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Ledger request failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "ledger %s request failed", operation)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ledgerErr := decodeError(operation, resp)
		c.logger.WarnContext(ctx, "Ledger returned an error",
			slog.String("operation", operation),
			slog.Int("status", ledgerErr.StatusCode),
			slog.String("code", ledgerErr.Code),
			slog.String("message", ledgerErr.Message),
		)

		return ledgerErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode ledger %s response", operation)
	}

	return nil
}

func decodeError(operation string, resp *http.Response) *Error {
	ledgerErr := &Error{Operation: operation, StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		ledgerErr.Message = http.StatusText(resp.StatusCode)

		return ledgerErr
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		ledgerErr.Message = strings.TrimSpace(string(raw))

		return ledgerErr
	}

	ledgerErr.Code = body.Code
	ledgerErr.Message = body.Error
	ledgerErr.Details = detailsText(body.Details)

	return ledgerErr
}

// detailsText renders the details field, which the ledger sends as a string or an object.
func detailsText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	return string(raw)
}
