package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tradewind/storefront/internal/domain/model"
)

// ErrOrderNotFound indicates the provider does not know the order.
var ErrOrderNotFound = errors.New("provider order not found")

// APIError carries a non-2xx provider response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e APIError) Error() string {
	return fmt.Sprintf("paypal api error: status %d: %s", e.StatusCode, e.Body)
}

// Client exposes the provider operations the order lifecycle depends on.
// Calls are synchronous and never retried internally.
type Client interface {
	CreateOrder(ctx context.Context, total float64, currency string, items []model.LineItem) (*model.ProviderOrder, error)
	GetOrder(ctx context.Context, externalID string) (*model.ProviderOrder, error)
	CaptureOrder(ctx context.Context, externalID string) (*model.CaptureOutcome, error)
	RefundCapture(ctx context.Context, captureID string, amount float64, currency, note string) (*model.ProviderRefund, error)
}

// HTTPClient implements Client against the PayPal REST API. Sandbox and live
// differ only by base URL supplied at construction time.
type HTTPClient struct {
	baseURL      *url.URL
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *slog.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewHTTPClient creates a provider client with default timeout.
func NewHTTPClient(baseURL, clientID, clientSecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse paypal url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("paypal url must be absolute")
	}
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("paypal credentials must be provided")
	}
	return &HTTPClient{
		baseURL:      parsed,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type amountPayload struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type refundResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateOrder registers a capture-intent order with the provider.
func (c *HTTPClient) CreateOrder(ctx context.Context, total float64, currency string, items []model.LineItem) (*model.ProviderOrder, error) {
	type itemPayload struct {
		Name       string        `json:"name"`
		UnitAmount amountPayload `json:"unit_amount"`
		Quantity   string        `json:"quantity"`
	}
	type purchaseUnit struct {
		Amount struct {
			amountPayload
			Breakdown struct {
				ItemTotal amountPayload `json:"item_total"`
			} `json:"breakdown"`
		} `json:"amount"`
		Items []itemPayload `json:"items"`
	}

	var unit purchaseUnit
	unit.Amount.amountPayload = amountPayload{CurrencyCode: currency, Value: formatAmount(total)}
	unit.Amount.Breakdown.ItemTotal = amountPayload{CurrencyCode: currency, Value: formatAmount(total)}
	for _, item := range items {
		unit.Items = append(unit.Items, itemPayload{
			Name:       item.Name,
			UnitAmount: amountPayload{CurrencyCode: currency, Value: formatAmount(item.UnitPrice)},
			Quantity:   strconv.Itoa(item.Quantity),
		})
	}

	body := map[string]any{
		"intent":         "CAPTURE",
		"purchase_units": []purchaseUnit{unit},
	}

	raw, err := c.do(ctx, http.MethodPost, "/v2/checkout/orders", body)
	if err != nil {
		return nil, err
	}

	var resp orderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode create order response: %w", err)
	}
	return &model.ProviderOrder{ExternalID: resp.ID, Status: resp.Status}, nil
}

// GetOrder fetches live provider-side order status.
func (c *HTTPClient) GetOrder(ctx context.Context, externalID string) (*model.ProviderOrder, error) {
	raw, err := c.do(ctx, http.MethodGet, "/v2/checkout/orders/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, err
	}

	var resp orderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode get order response: %w", err)
	}
	return &model.ProviderOrder{ExternalID: resp.ID, Status: resp.Status}, nil
}

// CaptureOrder executes the capture and returns the raw response alongside the
// extracted capture identifier.
func (c *HTTPClient) CaptureOrder(ctx context.Context, externalID string) (*model.CaptureOutcome, error) {
	raw, err := c.do(ctx, http.MethodPost, "/v2/checkout/orders/"+url.PathEscape(externalID)+"/capture", struct{}{})
	if err != nil {
		return nil, err
	}

	var resp struct {
		orderResponse
		PurchaseUnits []struct {
			Payments struct {
				Captures []struct {
					ID string `json:"id"`
				} `json:"captures"`
			} `json:"payments"`
		} `json:"purchase_units"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode capture response: %w", err)
	}

	outcome := &model.CaptureOutcome{
		ExternalID: resp.ID,
		Status:     resp.Status,
		Details:    json.RawMessage(raw),
	}
	for _, unit := range resp.PurchaseUnits {
		for _, capture := range unit.Payments.Captures {
			if capture.ID != "" {
				outcome.CaptureID = capture.ID
				break
			}
		}
	}
	return outcome, nil
}

// RefundCapture refunds the given amount against an executed capture.
func (c *HTTPClient) RefundCapture(ctx context.Context, captureID string, amount float64, currency, note string) (*model.ProviderRefund, error) {
	body := map[string]any{
		"amount":        amountPayload{CurrencyCode: currency, Value: formatAmount(amount)},
		"note_to_payer": note,
	}

	raw, err := c.do(ctx, http.MethodPost, "/v2/payments/captures/"+url.PathEscape(captureID)+"/refund", body)
	if err != nil {
		return nil, err
	}

	var resp refundResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode refund response: %w", err)
	}
	return &model.ProviderRefund{RefundID: resp.ID, Status: resp.Status}, nil
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	target := *c.baseURL
	target.Path = strings.TrimSuffix(target.Path, "/") + endpoint

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Prefer", "return=representation")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrOrderNotFound
	default:
		c.logger.Error("paypal request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
		)
		return nil, APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
}

// token returns a cached OAuth access token, refreshing it when expired.
func (c *HTTPClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	target := *c.baseURL
	target.Path = strings.TrimSuffix(target.Path, "/") + "/v1/oauth2/token"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var token tokenResponse
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("empty access token in provider response")
	}

	c.accessToken = token.AccessToken
	// Renew one minute before the provider-reported expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)
	return c.accessToken, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
