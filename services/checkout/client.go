package checkout

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"staybook/errors"

	json "github.com/goccy/go-json"
)

// Client là implementation duy nhất của Provider, gọi REST API của provider.
type Client struct {
	baseURL       string
	apiKey        string
	webhookSecret string
	httpClient    *http.Client
}

func NewClient(baseURL, apiKey, webhookSecret string) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		webhookSecret: webhookSecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sessionRequest struct {
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	ProductName   string            `json:"product_name"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	SuccessURL    string            `json:"success_url"`
	CancelURL     string            `json:"cancel_url"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

func (c *Client) CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error) {
	body, err := json.Marshal(sessionRequest{
		Amount:        params.Amount,
		Currency:      params.Currency,
		ProductName:   params.ProductName,
		CustomerEmail: params.CustomerEmail,
		SuccessURL:    params.SuccessURL,
		CancelURL:     params.CancelURL,
		Metadata:      params.Metadata,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeProvider, "Failed to create checkout session", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.NewAppError(errors.ErrCodeProvider,
			fmt.Sprintf("Checkout session request returned %d", resp.StatusCode), errors.ErrProviderUnhealthy)
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeProvider, "Malformed checkout session response", err)
	}
	if session.ID == "" || session.URL == "" {
		return nil, errors.NewAppError(errors.ErrCodeProvider, "Checkout session response missing id or url", nil)
	}

	return &session, nil
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	LatestCharge struct {
		ReceiptURL string `json:"receipt_url"`
	} `json:"latest_charge"`
}

// ReceiptURL hỏi provider side-channel lấy receipt của payment intent.
func (c *Client) ReceiptURL(ctx context.Context, paymentIntentID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payment_intents/"+paymentIntentID, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeProvider, "Failed to fetch payment intent", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewAppError(errors.ErrCodeProvider,
			fmt.Sprintf("Payment intent request returned %d", resp.StatusCode), errors.ErrProviderUnhealthy)
	}

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", errors.NewAppError(errors.ErrCodeProvider, "Malformed payment intent response", err)
	}

	return intent.LatestCharge.ReceiptURL, nil
}
