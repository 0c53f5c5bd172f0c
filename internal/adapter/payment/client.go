package payment

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
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sellaro/storefront/internal/domain/model"
)

// ErrPaymentDeclined indicates the provider refused to open a payment.
var ErrPaymentDeclined = errors.New("payment request declined")

// Client exposes operations against the payment provider.
type Client interface {
	CreatePayment(ctx context.Context, order *model.Order) (*PaymentIntent, error)
}

// PaymentIntent is the provider's handle for a payment in progress.
type PaymentIntent struct {
	PayURL    string
	RequestID string
}

// HTTPClient implements Client via the provider's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	signer     *Signer
	partner    string
	httpClient *http.Client
	logger     *slog.Logger
}

type createRequest struct {
	PartnerCode string          `json:"partnerCode"`
	RequestID   string          `json:"requestId"`
	OrderID     string          `json:"orderId"`
	Amount      decimal.Decimal `json:"amount"`
	OrderInfo   string          `json:"orderInfo"`
	ExtraData   string          `json:"extraData"`
	Signature   string          `json:"signature"`
}

type createResponse struct {
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
	PayURL     string `json:"payUrl"`
}

// NewHTTPClient creates a payment client with default timeout.
func NewHTTPClient(baseURL, partnerCode string, signer *Signer, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		signer:  signer,
		partner: partnerCode,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreatePayment registers the order with the provider and returns the
// URL the customer is redirected to.
func (c *HTTPClient) CreatePayment(ctx context.Context, order *model.Order) (*PaymentIntent, error) {
	requestID := uuid.NewString()
	payload := "amount=" + order.Amount.String() +
		"&orderId=" + order.Code +
		"&partnerCode=" + c.partner +
		"&requestId=" + requestID

	body := createRequest{
		PartnerCode: c.partner,
		RequestID:   requestID,
		OrderID:     order.Code,
		Amount:      order.Amount,
		OrderInfo:   "order " + order.Code,
		Signature:   c.signer.Sign(payload),
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v2/create")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("payment error: %s", resp.Status)
	}

	var data createResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if data.ResultCode != model.PaymentResultSuccess {
		c.logger.Warn("payment declined", slog.Int("result", data.ResultCode), slog.String("message", data.Message))
		return nil, ErrPaymentDeclined
	}

	return &PaymentIntent{PayURL: data.PayURL, RequestID: requestID}, nil
}
