// Package notify posts recorded transactions to an external webhook.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agriverse/warehouse/internal/config"
	"github.com/agriverse/warehouse/internal/domain/models"
)

// event is the webhook payload for one recorded transaction.
type event struct {
	Type        string    `json:"type"`
	ProductName string    `json:"product_name"`
	FarmerName  string    `json:"farmer_name"`
	Quantity    float64   `json:"quantity"`
	PricePerKg  float64   `json:"price_per_kg"`
	TotalPrice  float64   `json:"total_price"`
	Date        time.Time `json:"date"`
}

// WebhookClient is a resty-backed transaction notifier.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookClient builds a webhook notifier from the provided configuration.
func NewWebhookClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.AuthToken != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AuthToken))
	}

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

// TransactionRecorded delivers one transaction event to the webhook.
func (c *WebhookClient) TransactionRecorded(ctx context.Context, tx models.Transaction) error {
	payload := event{
		Type:        tx.Type,
		ProductName: tx.ProductName,
		FarmerName:  tx.FarmerName,
		Quantity:    tx.Quantity,
		PricePerKg:  tx.PricePerKg,
		TotalPrice:  tx.TotalPrice,
		Date:        tx.Date,
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post transaction event: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook rejected event: status=%d", resp.StatusCode())
	}

	return nil
}
