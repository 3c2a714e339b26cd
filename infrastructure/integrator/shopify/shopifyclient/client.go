package shopifyclient

import (
	"net/http"
	"time"

	shopifydomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/shopify/domain"
	"github.com/adnova/ads-autopilot-api/internal/config"
)

type Client interface {
	GetOrders(params OrdersConsultationParams) ([]shopifydomain.Order, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Shopify.RequestTimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}
