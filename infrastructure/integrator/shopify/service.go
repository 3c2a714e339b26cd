package shopify

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	shopifydomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/shopify/domain"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

type ShopifyIntegrator interface {
	GetAttributedRevenue(params shopifydomain.GetOrdersParams, campaignID string, filters *domain.InsightFilters) (float64, error)
	CheckConnection(params shopifydomain.GetOrdersParams) (bool, error)
	VerifyShopCredentials(shopDomain, accessToken string) (bool, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

// GetAttributedRevenue soma a receita dos pedidos da loja atribuídos à campanha
// no período informado. A atribuição usa o utm_campaign da página de entrada
// ou os atributos de nota gravados no checkout.
func (s *ShopifyService) GetAttributedRevenue(params shopifydomain.GetOrdersParams, campaignID string, filters *domain.InsightFilters) (float64, error) {
	paramsClient := shopifyclient.OrdersConsultationParams{
		ShopDomain:  params.ShopDomain,
		AccessToken: params.AccessToken,
		StartDate:   filters.StartDate.Format(time.RFC3339),
		EndDate:     filters.EndDate.Format(time.RFC3339),
	}

	orders, err := s.Client.GetOrders(paramsClient)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shop":        params.ShopDomain,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("shopify: failed to get orders from API")
		return 0, err
	}

	var revenue float64
	for _, order := range orders {
		if order.CancelledAt != nil {
			continue
		}

		if !isAttributedToCampaign(&order, campaignID) {
			continue
		}

		amount, err := strconv.ParseFloat(order.TotalPrice, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"order": order.Name,
				"value": order.TotalPrice,
			}).Warn("shopify: unexpected total price format")
			continue
		}

		revenue += amount
	}

	logrus.WithFields(logrus.Fields{
		"shop":        params.ShopDomain,
		"campaign_id": campaignID,
		"orders":      len(orders),
		"revenue":     revenue,
	}).Debug("shopify: attributed revenue computed")

	return revenue, nil
}

// CheckConnection valida as credenciais da loja consultando os pedidos do último dia
func (s *ShopifyService) CheckConnection(params shopifydomain.GetOrdersParams) (bool, error) {
	now := time.Now()

	paramsClient := shopifyclient.OrdersConsultationParams{
		ShopDomain:  params.ShopDomain,
		AccessToken: params.AccessToken,
		StartDate:   now.AddDate(0, 0, -1).Format(time.RFC3339),
		EndDate:     now.Format(time.RFC3339),
	}

	_, err := s.Client.GetOrders(paramsClient)
	if err != nil {
		return false, err
	}

	return true, nil
}

// VerifyShopCredentials valida as credenciais informadas antes de vincular a
// loja a um usuário
func (s *ShopifyService) VerifyShopCredentials(shopDomain, accessToken string) (bool, error) {
	return s.CheckConnection(shopifydomain.GetOrdersParams{
		ShopDomain:  shopDomain,
		AccessToken: accessToken,
	})
}

// isAttributedToCampaign verifica se o pedido veio da campanha informada
func isAttributedToCampaign(order *shopifydomain.Order, campaignID string) bool {
	if utmCampaignFromLandingSite(order.LandingSite) == campaignID {
		return true
	}

	for _, attribute := range order.NoteAttributes {
		if attribute.Name == "utm_campaign" && attribute.Value == campaignID {
			return true
		}
	}

	return false
}

// utmCampaignFromLandingSite extrai o utm_campaign da página de entrada do pedido
func utmCampaignFromLandingSite(landingSite string) string {
	if landingSite == "" || !strings.Contains(landingSite, "utm_campaign") {
		return ""
	}

	parsed, err := url.Parse(landingSite)
	if err != nil {
		return ""
	}

	return parsed.Query().Get("utm_campaign")
}
