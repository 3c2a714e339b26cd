package shopifyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	shopifydomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/shopify/domain"
)

type OrdersConsultationParams struct {
	ShopDomain  string
	AccessToken string
	StartDate   string
	EndDate     string
}

func (c *ShopifyClient) GetOrders(params OrdersConsultationParams) ([]shopifydomain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(fmt.Sprintf("https://%s/admin/api/%s/orders.json", params.ShopDomain, c.config.Shopify.APIVersion))
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("status", "any")
	query.Set("created_at_min", params.StartDate)
	query.Set("created_at_max", params.EndDate)
	query.Set("limit", "250")
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("X-Shopify-Access-Token", params.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	var response shopifydomain.OrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Orders, nil
}
