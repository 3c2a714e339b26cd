package metaclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/domain"

	jsoniter "github.com/json-iterator/go"
)

// GetCampaignByID busca os dados atuais de uma campanha na API do Meta
func (c *MetaClient) GetCampaignByID(campaignID string) (*metadomain.Campaign, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status,daily_budget,bid_strategy")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetCampaignByID(campaignID)
		}
		return nil, err
	}

	var campaign metadomain.Campaign
	if err := jsoniter.Unmarshal(body, &campaign); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &campaign, nil
}

// GetAdSetByID busca os dados atuais de um conjunto de anúncios na API do Meta
func (c *MetaClient) GetAdSetByID(adSetID string) (*metadomain.AdSet, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, adSetID)

	params := url.Values{}
	params.Add("fields", "id,name,status,bid_strategy,targeting")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetAdSetByID(adSetID)
		}
		return nil, err
	}

	var adSet metadomain.AdSet
	if err := jsoniter.Unmarshal(body, &adSet); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &adSet, nil
}
