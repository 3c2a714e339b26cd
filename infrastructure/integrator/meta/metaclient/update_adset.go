package metaclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/domain"
)

// UpdateAdSet atualiza campos de um conjunto de anúncios na API do Meta.
// Campos estruturados como targeting são enviados no corpo em JSON.
func (c *MetaClient) UpdateAdSet(adSetID string, fields map[string]interface{}) error {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, adSetID)

	params := url.Values{}
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	payload, err := json.Marshal(fields)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar os campos do conjunto de anúncios")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.UpdateAdSet(adSetID, fields)
		}
		return err
	}

	var response metadomain.UpdateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	if !response.Success {
		return fmt.Errorf("a API do Meta não confirmou a atualização do conjunto de anúncios %s", adSetID)
	}

	return nil
}
