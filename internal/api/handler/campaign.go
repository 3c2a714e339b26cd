package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adnova/ads-autopilot-api/internal/domain"
	"github.com/adnova/ads-autopilot-api/internal/usecases/campaigning"
	"github.com/adnova/ads-autopilot-api/pkg/apiErrors"
	"github.com/adnova/ads-autopilot-api/pkg/log"
	"github.com/adnova/ads-autopilot-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

const defaultOptimizationLimit = 50

// ListCampaigns lista as campanhas do usuário logado
func ListCampaigns(service campaigning.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaigns, err := service.ListCampaigns(userClaims.UserID)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(campaigns)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetCampaignOverview retorna a campanha com as métricas agregadas do período recente
func GetCampaignOverview(service campaigning.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		overview, err := service.GetCampaignOverview(userClaims.UserID, campaignID)
		if err != nil {
			handleCampaignError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(overview)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListOptimizations retorna o histórico de otimizações de uma campanha
func ListOptimizations(service campaigning.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		limit := defaultOptimizationLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		records, err := service.ListOptimizations(userClaims.UserID, campaignID, limit)
		if err != nil {
			handleCampaignError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(records)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListCreatives retorna os criativos de uma campanha
func ListCreatives(service campaigning.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		creatives, err := service.ListCreatives(userClaims.UserID, campaignID)
		if err != nil {
			handleCampaignError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(creatives)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleCampaignError traduz erros das consultas de campanha para a resposta HTTP.
// Campanhas de outros usuários respondem como não encontradas
func handleCampaignError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, campaigning.ErrCampaignNotOwned) {
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
		return
	}

	log.ForContext(r.Context()).Error(err)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar dados da campanha", nil)
}
