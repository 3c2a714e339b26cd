package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adnova/ads-autopilot-api/internal/domain"
	"github.com/adnova/ads-autopilot-api/internal/usecases/campaigning"
	"github.com/adnova/ads-autopilot-api/pkg/apiErrors"
	"github.com/adnova/ads-autopilot-api/pkg/log"
	"github.com/adnova/ads-autopilot-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

// ListAlerts lista os alertas do usuário logado. O parâmetro unread=true
// restringe aos alertas ainda não lidos
func ListAlerts(service campaigning.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		onlyUnread := r.URL.Query().Get("unread") == "true"

		alerts, err := service.ListAlerts(userClaims.UserID, onlyUnread)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(alerts)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// MarkAlertRead marca um alerta do usuário logado como lido
func MarkAlertRead(service campaigning.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		alertID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if alertID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do alerta não fornecido", nil)
			return
		}

		err := service.MarkAlertRead(userClaims.UserID, alertID)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrAlertNotFound, "Alerta não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}
