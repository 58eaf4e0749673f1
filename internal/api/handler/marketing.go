package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
	"github.com/vfg2006/revenue-planning-api/pkg/log"
)

func ListMarketingStrategies(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListMarketingStrategies())
	})
}

func AddMarketingStrategy(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var strategy domain.MarketingStrategy
		if !decodeBody(w, r, &strategy) {
			return
		}

		stored, err := service.AddMarketingStrategy(strategy)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("marketing: erro ao adicionar estratégia")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stored)
	})
}

func UpdateMarketingStrategy(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var strategy domain.MarketingStrategy
		if !decodeBody(w, r, &strategy) {
			return
		}

		updated, err := service.UpdateMarketingStrategy(id, strategy)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeleteMarketingStrategy(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteMarketingStrategy(id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GetMarketingOverview(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetMarketingOverview())
	})
}
