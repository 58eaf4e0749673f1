package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
	"github.com/vfg2006/revenue-planning-api/pkg/log"
)

func ListNegotiations(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListNegotiations())
	})
}

func AddNegotiation(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var negotiation domain.Negotiation
		if !decodeBody(w, r, &negotiation) {
			return
		}

		stored, err := service.AddNegotiation(negotiation)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("negotiations: erro ao adicionar negociação")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stored)
	})
}

func UpdateNegotiation(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var negotiation domain.Negotiation
		if !decodeBody(w, r, &negotiation) {
			return
		}

		updated, err := service.UpdateNegotiation(id, negotiation)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

// GetNegotiationsByVertical agrupa o funil por vertical
func GetNegotiationsByVertical(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetNegotiationsByVertical())
	})
}
