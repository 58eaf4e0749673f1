package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-planning-api/internal/domain"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
	"github.com/vfg2006/revenue-planning-api/pkg/log"
)

func ListContracts(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListContracts())
	})
}

func AddContract(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var contract domain.Contract
		if !decodeBody(w, r, &contract) {
			return
		}

		stored, err := service.AddContract(contract)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("contracts: erro ao adicionar contrato")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, stored)
	})
}

func UpdateContract(service records.RecordService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var contract domain.Contract
		if !decodeBody(w, r, &contract) {
			return
		}

		updated, err := service.UpdateContract(id, contract)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("record_id", id).Warn("contracts: erro ao atualizar contrato")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func GetContractTotalValue(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		value, err := service.GetContractTotalValue(id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, value)
	})
}
