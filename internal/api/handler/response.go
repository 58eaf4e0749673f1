package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-planning-api/infrastructure/repository"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/records"
	"github.com/vfg2006/revenue-planning-api/internal/usecases/reporting"
	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeBody lê o corpo JSON da requisição, respondendo VAL_001 em caso de erro
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// writeServiceError traduz os erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error) {
	var recordErr *records.RecordError
	if errors.As(err, &recordErr) {
		var details any
		if len(recordErr.Fields) > 0 {
			details = map[string]any{"fields": recordErr.Fields}
		} else if recordErr.RecordID != "" {
			details = map[string]any{
				"record_type": recordErr.RecordType,
				"record_id":   recordErr.RecordID,
			}
		}
		apiErrors.WriteError(w, recordErr.Code, recordErr.Error(), details)
		return
	}

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), map[string]any{"period": reportErr.Period})
		return
	}

	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Registro não encontrado", nil)
	default:
		logrus.WithError(err).Error("Erro não mapeado na requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
