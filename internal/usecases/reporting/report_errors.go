package reporting

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrReportNotFound = errors.New("monthly report not found")
	ErrSaveReport     = errors.New("error saving monthly report")
	ErrFetchReport    = errors.New("error fetching monthly report")
)

// ReportError é um erro com contexto adicional para relatórios mensais
type ReportError struct {
	Err    error  // Erro base
	Code   string // Código de erro para API
	Period string // Período mm-yyyy envolvido
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Period != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Period)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, period string) *ReportError {
	return &ReportError{
		Err:    err,
		Code:   code,
		Period: period,
	}
}
