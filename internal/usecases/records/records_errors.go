package records

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de registros
var (
	// Erros de validação
	ErrInvalidRecord = errors.New("invalid record")
	ErrIDRequired    = errors.New("record ID is required")

	// Erros de busca
	ErrRecordNotFound = errors.New("record not found")
)

// FieldError descreve um campo que falhou na validação
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// RecordError é um erro com contexto adicional para registros
type RecordError struct {
	Err        error        // Erro base
	Code       string       // Código de erro para API
	RecordType string       // Tipo do registro (contract, negotiation...)
	RecordID   string       // ID do registro envolvido (quando aplicável)
	Fields     []FieldError // Campos inválidos (quando aplicável)
}

// Error implementa a interface error
func (e *RecordError) Error() string {
	if e.RecordID != "" {
		return fmt.Sprintf("%s: %s %s", e.Err.Error(), e.RecordType, e.RecordID)
	}
	if e.RecordType != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.RecordType)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError cria um novo RecordError
func NewRecordError(err error, code string, recordType string) *RecordError {
	return &RecordError{
		Err:        err,
		Code:       code,
		RecordType: recordType,
	}
}

// NewRecordErrorWithID cria um novo RecordError com o ID do registro
func NewRecordErrorWithID(err error, code string, recordType string, recordID string) *RecordError {
	return &RecordError{
		Err:        err,
		Code:       code,
		RecordType: recordType,
		RecordID:   recordID,
	}
}
