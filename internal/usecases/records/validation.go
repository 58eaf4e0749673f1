package records

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/revenue-planning-api/pkg/apiErrors"
)

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Usa o nome do campo no JSON nas mensagens de erro
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// validateRecord converte os erros do validator em um RecordError com a lista de campos
func (s *Service) validateRecord(recordType string, record any) error {
	err := s.validate.Struct(record)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return NewRecordError(ErrInvalidRecord, apiErrors.ErrInvalidRequest, recordType)
	}

	code := apiErrors.ErrMissingRequiredData
	fields := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() != "required" {
			code = apiErrors.ErrInvalidFormat
		}
		fields = append(fields, FieldError{Field: fieldNamespace(fieldErr), Rule: fieldErr.Tag()})
	}

	recordErr := NewRecordError(ErrInvalidRecord, code, recordType)
	recordErr.Fields = fields
	return recordErr
}

// fieldNamespace remove o nome da struct raiz (ex: Contract.company -> company)
func fieldNamespace(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
