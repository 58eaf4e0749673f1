package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para itens aninhados (ex: automações)
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}

// GenerateRecordID gera o identificador dos registros principais
func GenerateRecordID() string {
	return uuid.NewString()
}
