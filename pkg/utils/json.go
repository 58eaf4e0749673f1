package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// PrettyJson serializa qualquer valor (ou bytes JSON) com indentação por tabs,
// mantendo a ordem dos campos das structs
func PrettyJson(in any) (string, error) {
	buffer, isBytes := in.([]byte)
	if !isBytes {
		var err error
		buffer, err = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(in)
		if err != nil {
			return "", err
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return "", err
	}

	return out.String(), nil
}
