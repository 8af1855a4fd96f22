package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONString serializa parâmetros compostos (filtering, time_range, targeting) para envio em query ou form
func JSONString(in any) (string, error) {
	buffer, err := json.Marshal(in)
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}
