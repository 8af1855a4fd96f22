package output

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseOutputFields converte "id,name,spend" na lista de chaves de --output-fields
func ParseOutputFields(csv string) []string {
	var fields []string
	for _, field := range strings.Split(csv, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// Project reduz os objetos de data às chaves pedidas. Arrays são projetados item a item;
// valores escalares passam sem alteração
func Project(data any, fields []string) (any, error) {
	if len(fields) == 0 || data == nil {
		return data, nil
	}

	generic, err := toGeneric(data)
	if err != nil {
		return nil, err
	}

	switch typed := generic.(type) {
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, projectItem(item, fields))
		}
		return out, nil
	default:
		return projectItem(typed, fields), nil
	}
}

func projectItem(item any, fields []string) any {
	object, ok := item.(map[string]any)
	if !ok {
		return item
	}

	out := make(map[string]any, len(fields))
	for _, field := range fields {
		if value, ok := object[field]; ok {
			out[field] = value
		}
	}
	return out
}

// toGeneric passa o valor por JSON para obter mapas e slices genéricos com as chaves da saída
func toGeneric(data any) (any, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, errors.WithMessage(err, "encode output")
	}

	var generic any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		return nil, errors.WithMessage(err, "decode output")
	}
	return generic, nil
}
