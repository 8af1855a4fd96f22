package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda valores monetários e percentuais (half away from zero)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	rounded, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return rounded
}

// RoundPtr arredonda um valor opcional, preservando nil
func RoundPtr(f *float64) *float64 {
	if f == nil {
		return nil
	}

	rounded := RoundWithTwoDecimalPlace(*f)
	return &rounded
}

// ParseNumber converte os números-como-string da Graph API, retornando false quando ausente ou inválido
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// NumberOrZero é o ParseNumber tolerante: qualquer valor ausente vira 0
func NumberOrZero(s string) float64 {
	value, _ := ParseNumber(s)
	return value
}

// Float64Ptr retorna um ponteiro para o valor informado
func Float64Ptr(f float64) *float64 {
	return &f
}
