package metadomain

import (
	"math"

	jsoniter "github.com/json-iterator/go"
)

// BusinessUseCaseUsageHeader carrega o consumo de rate limit por conta de anúncios
const BusinessUseCaseUsageHeader = "X-Business-Use-Case-Usage"

// UsageEntry são os percentuais de uso informados pela Meta para um caso de uso
type UsageEntry struct {
	Type                        string  `json:"type,omitempty"`
	CallCount                   float64 `json:"call_count"`
	TotalCPUTime                float64 `json:"total_cputime"`
	TotalTime                   float64 `json:"total_time"`
	EstimatedTimeToRegainAccess int     `json:"estimated_time_to_regain_access,omitempty"`
}

// RateLimitInfo é o resumo exposto ao chamador; UsagePct é o maior dos três percentuais
type RateLimitInfo struct {
	CallCount    float64 `json:"call_count"`
	TotalCPUTime float64 `json:"total_cputime"`
	TotalTime    float64 `json:"total_time"`
	UsagePct     float64 `json:"usage_pct"`
}

// ParseBusinessUseCaseUsage interpreta o cabeçalho {"<account>": [{...}]}.
// Retorna nil para cabeçalho ausente ou malformado: telemetria nunca falha a requisição
func ParseBusinessUseCaseUsage(header string) *RateLimitInfo {
	if header == "" {
		return nil
	}

	var usage map[string][]UsageEntry
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(header, &usage); err != nil {
		return nil
	}

	var info *RateLimitInfo
	for _, entries := range usage {
		for _, entry := range entries {
			pct := math.Max(entry.CallCount, math.Max(entry.TotalCPUTime, entry.TotalTime))
			if info == nil || pct > info.UsagePct {
				info = &RateLimitInfo{
					CallCount:    entry.CallCount,
					TotalCPUTime: entry.TotalCPUTime,
					TotalTime:    entry.TotalTime,
					UsagePct:     pct,
				}
			}
		}
	}

	return info
}
