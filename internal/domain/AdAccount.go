package domain

import "strings"

type AdAccount struct {
	ID                  string `json:"id"`
	AccountID           string `json:"account_id,omitempty"`
	Name                string `json:"name"`
	AccountStatus       int    `json:"account_status,omitempty"`
	AmountSpent         string `json:"amount_spent,omitempty"`
	Balance             string `json:"balance,omitempty"`
	Currency            string `json:"currency,omitempty"`
	SpendCap            string `json:"spend_cap,omitempty"`
	BusinessName        string `json:"business_name,omitempty"`
	BusinessCity        string `json:"business_city,omitempty"`
	BusinessCountryCode string `json:"business_country_code,omitempty"`
	TimezoneName        string `json:"timezone_name,omitempty"`
}

// NormalizeAccountID garante o prefixo act_ exigido pelas arestas da conta
func NormalizeAccountID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, "act_") {
		return id
	}
	return "act_" + id
}
