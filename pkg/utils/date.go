package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Today trunca o instante informado para o início do dia, no fuso do próprio valor
func Today(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}

// FormatDate formata no padrão YYYY-MM-DD aceito pela Graph API
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
