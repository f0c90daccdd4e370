package utils

import "time"

// ValidDate informa se a string está no formato de data aceito nas rotas
// de intervalo (YYYY-MM-DD)
func ValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}
