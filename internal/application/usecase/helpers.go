package usecase

import "strings"

// containsFold busca substring sem diferenciar maiúsculas.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
