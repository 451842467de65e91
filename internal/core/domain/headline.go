// Package domain concentra entidades e estruturas centrais do jogo de manchetes.
package domain

import "strings"

// Headline é uma manchete normalizada, vinda do provedor externo ou do
// conjunto de fallback.
type Headline struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Categories lista as categorias aceitas pelo endpoint de manchetes.
var Categories = []string{
	"general",
	"business",
	"entertainment",
	"health",
	"science",
	"sports",
	"technology",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// NormalizeHeadline produz a chave canônica usada pelo cache de decoys:
// minúsculas, sem espaços nas pontas e com espaços internos colapsados.
// Manchetes semanticamente iguais com formatação diferente precisam colidir
// na mesma entrada.
func NormalizeHeadline(headline string) string {
	return strings.Join(strings.Fields(strings.ToLower(headline)), " ")
}
