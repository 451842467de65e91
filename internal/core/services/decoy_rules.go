package services

import (
	"regexp"
	"strings"
	"unicode"
)

// Regras ordenadas: a primeira cujo gatilho aparece na manchete é aplicada e
// encerra a transformação.
type decoyRule struct {
	trigger      string
	replacements [][2]string
}

var orderedDecoyRules = []decoyRule{
	{"unveils", [][2]string{{"unveils", "cancels development of"}}},
	{"discover", [][2]string{{"discover", "disprove existence of"}}},
	{"rally", [][2]string{{"rally", "plunge"}, {"ease", "worsen"}}},
	{"improved", [][2]string{{"improved", "decreased"}}},
	{"announces", [][2]string{{"announces", "delays"}, {"by 2030", "indefinitely"}}},
}

// Tabela simétrica de antônimos usada quando nenhuma regra ordenada casa.
// Aplicada em passada única: cada palavra casada é trocada uma vez, sem
// re-substituir o resultado.
var antonyms = map[string]string{
	"increase":   "decline",
	"decline":    "increase",
	"rise":       "fall",
	"fall":       "rise",
	"growth":     "drop",
	"drop":       "growth",
	"surge":      "plunge",
	"plunge":     "surge",
	"success":    "failure",
	"failure":    "success",
	"successful": "failed",
	"approve":    "reject",
	"approved":   "rejected",
	"reject":     "approve",
	"gains":      "losses",
	"losses":     "gains",
	"wins":       "loses",
	"loses":      "wins",
	"positive":   "negative",
	"negative":   "positive",
	"good":       "bad",
}

var antonymPattern = regexp.MustCompile(`(?i)\b(successful|increase|decline|approved|approve|failure|negative|positive|success|reject|growth|losses|plunge|surge|gains|loses|drop|fall|good|rise|wins)\b`)

const emptyHeadlineDecoy = "Officials deny reports of unprecedented developments"

// ruleBasedDecoy é o gerador determinístico de fallback: transforma uma
// manchete real em uma falsa sem depender do provedor. Total: sempre devolve
// uma string não vazia e diferente da entrada.
func ruleBasedDecoy(realHeadline string) string {
	if strings.TrimSpace(realHeadline) == "" {
		return emptyHeadlineDecoy
	}

	for _, rule := range orderedDecoyRules {
		if !strings.Contains(realHeadline, rule.trigger) {
			continue
		}
		fake := realHeadline
		for _, pair := range rule.replacements {
			fake = strings.ReplaceAll(fake, pair[0], pair[1])
		}
		return fake
	}

	fake := antonymPattern.ReplaceAllStringFunc(realHeadline, func(word string) string {
		return antonyms[strings.ToLower(word)]
	})

	if fake != realHeadline {
		return fake
	}

	// Nenhuma substituição casou: reformula para garantir uma manchete
	// diferente da original.
	return "Experts cast doubt on claims that " + lowerFirst(realHeadline)
}

func lowerFirst(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
