package services

import "github.com/paraschopra/newsmadefun/internal/core/domain"

// Conjunto estático servido quando o provedor de manchetes está indisponível
// ou sem chave configurada. Nunca entra no snapshot: a próxima requisição
// tenta o provedor de novo.
var generalFallback = []domain.Headline{
	{
		Title:       "Global stock markets rally as inflation fears ease",
		Description: "Stock markets worldwide saw significant gains today as new economic data suggested inflation pressures may be moderating.",
		Source:      "Financial Times",
		URL:         "https://ft.example.com/markets-rally",
	},
	{
		Title:       "Major diplomatic breakthrough in peace talks",
		Description: "Negotiators have reached a tentative agreement after months of tense discussions.",
		Source:      "World News",
		URL:         "https://worldnews.example.com/peace-talks",
	},
	{
		Title:       "Nationwide infrastructure plan moves forward after vote",
		Description: "Lawmakers approved funding for a decade-long program of road, rail and broadband upgrades.",
		Source:      "Daily Briefing",
		URL:         "https://briefing.example.com/infrastructure-vote",
	},
}

var categoryFallback = map[string][]domain.Headline{
	"business": {
		{
			Title:       "Tech giant unveils revolutionary AI assistant that can understand emotions",
			Description: "The new AI system can detect and respond to human emotions through voice analysis and facial recognition.",
			Source:      "Tech Today",
			URL:         "https://techtoday.example.com/ai-emotions",
		},
		{
			Title:       "Major automaker announces all electric vehicle lineup by 2030",
			Description: "One of the world's largest automobile manufacturers has committed to producing only electric vehicles by 2030.",
			Source:      "Auto News",
			URL:         "https://autonews.example.com/electric-2030",
		},
	},
	"entertainment": {
		{
			Title:       "Surprise sequel announced for blockbuster movie franchise",
			Description: "Fans were shocked by the unexpected announcement of a new installment in the popular series.",
			Source:      "Entertainment Weekly",
			URL:         "https://ew.example.com/movie-sequel",
		},
		{
			Title:       "Music streaming service introduces revolutionary audio quality upgrade",
			Description: "The platform now offers studio-quality sound that surpasses CD quality for premium subscribers.",
			Source:      "Music Today",
			URL:         "https://musictoday.example.com/streaming-quality",
		},
	},
	"health": {
		{
			Title:       "Scientists discover potential cure for common cold in unexpected plant",
			Description: "Researchers have identified a compound in a rare tropical plant that shows promising results in neutralizing rhinoviruses.",
			Source:      "Science Daily",
			URL:         "https://sciencedaily.example.com/cold-cure",
		},
		{
			Title:       "New study links regular exercise to improved brain function in older adults",
			Description: "Research published today shows that adults over 65 who exercise regularly have better cognitive function.",
			Source:      "Health Journal",
			URL:         "https://healthjournal.example.com/exercise-brain",
		},
	},
	"science": {
		{
			Title:       "Researchers develop biodegradable plastic alternative from algae",
			Description: "A team of environmental scientists has created a fully biodegradable plastic alternative using common algae.",
			Source:      "Environmental Science Today",
			URL:         "https://envscience.example.com/algae-plastic",
		},
		{
			Title:       "Space telescope captures stunning images of distant galaxy formation",
			Description: "Astronomers have released breathtaking new images showing galaxy formation in the early universe.",
			Source:      "Astronomy Now",
			URL:         "https://astronomynow.example.com/galaxy-formation",
		},
	},
	"sports": {
		{
			Title:       "Underdog team pulls off stunning upset in championship game",
			Description: "In a shocking turn of events, the lowest-ranked team in the tournament defeated the reigning champions.",
			Source:      "Sports Center",
			URL:         "https://sportscenter.example.com/championship-upset",
		},
		{
			Title:       "Star athlete breaks decades-old world record",
			Description: "The record, which had stood for over 30 years, was finally broken during yesterday's international competition.",
			Source:      "Athletics Weekly",
			URL:         "https://athletics.example.com/world-record",
		},
	},
	"technology": {
		{
			Title:       "Revolutionary quantum computing breakthrough promises to transform data processing",
			Description: "Scientists have achieved stable quantum entanglement at room temperature, a major step toward practical quantum computers.",
			Source:      "Tech Review",
			URL:         "https://techreview.example.com/quantum-breakthrough",
		},
		{
			Title:       "New AI algorithm detects early signs of crop disease from satellite imagery",
			Description: "Agricultural researchers have developed an AI system that can identify early signs of crop disease from satellite images.",
			Source:      "Farming Technology",
			URL:         "https://farmtech.example.com/ai-crop-disease",
		},
	},
}

// fallbackHeadlines devolve o pool de placeholders da categoria, marcado com
// a categoria pedida.
func fallbackHeadlines(category string) []domain.Headline {
	pool := generalFallback
	if hs, ok := categoryFallback[category]; ok && category != "general" {
		pool = hs
	}

	out := make([]domain.Headline, len(pool))
	for i, h := range pool {
		h.Category = category
		out[i] = h
	}
	return out
}
