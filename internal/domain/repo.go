package domain

import "time"

// RepoSummary is the minimal metadata of one repository from the listing endpoint.
type RepoSummary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Stars       int       `json:"stars"`
	Language    string    `json:"language,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FallbackLanguageColor is used for languages outside the palette.
const FallbackLanguageColor = "#8b949e"

var languageColors = map[string]string{
	"JavaScript": "#f7df1e",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Ruby":       "#701516",
}

// LanguageColor returns the hex color of the dot shown next to a language.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return FallbackLanguageColor
}
