package query

import "strings"

// Messages is the user-facing wording for each failure class. Titles head the
// alert; the body becomes Snapshot.ErrorMessage.
type Messages struct {
	BadFormatTitle string
	BadFormat      string
	NotFoundTitle  string
	NotFound       string
	NetworkTitle   string
	Network        string
}

var catalogs = map[string]Messages{
	"en": {
		BadFormatTitle: "Invalid Format",
		BadFormat:      "Invalid date format. Please enter the date as YYYY-MM-DD.",
		NotFoundTitle:  "No Results",
		NotFound:       "No result for this date. Try another one.",
		NetworkTitle:   "Network Error",
		Network:        "Network error: could not connect to the NASA API.",
	},
	"pt": {
		BadFormatTitle: "Formato Inválido",
		BadFormat:      "Por favor, insira a data no formato AAAA-MM-DD.",
		NotFoundTitle:  "Sem Resultados",
		NotFound:       "Não foi encontrada uma imagem para esta data. Tente outra.",
		NetworkTitle:   "Erro de Rede",
		Network:        "Não foi possível conectar à API da NASA.",
	},
}

// DefaultLanguage is used when a language has no catalog.
const DefaultLanguage = "en"

// MessagesFor returns the catalog for lang. Region suffixes are ignored
// ("pt-BR" and "pt_BR" resolve to "pt").
func MessagesFor(lang string) Messages {
	if m, ok := catalogs[normalizeLanguage(lang)]; ok {
		return m
	}
	return catalogs[DefaultLanguage]
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{"en", "pt"}
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
