package ui

import "strings"

// labels holds the chrome wording of the window.
type labels struct {
	Menu         []string
	SearchLabel  string
	Placeholder  string
	SearchButton string
	TodayButton  string
	Loading      string
	Date         string
	Image        string
	HDImage      string
	Video        string
	Thumbnail    string
	Description  string
	Empty        string
	OK           string
	Offline      string
	Status       string
}

var labelCatalogs = map[string]labels{
	"en": {
		Menu:         []string{"File", "View", "Tools", "Help"},
		SearchLabel:  "Search by date:",
		Placeholder:  "YYYY-MM-DD",
		SearchButton: "Search",
		TodayButton:  "Today's Image",
		Loading:      "Loading NASA data...",
		Date:         "Date",
		Image:        "Image",
		HDImage:      "HD",
		Video:        "The content for this date is a video.",
		Thumbnail:    "Thumbnail",
		Description:  "Description:",
		Empty:        "Nothing to show yet.",
		OK:           "OK",
		Offline:      "offline",
		Status:       "NASA APOD v1.0",
	},
	"pt": {
		Menu:         []string{"Arquivo", "Visualizar", "Ferramentas", "Ajuda"},
		SearchLabel:  "Buscar por Data:",
		Placeholder:  "AAAA-MM-DD",
		SearchButton: "Buscar",
		TodayButton:  "Imagem de Hoje",
		Loading:      "Carregando dados da NASA...",
		Date:         "Data",
		Image:        "Imagem",
		HDImage:      "HD",
		Video:        "O conteúdo para esta data é um vídeo.",
		Thumbnail:    "Miniatura",
		Description:  "Descrição:",
		Empty:        "Nada para mostrar ainda.",
		OK:           "OK",
		Offline:      "sem conexão",
		Status:       "NASA APOD v1.0",
	},
}

func labelsFor(lang string) labels {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if l, ok := labelCatalogs[lang]; ok {
		return l
	}
	return labelCatalogs["en"]
}
