package constant

import "voz-orientador-be/internal/model"

const (
	WelcomeText = "Hola, soy tu asistente de orientación tecnológica. " +
		"Di 'buscar' para pedir información de una carrera, o di 'entrevista' para que te haga preguntas y recomendarte opciones. " +
		"Cuando quieras terminar, di 'salir'."

	NotUnderstoodPrefix = "No te entendí. "
	FarewellText        = "Gracias por usar el sistema. ¡Hasta luego!"
	ReindexDoneText     = "Índice reconstruido. Puedes continuar."
	ReindexBusyText     = "Ya hay una reconstrucción del índice en curso. Intenta de nuevo en un momento."
	SearchPromptText    = "Dime el nombre o el área de la carrera que te interesa."
	NoMatchesText       = "No encontré coincidencias en los PDFs locales para esa búsqueda."
	NoProfileText       = "No logré perfilarte bien. Puedes decir 'buscar' y pedirme una carrera específica."
	InterviewIntroText  = "Comencemos la entrevista. "
	ServerErrorSpeech   = "Ocurrió un error en el servidor."
	InvalidTokenText    = "Token inválido. Conexión cerrada."

	// Dialogue keywords, matched as case-insensitive substrings of the
	// transcript.
	KeywordExit      = "salir"
	KeywordInterview = "entrevista"
	KeywordSearch    = "buscar"

	// Fallback query used when a search-mode turn produces an empty
	// transcript.
	DefaultSearchQuery = "tecnología"

	// Result limits.
	SearchTopK         = 5
	CategoryTopK       = 2
	RecommendationSize = 3
)

// Questions is the fixed interview bank. Order matters: SessionState
// InterviewIdx indexes into this slice.
var Questions = []model.Question{
	{Prompt: "¿Te gusta programar y construir aplicaciones o APIs?", Category: model.CategorySoftware},
	{Prompt: "¿Te atrae configurar redes, servidores o servicios en la nube?", Category: model.CategoryInfraestructura},
	{Prompt: "¿Te interesan la ciberseguridad, el hacking ético y el análisis de riesgos?", Category: model.CategoryCiberseguridad},
	{Prompt: "¿Te entusiasma analizar datos, hacer dashboards o modelos de IA/ML?", Category: model.CategoryDatosAI},
	{Prompt: "¿Te llama el diseño de interfaces, UX o el desarrollo web front-end?", Category: model.CategoryWebUX},
	{Prompt: "¿Te gusta probar software, automatizar pruebas y asegurar calidad?", Category: model.CategoryQATesting},
}

// YesTokens and NoTokens classify a spoken yes/no answer. Affirmatives are
// checked first; a transcript matching neither set counts as a "no".
var YesTokens = []string{"si", "sí", "claro", "me gusta", "me encanta", "mucho", "por supuesto", "sí, me gusta"}

var NoTokens = []string{"no", "no mucho", "poco", "no me gusta"}

// CategoryLabels maps each category to the human-readable phrase used in the
// recommendation sentence.
var CategoryLabels = map[model.Category]string{
	model.CategorySoftware:        "ingeniería de software",
	model.CategoryInfraestructura: "infraestructura y redes",
	model.CategoryCiberseguridad:  "ciberseguridad",
	model.CategoryDatosAI:         "analítica de datos e inteligencia artificial",
	model.CategoryWebUX:           "desarrollo y diseño web",
	model.CategoryQATesting:       "automatización de pruebas",
}

// CategoryQueries maps each category to the search phrase issued against the
// similarity index when assembling recommendation citations.
var CategoryQueries = map[model.Category]string{
	model.CategorySoftware:        "software programación ingeniería",
	model.CategoryInfraestructura: "redes infraestructura cloud servidores tecnologías de información",
	model.CategoryCiberseguridad:  "ciberseguridad seguridad informática ethical hacker",
	model.CategoryDatosAI:         "analítica datos inteligencia artificial machine learning",
	model.CategoryWebUX:           "desarrollo web diseño UX UI front-end",
	model.CategoryQATesting:       "automatización pruebas QA testing",
}

// QueryForCategory falls back to the raw category name for values outside the
// known set.
func QueryForCategory(cat model.Category) string {
	if q, ok := CategoryQueries[cat]; ok {
		return q
	}
	return string(cat)
}
