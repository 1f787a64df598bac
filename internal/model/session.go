package model

// Mode is the dialogue state of a session. Keeping this a closed enum (rather
// than free-form strings) makes illegal transitions unrepresentable in the
// session service.
type Mode int

const (
	ModeNone Mode = iota
	ModeInterview
	ModeSearch
	ModeTerminated
)

func (m Mode) String() string {
	switch m {
	case ModeInterview:
		return "entrevista"
	case ModeSearch:
		return "buscar"
	case ModeTerminated:
		return "terminado"
	default:
		return "ninguno"
	}
}

// Category is a career-orientation area scored during the interview.
type Category string

const (
	CategorySoftware        Category = "software"
	CategoryInfraestructura Category = "infraestructura"
	CategoryCiberseguridad  Category = "ciberseguridad"
	CategoryDatosAI         Category = "datos_ai"
	CategoryWebUX           Category = "web_ux"
	CategoryQATesting       Category = "qa_testing"
)

// Categories is the closed category set, in interview-bank order. Recommend
// output order follows this slice so results are deterministic regardless of
// map iteration order.
var Categories = []Category{
	CategorySoftware,
	CategoryInfraestructura,
	CategoryCiberseguridad,
	CategoryDatosAI,
	CategoryWebUX,
	CategoryQATesting,
}

// Question is one fixed interview prompt and the category it scores.
type Question struct {
	Prompt   string
	Category Category
}

// SessionState is the per-connection dialogue state. It is owned exclusively
// by one connection handler and replaced wholesale when the dialogue resets.
type SessionState struct {
	Mode         Mode             `json:"mode"`
	InterviewIdx int              `json:"interview_idx"`
	Scores       map[Category]int `json:"scores"`
}

// NewSessionState returns a fresh idle state with every category tally
// initialized, so score reads never need an existence check.
func NewSessionState() *SessionState {
	scores := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		scores[c] = 0
	}
	return &SessionState{
		Mode:         ModeNone,
		InterviewIdx: 0,
		Scores:       scores,
	}
}
