package model

// DocumentPage is one extracted PDF page in the corpus. Pages are immutable
// once created; IDs are sequential within a single index generation and are
// reassigned from zero on every rebuild.
type DocumentPage struct {
	ID         int    `json:"id"`
	SourceFile string `json:"file"`
	Page       int    `json:"page"`
	Path       string `json:"path"`
	Text       string `json:"text"`
}
