package models

// NoteKind tags the free text carried on an application
type NoteKind string

const (
	NoteKindRejected     NoteKind = "rejected"
	NoteKindInfoRequired NoteKind = "info_required"
	NoteKindNote         NoteKind = "note"
)

// ReviewNote is the tagged note attached to an application by its last reviewer
type ReviewNote struct {
	Kind NoteKind `json:"kind"`
	Text string   `json:"text"`
}

// RejectedNote records a rejection reason
func RejectedNote(reason string) *ReviewNote {
	return &ReviewNote{Kind: NoteKindRejected, Text: reason}
}

// InfoRequiredNote records what the applicant must supply
func InfoRequiredNote(note string) *ReviewNote {
	return &ReviewNote{Kind: NoteKindInfoRequired, Text: note}
}

// GeneralNote records a reviewer note that carries no decision
func GeneralNote(text string) *ReviewNote {
	return &ReviewNote{Kind: NoteKindNote, Text: text}
}
