package ports

// PromptData carries the values a prompt template may reference.
type PromptData struct {
	Text       string
	SourceLang string
	TargetLang string
	// Hint is an optional sentence describing what script inspection found,
	// embedded in the prompt when the direction is resolved locally.
	Hint string
}

// PromptRenderer renders the chat prompt sent to an AI provider.
// typ selects the template ("translate_fixed" or "translate_auto").
type PromptRenderer interface {
	Render(typ string, data PromptData) (string, error)
}
