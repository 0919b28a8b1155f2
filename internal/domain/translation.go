package domain

// Reason classifies why a translation result was rejected.
type Reason string

const (
	// ReasonNoChange means the backend handed the text back unchanged,
	// either because the provider failed and fell back to the original or
	// because the selection was already in its final form.
	ReasonNoChange Reason = "no_change"
	// ReasonDoubled means the result was a doubled echo of the input that
	// could not be repaired into anything new.
	ReasonDoubled Reason = "doubled_detected"
	// ReasonProviderError marks a provider-side failure that reached the
	// dispatcher instead of being absorbed by the backend fallback.
	ReasonProviderError Reason = "provider_error"
)

// Result is the validator's verdict on a backend response. Consumed once.
type Result struct {
	Text      string `json:"text"`
	Succeeded bool   `json:"succeeded"`
	Reason    Reason `json:"reason,omitempty"`
}
