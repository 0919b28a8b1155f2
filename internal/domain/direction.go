package domain

// Direction says which of the two configured languages a captured text is
// written in, relative to translating toward the other one.
type Direction int

const (
	// DirectionUnknown means script inspection cannot tell the languages
	// apart, typically because both are written in the same script.
	DirectionUnknown Direction = iota
	// DirectionSource means the text is in the configured source language.
	DirectionSource
	// DirectionTarget means the text is in the configured target language.
	DirectionTarget
)

func (d Direction) String() string {
	switch d {
	case DirectionSource:
		return "source"
	case DirectionTarget:
		return "target"
	default:
		return "unknown"
	}
}
