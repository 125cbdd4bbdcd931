package models

// TextLine is a single line of text recognised by the OCR provider.
//
// Lines are kept in reading order; the order carries meaning for the field
// extractor, which looks at the line following a "name" label.
type TextLine struct {
	// Content is the raw recognised text.
	Content string `json:"content"`

	// Confidence is the provider's confidence in percent (0..100).
	Confidence float64 `json:"confidence"`
}
