package domain

import "time"

// Position is a point in source-image pixel space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox describes where a recognized token sits on the card image.
// X and Y are the top-left corner of the token's bounding region.
type BoundingBox struct {
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Vertices []Position `json:"vertices,omitempty"`
}

// RecognizedToken is one OCR-detected text fragment with its position.
// Tokens are produced by the external vision collaborator and consumed
// read-only; the extractor never mutates or retains them.
type RecognizedToken struct {
	Text        string      `json:"text"`
	BoundingBox BoundingBox `json:"boundingBox"`
}

// VisualLine is an ordered group of tokens judged to lie on the same
// horizontal line of the document. Built transiently per extraction call.
type VisualLine struct {
	Text string  `json:"text"`
	Y    float64 `json:"y"`
}

// ScannedData is the extraction output contract. All fields are derived
// per call; confidence is a heuristic 0-100 score, not a probability.
// IsAdult is always false when DateOfBirth is nil.
type ScannedData struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"dateOfBirth"` // YYYY-MM-DD
	IDNumber    *string `json:"idNumber"`
	Confidence  int     `json:"confidence"`
	IsAdult     bool    `json:"isAdult"`
}

// Empty returns the all-null zero-confidence result used for every
// no-signal and total-failure path.
func Empty() ScannedData {
	return ScannedData{}
}

// ScanRecord wraps a scan result for short-lived retrieval by the
// scanning UI. Only extracted fields are kept; the recognized text and
// token positions are discarded once extraction returns.
type ScanRecord struct {
	ScanID    string      `json:"scan_id"`
	Result    ScannedData `json:"result"`
	CreatedAt time.Time   `json:"created_at"`
}
