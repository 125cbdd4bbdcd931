package models

// FaceDetection is the outcome of the face detection step.
type FaceDetection struct {
	FaceDetected bool `json:"faceDetected"`
	FaceCount    int  `json:"faceCount"`

	// HighestConfidence is the best per-face confidence in percent, nil when
	// no face was found.
	HighestConfidence *float64 `json:"highestConfidence,omitempty"`
}

// TamperDetection is the outcome of the tampering/suspicious content step.
// The decoded image dimensions are reported alongside.
type TamperDetection struct {
	Tampered          bool     `json:"tampered"`
	SuspiciousContent bool     `json:"suspiciousContent"`
	Labels            []string `json:"labels,omitempty"`
	ImageWidth        int      `json:"imageWidth"`
	ImageHeight       int      `json:"imageHeight"`
}

// QualityAnalysis describes the technical quality of the uploaded image.
type QualityAnalysis struct {
	Blurry       bool `json:"blurry"`
	GoodLighting bool `json:"goodLighting"`
	DocumentLike bool `json:"documentLike"`
}

// SignalBundle is the immutable set of signals the risk scorer and the
// explanation generator work on. It is built once per request with
// [NewSignalBundle] and passed by value.
type SignalBundle struct {
	FaceDetected      bool
	FaceCount         int
	Tampered          bool
	SuspiciousContent bool
	Blurry            bool
	GoodLighting      bool
	DocumentLike      bool
	ImageWidth        int
	ImageHeight       int
	Fields            IdentityFields
}

// NewSignalBundle assembles a SignalBundle from the individual analysis results.
func NewSignalBundle(faces FaceDetection, tamper TamperDetection, quality QualityAnalysis, fields IdentityFields) SignalBundle {
	return SignalBundle{
		FaceDetected:      faces.FaceDetected,
		FaceCount:         faces.FaceCount,
		Tampered:          tamper.Tampered,
		SuspiciousContent: tamper.SuspiciousContent,
		Blurry:            quality.Blurry,
		GoodLighting:      quality.GoodLighting,
		DocumentLike:      quality.DocumentLike,
		ImageWidth:        tamper.ImageWidth,
		ImageHeight:       tamper.ImageHeight,
		Fields:            fields,
	}
}

// Pixels returns the image area in pixels.
func (b SignalBundle) Pixels() int64 {
	return int64(b.ImageWidth) * int64(b.ImageHeight)
}
