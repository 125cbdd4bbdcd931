package risk

import (
	"fmt"

	"github.com/MKhiriev/go-id-verifier/models"
)

// band is one of the five narrative score bands. Bands are deliberately finer
// than the three storage tiers.
type band struct {
	from           int
	assessment     string
	recommendation string
}

// bands is ordered from the highest threshold down.
var bands = []band{
	{
		from:           80,
		assessment:     "Final risk assessment: CRITICAL - strong indicators of a fraudulent document",
		recommendation: "Recommendation: Reject the document and escalate for manual fraud investigation",
	},
	{
		from:           60,
		assessment:     "Final risk assessment: HIGH - multiple fraud indicators were found",
		recommendation: "Recommendation: Manual review required before accepting the document",
	},
	{
		from:           40,
		assessment:     "Final risk assessment: ELEVATED - some checks did not pass",
		recommendation: "Recommendation: Request additional verification from the applicant",
	},
	{
		from:           20,
		assessment:     "Final risk assessment: MODERATE - minor issues were detected",
		recommendation: "Recommendation: Spot-check the extracted details before proceeding",
	},
	{
		from:           MinScore,
		assessment:     "Final risk assessment: LOW - document appears authentic",
		recommendation: "Recommendation: Proceed with standard processing",
	},
}

// Explain produces the ordered narrative for a bundle and its final score:
// findings for face, tampering, blur, lighting (only when poor), name,
// ID number and date of birth, then an assessment and a recommendation.
//
// Extracted values are echoed in the narrative, so it carries the same
// sensitivity as the identity fields themselves.
func Explain(b models.SignalBundle, score int) []string {
	lines := make([]string, 0, 9)

	switch {
	case b.FaceDetected && b.FaceCount > 1:
		lines = append(lines, fmt.Sprintf("WARNING: Multiple faces detected in document: %d faces found", b.FaceCount))
	case b.FaceDetected:
		lines = append(lines, "Face detected in document: a single face was found")
	default:
		lines = append(lines, "WARNING: No face detected in document - potential fraud indicator")
	}

	if b.Tampered {
		lines = append(lines, "ALERT: Potential tampering detected in document")
	} else {
		lines = append(lines, "Document integrity check: No obvious signs of tampering")
	}

	if b.Blurry {
		lines = append(lines, "Image quality assessment: Image is blurry, extracted details may be inaccurate")
	} else {
		lines = append(lines, "Image quality assessment: Image is sharp enough for analysis")
	}

	if !b.GoodLighting {
		lines = append(lines, "Lighting assessment: Poor lighting conditions detected")
	}

	lines = append(lines,
		fieldFinding("Name", b.Fields.Name),
		fieldFinding("ID number", b.Fields.IDNumber),
		fieldFinding("Date of birth", b.Fields.DOB),
	)

	closing := bandFor(score)
	lines = append(lines, closing.assessment, closing.recommendation)

	return lines
}

func fieldFinding(label string, value *string) string {
	if value == nil {
		return fmt.Sprintf("%s extraction: Failed to extract %s from document", label, lowerFirst(label))
	}
	return fmt.Sprintf("%s extracted: %s", label, *value)
}

func bandFor(score int) band {
	for _, b := range bands {
		if score >= b.from {
			return b
		}
	}
	return bands[len(bands)-1]
}

func lowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	// keep acronyms such as "ID" intact
	if len(s) > 1 && s[1] >= 'A' && s[1] <= 'Z' {
		return s
	}
	return string(s[0]+('a'-'A')) + s[1:]
}
