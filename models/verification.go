package models

import "time"

// Upload is a document image received from a caller.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Size returns the upload size in bytes.
func (u Upload) Size() int64 {
	return int64(len(u.Data))
}

// VerificationRecord is the persisted form of a single verification.
//
// ExtractedData is stored encrypted: every present field is an `enc:v1:`
// envelope produced by the PII envelope. ID and CreatedAt are assigned once
// by the repository and never change afterwards; UpdatedAt is refreshed on
// every write.
type VerificationRecord struct {
	ID                  string         `json:"id" firestore:"id"`
	FileName            string         `json:"fileName" firestore:"file_name"`
	FileHash            string         `json:"fileHash" firestore:"file_hash"`
	StorageBucket       string         `json:"storageBucket" firestore:"storage_bucket"`
	StorageKey          string         `json:"storageKey" firestore:"storage_key"`
	RiskLevel           string         `json:"riskLevel" firestore:"risk_level"`
	RiskScore           int            `json:"riskScore" firestore:"risk_score"`
	Explanation         []string       `json:"explanation" firestore:"explanation"`
	ExtractedData       IdentityFields `json:"extractedData" firestore:"extracted_data"`
	FaceMatchConfidence *float64       `json:"faceMatchConfidence" firestore:"face_match_confidence"`
	IsTampered          bool           `json:"isTampered" firestore:"is_tampered"`
	CreatedAt           time.Time      `json:"createdAt" firestore:"created_at"`
	UpdatedAt           time.Time      `json:"updatedAt" firestore:"updated_at"`
}

// TableName returns the name of the table (or collection) records live in.
func (r VerificationRecord) TableName() string {
	return "verifications"
}

// VerificationResult is what the pipeline hands back to the caller: the
// assessment, the plaintext identity fields and the id of the stored record.
type VerificationResult struct {
	RecordID      string         `json:"id"`
	RiskLevel     string         `json:"riskLevel"`
	RiskScore     int            `json:"riskScore"`
	Explanation   []string       `json:"explanation"`
	ExtractedData IdentityFields `json:"extractedData"`
}

// NewVerificationResult builds a result from a finished assessment.
func NewVerificationResult(recordID string, assessment RiskAssessment, fields IdentityFields) VerificationResult {
	return VerificationResult{
		RecordID:      recordID,
		RiskLevel:     assessment.Tier.String(),
		RiskScore:     assessment.Score,
		Explanation:   assessment.Narrative,
		ExtractedData: fields,
	}
}

// NewErrorVerificationResult builds the response returned when a document
// could not be verified. The document is treated as maximum risk.
func NewErrorVerificationResult(message string) VerificationResult {
	return VerificationResult{
		RiskLevel:   riskLevelError,
		RiskScore:   100,
		Explanation: []string{message},
	}
}
