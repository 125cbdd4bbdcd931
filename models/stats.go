package models

// VerificationStats summarises the most recent verifications.
type VerificationStats struct {
	TotalVerifications int            `json:"totalVerifications"`
	LowRiskCount       int            `json:"lowRiskCount"`
	MediumRiskCount    int            `json:"mediumRiskCount"`
	HighRiskCount      int            `json:"highRiskCount"`
	AverageRiskScore   float64        `json:"averageRiskScore"`
	RiskDistribution   map[string]int `json:"riskDistribution"`
}

// HealthStatus reports connectivity of the service's backing stores.
type HealthStatus struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Timestamp     int64  `json:"timestamp"`
	ObjectStorage string `json:"objectStorageStatus"`
	RecordStore   string `json:"recordStoreStatus"`
}
