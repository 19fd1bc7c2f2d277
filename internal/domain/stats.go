package domain

type AssignmentStats struct {
	ActiveTotal     int64   `json:"active_total"`
	CompletedTotal  int64   `json:"completed_total"`
	ReassignedTotal int64   `json:"reassigned_total"`
	ActiveNGO       int64   `json:"active_ngo"`
	ActiveAuthority int64   `json:"active_authority"`
	AverageScore    float64 `json:"average_score"`
}
