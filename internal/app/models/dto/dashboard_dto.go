package dto

// DashboardFilterInfo echoes the resolved date range back to the caller.
type DashboardFilterInfo struct {
	FilterType string  `json:"filterType"`
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
}

// DashboardResponse carries overall record counts, optionally scoped to a
// creation date range.
type DashboardResponse struct {
	TotalStudents      int64               `json:"totalStudents"`
	TotalStaff         int64               `json:"totalStaff"`
	TotalAdmissions    int64               `json:"totalAdmissions"`
	TotalEnrollments   int64               `json:"totalEnrollments"`
	TotalAttendance    int64               `json:"totalAttendance"`
	TotalExams         int64               `json:"totalExams"`
	TotalGrades        int64               `json:"totalGrades"`
	TotalFees          int64               `json:"totalFees"`
	TotalNotifications int64               `json:"totalNotifications"`
	FilterInfo         DashboardFilterInfo `json:"filterInfo"`
}
