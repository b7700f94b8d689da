package types

type SessionStats struct {
	Files          int `json:"files"`
	Tokens         int `json:"tokens"`
	ActiveTokens   int `json:"activeTokens"`
	AccessedTokens int `json:"accessedTokens"`
	AuditEntries   int `json:"auditEntries"`
}

type HospitalStats struct {
	Patients     int `json:"patients"`
	Doctors      int `json:"doctors"`
	Appointments int `json:"appointments"`
	Total        int `json:"total"`
}
