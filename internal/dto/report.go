package dto

// ReportRequest is the daily field report form
type ReportRequest struct {
	Weather         string `json:"weather" validate:"required,weather"`
	TimeLeave       string `json:"time_leave" validate:"required,hhmm"`
	TimeReach       string `json:"time_reach" validate:"required,hhmm"`
	OtherStalls     int    `json:"other_stalls" validate:"min=0"`
	WaterAccess     bool   `json:"water_access"`
	PowerAccess     bool   `json:"power_access"`
	GeneralComments string `json:"general_comments,omitempty"`
}
