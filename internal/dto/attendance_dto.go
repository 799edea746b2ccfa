package dto

import "github.com/dandyZicky/wfh-attendance/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SubmitAttendanceRequest struct {
	Date         string  `json:"date"           validate:"required,datetime=2006-01-02"`
	CheckInTime  *string `json:"check_in_time"  validate:"omitempty,datetime=15:04:05"`
	CheckOutTime *string `json:"check_out_time" validate:"omitempty,datetime=15:04:05"`
	WorkLocation string  `json:"work_location"  validate:"required,oneof=office home client_site"`
	Status       string  `json:"status"         validate:"required,oneof=present absent late half_day"`
	Notes        *string `json:"notes"          validate:"omitempty,max=500"`
}

// RecordFilter carries the optional query filters of GET /attendance/records.
type RecordFilter struct {
	UserKey      string
	Date         string
	StartDate    string
	EndDate      string
	DepartmentID int // 0 = no department filter
}

// StatsFilter carries the query filters of GET /attendance/stats.
// StartDate and EndDate are mandatory.
type StatsFilter struct {
	UserKey      string
	StartDate    string
	EndDate      string
	DepartmentID int
}

type GenerateReportRequest struct {
	ReportName   string `json:"report_name"   validate:"required,min=1,max=200"`
	ReportType   string `json:"report_type"   validate:"required,oneof=daily weekly monthly custom"`
	DateFrom     string `json:"date_from"     validate:"required,datetime=2006-01-02"`
	DateTo       string `json:"date_to"       validate:"required,datetime=2006-01-02"`
	DepartmentID *int   `json:"department_id" validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RecordResponse struct {
	Msg  string                 `json:"msg"`
	Data model.AttendanceRecord `json:"data"`
}

type RecordListResponse struct {
	Data []model.AttendanceRecord `json:"data"`
}

// AttendanceStats is the single-pass aggregate over a date range.
// present+absent+late+half_day always sum to total; the location counts can
// fall short of total when records use client_site.
type AttendanceStats struct {
	TotalDays   int64 `json:"total_days"`
	PresentDays int64 `json:"present_days"`
	AbsentDays  int64 `json:"absent_days"`
	LateDays    int64 `json:"late_days"`
	HalfDays    int64 `json:"half_days"`
	WFHDays     int64 `json:"wfh_days"`
	OfficeDays  int64 `json:"office_days"`
}

type StatsResponse struct {
	Data AttendanceStats `json:"data"`
}

type ReportResponse struct {
	Msg  string                 `json:"msg"`
	Data model.AttendanceReport `json:"data"`
}
