package model

import "time"

// Work locations accepted on an attendance record.
const (
	LocationOffice     = "office"
	LocationHome       = "home"
	LocationClientSite = "client_site"
)

// Attendance statuses accepted on an attendance record.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half_day"
)

// AttendanceRecord is one user's attendance for one calendar day. The natural
// key is (user_key, date): resubmission for the same pair overwrites the
// mutable fields in place, never creating a duplicate row.
//
// Date and the check times are stored as plain strings ("2006-01-02",
// "15:04:05"), declared as text columns: a DATE-typed column would be scanned
// back as a timestamp on the sqlite test driver, and text keeps range filters
// as lexicographic comparisons on both drivers.
type AttendanceRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserKey      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_attendance_user_date" json:"user_key"`
	Date         string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	CheckInTime  *string   `gorm:"type:varchar(8)" json:"check_in_time"`
	CheckOutTime *string   `gorm:"type:varchar(8)" json:"check_out_time"`
	WorkLocation string    `gorm:"type:varchar(20);not null" json:"work_location"`
	Status       string    `gorm:"type:varchar(20);not null" json:"status"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AttendanceRecord) TableName() string { return "attendance_records" }

// Report lifecycle states. Nothing in this system transitions a report past
// pending; producing the file is out of scope.
const (
	ReportPending   = "pending"
	ReportCompleted = "completed"
	ReportFailed    = "failed"
)

// AttendanceReport is a report-generation request log entry, not a computed
// artifact.
type AttendanceReport struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ReportName         string    `gorm:"not null" json:"report_name"`
	ReportType         string    `gorm:"type:varchar(20);not null" json:"report_type"` // daily | weekly | monthly | custom
	GeneratedByUserKey string    `gorm:"type:varchar(36);not null" json:"generated_by_user_key"`
	DateFrom           string    `gorm:"type:varchar(10);not null" json:"date_from"`
	DateTo             string    `gorm:"type:varchar(10);not null" json:"date_to"`
	DepartmentID       *int      `json:"department_id"`
	Status             string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	FilePath           *string   `json:"file_path"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (AttendanceReport) TableName() string { return "attendance_reports" }
