package model

import "time"

// Employee is the directory record for a user. UserKey is the cross-service
// identifier shared with the auth service's credential row; the two records
// exist as a pair.
type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserKey      string    `gorm:"uniqueIndex;type:varchar(36);not null" json:"user_key"`
	Username     string    `gorm:"not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	DepartmentID int       `gorm:"not null;index" json:"department_id"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	HireDate     time.Time `gorm:"type:date" json:"hire_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

// Department is read-only from the services' perspective; rows are seeded out
// of band. DepartmentID 1 is the Human Resources sentinel — membership in it
// is the sole authorization rule in the system.
type Department struct {
	DepartmentID   int       `gorm:"primaryKey" json:"department_id"`
	DepartmentName string    `gorm:"not null" json:"department_name"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Department) TableName() string { return "departments" }

// HumanResourcesDepartmentID gates every HR-only route.
const HumanResourcesDepartmentID = 1
