package employee

import (
	"time"

	"go-payroll/internal/post"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive      = "Active"
	StatusPartTime    = "PartTime"
	StatusContractual = "Contractual"
	StatusProbation   = "Probation"
	StatusSuspended   = "Suspended"
	StatusTerminated  = "Terminated"
	StatusResigned    = "Resigned"
	StatusPromoted    = "Promoted"
	StatusInactive    = "Inactive"
)

// PayableStatuses are the employment statuses included in payroll runs.
var PayableStatuses = []string{StatusActive, StatusPartTime, StatusContractual, StatusProbation}

type Employee struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string         `gorm:"column:employee_number;size:20;uniqueIndex:uq_employee_number"`
	FullName       string         `gorm:"column:full_name;not null"`
	Email          string         `gorm:"column:email;uniqueIndex:uq_employee_email"`
	Status         string         `gorm:"column:status;size:20;not null;default:Active"`
	PostID         *uuid.UUID     `gorm:"column:post_id;type:uuid"`
	Post           *post.Post     `gorm:"foreignKey:PostID;references:ID"`
	DateOfJoining  time.Time      `gorm:"column:date_of_joining;type:date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsPayable reports whether the employee's status is included in payroll.
func (e Employee) IsPayable() bool {
	for _, s := range PayableStatuses {
		if e.Status == s {
			return true
		}
	}
	return false
}
