package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Leave is an approved or pending absence request. Attendance rows marked as
// leave point at it, and payroll reads IsPaidLeave through its LeaveType.
type Leave struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`
	LeaveTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	LeaveType   *LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	Reason    string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// LeaveType is the per-post leave configuration.
type LeaveType struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PostID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                string    `gorm:"type:varchar(60);not null"`
	TotalLeaves         float64   `gorm:"type:numeric(6,2);not null"`
	CarryForwardAllowed bool      `gorm:"not null;default:false"`
	IsPaidLeave         bool      `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// IsPaid is false when the leave type was not loaded.
func (l *Leave) IsPaid() bool {
	return l != nil && l.LeaveType != nil && l.LeaveType.IsPaidLeave
}
