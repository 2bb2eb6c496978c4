package attendance

import (
	"time"

	"go-payroll/internal/leave"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attendance struct {
	ID                   uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID           uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	Date                 time.Time      `gorm:"column:date;type:date;not null;index"`
	PunchIn              *time.Time     `gorm:"column:punch_in;type:timestamptz"`
	PunchOut             *time.Time     `gorm:"column:punch_out;type:timestamptz"`
	IsLeave              bool           `gorm:"column:is_leave;not null;default:false"`
	LeaveID              *uuid.UUID     `gorm:"column:leave_id;type:uuid"`
	Month                string         `gorm:"column:month;type:varchar(7);not null;index"`
	Week                 string         `gorm:"column:week;type:varchar(4);not null;index"`
	AttendancePercentage float64        `gorm:"column:attendance_percentage;not null;default:0"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Leave                *leave.Leave   `gorm:"foreignKey:LeaveID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// Record projects the row onto what reconciliation needs.
func (a Attendance) Record() Record {
	return Record{
		Date:       a.Date,
		PunchedIn:  a.PunchIn != nil,
		IsLeave:    a.IsLeave,
		LeavePaid:  a.IsLeave && a.Leave.IsPaid(),
		Percentage: a.AttendancePercentage,
	}
}

// Records projects rows in order.
func Records(rows []Attendance) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = r.Record()
	}
	return out
}
