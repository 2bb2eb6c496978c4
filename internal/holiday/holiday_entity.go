package holiday

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeNational = "National"
	TypeRegional = "Regional"
	TypeCompany  = "Company"
	TypeOptional = "Optional"
)

type Holiday struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uq_holiday_date_name"`
	Description *string        `gorm:"column:description;type:text"`
	Date        time.Time      `gorm:"column:date;type:date;not null;index;uniqueIndex:uq_holiday_date_name"`
	Month       string         `gorm:"column:month;type:varchar(7);not null"`
	Type        string         `gorm:"column:type;type:varchar(20);not null;default:National"`
	IsActive    bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Holiday) TableName() string {
	return "holidays"
}
