// Package scope holds reusable gorm query scopes.
package scope

import (
	"time"

	"gorm.io/gorm"
)

func Employee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

// DateRange keeps rows whose column falls within [start, end], compared as
// calendar dates.
func DateRange(column string, start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

// Paginate applies a 1-based page of the given size.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
