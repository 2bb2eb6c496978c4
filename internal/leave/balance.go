package leave

import (
	"time"

	"github.com/google/uuid"
)

// Balance is one leave type's yearly allowance for an employee.
type Balance struct {
	LeaveTypeID  uuid.UUID
	MaxLeaves    float64
	UsedLeaves   float64
	Remaining    float64
	CarryForward bool
}

// BalanceSnapshot is an employee's balances as of LastRefreshed.
type BalanceSnapshot struct {
	EmployeeID    uuid.UUID
	JoinDate      time.Time
	LastRefreshed time.Time
	Balances      []Balance
}

// RefreshOutcome records what a yearly refresh did to one balance. It is
// either CarryForward or Reset.
type RefreshOutcome interface {
	leaveType() uuid.UUID
}

// CarryForward means the unused allowance was added on top of Remaining.
type CarryForward struct {
	LeaveTypeID uuid.UUID
	Amount      float64
}

// Reset means Remaining went back to MaxLeaves.
type Reset struct {
	LeaveTypeID uuid.UUID
}

func (c CarryForward) leaveType() uuid.UUID { return c.LeaveTypeID }
func (r Reset) leaveType() uuid.UUID        { return r.LeaveTypeID }

const yearOfService = 365 * 24 * time.Hour

// DueForRefresh reports whether the snapshot should roll over at now: the
// employee has served at least a year and it was last refreshed in an
// earlier calendar year.
func DueForRefresh(s BalanceSnapshot, now time.Time) bool {
	served := now.Sub(s.JoinDate) >= yearOfService
	return served && s.LastRefreshed.Year() < now.Year()
}

// Refresh rolls the snapshot over into a new year. It never mutates s; when
// no refresh is due it returns s unchanged and no outcomes.
func Refresh(s BalanceSnapshot, now time.Time) (BalanceSnapshot, []RefreshOutcome) {
	if !DueForRefresh(s, now) {
		return s, nil
	}

	next := BalanceSnapshot{
		EmployeeID:    s.EmployeeID,
		JoinDate:      s.JoinDate,
		LastRefreshed: now,
		Balances:      make([]Balance, len(s.Balances)),
	}
	outcomes := make([]RefreshOutcome, 0, len(s.Balances))

	for i, b := range s.Balances {
		nb := b
		if b.CarryForward {
			unused := b.MaxLeaves - b.UsedLeaves
			nb.Remaining = b.Remaining + unused
			outcomes = append(outcomes, CarryForward{LeaveTypeID: b.LeaveTypeID, Amount: unused})
		} else {
			nb.Remaining = b.MaxLeaves
			outcomes = append(outcomes, Reset{LeaveTypeID: b.LeaveTypeID})
		}
		nb.UsedLeaves = 0
		next.Balances[i] = nb
	}

	return next, outcomes
}
