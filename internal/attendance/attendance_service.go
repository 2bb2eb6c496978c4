package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fullDay is the percentage credited to a punched-in day. Late-arrival
// deductions are applied upstream when records are imported.
const fullDay = 100

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	PunchIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	PunchOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	ListByPeriod(ctx context.Context, q ListQuery) (PeriodSummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func (s *service) PunchIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()
	today := payperiod.Day(now)

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	if err == nil && existing != nil {
		if existing.IsLeave {
			return AttendanceResponse{}, attendanceerrors.ErrOnLeave
		}
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedIn
	}

	row := &Attendance{
		ID:                   uuid.New(),
		EmployeeID:           empID,
		Date:                 today,
		PunchIn:              &now,
		Month:                payperiod.MonthKey(today),
		Week:                 payperiod.WeekOf(today).String(),
		AttendancePercentage: fullDay,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("punched in",
		zap.String("employee_id", employeeID),
		zap.String("date", payperiod.DayKey(today)),
	)
	return mapToResponse(*row), nil
}

func (s *service) PunchOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now().UTC()

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, payperiod.Day(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrPunchInNotFound
		}
		return AttendanceResponse{}, err
	}
	if row.PunchIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrPunchInNotFound
	}
	if row.PunchOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyPunchedOut
	}

	row.PunchOut = &now

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) ListByPeriod(ctx context.Context, q ListQuery) (PeriodSummaryResponse, error) {
	if _, err := uuid.Parse(q.EmployeeID); err != nil {
		return PeriodSummaryResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	var (
		period payperiod.Period
		err    error
	)
	switch {
	case q.Month != "" && q.Week == "":
		period, err = payperiod.ParseMonth(q.Month)
	case q.Week != "" && q.Month == "":
		period, err = payperiod.ParseWeek(q.Week)
	default:
		return PeriodSummaryResponse{}, attendanceerrors.ErrPeriodRequired
	}
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	rows, err := s.repo.FindByEmployeeInRange(ctx, q.EmployeeID, period.Start, period.End)
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	res := PeriodSummaryResponse{
		PeriodKey: period.Key,
		Records:   make([]AttendanceResponse, len(rows)),
	}
	for i, r := range rows {
		res.Records[i] = mapToResponse(r)
	}
	return res, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                   a.ID.String(),
		EmployeeID:           a.EmployeeID.String(),
		Date:                 payperiod.DayKey(a.Date),
		IsLeave:              a.IsLeave,
		Month:                a.Month,
		Week:                 a.Week,
		AttendancePercentage: a.AttendancePercentage,
	}
	if a.PunchIn != nil {
		v := a.PunchIn.Format(time.RFC3339)
		resp.PunchIn = &v
	}
	if a.PunchOut != nil {
		v := a.PunchOut.Format(time.RFC3339)
		resp.PunchOut = &v
	}
	if a.LeaveID != nil {
		v := a.LeaveID.String()
		resp.LeaveID = &v
	}
	return resp
}
