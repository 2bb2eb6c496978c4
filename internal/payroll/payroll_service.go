package payroll

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payperiod"
	payrollerrors "go-payroll/internal/payroll/errors"
	posterrors "go-payroll/internal/post/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// EmployeeDirectory selects the employees a run pays.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	FindEligible(ctx context.Context, periodType payperiod.Type) ([]employee.Employee, error)
}

type AttendanceStore interface {
	FindByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error)
}

type HolidayCalendar interface {
	FindActiveDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GenerateMonthly(ctx context.Context, month string) (BatchResult, error)
	GenerateWeekly(ctx context.Context, week string) (BatchResult, error)
	ProcessSingle(ctx context.Context, req ProcessSingleRequest) (PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	GetAll(ctx context.Context, filter ListFilter) (ListResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdatePayrollRequest) (PayrollResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   EmployeeDirectory
	attendances AttendanceStore
	holidays    HolidayCalendar
	outbox      kafka.OutboxRepository
	cache       *Cache
	sf          *singleflight.Group
	logger      *zap.Logger
}

// NewService wires the payroll engine. outbox and cache may be nil; without
// an outbox the cache is invalidated inline after each write.
func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeDirectory,
	attendances AttendanceStore,
	holidays HolidayCalendar,
	outbox kafka.OutboxRepository,
	cache *Cache,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		attendances: attendances,
		holidays:    holidays,
		outbox:      outbox,
		cache:       cache,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func (s *service) GenerateMonthly(ctx context.Context, month string) (BatchResult, error) {
	period, err := payperiod.ParseMonth(month)
	if err != nil {
		return BatchResult{}, err
	}
	return s.generateBatch(ctx, period)
}

func (s *service) GenerateWeekly(ctx context.Context, week string) (BatchResult, error) {
	period, err := payperiod.ParseWeek(week)
	if err != nil {
		return BatchResult{}, err
	}
	return s.generateBatch(ctx, period)
}

// generateBatch pays every eligible employee for period. Each employee is
// computed and committed on its own; a failure is recorded and the run goes
// on. A cancelled ctx stops the run and returns the partial result with the
// context error.
func (s *service) generateBatch(ctx context.Context, period payperiod.Period) (BatchResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	result := BatchResult{PeriodKey: period.Key, FailedRecords: []FailedRecord{}}

	employees, err := s.employees.FindEligible(ctx, period.Type)
	if err != nil {
		log.Error("payroll batch list employees failed", zap.String("period", period.Key), zap.Error(err))
		return result, err
	}
	if len(employees) == 0 {
		log.Info("payroll batch has no eligible employees", zap.String("period", period.Key))
		return result, nil
	}

	holidays, err := s.holidays.FindActiveDates(ctx, period.Start, period.End)
	if err != nil {
		log.Error("payroll batch load holidays failed", zap.String("period", period.Key), zap.Error(err))
		return result, err
	}

	for _, emp := range employees {
		if err := ctx.Err(); err != nil {
			log.Warn("payroll batch cancelled",
				zap.String("period", period.Key),
				zap.Int("processed", result.Processed),
				zap.Int("failed", result.Failed),
			)
			return result, err
		}

		if _, err := s.safeGenerate(ctx, emp, period, holidays); err != nil {
			result.Failed++
			result.FailedRecords = append(result.FailedRecords, FailedRecord{
				EmployeeID: emp.ID.String(),
				Error:      err.Error(),
			})
			log.Warn("payroll generation failed",
				zap.String("period", period.Key),
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			continue
		}
		result.Processed++
	}

	log.Info("payroll batch finished",
		zap.String("period", period.Key),
		zap.String("type", string(period.Type)),
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// safeGenerate keeps a panic in one employee's computation from ending the
// batch.
func (s *service) safeGenerate(
	ctx context.Context,
	emp employee.Employee,
	period payperiod.Period,
	holidays []time.Time,
) (p *Payroll, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("payroll generation panicked: %v", r)
		}
	}()
	return s.generate(ctx, emp, period, holidays)
}

func (s *service) generate(
	ctx context.Context,
	emp employee.Employee,
	period payperiod.Period,
	holidays []time.Time,
) (*Payroll, error) {
	if emp.Post == nil {
		return nil, errMissingPost(emp)
	}
	cfg, err := emp.Post.Compensation()
	if err != nil {
		return nil, err
	}

	rows, err := s.attendances.FindByEmployeeInRange(ctx, emp.ID.String(), period.Start, period.End)
	if err != nil {
		return nil, err
	}

	metrics := attendance.Reconcile(attendance.ReconcileInput{
		Period:        period,
		Records:       attendance.Records(rows),
		Holidays:      holidays,
		PaidWeeklyOff: cfg.PaidWeeklyOff,
	})

	salary, err := ComposeSalary(cfg, metrics)
	if err != nil {
		return nil, err
	}
	earnings, deductions := salary.Snapshots()

	now := time.Now().UTC()
	p := &Payroll{
		EmployeeID:  emp.ID,
		PeriodKey:   period.Key,
		Type:        string(period.Type),
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Attendance:  metrics,
		Earnings:    earnings,
		Deductions:  deductions,
		NetSalary:   salary.NetSalary,
		Status:      StatusProcessed,
		ProcessedAt: &now,
	}

	err = s.writeAndNotify(ctx, events.PayrollGenerated, "", func(repo Repository) (*Payroll, error) {
		if err := repo.Upsert(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func errMissingPost(emp employee.Employee) error {
	return posterrors.ErrPostNotFound.WithCause(fmt.Errorf("employee %s has no post assigned", emp.ID))
}

func (s *service) ProcessSingle(ctx context.Context, req ProcessSingleRequest) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	emp, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if emp.Post == nil {
		return PayrollResponse{}, errMissingPost(*emp)
	}

	periodType, ok := emp.Post.PeriodType()
	if !ok {
		return PayrollResponse{}, posterrors.ErrUnknownPayrollType.WithCause(
			fmt.Errorf("payroll type %q", emp.Post.PayrollType),
		)
	}

	var periodID string
	switch periodType {
	case payperiod.Monthly:
		if req.Month == "" || req.Week != "" {
			return PayrollResponse{}, payrollerrors.ErrMonthRequired
		}
		periodID = req.Month
	case payperiod.Weekly:
		if req.Week == "" || req.Month != "" {
			return PayrollResponse{}, payrollerrors.ErrWeekRequired
		}
		periodID = req.Week
	}

	period, err := payperiod.Resolve(periodType, periodID)
	if err != nil {
		return PayrollResponse{}, err
	}

	holidays, err := s.holidays.FindActiveDates(ctx, period.Start, period.End)
	if err != nil {
		return PayrollResponse{}, err
	}

	p, err := s.generate(ctx, *emp, period, holidays)
	if err != nil {
		log.Warn("process single payroll failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("period", period.Key),
			zap.Error(err),
		)
		return PayrollResponse{}, err
	}
	p.Employee = emp

	log.Info("payroll processed",
		zap.String("payroll_id", p.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period", period.Key),
		zap.Float64("net_salary", p.NetSalary),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	key := PayrollKey(id)
	var cached PayrollResponse
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		p, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		resp := mapToResponse(*p)
		if err := s.cache.Set(ctx, key, resp); err != nil {
			s.logger.Warn("cache payroll failed", zap.String("key", key), zap.Error(err))
		}
		return resp, nil
	})
	if err != nil {
		return PayrollResponse{}, err
	}
	return v.(PayrollResponse), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) (ListResponse, error) {
	filter = filter.Normalize()
	if _, ok := SortColumn(filter.Sort); !ok {
		return ListResponse{}, payrollerrors.ErrInvalidSort
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return ListResponse{}, payrollerrors.ErrInvalidEmployeeID
		}
	}

	key := ListKey(filter)
	var cached ListResponse
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		rows, total, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		resp := ListResponse{
			Items: mapToListResponse(rows),
			Meta:  response.NewPaginationMeta(total, filter.Page, filter.Limit),
		}
		if err := s.cache.Set(ctx, key, resp); err != nil {
			s.logger.Warn("cache payroll list failed", zap.String("key", key), zap.Error(err))
		}
		return resp, nil
	})
	if err != nil {
		return ListResponse{}, err
	}
	return v.(ListResponse), nil
}

// Update applies a manual correction and records who made it.
func (s *service) Update(ctx context.Context, actorID, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, apperror.ErrUnauthorized
	}

	var updated Payroll
	err = s.writeAndNotify(ctx, events.PayrollAdjusted, actorID, func(repo Repository) (*Payroll, error) {
		stored, err := repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		updated, err = ApplyPatch(*stored, req.Patch(), time.Now().UTC())
		if err != nil {
			return nil, err
		}
		updated.LastModifiedBy = &actor

		if err := repo.Update(ctx, &updated); err != nil {
			return nil, err
		}
		return &updated, nil
	})
	if err != nil {
		log.Warn("update payroll failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	log.Info("payroll adjusted",
		zap.String("payroll_id", id),
		zap.String("actor_id", actorID),
		zap.String("status", updated.Status),
		zap.Float64("net_salary", updated.NetSalary),
	)
	return mapToResponse(updated), nil
}

// writeAndNotify runs write in a transaction together with the record-changed
// outbox entry, so the event is queued only if the write commits.
func (s *service) writeAndNotify(
	ctx context.Context,
	eventType string,
	actorID string,
	write func(repo Repository) (*Payroll, error),
) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	p, err := write(s.repo.WithTx(tx))
	if err != nil {
		return err
	}

	if s.outbox != nil {
		event := events.PayrollRecordChangedEvent{
			EventType:  eventType,
			RequestID:  rid,
			PayrollID:  p.ID.String(),
			EmployeeID: p.EmployeeID.String(),
			PeriodKey:  p.PeriodKey,
			Status:     p.Status,
			ChangedBy:  actorID,
			OccurredAt: time.Now().UTC(),
		}
		outboxEvent, err := kafka.NewOutboxEvent(rid, "payroll", p.ID.String(), eventType, events.PayrollRecordChangedTopic, event)
		if err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			return apperror.Wrap(err, apperror.CodeInternalError, "Failed to queue payroll change event", http.StatusInternalServerError)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if s.outbox == nil {
		if err := s.cache.Invalidate(ctx, p.ID.String()); err != nil {
			s.logger.Warn("invalidate payroll cache failed",
				zap.String("payroll_id", p.ID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		PeriodKey:   p.PeriodKey,
		Type:        p.Type,
		PeriodStart: payperiod.DayKey(p.PeriodStart),
		PeriodEnd:   payperiod.DayKey(p.PeriodEnd),
		Attendance:  AttendanceResponse(p.Attendance),
		Earnings:    p.Earnings,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
		Status:      p.Status,
		Comments:    p.Comments,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}

	if p.Employee != nil {
		resp.Employee = &EmployeeSummary{
			ID:             p.Employee.ID.String(),
			EmployeeNumber: p.Employee.EmployeeNumber,
			FullName:       p.Employee.FullName,
		}
	}
	if p.ProcessedAt != nil {
		v := p.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	if p.PaidAt != nil {
		v := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	if p.LastModifiedBy != nil {
		v := p.LastModifiedBy.String()
		resp.LastModifiedBy = &v
	}

	return resp
}

func mapToListResponse(rows []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapToResponse(p)
	}
	return resp
}
