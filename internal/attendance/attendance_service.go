package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-hrm/internal/attendance/errors"
	"go-hrm/internal/employee"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, ownerID string, req RecordAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, ownerID string, q ListAttendanceQuery) ([]AttendanceResponse, int64, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, logger: l}
}

// Record upserts the ledger row for (employee, day): the second call for the
// same day overwrites the status instead of adding a row.
func (s *service) Record(ctx context.Context, ownerID string, req RecordAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !ValidStatus[req.Status] {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	day, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	day = dateutil.Normalize(day)

	empl, err := s.employeeRepo.FindByIDAndOwner(ctx, ownerID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}

	existing, err := s.repo.FindByEmployeeAndDate(ctx, empl.ID, day)
	if err == nil {
		if err := s.repo.UpdateStatus(ctx, existing.ID, req.Status); err != nil {
			return AttendanceResponse{}, err
		}
		existing.Status = req.Status
		s.logger.Info("attendance updated",
			zap.String("request_id", rid),
			zap.String("employee_id", empl.ID.String()),
			zap.String("date", req.Date),
			zap.String("status", req.Status),
		)
		return mapToResponse(*existing, empl), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     empl.ID,
		AttendanceDate: day,
		Status:         req.Status,
		CreatedBy:      empl.CreatedBy,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		// Concurrent insert on the same (employee, day): fall back to update.
		if isUniqueViolation(err) {
			existing, rerr := s.repo.FindByEmployeeAndDate(ctx, empl.ID, day)
			if rerr != nil {
				return AttendanceResponse{}, rerr
			}
			if uerr := s.repo.UpdateStatus(ctx, existing.ID, req.Status); uerr != nil {
				return AttendanceResponse{}, uerr
			}
			existing.Status = req.Status
			return mapToResponse(*existing, empl), nil
		}
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)
	return mapToResponse(*row, empl), nil
}

func (s *service) List(ctx context.Context, ownerID string, q ListAttendanceQuery) ([]AttendanceResponse, int64, error) {
	filter := ListFilter{
		EmployeeID: q.EmployeeID,
		Page:       q.Page,
		Limit:      q.Limit,
	}
	if q.Date != "" {
		day, err := dateutil.ParseDay(q.Date)
		if err != nil {
			return nil, 0, attendanceerrors.ErrInvalidDate
		}
		day = dateutil.Normalize(day)
		filter.Date = &day
	}

	rows, total, err := s.repo.FindPageByOwner(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, 0, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, r.Employee)
	}
	return res, total, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}

func mapToResponse(a Attendance, empl *employee.Employee) AttendanceResponse {
	resp := AttendanceResponse{
		ID:     a.ID.String(),
		Date:   a.AttendanceDate.Format(dateutil.DayFormat),
		Status: a.Status,
	}
	if !a.CreatedAt.IsZero() {
		resp.CreatedAt = a.CreatedAt.Format(time.RFC3339)
	}
	if !a.UpdatedAt.IsZero() {
		resp.UpdatedAt = a.UpdatedAt.Format(time.RFC3339)
	}
	if empl != nil {
		tasks := make([]string, 0, len(empl.Tasks))
		for _, t := range empl.Tasks {
			tasks = append(tasks, t.Description)
		}
		resp.Employee = &AttendanceEmployee{
			ID:         empl.ID.String(),
			Name:       empl.Name,
			Department: empl.Department,
			Position:   empl.Position,
			Tasks:      tasks,
		}
	}
	return resp
}
