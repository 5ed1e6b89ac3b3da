package leave

import (
	"context"
	"errors"
	"io"
	"time"

	"go-hrm/internal/attendance"
	"go-hrm/internal/employee"
	"go-hrm/internal/filestore"
	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DocumentUpload membawa isi dokumen pendukung dari handler ke blob store.
type DocumentUpload struct {
	Filename string
	Content  io.Reader
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateLeaveRequest, doc *DocumentUpload) (LeaveResponse, error)
	List(ctx context.Context, ownerID string, q ListLeavesQuery) ([]LeaveResponse, int64, error)
	GetByID(ctx context.Context, ownerID, id string) (LeaveResponse, error)
	UpdateStatus(ctx context.Context, ownerID, id, status string) (LeaveResponse, error)
	OpenDocument(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error)
}

type service struct {
	repo           Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	files          filestore.Store
	logger         *zap.Logger
}

func NewService(
	repo Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	files filestore.Store,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		repo:           repo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		files:          files,
		logger:         l,
	}
}

// Create runs the request through the validation pipeline in a fixed order,
// so a request failing several rules always reports the same one.
func (s *service) Create(ctx context.Context, ownerID string, req CreateLeaveRequest, doc *DocumentUpload) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("owner_id", ownerID),
		zap.String("employee_id", req.EmployeeID),
	)

	startDate, err := dateutil.ParseDay(req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}
	endDate, err := dateutil.ParseDay(req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}
	startDate = dateutil.Normalize(startDate)
	endDate = dateutil.Normalize(endDate)

	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrEndBeforeStart
	}
	if startDate.Before(dateutil.Tomorrow()) {
		return LeaveResponse{}, leaveerrors.ErrStartTooEarly
	}

	empl, err := s.employeeRepo.FindByIDAndOwner(ctx, ownerID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, err
	}

	today, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, empl.ID, dateutil.Today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrNotPresentToday
		}
		return LeaveResponse{}, err
	}
	if today.Status != attendance.StatusPresent {
		return LeaveResponse{}, leaveerrors.ErrNotPresentToday
	}

	if !ValidLeaveType[req.LeaveType] {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	var docHandle *string
	if doc != nil {
		handle, err := s.files.Save(ctx, doc.Filename, doc.Content)
		if err != nil {
			s.logger.Error("create leave document store failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		docHandle = &handle
	}

	row := &Leave{
		ID:             uuid.New(),
		EmployeeID:     empl.ID,
		StartDate:      startDate,
		EndDate:        endDate,
		LeaveType:      req.LeaveType,
		Reason:         req.Reason,
		Status:         StatusPending,
		DocumentHandle: docHandle,
		CreatedBy:      empl.CreatedBy,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", row.ID.String()),
	)
	return mapToResponse(*row, empl), nil
}

func (s *service) List(ctx context.Context, ownerID string, q ListLeavesQuery) ([]LeaveResponse, int64, error) {
	rows, total, err := s.repo.FindPageByOwner(ctx, ownerID, ListFilter{
		Search: q.Search,
		Status: q.Status,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, 0, err
	}

	res := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, r.Employee)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id string) (LeaveResponse, error) {
	row, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*row, row.Employee), nil
}

func (s *service) UpdateStatus(ctx context.Context, ownerID, id, status string) (LeaveResponse, error) {
	if !ValidStatus[status] {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}

	row, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if !CanTransition(row.Status, status) {
		return LeaveResponse{}, leaveerrors.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, row.ID, status); err != nil {
		return LeaveResponse{}, err
	}
	row.Status = status

	s.logger.Info("update leave status success",
		zap.String("leave_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*row, row.Employee), nil
}

func (s *service) OpenDocument(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error) {
	row, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", leaveerrors.ErrLeaveNotFound
		}
		return nil, "", err
	}
	if row.DocumentHandle == nil || *row.DocumentHandle == "" {
		return nil, "", leaveerrors.ErrNoDocument
	}

	rc, name, err := s.files.Open(ctx, *row.DocumentHandle)
	if err != nil {
		if err == filestore.ErrHandleNotFound {
			return nil, "", leaveerrors.ErrDocumentFileMissing
		}
		return nil, "", err
	}
	return rc, name, nil
}

func mapToResponse(l Leave, empl *employee.Employee) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		StartDate:   l.StartDate.Format(dateutil.DayFormat),
		EndDate:     l.EndDate.Format(dateutil.DayFormat),
		LeaveType:   l.LeaveType,
		Reason:      l.Reason,
		Status:      l.Status,
		HasDocument: l.DocumentHandle != nil && *l.DocumentHandle != "",
	}
	if !l.CreatedAt.IsZero() {
		resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	if empl != nil {
		resp.EmployeeName = empl.Name
		resp.EmployeePosition = empl.Position
	}
	return resp
}
