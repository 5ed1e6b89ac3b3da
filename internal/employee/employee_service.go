package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/filestore"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/shared/dateutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(ownerID string) string {
	return EmployeeOptionsKeyPrefix + ownerID
}

// OnboardingTaskDescription is the task the lifecycle consumer seeds on a
// freshly promoted employee.
const OnboardingTaskDescription = "Complete onboarding paperwork"

// ResumeUpload membawa isi file resume dari handler ke blob store.
type ResumeUpload struct {
	Filename string
	Content  io.Reader
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateEmployeeRequest, resume *ResumeUpload) (EmployeeResponse, error)
	List(ctx context.Context, ownerID string, q ListEmployeesQuery) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context, ownerID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, ownerID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, ownerID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateStatus(ctx context.Context, ownerID, id, status string) (EmployeeResponse, error)
	Delete(ctx context.Context, ownerID, id string) error
	OpenResume(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error)
	SeedOnboardingTask(ctx context.Context, ownerID, employeeID string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	files   filestore.Store
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	counterRepo counter.Repository,
	files filestore.Store,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		files:   files,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateEmployeeRequest, resume *ResumeUpload) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("owner_id", ownerID),
		zap.String("email", req.Email),
	)

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if !ValidEmploymentType[req.EmploymentType] {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmploymentType
	}
	joiningDate, err := dateutil.ParseDay(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	tasks, err := parseTasksJSON(req.TasksJSON)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, ownerID, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	var resumeHandle *string
	if resume != nil {
		handle, err := s.files.Save(ctx, resume.Filename, resume.Content)
		if err != nil {
			s.logger.Error("create employee resume store failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		resumeHandle = &handle
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: req.EmployeeNumber,
		Name:           req.Name,
		Email:          normalizeEmail(req.Email),
		Phone:          req.Phone,
		Position:       req.Position,
		Department:     req.Department,
		Salary:         req.Salary,
		JoiningDate:    joiningDate,
		Manager:        req.Manager,
		WorkLocation:   req.WorkLocation,
		EmploymentType: req.EmploymentType,
		Status:         StatusSelected,
		ResumeHandle:   resumeHandle,
		CreatedBy:      ownerUUID,
	}
	if req.CandidateID != "" {
		if cid, err := uuid.Parse(req.CandidateID); err == nil {
			empl.CandidateID = &cid
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, empl); err != nil {
			return err
		}
		return qtx.ReplaceTasks(ctx, empl.ID, buildTaskRows(empl.ID, tasks))
	})
	if err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, ownerID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	empl.Tasks = buildTaskRows(empl.ID, tasks)
	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, ownerID string, q ListEmployeesQuery) ([]EmployeeResponse, int64, error) {
	rows, total, err := s.repo.FindPageByOwner(ctx, ownerID, ListFilter{
		Search:     q.Search,
		Status:     q.Status,
		Department: q.Department,
		Page:       q.Page,
		Limit:      q.Limit,
	})
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(rows), total, nil
}

func (s *service) GetOptions(ctx context.Context, ownerID string) ([]EmployeeResponse, error) {
	cacheKey := GetEmployeeOptionsKey(ownerID)

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight untuk collapse cache-fill bersamaan saat form dibuka
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptionsByOwner(ctx, ownerID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(rows)

		// 3. Simpan ke Redis (TTL 1 jam, data master jarang berubah)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, ownerID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("owner_id", ownerID),
		zap.String("employee_id", id),
	)

	if !ValidEmploymentType[req.EmploymentType] {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmploymentType
	}
	joiningDate, err := dateutil.ParseDay(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}
	taskRows, err := validateTasks(req.Tasks)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var updated *Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByIDAndOwner(ctx, ownerID, id)
		if err != nil {
			return err
		}

		empl.JoiningDate = joiningDate
		empl.EmploymentType = req.EmploymentType
		empl.Position = req.Position

		if err := qtx.Update(ctx, empl); err != nil {
			return err
		}
		if err := qtx.ReplaceTasks(ctx, empl.ID, buildTaskRows(empl.ID, taskRows)); err != nil {
			return err
		}
		empl.Tasks = buildTaskRows(empl.ID, taskRows)
		updated = empl
		return nil
	})
	if err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, ownerID)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*updated), nil
}

func (s *service) UpdateStatus(ctx context.Context, ownerID, id, status string) (EmployeeResponse, error) {
	if !ValidStatus[status] {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}

	empl, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Status = status
	if err := s.repo.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee status success",
		zap.String("employee_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, ownerID, id string) error {
	empl, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, ownerID, empl.ID.String()); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, ownerID)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) OpenResume(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error) {
	empl, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}
	if empl.ResumeHandle == nil || *empl.ResumeHandle == "" {
		return nil, "", employeeerrors.ErrNoResume
	}

	rc, name, err := s.files.Open(ctx, *empl.ResumeHandle)
	if err != nil {
		if err == filestore.ErrHandleNotFound {
			return nil, "", employeeerrors.ErrResumeFileMissing
		}
		return nil, "", err
	}
	return rc, name, nil
}

// SeedOnboardingTask appends the default onboarding task once; replayed
// lifecycle events are no-ops.
func (s *service) SeedOnboardingTask(ctx context.Context, ownerID, employeeID string) error {
	empl, err := s.repo.FindByIDAndOwner(ctx, ownerID, employeeID)
	if err != nil {
		return mapRepositoryError(err)
	}

	exists, err := s.repo.HasTaskWithDescription(ctx, empl.ID.String(), OnboardingTaskDescription)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	task := &EmployeeTask{
		ID:          uuid.New(),
		EmployeeID:  empl.ID,
		Description: OnboardingTaskDescription,
		DueDate:     empl.JoiningDate,
		SortOrder:   len(empl.Tasks),
	}
	if err := s.repo.AppendTask(ctx, task); err != nil {
		return err
	}

	s.logger.Info("onboarding task seeded", zap.String("employee_id", employeeID))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, ownerID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(ownerID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func parseTasksJSON(raw string) ([]TaskRequest, error) {
	if raw == "" {
		return nil, nil
	}
	var tasks []TaskRequest
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, employeeerrors.ErrInvalidTask
	}
	return validateTasks(tasks)
}

func validateTasks(tasks []TaskRequest) ([]TaskRequest, error) {
	for _, t := range tasks {
		if t.Description == "" {
			return nil, employeeerrors.ErrInvalidTask
		}
		if _, err := dateutil.ParseDay(t.DueDate); err != nil {
			return nil, employeeerrors.ErrInvalidTask
		}
	}
	return tasks, nil
}

func buildTaskRows(employeeID uuid.UUID, tasks []TaskRequest) []EmployeeTask {
	rows := make([]EmployeeTask, 0, len(tasks))
	for i, t := range tasks {
		dueDate, _ := dateutil.ParseDay(t.DueDate)
		rows = append(rows, EmployeeTask{
			ID:          uuid.New(),
			EmployeeID:  employeeID,
			Description: t.Description,
			DueDate:     dueDate,
			SortOrder:   i,
		})
	}
	return rows
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID.String(),
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		Position:       e.Position,
		Department:     e.Department,
		Salary:         e.Salary,
		JoiningDate:    e.JoiningDate.Format(dateutil.DayFormat),
		Manager:        e.Manager,
		WorkLocation:   e.WorkLocation,
		EmploymentType: e.EmploymentType,
		Status:         e.Status,
		HasResume:      e.ResumeHandle != nil && *e.ResumeHandle != "",
		Tasks:          make([]TaskResponse, 0, len(e.Tasks)),
	}
	if e.CandidateID != nil {
		resp.CandidateID = e.CandidateID.String()
	}
	if !e.CreatedAt.IsZero() {
		resp.CreatedAt = e.CreatedAt.Format(time.RFC3339)
	}
	for _, t := range e.Tasks {
		resp.Tasks = append(resp.Tasks, TaskResponse{
			Description: t.Description,
			DueDate:     t.DueDate.Format(dateutil.DayFormat),
		})
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
