package candidate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	candidateerrors "go-hrm/internal/candidate/errors"
	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/filestore"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResumeUpload membawa isi file resume dari handler ke blob store.
type ResumeUpload struct {
	Filename string
	Content  io.Reader
}

//go:generate mockgen -source=candidate_service.go -destination=mock/candidate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateCandidateRequest, resume *ResumeUpload) (CandidateResponse, error)
	List(ctx context.Context, ownerID string, q ListCandidatesQuery) ([]CandidateResponse, int64, error)
	GetByID(ctx context.Context, ownerID, id string) (CandidateResponse, error)
	UpdateStatus(ctx context.Context, ownerID, id string, req UpdateCandidateStatusRequest) (PromotionResponse, error)
	Delete(ctx context.Context, ownerID, id string) error
	OpenResume(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error)
	ReconcilePromotions(ctx context.Context) (int, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	employeeRepo employee.Repository
	counter      counter.Repository
	outbox       kafka.OutboxRepository
	files        filestore.Store
	logger       *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employeeRepo employee.Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	files filestore.Store,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("candidate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		counter:      counterRepo,
		outbox:       outbox,
		files:        files,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateCandidateRequest, resume *ResumeUpload) (CandidateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create candidate requested",
		zap.String("request_id", rid),
		zap.String("owner_id", ownerID),
		zap.String("email", req.Email),
	)

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return CandidateResponse{}, candidateerrors.ErrInvalidCandidateID
	}

	appliedDate := dateutil.Today()
	if req.AppliedDate != "" {
		appliedDate, err = dateutil.ParseDay(req.AppliedDate)
		if err != nil {
			return CandidateResponse{}, candidateerrors.ErrInvalidAppliedDate
		}
	}

	var resumeHandle *string
	if resume != nil {
		handle, err := s.files.Save(ctx, resume.Filename, resume.Content)
		if err != nil {
			s.logger.Error("create candidate resume store failed", zap.Error(err))
			return CandidateResponse{}, err
		}
		resumeHandle = &handle
	}

	cand := &Candidate{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Position:     req.Position,
		Status:       StatusPending,
		Experience:   req.Experience,
		ResumeHandle: resumeHandle,
		AppliedDate:  appliedDate,
		Notes:        req.Notes,
		CreatedBy:    ownerUUID,
	}

	if err := s.repo.Create(ctx, cand); err != nil {
		s.logger.Error("create candidate persist failed", zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create candidate success",
		zap.String("request_id", rid),
		zap.String("candidate_id", cand.ID.String()),
	)
	return mapToResponse(*cand), nil
}

func (s *service) List(ctx context.Context, ownerID string, q ListCandidatesQuery) ([]CandidateResponse, int64, error) {
	rows, total, err := s.repo.FindPageByOwner(ctx, ownerID, ListFilter{
		Search:   q.Search,
		Status:   q.Status,
		Position: q.Position,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		s.logger.Error("list candidates failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	res := make([]CandidateResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id string) (CandidateResponse, error) {
	cand, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cand), nil
}

// UpdateStatus moves the candidate through the hiring pipeline. Selecting a
// candidate promotes it: the employee row, the outbox event and the status
// flip are committed in one transaction.
func (s *service) UpdateStatus(ctx context.Context, ownerID, id string, req UpdateCandidateStatusRequest) (PromotionResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !ValidStatus[req.Status] {
		return PromotionResponse{}, candidateerrors.ErrInvalidStatus
	}

	cand, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return PromotionResponse{}, mapRepositoryError(err)
	}

	if !CanTransition(cand.Status, req.Status) {
		return PromotionResponse{}, candidateerrors.ErrInvalidTransition
	}

	if req.Status != StatusSelected {
		if err := s.repo.UpdateStatus(ctx, ownerID, id, req.Status); err != nil {
			return PromotionResponse{}, mapRepositoryError(err)
		}
		cand.Status = req.Status
		s.logger.Info("update candidate status success",
			zap.String("request_id", rid),
			zap.String("candidate_id", id),
			zap.String("status", req.Status),
		)
		return PromotionResponse{Candidate: mapToResponse(*cand)}, nil
	}

	// Re-selecting an already selected candidate must not mint a second
	// employee.
	if cand.Status == StatusSelected {
		resp := PromotionResponse{Candidate: mapToResponse(*cand)}
		if existing, err := s.employeeRepo.FindByEmailAndOwner(ctx, ownerID, cand.Email); err == nil {
			resp.EmployeeID = existing.ID.String()
		}
		return resp, nil
	}

	if req.EmployeeData == nil {
		return PromotionResponse{}, candidateerrors.ErrEmployeeDataRequired
	}
	payload := *req.EmployeeData
	if !employee.ValidEmploymentType[payload.EmploymentType] {
		return PromotionResponse{}, employeeerrors.ErrInvalidEmploymentType
	}
	joiningDate, err := dateutil.ParseDay(payload.JoiningDate)
	if err != nil {
		return PromotionResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	if _, err := s.employeeRepo.FindByEmailAndOwner(ctx, ownerID, cand.Email); err == nil {
		return PromotionResponse{}, candidateerrors.ErrEmployeeAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PromotionResponse{}, err
	}

	if payload.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, ownerID, "employee_number")
		if err != nil {
			s.logger.Error("promotion generate number failed", zap.Error(err))
			return PromotionResponse{}, err
		}
		payload.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	candID := cand.ID
	empl := &employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: payload.EmployeeNumber,
		Name:           cand.Name,
		Email:          cand.Email,
		Phone:          cand.Phone,
		Position:       cand.Position,
		Department:     payload.Department,
		Salary:         payload.Salary,
		JoiningDate:    joiningDate,
		Manager:        payload.Manager,
		WorkLocation:   payload.WorkLocation,
		EmploymentType: payload.EmploymentType,
		Status:         employee.StatusSelected,
		ResumeHandle:   cand.ResumeHandle,
		CandidateID:    &candID,
		CreatedBy:      cand.CreatedBy,
	}

	event := events.EmployeeCreatedEvent{
		EventType:   "employee_created",
		RequestID:   rid,
		EmployeeID:  empl.ID.String(),
		CandidateID: cand.ID.String(),
		OwnerID:     ownerID,
		JoiningDate: joiningDate.Format(dateutil.DayFormat),
		OccurredAt:  time.Now().UTC(),
	}
	eventPayload, err := json.Marshal(event)
	if err != nil {
		return PromotionResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.employeeRepo.WithTx(tx).Create(ctx, empl); err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       eventPayload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
		return s.repo.WithTx(tx).UpdateStatus(ctx, ownerID, id, StatusSelected)
	})
	if err != nil {
		s.logger.Error("promotion failed",
			zap.String("request_id", rid),
			zap.String("candidate_id", id),
			zap.Error(err),
		)
		return PromotionResponse{}, mapRepositoryError(err)
	}

	cand.Status = StatusSelected
	s.logger.Info("candidate promoted",
		zap.String("request_id", rid),
		zap.String("candidate_id", id),
		zap.String("employee_id", empl.ID.String()),
	)
	return PromotionResponse{
		Candidate:  mapToResponse(*cand),
		EmployeeID: empl.ID.String(),
	}, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.repo.FindByIDAndOwner(ctx, ownerID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("delete candidate success", zap.String("candidate_id", id))
	return nil
}

func (s *service) OpenResume(ctx context.Context, ownerID, id string) (io.ReadCloser, string, error) {
	cand, err := s.repo.FindByIDAndOwner(ctx, ownerID, id)
	if err != nil {
		return nil, "", mapRepositoryError(err)
	}
	if cand.ResumeHandle == nil || *cand.ResumeHandle == "" {
		return nil, "", candidateerrors.ErrNoResume
	}

	rc, name, err := s.files.Open(ctx, *cand.ResumeHandle)
	if err != nil {
		if err == filestore.ErrHandleNotFound {
			return nil, "", candidateerrors.ErrResumeFileMissing
		}
		return nil, "", err
	}
	return rc, name, nil
}

// ReconcilePromotions repairs candidates that have a promoted employee but
// never had their status flipped. With the transactional promotion this
// should stay at zero; the sweep is a safety net for rows written before the
// transaction was introduced or touched out of band.
func (s *service) ReconcilePromotions(ctx context.Context) (int, error) {
	stale, err := s.repo.FindStaleSelections(ctx, 100)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, cand := range stale {
		if err := s.repo.UpdateStatus(ctx, cand.CreatedBy.String(), cand.ID.String(), StatusSelected); err != nil {
			s.logger.Error("reconcile candidate failed",
				zap.String("candidate_id", cand.ID.String()),
				zap.Error(err),
			)
			continue
		}
		s.logger.Warn("candidate status repaired to Selected",
			zap.String("candidate_id", cand.ID.String()),
			zap.String("previous_status", cand.Status),
		)
		repaired++
	}
	return repaired, nil
}

func mapToResponse(c Candidate) CandidateResponse {
	resp := CandidateResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Position:    c.Position,
		Status:      c.Status,
		Experience:  c.Experience,
		AppliedDate: c.AppliedDate.Format(dateutil.DayFormat),
		Notes:       c.Notes,
		HasResume:   c.ResumeHandle != nil && *c.ResumeHandle != "",
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
