package leave

import (
	"context"
	"strings"

	"go-hrm/internal/employee"
	"go-hrm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Search string
	Status string
	Page   int
	Limit  int
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *Leave) error
	FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Leave, error)
	FindPageByOwner(ctx context.Context, ownerID string, f ListFilter) ([]Leave, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SearchEmployeeIDs(ctx context.Context, ownerID, search string) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(ownerID)).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindPageByOwner(ctx context.Context, ownerID string, f ListFilter) ([]Leave, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(ownerID))

	// Free-text search matches the joined employee, resolved to ids first to
	// keep the ledger query simple.
	if s := strings.TrimSpace(f.Search); s != "" {
		ids, err := r.SearchEmployeeIDs(ctx, ownerID, s)
		if err != nil {
			return nil, 0, err
		}
		if len(ids) == 0 {
			return []Leave{}, 0, nil
		}
		q = q.Where("employee_id IN ?", ids)
	}
	if f.Status != "" && !strings.EqualFold(f.Status, "all") {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	var rows []Leave
	err := q.
		Preload("Employee").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) SearchEmployeeIDs(ctx context.Context, ownerID, search string) ([]uuid.UUID, error) {
	like := "%" + search + "%"
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Scopes(tenant.Scope(ownerID)).
		Where("name ILIKE ? OR email ILIKE ?", like, like).
		Pluck("id", &ids).Error
	return ids, err
}
