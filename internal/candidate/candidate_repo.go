package candidate

import (
	"context"
	"strings"

	"go-hrm/internal/tenant"

	"gorm.io/gorm"
)

type ListFilter struct {
	Search   string
	Status   string
	Position string
	Page     int
	Limit    int
}

//go:generate mockgen -source=candidate_repo.go -destination=mock/candidate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Candidate) error
	FindPageByOwner(ctx context.Context, ownerID string, f ListFilter) ([]Candidate, int64, error)
	FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Candidate, error)
	UpdateStatus(ctx context.Context, ownerID, id, status string) error
	FindStaleSelections(ctx context.Context, limit int) ([]Candidate, error)
	Delete(ctx context.Context, ownerID, id string) error
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

func (r *repository) Create(ctx context.Context, c *Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindPageByOwner(ctx context.Context, ownerID string, f ListFilter) ([]Candidate, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Candidate{}).
		Scopes(tenant.Scope(ownerID))

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}
	if f.Status != "" && !strings.EqualFold(f.Status, "all") {
		q = q.Where("status = ?", f.Status)
	}
	if f.Position != "" && !strings.EqualFold(f.Position, "all") {
		q = q.Where("position ILIKE ?", "%"+f.Position+"%")
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

	var rows []Candidate
	err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Candidate, error) {
	var c Candidate
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(ownerID)).
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) UpdateStatus(ctx context.Context, ownerID, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&Candidate{}).
		Scopes(tenant.Scope(ownerID)).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindStaleSelections returns candidates whose employee row exists but whose
// own status never reached Selected. The worker sweep repairs these.
func (r *repository) FindStaleSelections(ctx context.Context, limit int) ([]Candidate, error) {
	var rows []Candidate
	err := r.db.WithContext(ctx).
		Joins("JOIN employees ON employees.candidate_id = candidates.id AND employees.deleted_at IS NULL").
		Where("candidates.status <> ?", StatusSelected).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Delete removes the candidate only. Employees promoted from it keep their
// candidate_id back-reference and are not touched.
func (r *repository) Delete(ctx context.Context, ownerID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(ownerID)).
		Delete(&Candidate{}, "id = ?", id).Error
}
