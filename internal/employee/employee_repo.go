package employee

import (
	"context"
	"strings"

	"go-hrm/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Search     string
	Status     string
	Department string
	Page       int
	Limit      int
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindPageByOwner(ctx context.Context, ownerID string, f ListFilter) ([]Employee, int64, error)
	FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Employee, error)
	FindByEmailAndOwner(ctx context.Context, ownerID, email string) (*Employee, error)
	FindOptionsByOwner(ctx context.Context, ownerID string) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	ReplaceTasks(ctx context.Context, employeeID uuid.UUID, tasks []EmployeeTask) error
	HasTaskWithDescription(ctx context.Context, employeeID, description string) (bool, error)
	AppendTask(ctx context.Context, task *EmployeeTask) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindPageByOwner(ctx context.Context, ownerID string, f ListFilter) ([]Employee, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(ownerID))

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}
	if f.Status != "" && !strings.EqualFold(f.Status, "all") {
		q = q.Where("status = ?", f.Status)
	}
	if f.Department != "" && !strings.EqualFold(f.Department, "all") {
		q = q.Where("department ILIKE ?", "%"+f.Department+"%")
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

	var rows []Employee
	err := q.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, ownerID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(ownerID)).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmailAndOwner(ctx context.Context, ownerID, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(ownerID)).
		First(&e, "email = ?", strings.ToLower(email)).Error
	return &e, err
}

func (r *repository) FindOptionsByOwner(ctx context.Context, ownerID string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(ownerID)).
		Select("id", "employee_number", "name", "email", "position", "department").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Omit("Tasks").Save(e).Error
}

// ReplaceTasks overwrites the ordered task list in one shot.
func (r *repository) ReplaceTasks(ctx context.Context, employeeID uuid.UUID, tasks []EmployeeTask) error {
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&EmployeeTask{}).Error; err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *repository) HasTaskWithDescription(ctx context.Context, employeeID, description string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeTask{}).
		Where("employee_id = ?", employeeID).
		Where("description = ?", description).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AppendTask(ctx context.Context, task *EmployeeTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *repository) Delete(ctx context.Context, ownerID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(ownerID)).
		Delete(&Employee{}, "id = ?", id).Error
}
