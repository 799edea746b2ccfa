package repository

import (
	"context"

	"github.com/dandyZicky/wfh-attendance/internal/model"

	"gorm.io/gorm"
)

// DepartmentRepository is read-only: department rows are seeded out of band.
type DepartmentRepository interface {
	List(ctx context.Context) ([]model.Department, error)
	FindByID(ctx context.Context, id int) (*model.Department, error)
}

type departmentRepo struct{ db *gorm.DB }

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository { return &departmentRepo{db: db} }

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	var deps []model.Department
	err := r.db.WithContext(ctx).Order("department_name ASC").Find(&deps).Error
	return deps, err
}

func (r *departmentRepo) FindByID(ctx context.Context, id int) (*model.Department, error) {
	var d model.Department
	err := r.db.WithContext(ctx).First(&d, "department_id = ?", id).Error
	return &d, err
}
