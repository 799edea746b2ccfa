package repository

import (
	"context"

	"github.com/dandyZicky/wfh-attendance/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	Update(ctx context.Context, id uint, e *model.Employee) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	DepartmentByUserKey(ctx context.Context, userKey string) (int, error)
	UserKeysByDepartment(ctx context.Context, departmentID int) ([]string, error)
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

// Update overwrites the mutable directory fields of one employee row.
// Returns rows affected: 0 means no such employee.
func (r *employeeRepo) Update(ctx context.Context, id uint, e *model.Employee) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", id).
		Updates(map[string]any{
			"username":      e.Username,
			"email":         e.Email,
			"department_id": e.DepartmentID,
			"first_name":    e.FirstName,
			"last_name":     e.LastName,
		})
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Employee{}, id)
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) DepartmentByUserKey(ctx context.Context, userKey string) (int, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Select("department_id").Where("user_key = ?", userKey).First(&e).Error
	return e.DepartmentID, err
}

func (r *employeeRepo) UserKeysByDepartment(ctx context.Context, departmentID int) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("department_id = ?", departmentID).
		Pluck("user_key", &keys).Error
	return keys, err
}
