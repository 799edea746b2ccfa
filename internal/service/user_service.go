package service

import (
	"context"
	"errors"
	"time"

	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/model"
	"github.com/dandyZicky/wfh-attendance/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AuthProvisioner is the slice of the auth service that user-management
// depends on: credential provisioning and the compensating delete.
type AuthProvisioner interface {
	Register(ctx context.Context, authHeader string, req dto.RegisterRequest) error
	DeleteUser(ctx context.Context, userKey string) error
}

type UserService interface {
	CreateUser(ctx context.Context, authHeader string, req dto.CreateUserRequest) (*dto.CreateUserResponse, error)
	GetUserByID(ctx context.Context, id uint) (*dto.EmployeeResponse, error)
	UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id uint) error
	DepartmentByUserKey(ctx context.Context, userKey string) (int, error)
	UserKeysByDepartment(ctx context.Context, departmentID int) ([]string, error)
}

type userService struct {
	repo repository.EmployeeRepository
	auth AuthProvisioner
}

func NewUserService(repo repository.EmployeeRepository, auth AuthProvisioner) UserService {
	return &userService{repo: repo, auth: auth}
}

// CreateUser is the only multi-step workflow in the system: generate a
// time-ordered user_key, provision the credential in the auth service, then
// insert the employee row. If the insert fails the credential is deleted
// best-effort; a failed compensation leaves an orphaned credential, which is
// an accepted inconsistency window — it is logged, not retried.
func (s *userService) CreateUser(ctx context.Context, authHeader string, req dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	userKey := uuid.Must(uuid.NewV7()).String()

	regReq := dto.RegisterRequest{
		UserKey:  userKey,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := s.auth.Register(ctx, authHeader, regReq); err != nil {
		return nil, err
	}

	emp := &model.Employee{
		UserKey:      userKey,
		Username:     req.Username,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		HireDate:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, emp); err != nil {
		log.Error().Err(err).Str("user_key", userKey).Msg("employee insert failed, compensating auth credential")
		if delErr := s.auth.DeleteUser(ctx, userKey); delErr != nil {
			log.Error().Err(delErr).Str("user_key", userKey).Msg("compensating credential delete failed; orphaned credential left behind")
		}
		return nil, err
	}

	return &dto.CreateUserResponse{Msg: "user created successfully", UserKey: userKey}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dto.EmployeeResponse{
		ID:           emp.ID,
		UserKey:      emp.UserKey,
		Username:     emp.Username,
		Email:        emp.Email,
		DepartmentID: emp.DepartmentID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		HireDate:     emp.HireDate,
		CreatedAt:    emp.CreatedAt,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) error {
	affected, err := s.repo.Update(ctx, id, &model.Employee{
		Username:     req.Username,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DepartmentByUserKey is the authorization primitive every service leans on.
func (s *userService) DepartmentByUserKey(ctx context.Context, userKey string) (int, error) {
	dep, err := s.repo.DepartmentByUserKey(ctx, userKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return dep, nil
}

func (s *userService) UserKeysByDepartment(ctx context.Context, departmentID int) ([]string, error) {
	return s.repo.UserKeysByDepartment(ctx, departmentID)
}
