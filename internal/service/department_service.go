package service

import (
	"context"
	"errors"

	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/repository"

	"gorm.io/gorm"
)

type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	GetDepartmentByID(ctx context.Context, id int) (*dto.DepartmentResponse, error)
}

type departmentService struct {
	repo repository.DepartmentRepository
}

func NewDepartmentService(repo repository.DepartmentRepository) DepartmentService {
	return &departmentService{repo: repo}
}

func (s *departmentService) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	deps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DepartmentResponse, len(deps))
	for i, d := range deps {
		resp[i] = dto.DepartmentResponse{
			DepartmentID:   d.DepartmentID,
			DepartmentName: d.DepartmentName,
			CreatedAt:      d.CreatedAt,
		}
	}
	return resp, nil
}

func (s *departmentService) GetDepartmentByID(ctx context.Context, id int) (*dto.DepartmentResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dto.DepartmentResponse{
		DepartmentID:   d.DepartmentID,
		DepartmentName: d.DepartmentName,
		CreatedAt:      d.CreatedAt,
	}, nil
}
