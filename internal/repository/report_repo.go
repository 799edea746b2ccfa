package repository

import (
	"context"

	"github.com/dandyZicky/wfh-attendance/internal/model"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, rep *model.AttendanceReport) error
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) Create(ctx context.Context, rep *model.AttendanceReport) error {
	return r.db.WithContext(ctx).Create(rep).Error
}
