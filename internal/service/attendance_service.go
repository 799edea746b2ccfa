package service

import (
	"context"
	"errors"

	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/model"
	"github.com/dandyZicky/wfh-attendance/internal/repository"
)

// Directory is the slice of user-management the attendance service depends
// on. In production it is an HTTP client; tests plug in a stub.
type Directory interface {
	DepartmentByUserKey(ctx context.Context, userKey string) (int, error)
	UserKeysByDepartment(ctx context.Context, departmentID int) ([]string, error)
}

type AttendanceService interface {
	SubmitAttendance(ctx context.Context, userKey string, req dto.SubmitAttendanceRequest) (*model.AttendanceRecord, error)
	GetRecords(ctx context.Context, filter dto.RecordFilter) ([]model.AttendanceRecord, error)
	GetStats(ctx context.Context, filter dto.StatsFilter) (*dto.AttendanceStats, error)
	GenerateReport(ctx context.Context, userKey string, req dto.GenerateReportRequest) (*model.AttendanceReport, error)
}

type attendanceService struct {
	records   repository.AttendanceRepository
	reports   repository.ReportRepository
	directory Directory
}

func NewAttendanceService(records repository.AttendanceRepository, reports repository.ReportRepository, directory Directory) AttendanceService {
	return &attendanceService{records: records, reports: reports, directory: directory}
}

// SubmitAttendance validates the user against user-management, then upserts
// the day's record on its natural key. Resubmission overwrites; the store
// never holds two records for the same user on the same date.
func (s *attendanceService) SubmitAttendance(ctx context.Context, userKey string, req dto.SubmitAttendanceRequest) (*model.AttendanceRecord, error) {
	if _, err := s.directory.DepartmentByUserKey(ctx, userKey); err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) && upstream.Status == 404 {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec := &model.AttendanceRecord{
		UserKey:      userKey,
		Date:         req.Date,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		WorkLocation: req.WorkLocation,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	return s.records.Upsert(ctx, rec)
}

func (s *attendanceService) GetRecords(ctx context.Context, filter dto.RecordFilter) ([]model.AttendanceRecord, error) {
	memberKeys, short, err := s.resolveMembers(ctx, filter.DepartmentID)
	if err != nil {
		return nil, err
	}
	if short {
		return []model.AttendanceRecord{}, nil
	}
	return s.records.List(ctx, filter, memberKeys)
}

func (s *attendanceService) GetStats(ctx context.Context, filter dto.StatsFilter) (*dto.AttendanceStats, error) {
	if filter.StartDate == "" || filter.EndDate == "" {
		return nil, ErrInvalid
	}
	memberKeys, short, err := s.resolveMembers(ctx, filter.DepartmentID)
	if err != nil {
		return nil, err
	}
	if short {
		return &dto.AttendanceStats{}, nil
	}
	return s.records.Stats(ctx, filter, memberKeys)
}

// GenerateReport only logs the request: the row is created pending with a
// null file path and nothing ever transitions it further.
func (s *attendanceService) GenerateReport(ctx context.Context, userKey string, req dto.GenerateReportRequest) (*model.AttendanceReport, error) {
	rep := &model.AttendanceReport{
		ReportName:         req.ReportName,
		ReportType:         req.ReportType,
		GeneratedByUserKey: userKey,
		DateFrom:           req.DateFrom,
		DateTo:             req.DateTo,
		DepartmentID:       req.DepartmentID,
		Status:             model.ReportPending,
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// resolveMembers turns a department filter into the member user_key set via
// user-management. The attendance store does not hold directory data, so the
// scoping happens in-process rather than as a cross-store join. short=true
// means the department has no members and any scoped query is empty.
func (s *attendanceService) resolveMembers(ctx context.Context, departmentID int) (keys []string, short bool, err error) {
	if departmentID == 0 {
		return nil, false, nil
	}
	keys, err = s.directory.UserKeysByDepartment(ctx, departmentID)
	if err != nil {
		return nil, false, err
	}
	if len(keys) == 0 {
		return nil, true, nil
	}
	return keys, false, nil
}
