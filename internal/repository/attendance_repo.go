package repository

import (
	"context"

	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	Upsert(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error)
	List(ctx context.Context, filter dto.RecordFilter, memberKeys []string) ([]model.AttendanceRecord, error)
	Stats(ctx context.Context, filter dto.StatsFilter, memberKeys []string) (*dto.AttendanceStats, error)
}

type attendanceRepo struct{ db *gorm.DB }

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository { return &attendanceRepo{db: db} }

// Upsert inserts the record or, when a row for (user_key, date) already
// exists, overwrites its mutable fields in a single atomic statement. Two
// concurrent submissions for the same pair cannot produce duplicates.
func (r *attendanceRepo) Upsert(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_key"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"check_in_time", "check_out_time", "work_location", "status", "notes", "updated_at",
		}),
	}).Create(rec).Error
	if err != nil {
		return nil, err
	}

	// Re-read by natural key: on the conflict path Create does not report the
	// surviving row's id or created_at.
	var out model.AttendanceRecord
	err = r.db.WithContext(ctx).
		Where("user_key = ? AND date = ?", rec.UserKey, rec.Date).
		First(&out).Error
	return &out, err
}

// List applies the optional filters and returns records ordered by date DESC,
// created_at DESC. memberKeys, when non-nil, restricts to those user_keys
// (department scoping resolved by the caller). No pagination.
func (r *attendanceRepo) List(ctx context.Context, filter dto.RecordFilter, memberKeys []string) ([]model.AttendanceRecord, error) {
	q := r.db.WithContext(ctx).Model(&model.AttendanceRecord{})
	q = applyRecordFilter(q, filter.UserKey, filter.Date, filter.StartDate, filter.EndDate, memberKeys)

	var records []model.AttendanceRecord
	err := q.Order("date DESC, created_at DESC").Find(&records).Error
	return records, err
}

// Stats computes every aggregate in one pass over the mandatory date range.
func (r *attendanceRepo) Stats(ctx context.Context, filter dto.StatsFilter, memberKeys []string) (*dto.AttendanceStats, error) {
	q := r.db.WithContext(ctx).Model(&model.AttendanceRecord{})
	q = applyRecordFilter(q, filter.UserKey, "", filter.StartDate, filter.EndDate, memberKeys)

	var stats dto.AttendanceStats
	err := q.Select(`
		COUNT(*) AS total_days,
		COALESCE(SUM(CASE WHEN status = 'present'  THEN 1 ELSE 0 END), 0) AS present_days,
		COALESCE(SUM(CASE WHEN status = 'absent'   THEN 1 ELSE 0 END), 0) AS absent_days,
		COALESCE(SUM(CASE WHEN status = 'late'     THEN 1 ELSE 0 END), 0) AS late_days,
		COALESCE(SUM(CASE WHEN status = 'half_day' THEN 1 ELSE 0 END), 0) AS half_days,
		COALESCE(SUM(CASE WHEN work_location = 'home'   THEN 1 ELSE 0 END), 0) AS wfh_days,
		COALESCE(SUM(CASE WHEN work_location = 'office' THEN 1 ELSE 0 END), 0) AS office_days`).
		Scan(&stats).Error
	return &stats, err
}

func applyRecordFilter(q *gorm.DB, userKey, date, startDate, endDate string, memberKeys []string) *gorm.DB {
	if userKey != "" {
		q = q.Where("user_key = ?", userKey)
	}
	if date != "" {
		q = q.Where("date = ?", date)
	}
	if startDate != "" {
		q = q.Where("date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("date <= ?", endDate)
	}
	if memberKeys != nil {
		q = q.Where("user_key IN ?", memberKeys)
	}
	return q
}
