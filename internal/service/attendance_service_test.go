package service

import (
	"context"
	"testing"

	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubDirectory struct {
	departments map[string]int
	members     map[int][]string
	lookupErr   error
}

func (d *stubDirectory) DepartmentByUserKey(_ context.Context, userKey string) (int, error) {
	if d.lookupErr != nil {
		return 0, d.lookupErr
	}
	dep, ok := d.departments[userKey]
	if !ok {
		return 0, &UpstreamError{Status: 404, Msg: "user not found"}
	}
	return dep, nil
}

func (d *stubDirectory) UserKeysByDepartment(_ context.Context, departmentID int) ([]string, error) {
	if d.lookupErr != nil {
		return nil, d.lookupErr
	}
	return d.members[departmentID], nil
}

type stubAttendanceRepo struct {
	upserted    []model.AttendanceRecord
	listCalls   []listCall
	statsCalls  []statsCall
	listResult  []model.AttendanceRecord
	statsResult dto.AttendanceStats
}

type listCall struct {
	filter     dto.RecordFilter
	memberKeys []string
}

type statsCall struct {
	filter     dto.StatsFilter
	memberKeys []string
}

func (r *stubAttendanceRepo) Upsert(_ context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	r.upserted = append(r.upserted, *rec)
	out := *rec
	out.ID = uint(len(r.upserted))
	return &out, nil
}

func (r *stubAttendanceRepo) List(_ context.Context, filter dto.RecordFilter, memberKeys []string) ([]model.AttendanceRecord, error) {
	r.listCalls = append(r.listCalls, listCall{filter: filter, memberKeys: memberKeys})
	return r.listResult, nil
}

func (r *stubAttendanceRepo) Stats(_ context.Context, filter dto.StatsFilter, memberKeys []string) (*dto.AttendanceStats, error) {
	r.statsCalls = append(r.statsCalls, statsCall{filter: filter, memberKeys: memberKeys})
	stats := r.statsResult
	return &stats, nil
}

type stubReportRepo struct {
	created []*model.AttendanceReport
}

func (r *stubReportRepo) Create(_ context.Context, rep *model.AttendanceReport) error {
	rep.ID = uint(len(r.created) + 1)
	r.created = append(r.created, rep)
	return nil
}

func submitReq() dto.SubmitAttendanceRequest {
	in := "09:00:00"
	return dto.SubmitAttendanceRequest{
		Date:         "2025-06-02",
		CheckInTime:  &in,
		WorkLocation: model.LocationHome,
		Status:       model.StatusPresent,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestAttendanceService_SubmitAttendance(t *testing.T) {
	t.Run("known user is written through to the store", func(t *testing.T) {
		records := &stubAttendanceRepo{}
		dir := &stubDirectory{departments: map[string]int{"key-1": 2}}
		svc := NewAttendanceService(records, &stubReportRepo{}, dir)

		rec, err := svc.SubmitAttendance(context.Background(), "key-1", submitReq())
		require.NoError(t, err)
		assert.Equal(t, "key-1", rec.UserKey)
		assert.Equal(t, "2025-06-02", rec.Date)
		require.Len(t, records.upserted, 1)
	})

	t.Run("unknown user maps the upstream 404 to not found", func(t *testing.T) {
		records := &stubAttendanceRepo{}
		dir := &stubDirectory{departments: map[string]int{}}
		svc := NewAttendanceService(records, &stubReportRepo{}, dir)

		_, err := svc.SubmitAttendance(context.Background(), "ghost", submitReq())
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, records.upserted)
	})

	t.Run("directory outage is surfaced, not swallowed as 404", func(t *testing.T) {
		records := &stubAttendanceRepo{}
		dir := &stubDirectory{lookupErr: &UpstreamError{Status: 503, Msg: "unavailable"}}
		svc := NewAttendanceService(records, &stubReportRepo{}, dir)

		_, err := svc.SubmitAttendance(context.Background(), "key-1", submitReq())
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, 503, upstream.Status)
	})
}

func TestAttendanceService_GetRecords(t *testing.T) {
	t.Run("no department filter passes nil member scope", func(t *testing.T) {
		records := &stubAttendanceRepo{listResult: []model.AttendanceRecord{{UserKey: "key-1"}}}
		svc := NewAttendanceService(records, &stubReportRepo{}, &stubDirectory{})

		out, err := svc.GetRecords(context.Background(), dto.RecordFilter{UserKey: "key-1"})
		require.NoError(t, err)
		assert.Len(t, out, 1)
		require.Len(t, records.listCalls, 1)
		assert.Nil(t, records.listCalls[0].memberKeys)
	})

	t.Run("department filter resolves the member set first", func(t *testing.T) {
		records := &stubAttendanceRepo{}
		dir := &stubDirectory{members: map[int][]string{2: {"key-1", "key-2"}}}
		svc := NewAttendanceService(records, &stubReportRepo{}, dir)

		_, err := svc.GetRecords(context.Background(), dto.RecordFilter{DepartmentID: 2})
		require.NoError(t, err)
		require.Len(t, records.listCalls, 1)
		assert.Equal(t, []string{"key-1", "key-2"}, records.listCalls[0].memberKeys)
	})

	t.Run("empty department short-circuits without touching the store", func(t *testing.T) {
		records := &stubAttendanceRepo{}
		dir := &stubDirectory{members: map[int][]string{}}
		svc := NewAttendanceService(records, &stubReportRepo{}, dir)

		out, err := svc.GetRecords(context.Background(), dto.RecordFilter{DepartmentID: 9})
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Empty(t, records.listCalls)
	})
}

func TestAttendanceService_GetStats(t *testing.T) {
	t.Run("both range bounds are mandatory", func(t *testing.T) {
		svc := NewAttendanceService(&stubAttendanceRepo{}, &stubReportRepo{}, &stubDirectory{})

		_, err := svc.GetStats(context.Background(), dto.StatsFilter{StartDate: "2025-06-01"})
		assert.ErrorIs(t, err, ErrInvalid)
		_, err = svc.GetStats(context.Background(), dto.StatsFilter{EndDate: "2025-06-30"})
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("valid range queries the store once", func(t *testing.T) {
		records := &stubAttendanceRepo{statsResult: dto.AttendanceStats{TotalDays: 4, PresentDays: 3, AbsentDays: 1}}
		svc := NewAttendanceService(records, &stubReportRepo{}, &stubDirectory{})

		stats, err := svc.GetStats(context.Background(), dto.StatsFilter{StartDate: "2025-06-01", EndDate: "2025-06-30"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.TotalDays)
		require.Len(t, records.statsCalls, 1)
	})

	t.Run("empty department yields all-zero stats", func(t *testing.T) {
		records := &stubAttendanceRepo{statsResult: dto.AttendanceStats{TotalDays: 99}}
		dir := &stubDirectory{members: map[int][]string{}}
		svc := NewAttendanceService(records, &stubReportRepo{}, dir)

		stats, err := svc.GetStats(context.Background(), dto.StatsFilter{
			StartDate: "2025-06-01", EndDate: "2025-06-30", DepartmentID: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, dto.AttendanceStats{}, *stats)
		assert.Empty(t, records.statsCalls)
	})
}

func TestAttendanceService_GenerateReport(t *testing.T) {
	reports := &stubReportRepo{}
	svc := NewAttendanceService(&stubAttendanceRepo{}, reports, &stubDirectory{})

	dep := 2
	rep, err := svc.GenerateReport(context.Background(), "hr-key", dto.GenerateReportRequest{
		ReportName: "June summary", ReportType: "monthly",
		DateFrom: "2025-06-01", DateTo: "2025-06-30", DepartmentID: &dep,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReportPending, rep.Status)
	assert.Equal(t, "hr-key", rep.GeneratedByUserKey)
	assert.Nil(t, rep.FilePath)
	require.Len(t, reports.created, 1)
}
