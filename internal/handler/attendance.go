package handler

import (
	"net/http"
	"strconv"

	"github.com/dandyZicky/wfh-attendance/internal/apierror"
	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/middleware"
	"github.com/dandyZicky/wfh-attendance/internal/service"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct{ svc service.AttendanceService }

func NewAttendanceHandler(svc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// Submit upserts the authenticated user's attendance for one date.
// Resubmitting the same date overwrites the earlier values.
func (h *AttendanceHandler) Submit(c *gin.Context) {
	var req dto.SubmitAttendanceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	rec, err := h.svc.SubmitAttendance(c.Request.Context(), claims.Subject, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.RecordResponse{Msg: "attendance submitted successfully", Data: *rec})
}

// Records lists attendance records, newest first. All filters are optional;
// with none present the full table comes back.
func (h *AttendanceHandler) Records(c *gin.Context) {
	filter := dto.RecordFilter{
		UserKey:   c.Query("user_key"),
		Date:      c.Query("date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	var ok bool
	if filter.DepartmentID, ok = queryDepartmentID(c); !ok {
		return
	}

	records, err := h.svc.GetRecords(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RecordListResponse{Data: records})
}

// Stats aggregates the mandatory [start_date, end_date] range in one pass.
func (h *AttendanceHandler) Stats(c *gin.Context) {
	filter := dto.StatsFilter{
		UserKey:   c.Query("user_key"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if filter.StartDate == "" || filter.EndDate == "" {
		c.JSON(http.StatusBadRequest, apierror.New("start_date and end_date are required"))
		return
	}
	var ok bool
	if filter.DepartmentID, ok = queryDepartmentID(c); !ok {
		return
	}

	stats, err := h.svc.GetStats(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{Data: *stats})
}

// GenerateReport records a report request in pending state. Producing the
// report file is out of scope; the row never leaves pending here.
func (h *AttendanceHandler) GenerateReport(c *gin.Context) {
	var req dto.GenerateReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	rep, err := h.svc.GenerateReport(c.Request.Context(), claims.Subject, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ReportResponse{Msg: "report generation requested", Data: *rep})
}

func queryDepartmentID(c *gin.Context) (int, bool) {
	raw := c.Query("department_id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid department_id"))
		return 0, false
	}
	return id, true
}
