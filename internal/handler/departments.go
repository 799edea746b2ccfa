package handler

import (
	"net/http"
	"strconv"

	"github.com/dandyZicky/wfh-attendance/internal/apierror"
	"github.com/dandyZicky/wfh-attendance/internal/service"

	"github.com/gin-gonic/gin"
)

type DepartmentsHandler struct{ svc service.DepartmentService }

func NewDepartmentsHandler(svc service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{svc: svc}
}

func (h *DepartmentsHandler) List(c *gin.Context) {
	resp, err := h.svc.ListDepartments(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DepartmentsHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid department id"))
		return
	}
	resp, err := h.svc.GetDepartmentByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
