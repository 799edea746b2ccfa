package handler

import (
	"net/http"
	"strconv"

	"github.com/dandyZicky/wfh-attendance/internal/apierror"
	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler { return &UsersHandler{svc: svc} }

// Create provisions a credential in the auth service and inserts the
// employee row; on a failed insert the credential is compensated best-effort.
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.CreateUser(c.Request.Context(), c.GetHeader("Authorization"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsersHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateUser(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user updated successfully"})
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user deleted successfully"})
}

// GetDepartmentByUserKey is unauthenticated: it is the inter-service
// authorization primitive called by the other two services.
func (h *UsersHandler) GetDepartmentByUserKey(c *gin.Context) {
	departmentID, err := h.svc.DepartmentByUserKey(c.Request.Context(), c.Param("user_key"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DepartmentLookupResponse{DepartmentID: departmentID})
}

// GetDepartmentMembers lists a department's user_keys for the attendance
// service's in-process filtering.
func (h *UsersHandler) GetDepartmentMembers(c *gin.Context) {
	departmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil || departmentID < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid department id"))
		return
	}
	keys, err := h.svc.UserKeysByDepartment(c.Request.Context(), departmentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if keys == nil {
		keys = []string{}
	}
	c.JSON(http.StatusOK, dto.DepartmentMembersResponse{UserKeys: keys})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}
