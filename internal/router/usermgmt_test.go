package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dandyZicky/wfh-attendance/internal/config"
	"github.com/dandyZicky/wfh-attendance/internal/dto"
	"github.com/dandyZicky/wfh-attendance/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeAuth stands in for the auth service's internal provisioning routes.
type fakeAuth struct {
	srv        *httptest.Server
	registered []dto.RegisterRequest
	failWith   int // when non-zero, register answers this status
}

func newFakeAuth(t *testing.T) *fakeAuth {
	t.Helper()
	f := &fakeAuth{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/register":
			if f.failWith != 0 {
				w.WriteHeader(f.failWith)
				json.NewEncoder(w).Encode(map[string]string{"msg": "email or username already registered"})
				return
			}
			var req dto.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			f.registered = append(f.registered, req)
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]string{"msg": "user deleted"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func seedDirectory(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Department{DepartmentID: 1, DepartmentName: "Human Resources"}).Error)
	require.NoError(t, db.Create(&model.Department{DepartmentID: 3, DepartmentName: "Engineering"}).Error)
	require.NoError(t, db.Create(&model.Employee{
		UserKey: hrKey, Username: "hr.admin", Email: "hr@example.com",
		DepartmentID: 1, FirstName: "Head", LastName: "OfPeople", HireDate: time.Now().UTC(),
	}).Error)
	require.NoError(t, db.Create(&model.Employee{
		UserKey: engKey, Username: "dev", Email: "dev@example.com",
		DepartmentID: 3, FirstName: "Dev", LastName: "Eloper", HireDate: time.Now().UTC(),
	}).Error)
}

func newUserMgmtEngine(t *testing.T) (*gin.Engine, *fakeAuth) {
	t.Helper()
	auth := newFakeAuth(t)
	db := newTestDB(t, &model.Employee{}, &model.Department{})
	seedDirectory(t, db)
	r := NewUserMgmt(&config.UserMgmtConfig{
		Env: "test", JWTSecret: testSecret, AuthServiceURL: auth.srv.URL,
	}, db)
	return r, auth
}

func createUserBody() map[string]any {
	return map[string]any{
		"username":      "newhire",
		"email":         "newhire@example.com",
		"password":      "s3cretpass",
		"department_id": 3,
		"first_name":    "New",
		"last_name":     "Hire",
	}
}

func TestUserMgmtRoutes_HRGate(t *testing.T) {
	r, _ := newUserMgmtEngine(t)

	t.Run("no session is 401", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users", "", createUserBody())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-HR session is 403 on every gated route", func(t *testing.T) {
		for _, route := range []struct{ method, path string }{
			{http.MethodPost, "/users"},
			{http.MethodGet, "/users/1"},
			{http.MethodGet, "/departments"},
		} {
			w := doJSON(t, r, route.method, route.path, engKey, nil)
			assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", route.method, route.path)
		}
	})
}

func TestUserMgmtRoutes_CreateUser(t *testing.T) {
	t.Run("provisions the credential and stores the employee", func(t *testing.T) {
		r, auth := newUserMgmtEngine(t)

		w := doJSON(t, r, http.MethodPost, "/users", hrKey, createUserBody())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp dto.CreateUserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.UserKey)

		require.Len(t, auth.registered, 1)
		assert.Equal(t, resp.UserKey, auth.registered[0].UserKey)
		assert.Equal(t, "newhire@example.com", auth.registered[0].Email)

		// The new hire is immediately visible through the directory primitive.
		lookup := doJSON(t, r, http.MethodGet, "/users/department/"+resp.UserKey, "", nil)
		require.Equal(t, http.StatusOK, lookup.Code)
		assert.Contains(t, lookup.Body.String(), `"department_id":3`)
	})

	t.Run("auth conflict is forwarded with its own status", func(t *testing.T) {
		r, auth := newUserMgmtEngine(t)
		auth.failWith = http.StatusConflict

		w := doJSON(t, r, http.MethodPost, "/users", hrKey, createUserBody())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already registered")
	})

	t.Run("partial payload is rejected before any provisioning", func(t *testing.T) {
		r, auth := newUserMgmtEngine(t)

		body := createUserBody()
		delete(body, "department_id")
		w := doJSON(t, r, http.MethodPost, "/users", hrKey, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, auth.registered)
	})
}

func TestUserMgmtRoutes_CRUD(t *testing.T) {
	r, _ := newUserMgmtEngine(t)

	t.Run("get by id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/2", hrKey, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var emp dto.EmployeeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &emp))
		assert.Equal(t, engKey, emp.UserKey)
		assert.Equal(t, "dev", emp.Username)
	})

	t.Run("get unknown id is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/99", hrKey, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update requires the full body", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/users/2", hrKey, map[string]any{"username": "dev2"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update then read back", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/users/2", hrKey, map[string]any{
			"username": "dev2", "email": "dev2@example.com",
			"department_id": 3, "first_name": "Dev", "last_name": "Eloper",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := doJSON(t, r, http.MethodGet, "/users/2", hrKey, nil)
		assert.Contains(t, got.Body.String(), "dev2@example.com")
	})

	t.Run("delete then delete again", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/users/2", hrKey, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/users/2", hrKey, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserMgmtRoutes_DirectoryPrimitives(t *testing.T) {
	r, _ := newUserMgmtEngine(t)

	t.Run("department lookup needs no session", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/department/"+hrKey, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"department_id":1`)
	})

	t.Run("unknown user_key is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/department/no-such-key", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("member listing", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/departments/1/members", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var out dto.DepartmentMembersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, []string{hrKey}, out.UserKeys)
	})

	t.Run("empty department answers an empty list, not null", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/departments/4/members", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_keys":[]`)
	})
}

func TestUserMgmtRoutes_Departments(t *testing.T) {
	r, _ := newUserMgmtEngine(t)

	t.Run("list is sorted by name", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/departments", hrKey, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var out []dto.DepartmentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 2)
		assert.Equal(t, "Engineering", out[0].DepartmentName)
	})

	t.Run("get by id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/departments/1", hrKey, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Human Resources")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/departments/99", hrKey, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
