package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dancestudio_backend/internals/configs"
	"dancestudio_backend/internals/databases/dbtest"
	helperAuth "dancestudio_backend/internals/helpers/auth"
)

const (
	testSecret = "test-secret"
	testUser   = "studio-admin"
	testPass   = "s3cret"
)

type testServer struct {
	t   *testing.T
	app *fiber.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := configs.Config{
		JWTSecret:      testSecret,
		AdminUsername:  testUser,
		AdminPassword:  testPass,
		CORSOrigins:    "*",
		RateLimitMax:   0,
		RequestTimeout: 5 * time.Second,
		LogTimezone:    "UTC",
	}
	return &testServer{t: t, app: NewApp(cfg, dbtest.Open(t))}
}

// do sends a JSON request and decodes the JSON response body.
func (s *testServer) do(method, path, token string, body any) (int, map[string]any) {
	s.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	if len(raw) > 0 && strings.Contains(resp.Header.Get("Content-Type"), "json") {
		require.NoError(s.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (s *testServer) login() string {
	s.t.Helper()
	status, body := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": testUser, "password": testPass})
	require.Equal(s.t, http.StatusOK, status, body)
	return body["token"].(string)
}

func (s *testServer) create(token, path string, payload any) string {
	s.t.Helper()
	status, body := s.do(http.MethodPost, path, token, payload)
	require.Equal(s.t, http.StatusCreated, status, body)
	return body["data"].(map[string]any)["id"].(string)
}

func TestLoginAndVerify(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": testUser, "password": testPass})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, map[string]any{"username": testUser, "role": "admin"}, body["admin"])
	token := body["token"].(string)

	status, body = s.do(http.MethodGet, "/api/auth/verify", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["valid"])

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	status, body = s.do(http.MethodGet, "/api/auth/verify", tampered, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["valid"])

	status, body = s.do(http.MethodGet, "/api/auth/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No token provided", body["message"])
}

func TestLoginFailures(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": testUser})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": testUser, "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestAdminGate(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(http.MethodPost, "/api/branches", "", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Access denied. No token provided.", body["message"])

	status, _ = s.do(http.MethodGet, "/api/classes/admin", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// token valid tapi role bukan admin
	now := time.Now()
	userToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, helperAuth.AdminClaims{
		Role:     "user",
		Username: "u",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	status, body = s.do(http.MethodGet, "/api/classes/admin", userToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Access denied. Admin privileges required.", body["message"])

	status, _ = s.do(http.MethodGet, "/api/classes/admin", s.login(), nil)
	assert.Equal(t, http.StatusOK, status)

	expired, err := (&helperAuth.AdminTokens{Secret: testSecret, Username: testUser, Now: func() time.Time {
		return now.Add(-48 * time.Hour)
	}}).Issue()
	require.NoError(t, err)
	status, _ = s.do(http.MethodGet, "/api/classes/admin", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestClassSlotScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	branchID := s.create(token, "/api/branches", map[string]any{"name": "Studio A", "address": "הרצל 12"})
	teacherID := s.create(token, "/api/teachers", map[string]any{"name": "Dana", "phone": "050-1234567", "email": "dana@x.com", "specialties": "Hip Hop"})

	class := map[string]any{
		"day": "שני", "time": "18:00", "branch": branchID, "teacher": teacherID, "description": "Hip Hop",
	}
	status, body := s.do(http.MethodPost, "/api/classes", token, class)
	require.Equal(t, http.StatusCreated, status, body)
	data := body["data"].(map[string]any)
	firstID := data["id"].(string)
	assert.Equal(t, "Dana", data["teacher"].(map[string]any)["name"])
	assert.Equal(t, "Studio A", data["branch"].(map[string]any)["name"])
	assert.EqualValues(t, 20, data["maxStudents"])

	status, body = s.do(http.MethodPost, "/api/classes", token, class)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "A class is already scheduled at this time and branch", body["message"])

	status, body = s.do(http.MethodDelete, "/api/classes/"+firstID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]any)["isActive"])

	status, _ = s.do(http.MethodPost, "/api/classes", token, class)
	assert.Equal(t, http.StatusCreated, status)

	// publik tidak melihat kelas nonaktif, admin melihat semua
	_, body = s.do(http.MethodGet, "/api/classes", "", nil)
	assert.EqualValues(t, 1, body["count"])
	_, body = s.do(http.MethodGet, "/api/classes/admin", token, nil)
	assert.EqualValues(t, 2, body["count"])

	status, _ = s.do(http.MethodGet, "/api/classes/"+firstID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(http.MethodGet, "/api/classes/admin/"+firstID, token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestTeacherEmailScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	teacher := map[string]any{"name": "A", "phone": "050-1111111", "email": "a@b.com"}
	firstID := s.create(token, "/api/teachers", teacher)

	status, body := s.do(http.MethodPost, "/api/teachers", token, teacher)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Teacher with this email already exists", body["message"])

	status, _ = s.do(http.MethodDelete, "/api/teachers/"+firstID, token, nil)
	require.Equal(t, http.StatusOK, status)

	teacher["name"] = "C"
	status, _ = s.do(http.MethodPost, "/api/teachers", token, teacher)
	assert.Equal(t, http.StatusBadRequest, status)

	otherID := s.create(token, "/api/teachers", map[string]any{"name": "B", "phone": "050-2222222", "email": "b@b.com"})
	status, body = s.do(http.MethodPut, "/api/teachers/"+otherID, token, teacher)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Another teacher with this email already exists", body["message"])
}

func TestValidationEnvelope(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	status, body := s.do(http.MethodPost, "/api/classes", token, map[string]any{"day": "Funday", "maxStudents": 0})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation error", body["message"])
	errs := body["errors"].([]any)
	assert.GreaterOrEqual(t, len(errs), 5)

	req := httptest.NewRequest(http.MethodPost, "/api/branches", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotFoundShapes(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	status, body := s.do(http.MethodGet, "/api/branches/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Branch not found", body["message"])

	status, body = s.do(http.MethodPut, "/api/teachers/6f1c2a9e-1b7c-4cf0-9d55-0f1b8f6f2a11", token,
		map[string]any{"name": "A", "phone": "1", "email": "a@b.com"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Teacher not found", body["message"])

	status, _ = s.do(http.MethodGet, "/api/classes?branch=nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestScheduleAndStats(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	branchID := s.create(token, "/api/branches", map[string]any{"name": "Studio A"})
	teacherID := s.create(token, "/api/teachers", map[string]any{"name": "Dana", "phone": "050-1234567", "email": "dana@x.com"})
	for _, slot := range [][2]string{{"שני", "19:00"}, {"שני", "18:00"}, {"שבת", "10:00"}} {
		s.create(token, "/api/classes", map[string]any{
			"day": slot[0], "time": slot[1], "branch": branchID, "teacher": teacherID, "description": "x",
		})
	}

	status, body := s.do(http.MethodGet, "/api/classes/schedule?branch="+branchID, "", nil)
	require.Equal(t, http.StatusOK, status)
	sched := body["data"].(map[string]any)
	assert.Len(t, sched, 7)
	monday := sched["שני"].([]any)
	require.Len(t, monday, 2)
	assert.Equal(t, "18:00", monday[0].(map[string]any)["time"])

	status, _ = s.do(http.MethodGet, "/api/classes/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = s.do(http.MethodGet, "/api/classes/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	stats := body["data"].(map[string]any)
	assert.EqualValues(t, 3, stats["totalClasses"])
	byBranch := stats["classesByBranch"].([]any)
	require.Len(t, byBranch, 1)
	assert.Equal(t, "Studio A", byBranch[0].(map[string]any)["branch"])
}

func TestPublicProjections(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	s.create(token, "/api/teachers", map[string]any{"name": "Dana", "phone": "050-1234567", "email": "dana@x.com", "specialties": []string{"Jazz"}})

	_, body := s.do(http.MethodGet, "/api/teachers", "", nil)
	list := body["data"].([]any)
	require.Len(t, list, 1)
	item := list[0].(map[string]any)
	assert.Equal(t, "Dana", item["name"])
	assert.NotContains(t, item, "email")
	assert.NotContains(t, item, "phone")

	_, body = s.do(http.MethodGet, "/api/teachers/admin", token, nil)
	assert.Contains(t, body["data"].([]any)[0].(map[string]any), "email")
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])

	s.do(http.MethodGet, "/api/branches", "", nil)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "studio_http_requests_total")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
