package server

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rgehrsitz/ctcgo/internal/ats"
	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/salary"
	"github.com/rgehrsitz/ctcgo/internal/stats"
	"github.com/rgehrsitz/ctcgo/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const resume = `Email: dev@example.com
Experience
- Built a billing API serving 2 million users with Go and Python
Skills
SQL, Docker, Kubernetes, AWS
Education
Bachelor of Engineering`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	mem := store.NewMemoryStore()
	_, err := store.Seed(context.Background(), mem, nil)
	require.NoError(t, err)

	log := zap.NewNop()
	sal := salary.NewService(calculation.NewSalaryEngine(nil), mem, log)
	checker := ats.NewService(mem, ats.NewUsageLimiter(mem, 2, time.Hour), 1024, log)
	cfg := config.ServerConfig{Address: ":0", AllowOrigins: []string{"*"}, MaxUploadSize: 1024}
	return New(cfg, sal, checker, stats.NewService(mem), log, "test")
}

func do(t *testing.T, s *Server, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(UserHeader, user)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestInfoAndHealth(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test", decode[map[string]any](t, w)["version"])

	w = do(t, s, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, w)["status"])
}

func TestCalculateAndHistory(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/salary/calculate", "alice", map[string]any{"ctc": 1200000, "city": "Delhi"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"inHandSalary":91683.33`)
	b := decode[domain.SalaryBreakdown](t, w)
	assert.True(t, b.IncomeTax.Equal(decimal.RequireFromString("2316.67")))

	w = do(t, s, http.MethodGet, "/api/salary/history", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, s, http.MethodGet, "/api/salary/history", "", nil)
	assert.Len(t, decode[[]map[string]any](t, w), 0, "anonymous has its own history")
}

func TestAdminCalculations(t *testing.T) {
	s := newTestServer(t)

	for _, user := range []string{"alice", "bob"} {
		w := do(t, s, http.MethodPost, "/api/salary/calculate", user, map[string]any{"ctc": 1200000, "city": "Delhi"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := do(t, s, http.MethodGet, "/api/admin/calculations", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]map[string]any](t, w)
	require.Len(t, all, 2)
	users := []any{all[0]["userId"], all[1]["userId"]}
	assert.ElementsMatch(t, []any{"alice", "bob"}, users)
}

func TestCalculate_BadInput(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/salary/calculate", "alice", map[string]any{"ctc": -5, "city": "Delhi"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]any](t, w)
	assert.Contains(t, body["error"], "invalid input")
	assert.NotEmpty(t, body["fields"])

	w = do(t, s, http.MethodPost, "/api/salary/calculate", "alice",
		map[string]any{"ctc": 1200000, "city": strings.Repeat("x", 101)})
	require.Equal(t, http.StatusBadRequest, w.Code, "over-long city is rejected, not truncated")
	assert.Contains(t, w.Body.String(), "city must be at most 100 characters")

	req := httptest.NewRequest(http.MethodPost, "/api/salary/calculate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCityTaxCRUD(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/salary/city-tax", "", map[string]any{"city": "Pune", "state": "Maharashtra", "professionalTax": 200})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.CityTaxProfile](t, w)
	assert.True(t, created.HRAExemptionPercent.Equal(decimal.NewFromInt(50)))

	w = do(t, s, http.MethodPost, "/api/salary/city-tax", "", map[string]any{"city": "Pune", "professionalTax": 200})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, s, http.MethodPut, "/api/salary/city-tax/Pune", "", map[string]any{"professionalTax": 250})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"professionalTax":250`)

	w = do(t, s, http.MethodPut, "/api/salary/city-tax/Nagpur", "", map[string]any{"professionalTax": 250})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodGet, "/api/salary/city-tax", "", nil)
	assert.Len(t, decode[[]domain.CityTaxProfile](t, w), 1)

	w = do(t, s, http.MethodDelete, "/api/salary/city-tax/Pune", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, w)["success"])

	w = do(t, s, http.MethodGet, "/api/salary/city-tax/Pune", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReferenceLists(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/common/cities", "/api/common/companies", "/api/common/designations"} {
		w := do(t, s, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		names := decode[[]string](t, w)
		assert.NotEmpty(t, names, path)
		assert.IsNonDecreasing(t, names, path)
	}
}

func TestAtsFlow(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/ats/check", "alice", map[string]any{"resumeText": resume})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[map[string]any](t, w)
	assert.EqualValues(t, 1, first["remaining"])
	assert.NotContains(t, first, "resumeText")
	id, _ := first["id"].(string)
	require.NotEmpty(t, id)

	w = do(t, s, http.MethodGet, "/api/ats/history/"+id, "alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, s, http.MethodGet, "/api/ats/history/"+id, "bob", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPost, "/api/ats/premium/enhance", "alice", map[string]any{"checkId": id})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, decode[map[string]any](t, w), "premiumFeatures")

	w = do(t, s, http.MethodPost, "/api/ats/premium/enhance", "alice", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/api/ats/check", "alice", map[string]any{"resumeText": resume})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, s, http.MethodPost, "/api/ats/check", "alice", map[string]any{"resumeText": resume})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, s, http.MethodPost, "/api/ats/usage", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	usage := decode[domain.UsageStatus](t, w)
	assert.False(t, usage.Allowed)
	assert.Zero(t, usage.Remaining)

	w = do(t, s, http.MethodGet, "/api/ats/history", "alice", nil)
	assert.Len(t, decode[[]map[string]any](t, w), 2)
}

func upload(t *testing.T, s *Server, name string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ats/check", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(UserHeader, "carol")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestAtsUpload(t *testing.T) {
	s := newTestServer(t)

	w := upload(t, s, "resume.txt", []byte(resume))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, len(resume), decode[map[string]any](t, w)["fileSize"])

	w = upload(t, s, "resume.pdf", []byte("%PDF-1.4\n%binary"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported file type")

	w = upload(t, s, "big.txt", bytes.Repeat([]byte("a "), 1024))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file too large")
}

func TestStatistics(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/api/salary/calculate", "alice", map[string]any{"ctc": 1200000, "city": "Delhi"})
	do(t, s, http.MethodPost, "/api/salary/calculate", "bob", map[string]any{"ctc": 600000, "city": "Pune"})

	w := do(t, s, http.MethodGet, "/api/admin/statistics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[domain.Statistics](t, w)
	assert.Equal(t, int64(2), st.Salary.Total)
	assert.True(t, st.Salary.AverageCTC.Equal(decimal.NewFromInt(900000)))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, statusFor(ats.ErrUsageLimit))
	assert.Equal(t, http.StatusConflict, statusFor(store.ErrAlreadyExists))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/salary/calculate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
