package draft

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kizuna/internal/domain/plan"
	"kizuna/internal/storage"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewManager(storage.NewMemoryStore()))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-Session"); id != "" {
			c.Set(SessionKey, id)
		}
		c.Next()
	})
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doJSONRequest(r http.Handler, method, path string, body any, session string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Test-Session", session)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeDraft(t *testing.T, rr *httptest.ResponseRecorder) DraftResponse {
	t.Helper()
	var env struct {
		Success bool          `json:"success"`
		Data    DraftResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	require.True(t, env.Success)
	return env.Data
}

func TestDraftEndpoints_RequireSession(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodGet, "/api/v1/draft", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDraftEndpoints_FullFlow(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodGet, "/api/v1/draft", nil, "s1")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decodeDraft(t, rr)
	assert.Equal(t, plan.PlanBasic, resp.Draft.Plan)
	assert.Equal(t, 1, resp.Entitlements.ImageLimit)
	assert.Empty(t, resp.SelectedPlan)

	rr = doJSONRequest(r, http.MethodPut, "/api/v1/draft/plan", map[string]any{"plan": "infinity"}, "s1")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp = decodeDraft(t, rr)
	assert.Equal(t, plan.PlanInfinity, resp.Draft.Plan)
	assert.Equal(t, plan.PlanInfinity, resp.SelectedPlan)
	assert.True(t, resp.Entitlements.Capsule)

	// other sessions are untouched
	rr = doJSONRequest(r, http.MethodGet, "/api/v1/draft", nil, "s2")
	assert.Equal(t, plan.PlanBasic, decodeDraft(t, rr).Draft.Plan)

	rr = doJSONRequest(r, http.MethodPut, "/api/v1/draft/plan", map[string]any{"plan": "GOLD"}, "s1")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = doJSONRequest(r, http.MethodPut, "/api/v1/draft/language", map[string]any{"lang": "ja"}, "s1")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = doJSONRequest(r, http.MethodGet, "/api/v1/draft", nil, "s1")
	assert.Equal(t, "jp", string(decodeDraft(t, rr).Language))

	rr = doJSONRequest(r, http.MethodPut, "/api/v1/draft/language", map[string]any{"lang": "fr"}, "s1")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = doJSONRequest(r, http.MethodDelete, "/api/v1/draft", nil, "s1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, Default(), decodeDraft(t, rr).Draft)
}
