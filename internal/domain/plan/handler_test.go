package plan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler())
	return r
}

func doRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

func TestGetPlans(t *testing.T) {
	r := setupTestRouter(t)

	rr := doRequest(r, http.MethodGet, "/api/v1/plans?lang=jp")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var plans []PlanResponse
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &plans))
	require.Len(t, plans, 3)
	assert.Equal(t, PlanBasic, plans[0].ID)
	assert.Equal(t, 20, plans[2].Limits.Images)
	assert.True(t, plans[2].Flags.CustomDomain)
}

func TestGetPlans_BadLanguage(t *testing.T) {
	r := setupTestRouter(t)

	rr := doRequest(r, http.MethodGet, "/api/v1/plans?lang=xx")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rr).Error.Code)
}

func TestGetEntitlements(t *testing.T) {
	r := setupTestRouter(t)

	rr := doRequest(r, http.MethodGet, "/api/v1/plans/premium/entitlements")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var e Entitlements
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &e))
	assert.Equal(t, PlanPremium, e.Plan)
	assert.True(t, e.Music)
	assert.False(t, e.Capsule)
	assert.Equal(t, PlanInfinity, e.UpgradeTo)

	rr = doRequest(r, http.MethodGet, "/api/v1/plans/gold/entitlements")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetOptions(t *testing.T) {
	r := setupTestRouter(t)

	rr := doRequest(r, http.MethodGet, "/api/v1/options?plan=BASIC")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var opts OptionsResponse
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &opts))
	assert.Equal(t, PlanBasic, opts.Plan)
	require.NotEmpty(t, opts.Effects)

	locked := map[string]bool{}
	for _, e := range opts.Effects {
		locked[e.ID] = e.Locked
	}
	assert.False(t, locked["hearts"])
	assert.True(t, locked["infinity"])

	rr = doRequest(r, http.MethodGet, "/api/v1/options?plan=nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
