package echoapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selectionResponse struct {
	Accepted  bool `json:"accepted"`
	Selection struct {
		Comparison []int `json:"comparison"`
		Focused    int   `json:"focused"`
	} `json:"selection"`
}

func toggleComparison(t *testing.T, server *Server, id string, checked bool) (int, selectionResponse) {
	t.Helper()
	rec := doRequest(t, server, http.MethodPost, "/v1/selection/comparison/"+id,
		map[string]bool{"checked": checked})
	var resp selectionResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func TestBoardAPI_toggleComparison(t *testing.T) {
	server, _, _ := setup(t)

	code, resp := toggleComparison(t, server, "1", true)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Accepted)
	assert.Equal(t, []int{1}, resp.Selection.Comparison)

	code, resp = toggleComparison(t, server, "2", true)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Accepted)
	assert.Equal(t, []int{1, 2}, resp.Selection.Comparison)

	// a third check is rejected, the caller reverts the checkbox
	code, resp = toggleComparison(t, server, "3", true)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, resp.Accepted)
	assert.Equal(t, []int{1, 2}, resp.Selection.Comparison)

	// unchecking frees the slot
	code, resp = toggleComparison(t, server, "1", false)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Accepted)
	assert.Equal(t, []int{2}, resp.Selection.Comparison)

	code, resp = toggleComparison(t, server, "3", true)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Accepted)
	assert.Equal(t, []int{2, 3}, resp.Selection.Comparison)

	code, _ = toggleComparison(t, server, "abc", true)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestBoardAPI_insightPanel(t *testing.T) {
	server, _, _ := setup(t)

	panel := func() map[string]interface{} {
		rec := doRequest(t, server, http.MethodGet, "/v1/insight", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	assert.Equal(t, "default", panel()["kind"])

	rec := doRequest(t, server, http.MethodPost, "/v1/selection/focus/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := panel()
	assert.Equal(t, "student", resp["kind"])
	assert.Equal(t, float64(3), resp["student_id"])

	// a single comparison selection outranks the focused row
	toggleComparison(t, server, "1", true)
	resp = panel()
	assert.Equal(t, "student", resp["kind"])
	assert.Equal(t, float64(1), resp["student_id"])

	// both slots full hides the analysis
	toggleComparison(t, server, "2", true)
	assert.Equal(t, "multiple", panel()["kind"])
}

func TestBoardAPI_comparisonChart(t *testing.T) {
	server, _, _ := setup(t)

	rec := doRequest(t, server, http.MethodGet, "/v1/charts/comparison", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "needs exactly two selected")

	toggleComparison(t, server, "1", true)
	toggleComparison(t, server, "2", true)

	rec = doRequest(t, server, http.MethodGet, "/v1/charts/comparison", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		SVG    string `json:"svg"`
		Legend []struct {
			Subject string `json:"subject"`
			Winner  string `json:"winner"`
		} `json:"legend"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.SVG, "<svg")
	assert.NotEmpty(t, resp.Legend)
}

func TestBoardAPI_radarChart(t *testing.T) {
	server, _, _ := setup(t)

	rec := doRequest(t, server, http.MethodGet, "/v1/charts/radar/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "image/svg+xml")
	assert.Contains(t, rec.Body.String(), "<polygon")

	rec = doRequest(t, server, http.MethodGet, "/v1/charts/radar/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBoardAPI_search(t *testing.T) {
	server, _, brd := setup(t)

	rec := doRequest(t, server, http.MethodPost, "/v1/search", map[string]string{"term": "  sneha "})
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "sneha", brd.Filter().Search, "term is cleaned before storing")
}

func TestBoardAPI_filter(t *testing.T) {
	server, _, _ := setup(t)

	rec := doRequest(t, server, http.MethodPost, "/v1/filter",
		map[string]string{"category": "top", "sort": "name"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Category string `json:"category"`
		Sort     string `json:"sort"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "top", resp.Category)
	assert.Equal(t, "name", resp.Sort)

	// a bare GET reflects the dashboard's current criteria
	rec = doRequest(t, server, http.MethodGet, "/v1/students", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeStudents(t, rec)
	require.Len(t, view, 2)
	assert.Equal(t, "Aarav Sharma", view[0].Name)
	assert.Equal(t, "Diya Patel", view[1].Name)

	// explicit query params override the stored criteria
	rec = doRequest(t, server, http.MethodGet, "/v1/students?category=all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeStudents(t, rec), 5)
}

func TestBoardAPI_exportCSV(t *testing.T) {
	server, _, _ := setup(t)

	rec := doRequest(t, server, http.MethodGet, "/v1/export/csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "students.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Rank,Roll No,Name,Math,Science,English,History,Computer,Average,Grade", lines[0])
	assert.Equal(t, "1,101,Aarav Sharma,95,92,88,90,98,92.6,A+", lines[1])
}

func TestBoardAPI_printLayout(t *testing.T) {
	server, _, _ := setup(t)

	layout := func() map[string]interface{} {
		rec := doRequest(t, server, http.MethodGet, "/v1/print", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	assert.Equal(t, "full", layout()["mode"])

	toggleComparison(t, server, "2", true)
	resp := layout()
	assert.Equal(t, "single", resp["mode"])
	st, ok := resp["student"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Diya Patel", st["name"])

	toggleComparison(t, server, "3", true)
	assert.Equal(t, "full", layout()["mode"])
}

func TestBoardAPI_home(t *testing.T) {
	server, _, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Markboard")
}
