package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gosaju/adapters/almanac"
	"gosaju/adapters/llm"
	"gosaju/adapters/memory"
	"gosaju/app"
)

type serverFixture struct {
	server *Server
	ledger *memory.Ledger
	llm    *llm.MockLLMClient
	userID uuid.UUID
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock := &llm.MockLLMClient{Response: "안정적인 흐름의 해입니다."}
	ledger := memory.NewLedger()
	readings := memory.NewReadings()
	analysis := app.NewAnalysisService(almanac.New())
	fortune := app.NewFortuneService(analysis, ledger, readings, mock, "gpt-4o-mini", 2048)

	s := NewServer(analysis, fortune, ledger, readings)
	s.now = func() time.Time { return time.Date(2025, 8, 28, 9, 0, 0, 0, time.UTC) }

	return &serverFixture{server: s, ledger: ledger, llm: mock, userID: uuid.New()}
}

func (f *serverFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.server.Router().ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func birthBody() map[string]any {
	return map[string]any{
		"year": 1990, "month": 5, "day": 15,
		"hour": 10, "minute": 0,
		"gender": "male", "city": "seoul",
	}
}

func TestHealthz(t *testing.T) {
	f := newServerFixture(t)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}
	if got := decodeJSON(t, w)["status"]; got != "ok" {
		t.Errorf("status body = %v", got)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	f := newServerFixture(t)
	w := f.do(t, http.MethodPost, "/api/analyze", birthBody())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	out := decodeJSON(t, w)
	chart, ok := out["chart"].(map[string]any)
	if !ok {
		t.Fatalf("no chart in response: %v", out)
	}
	day := chart["day"].(map[string]any)
	if day["stem"] != "경" || day["branch"] != "진" {
		t.Errorf("day pillar = %v%v, expected 경진", day["stem"], day["branch"])
	}
	if _, ok := out["daeWoon"].([]any); !ok {
		t.Error("response missing decade cycles")
	}
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	f := newServerFixture(t)

	body := birthBody()
	body["month"] = 13
	w := f.do(t, http.MethodPost, "/api/analyze", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("month 13: status = %d, expected 400", w.Code)
	}
	if code := decodeJSON(t, w)["code"]; code != "INVALID_INPUT" {
		t.Errorf("error code = %v", code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w2 := httptest.NewRecorder()
	f.server.Router().ServeHTTP(w2, req)
	if w2.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, expected 400", w2.Code)
	}
}

func TestPackagesEndpoint(t *testing.T) {
	f := newServerFixture(t)
	w := f.do(t, http.MethodGet, "/api/packages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	packages := decodeJSON(t, w)["packages"].([]any)
	if len(packages) != 4 {
		t.Fatalf("catalog size = %d, expected 4", len(packages))
	}
	first := packages[0].(map[string]any)
	if first["id"] != "pyeongmin" {
		t.Errorf("first package = %v, expected pyeongmin", first["id"])
	}
}

func TestPurchaseAndBalanceFlow(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodPost, fmt.Sprintf("/api/credits/%s/purchase", f.userID), map[string]any{"packageId": "jungin"})
	if w.Code != http.StatusOK {
		t.Fatalf("purchase: status = %d, body %s", w.Code, w.Body.String())
	}
	if balance := decodeJSON(t, w)["balance"].(float64); balance != 4 {
		t.Errorf("balance after jungin = %v, expected 4", balance)
	}

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/credits/%s", f.userID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("balance: status = %d", w.Code)
	}
	if balance := decodeJSON(t, w)["balance"].(float64); balance != 4 {
		t.Errorf("balance lookup = %v, expected 4", balance)
	}

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/credits/%s/purchase", f.userID), map[string]any{"packageId": "imperial"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown package: status = %d, expected 404", w.Code)
	}

	w = f.do(t, http.MethodGet, "/api/credits/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad user id: status = %d, expected 400", w.Code)
	}
}

func TestFortuneEndpoint(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodPost, "/api/fortune/basic", map[string]any{
		"userId": f.userID, "birth": birthBody(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("basic: status = %d, body %s", w.Code, w.Body.String())
	}
	out := decodeJSON(t, w)
	reading, ok := out["reading"].(map[string]any)
	if !ok {
		t.Fatalf("no reading in response: %v", out)
	}
	if content, _ := reading["content"].(string); !strings.Contains(content, "안정적인 흐름") {
		t.Errorf("content = %v", reading["content"])
	}
	if cost := out["cost"].(float64); cost != 0 {
		t.Errorf("basic cost = %v, expected 0", cost)
	}
	if !strings.Contains(f.llm.LastUserPrompt, "사주 원국") {
		t.Error("basic prompt missing the chart block")
	}
}

func TestFortunePaymentRequired(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodPost, "/api/fortune/detailed", map[string]any{
		"userId": f.userID, "birth": birthBody(),
	})
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, expected 402", w.Code)
	}
	if code := decodeJSON(t, w)["code"]; code != "INSUFFICIENT_CREDIT" {
		t.Errorf("error code = %v", code)
	}
}

func TestFortuneUnknownService(t *testing.T) {
	f := newServerFixture(t)
	w := f.do(t, http.MethodPost, "/api/fortune/palmistry", map[string]any{
		"userId": f.userID, "birth": birthBody(),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", w.Code)
	}
}

func TestFortuneRequiresUser(t *testing.T) {
	f := newServerFixture(t)
	w := f.do(t, http.MethodPost, "/api/fortune/basic", map[string]any{"birth": birthBody()})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", w.Code)
	}
}

func TestReportEndpointStreamsWorkbook(t *testing.T) {
	f := newServerFixture(t)
	w := f.do(t, http.MethodPost, "/api/report", birthBody())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %s", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}

func TestReadingsRoundTrip(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodPost, "/api/fortune/basic", map[string]any{
		"userId": f.userID, "birth": birthBody(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("fortune: status = %d", w.Code)
	}
	reading, _ := decodeJSON(t, w)["reading"].(map[string]any)
	readingID, _ := reading["id"].(string)
	if readingID == "" {
		t.Fatal("fortune response carries no reading id")
	}

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/readings/%s", f.userID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("readings: status = %d", w.Code)
	}
	readings := decodeJSON(t, w)["readings"].([]any)
	if len(readings) != 1 {
		t.Fatalf("readings count = %d, expected 1", len(readings))
	}

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/reading/%s/html", readingID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reading html: status = %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("content type = %s", w.Header().Get("Content-Type"))
	}
}
