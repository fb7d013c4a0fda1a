package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
	"github.com/abhisek/mathpal/internal/mastery"
	"github.com/abhisek/mathpal/internal/telemetry"
	"github.com/abhisek/mathpal/internal/trend"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memEventRepo struct {
	events []telemetry.Event
	err    error
}

func (m *memEventRepo) AppendBatch(_ context.Context, events []telemetry.Event) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, events...)
	return nil
}

func (m *memEventRepo) BySession(_ context.Context, userID, sessionID string) ([]telemetry.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []telemetry.Event
	for _, ev := range m.events {
		if ev.UserID == userID && ev.SessionID == sessionID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *memEventRepo) ByUser(_ context.Context, userID, moduleName string, limit int) ([]telemetry.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []telemetry.Event
	for _, ev := range m.events {
		if ev.UserID == userID && (moduleName == "" || ev.ModuleName == moduleName) {
			out = append(out, ev)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memEventRepo) PruneOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	return 0, m.err
}

type memPerfRepo struct {
	entries []trend.LogEntry
	err     error
}

func (m *memPerfRepo) Append(ctx context.Context, entry trend.LogEntry) error {
	return m.AppendBatch(ctx, []trend.LogEntry{entry})
}

func (m *memPerfRepo) AppendBatch(_ context.Context, entries []trend.LogEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *memPerfRepo) Since(_ context.Context, userID, moduleName string, cutoff time.Time) ([]trend.LogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []trend.LogEntry
	for _, e := range m.entries {
		if e.UserID == userID && e.ModuleName == moduleName && !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memPerfRepo) Recent(_ context.Context, userID, moduleName string, limit int) ([]trend.LogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []trend.LogEntry
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := m.entries[i]
		if e.UserID == userID && (moduleName == "" || e.ModuleName == moduleName) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memPerfRepo) BySession(_ context.Context, sessionID string) ([]trend.LogEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []trend.LogEntry
	for _, e := range m.entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memProgressRepo struct {
	records map[string]*mastery.Record
	err     error
}

func (m *memProgressRepo) Get(_ context.Context, userID, moduleName string) (*mastery.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[userID+"/"+moduleName]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (m *memProgressRepo) List(_ context.Context, userID string) ([]*mastery.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*mastery.Record
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memProgressRepo) Update(_ context.Context, userID, moduleName string, fn func(*mastery.Record) error) (*mastery.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := userID + "/" + moduleName
	rec, ok := m.records[key]
	if !ok {
		rec = mastery.NewRecord(userID, moduleName)
	}
	if err := fn(rec); err != nil {
		return nil, err
	}
	if m.records == nil {
		m.records = map[string]*mastery.Record{}
	}
	m.records[key] = rec
	return rec, nil
}

type fixture struct {
	router   *gin.Engine
	events   *memEventRepo
	logs     *memPerfRepo
	progress *memProgressRepo
}

func newFixture() *fixture {
	f := &fixture{
		events:   &memEventRepo{},
		logs:     &memPerfRepo{},
		progress: &memProgressRepo{records: map[string]*mastery.Record{}},
	}
	svc := engine.New(f.events, f.logs, f.progress, zap.NewNop())
	f.router = Setup(zap.NewNop(), svc)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogEvent_Valid(t *testing.T) {
	f := newFixture()
	body := `{"userId":"u1","sessionId":"s1","moduleName":"addition","eventType":"answer_selected","eventData":{"reactionTime":1500,"isCorrect":true}}`
	w := f.do(t, http.MethodPost, "/api/interactions/event", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, f.events.events, 1)
}

func TestLogEvent_UnknownTypeRejected(t *testing.T) {
	f := newFixture()
	body := `{"userId":"u1","sessionId":"s1","eventType":"telepathy"}`
	w := f.do(t, http.MethodPost, "/api/interactions/event", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Empty(t, f.events.events)
}

func TestLogEvent_IncompletePayloadRejected(t *testing.T) {
	f := newFixture()
	// Schema-valid but missing the fields answer_selected requires.
	body := `{"userId":"u1","sessionId":"s1","eventType":"answer_selected"}`
	w := f.do(t, http.MethodPost, "/api/interactions/event", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogEventsBatch_CountsStoredAndSkipped(t *testing.T) {
	f := newFixture()
	body := `{"events":[
		{"userId":"u1","sessionId":"s1","eventType":"mouse_move"},
		{"userId":"u1","sessionId":"s1","eventType":"answer_selected"}
	]}`
	w := f.do(t, http.MethodPost, "/api/interactions/events/batch", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, float64(1), resp["count"])
	assert.Equal(t, float64(1), resp["skipped"])
}

func TestLogEventsBatch_EmptyRejected(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodPost, "/api/interactions/events/batch", `{"events":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogEventsBatch_SchemaViolationRejectsWholeBatch(t *testing.T) {
	f := newFixture()
	body := `{"events":[
		{"userId":"u1","sessionId":"s1","eventType":"mouse_move"},
		{"sessionId":"s1","eventType":"mouse_move"}
	]}`
	w := f.do(t, http.MethodPost, "/api/interactions/events/batch", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.events.events)
}

func TestSessionMetrics_NotFoundWithoutData(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodGet, "/api/interactions/session/u1/nope/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionMetrics_StoreFailureIs500(t *testing.T) {
	f := newFixture()
	f.events.err = errors.New("disk broke")
	w := f.do(t, http.MethodGet, "/api/interactions/session/u1/s1/metrics", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdaptiveFeedback_Nudge(t *testing.T) {
	f := newFixture()
	body := `{"sessionId":"s1","recentEvents":[
		{"userId":"u1","sessionId":"s1","eventType":"idle_detected","eventData":{"duration":12000}}
	]}`
	w := f.do(t, http.MethodPost, "/api/interactions/adaptive-feedback", body)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, true, data["shouldEncourage"])
	assert.Equal(t, "prompt", data["recommendedAction"])
}

func TestRecommendation_NewLearnerDefaults(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodGet, "/api/adaptive/recommendation/u1/addition", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "easy", data["difficulty"])
	assert.Equal(t, true, data["hintsEnabled"])
	assert.Equal(t, true, data["guidedMode"])
}

func TestTrends_InsufficientDataIs200(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodGet, "/api/adaptive/trends/u1/addition", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "insufficient-data", data["trend"])
}

func TestTrends_BadDaysRejected(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodGet, "/api/adaptive/trends/u1/addition?days=soon", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComprehensiveFeedback_StoreFailureIs500(t *testing.T) {
	f := newFixture()
	f.progress.err = errors.New("connection reset")
	w := f.do(t, http.MethodGet, "/api/adaptive/feedback/u1/addition?sessionId=s1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestComprehensiveFeedback_NoDataStillSucceeds(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodGet, "/api/adaptive/feedback/u1/addition?sessionId=s1", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "insufficient-data", data["performanceTrend"])
	assert.Equal(t, "easy", data["difficulty"])
}

func TestPerformanceLog_GeneratesSessionID(t *testing.T) {
	f := newFixture()
	body := `{"userId":"u1","moduleName":"addition","isCorrect":true,"responseTime":4000}`
	w := f.do(t, http.MethodPost, "/api/performance/log", body)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, f.logs.entries, 1)
	assert.NotEmpty(t, f.logs.entries[0].SessionID)
}

func TestPerformanceLog_MissingUserRejected(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodPost, "/api/performance/log", `{"moduleName":"addition"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionPerformance_SummarizesLogs(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.logs.entries = []trend.LogEntry{
		{UserID: "u1", ModuleName: "addition", SessionID: "s1", IsCorrect: true, ResponseTimeMs: 3000, Timestamp: now},
		{UserID: "u1", ModuleName: "addition", SessionID: "s1", IsCorrect: false, ResponseTimeMs: 5000, Timestamp: now},
	}

	w := f.do(t, http.MethodGet, "/api/performance/session/s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	summary := data["summary"].(map[string]any)
	assert.Equal(t, float64(2), summary["totalQuestions"])
	assert.Equal(t, float64(1), summary["correctAnswers"])
	assert.Equal(t, float64(50), summary["accuracy"])
	assert.Equal(t, float64(4000), summary["averageResponseTime"])
}

func TestSessionPerformance_UnknownSessionIs404(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodGet, "/api/performance/session/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModuleProgress_CreatesDefault(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodGet, "/api/progress/u1/addition", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	progress := data["progress"].(map[string]any)
	assert.Equal(t, "beginner", progress["masteryLevel"])
	assert.Contains(t, f.progress.records, "u1/addition")
}

func TestProgressUpdate_AppliesSession(t *testing.T) {
	f := newFixture()
	body := `{"userId":"u1","moduleName":"addition","sessionData":{"correct":8,"total":10,"responseTime":4200,"difficulty":"medium"}}`
	w := f.do(t, http.MethodPost, "/api/progress/update", body)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	progress := data["progress"].(map[string]any)
	assert.Equal(t, float64(80), progress["accuracy"])
	assert.Equal(t, "proficient", progress["masteryLevel"])
	assert.Equal(t, "medium", progress["currentDifficulty"])
}

func TestProgressUpdate_MissingFieldsRejected(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodPost, "/api/progress/update", `{"userId":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserProgress_OverallStats(t *testing.T) {
	f := newFixture()
	f.progress.records["u1/addition"] = &mastery.Record{
		UserID: "u1", ModuleName: "addition", AccuracyPct: 92,
		MasteryLevel: mastery.Mastered, CompletedSessions: 5, TotalTimeSpentSecs: 600,
	}
	f.progress.records["u1/subtraction"] = &mastery.Record{
		UserID: "u1", ModuleName: "subtraction", AccuracyPct: 60,
		MasteryLevel: mastery.Developing, CompletedSessions: 3, TotalTimeSpentSecs: 300,
	}

	w := f.do(t, http.MethodGet, "/api/progress/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data := resp["data"].(map[string]any)
	stats := data["overallStats"].(map[string]any)
	assert.Equal(t, float64(8), stats["totalSessions"])
	assert.Equal(t, float64(76), stats["averageAccuracy"])
	assert.Equal(t, float64(1), stats["masteredModules"])
	assert.Equal(t, float64(900), stats["totalTimeSpent"])
}
