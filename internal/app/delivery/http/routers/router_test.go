package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/controllers"
	"github.com/OzanKutlar/Ders-Control/internal/app/delivery/http/middlewares"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/classfiles"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/planner"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/coursestore"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/locker"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/notifier"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	dir := t.TempDir()

	store := coursestore.NewJSONFileStore(filepath.Join(dir, "eklenenders.json"))
	require.NoError(t, store.Save(context.Background(), []models.Course{
		{CourseName: "Intro", Section: "CS101-01", Location: "B101", Schedule: strPtr("MON : 09:00 - 10:50")},
	}))

	downloads := filepath.Join(dir, "Downloads")
	require.NoError(t, os.Mkdir(downloads, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(downloads, "classes.json"),
		[]byte(`[["CS101","Intro","Dr. Ada",["MON : 09:20 - 11:20"],"B101","40"]]`), 0o644))

	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "/api/v1",
			AllowedOrigins:             []string{"*"},
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewPlannerController(logger, planner.NewPlannerUsecase(store, notifier.NewNoopNotifier(), locker.NewMemoryLocker(), logger)),
		controllers.NewClassFileController(logger, classfiles.NewClassFileUsecase(downloads, logger)),
	)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestClassFileRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Lists JSON Files", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/get_json_files", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var files []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &files))
		assert.Equal(t, []string{"classes.json"}, files)
		assert.True(t, strings.HasPrefix(rec.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX))
	})

	t.Run("Loads And Rounds A Class File", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/load_json", `{"filename":"classes.json"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var classes []responses.ProcessedClass
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &classes))
		require.Len(t, classes, 1)
		assert.Equal(t, []string{"MON : 09:00 - 11:30"}, classes[0].TimeSlots)
	})

	t.Run("Missing File", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/load_json", `{"filename":"nope.json"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("Rejects Path Traversal", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/load_json", `{"filename":"../eklenenders.json"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing Filename", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/load_json", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/load_json", `{"filename":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestScheduleRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Check Filters Candidates", func(t *testing.T) {
		body := `{
			"committed": [{"course_name":"Intro","section":"CS101-01","location":"B101","schedule":"MON : 09:00 - 10:50"}],
			"candidates": [
				{"course_name":"Calculus","section":"MATH201-01","location":"C3","schedule":"MON : 10:50 - 12:40"},
				{"course_name":"Physics","section":"PHYS1-01","location":"D1","schedule":"MON : 10:00 - 11:00"},
				{"course_name":"History","section":"HIST-01","location":"E2","schedule":"  "}
			]
		}`
		rec := serve(router, http.MethodPost, "/api/v1/schedule/check", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.Equal(t, constvars.CheckScheduleSuccessMessage, env.Message)

		var check responses.ScheduleCheck
		require.NoError(t, json.Unmarshal(env.Data, &check))
		require.Len(t, check.Fitting, 1)
		assert.Equal(t, "MATH201-01", check.Fitting[0].Code)
		assert.Equal(t, []string{"MON : 10:50 - 12:40"}, check.Fitting[0].TimeSlots)
		require.Len(t, check.Weekly.Days, 5)
		assert.Equal(t, "MON", check.Weekly.Days[0].Day)
		assert.Len(t, check.Weekly.Days[0].Entries, 1)
	})

	t.Run("Check Requires Candidates", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/v1/schedule/check", `{"committed":[],"candidates":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Check Reports Unparseable Candidates", func(t *testing.T) {
		body := `{"committed":[],"candidates":[{"course_name":"Broken","section":"BAD-01","schedule":"MON : 25:00 - 26:00"}]}`
		rec := serve(router, http.MethodPost, "/api/v1/schedule/check", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var check responses.ScheduleCheck
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &check))
		assert.Empty(t, check.Fitting)
		require.Len(t, check.Problems, 1)
		assert.Equal(t, "BAD-01", check.Problems[0].Course)
	})

	t.Run("Fits Reports Conflicts", func(t *testing.T) {
		body := `{
			"committed": [{"course_name":"Intro","section":"CS101-01","location":"B101","schedule":"MON : 09:00 - 10:50"}],
			"slots": [{"day":"MON","start":"10:00","end":"11:00"},{"day":"TUE","start":"10:00","end":"11:00"}]
		}`
		rec := serve(router, http.MethodPost, "/api/v1/schedule/fits", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var check responses.SlotCheck
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &check))
		assert.False(t, check.Fits)
		require.Len(t, check.Slots, 2)
		assert.False(t, check.Slots[0].Fits)
		assert.Equal(t, []string{"CS101-01 - Intro - B101: 09:00 - 10:50"}, check.Slots[0].Conflicts)
		assert.True(t, check.Slots[1].Fits)
	})

	t.Run("Fits Accepts Unknown Days", func(t *testing.T) {
		body := `{"committed":[],"slots":[{"day":"SAT","start":"09:00","end":"10:00"}]}`
		rec := serve(router, http.MethodPost, "/api/v1/schedule/fits", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var check responses.SlotCheck
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &check))
		assert.True(t, check.Fits)
		require.Len(t, check.Slots, 1)
		assert.True(t, check.Slots[0].Fits)
		assert.Empty(t, check.Slots[0].Conflicts)
	})

	t.Run("Fits Rejects Bad Slots", func(t *testing.T) {
		for _, slots := range []string{
			`[{"day":"MON","start":"9:00","end":"11:00"}]`,
			`[{"day":"MON","start":"11:00","end":"10:00"}]`,
			`[]`,
		} {
			rec := serve(router, http.MethodPost, "/api/v1/schedule/fits", `{"slots":`+slots+`}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code, slots)
		}
	})

	t.Run("Weekly Reads The Committed Store", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/schedule/weekly", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var weekly responses.Weekly
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &weekly))
		require.Len(t, weekly.Days, 5)
		require.Len(t, weekly.Days[0].Entries, 1)
		assert.Equal(t, "CS101-01 - Intro - B101: 09:00 - 10:50", weekly.Days[0].Entries[0].Label)
	})
}

func TestRouterMiddlewares(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Unknown Route", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/api/v1/nothing", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, constvars.ErrClientRouteNotFound, decodeEnvelope(t, rec).Message)
	})

	t.Run("Client Request ID Is Echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get_json_files", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "client-123", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("CORS Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/load_json", nil)
		req.Header.Set(constvars.HeaderOrigin, "http://localhost:5500")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "*", rec.Header().Get(constvars.HeaderAccessControlAllowOrigin))
	})

	t.Run("Oversized Body", func(t *testing.T) {
		big := `{"filename":"` + string(bytes.Repeat([]byte("a"), 2<<20)) + `"}`
		rec := serve(router, http.MethodPost, "/load_json", big)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestTimetableImageRoute(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Renders PNG", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/v1/schedule/image",
			`{"selected_courses":[["CS101","Intro","Ada",["MON : 09:00 - 10:50"],"B101","40"]]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.MIMEImagePNG, rec.Header().Get(constvars.HeaderContentType))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
	})

	t.Run("Malformed Selection", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/api/v1/schedule/image", `{"selected_courses":[["CS101"]]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
