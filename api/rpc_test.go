package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return newRouter(database.New(db), withConfig(map[string]string{}), withStartupTime(time.Now()))
}

func callRPC(t *testing.T, router *chi.Mux, operation string, input any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		require.NoError(t, err)
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(http.MethodPost, "/rpc/"+operation, body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &value))
	return value
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/rpc/healthcheck", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	response := decodeResponse[map[string]any](t, recorder)
	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["timestamp"])
}

func TestUnknownOperation(t *testing.T) {
	router := newTestRouter(t)

	recorder := callRPC(t, router, "launchMissiles", map[string]any{})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestProjectLifecycle(t *testing.T) {
	router := newTestRouter(t)

	recorder := callRPC(t, router, "createProject", map[string]any{
		"title":        "Portfolio",
		"description":  "My site",
		"technologies": []string{"Go", "React"},
		"github_link":  "https://github.com/example/portfolio",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeResponse[models.Project](t, recorder)
	require.NotZero(t, created.ID)
	assert.Equal(t, []string{"Go", "React"}, []string(created.Technologies))
	assert.Nil(t, created.DemoLink)
	assert.False(t, created.Featured)

	// Fetch it back by id
	recorder = callRPC(t, router, "getProjectById", map[string]any{"id": created.ID})
	require.Equal(t, http.StatusOK, recorder.Code)
	fetched := decodeResponse[*models.Project](t, recorder)
	require.NotNil(t, fetched)
	assert.Equal(t, created.ID, fetched.ID)

	// A missing id is a null body, not an error
	recorder = callRPC(t, router, "getProjectById", map[string]any{"id": created.ID + 100})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "null", recorder.Body.String())

	// Patch only the title; everything else is preserved
	recorder = callRPC(t, router, "updateProject", map[string]any{
		"id":    created.ID,
		"title": "Renamed",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeResponse[*models.Project](t, recorder)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "My site", updated.Description)
	require.NotNil(t, updated.GithubLink)
	assert.Equal(t, "https://github.com/example/portfolio", *updated.GithubLink)

	// Explicit null clears a nullable column
	recorder = callRPC(t, router, "updateProject", map[string]any{
		"id":          created.ID,
		"github_link": nil,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	updated = decodeResponse[*models.Project](t, recorder)
	require.NotNil(t, updated)
	assert.Nil(t, updated.GithubLink)

	// Updating a missing id yields null, not an error
	recorder = callRPC(t, router, "updateProject", map[string]any{
		"id":    created.ID + 100,
		"title": "Ghost",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "null", recorder.Body.String())

	// Delete reports true, then false
	recorder = callRPC(t, router, "deleteProject", map[string]any{"id": created.ID})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "true", recorder.Body.String())

	recorder = callRPC(t, router, "deleteProject", map[string]any{"id": created.ID})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "false", recorder.Body.String())
}

func TestCreateProjectValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		input map[string]any
		field string
	}{
		{
			name:  "missing title",
			input: map[string]any{"description": "d", "technologies": []string{"Go"}},
			field: "title",
		},
		{
			name:  "missing description",
			input: map[string]any{"title": "t", "technologies": []string{"Go"}},
			field: "description",
		},
		{
			name:  "empty technologies",
			input: map[string]any{"title": "t", "description": "d", "technologies": []string{}},
			field: "technologies",
		},
		{
			name: "malformed demo link",
			input: map[string]any{
				"title": "t", "description": "d",
				"technologies": []string{"Go"}, "demo_link": "not a url",
			},
			field: "demo_link",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := callRPC(t, router, "createProject", tt.input)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			response := decodeResponse[map[string]any](t, recorder)
			assert.Equal(t, tt.field, response["field"])
		})
	}
}

func TestProjectListOrdering(t *testing.T) {
	router := newTestRouter(t)

	for _, project := range []map[string]any{
		{"title": "plain", "description": "d", "technologies": []string{"Go"}},
		{"title": "starred", "description": "d", "technologies": []string{"Go"}, "featured": true},
	} {
		recorder := callRPC(t, router, "createProject", project)
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/rpc/getProjects", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	projects := decodeResponse[[]models.Project](t, recorder)
	require.Len(t, projects, 2)
	assert.Equal(t, "starred", projects[0].Title, "featured projects come first")
	assert.Equal(t, "plain", projects[1].Title)
}

func TestSkillOperations(t *testing.T) {
	router := newTestRouter(t)

	recorder := callRPC(t, router, "createSkill", map[string]any{
		"name": "New Technology", "category": "Learning", "proficiency_level": 1,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	learning := decodeResponse[models.Skill](t, recorder)

	recorder = callRPC(t, router, "createSkill", map[string]any{
		"name": "Expert Technology", "category": "Mastered", "proficiency_level": 5,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// "Learning" sorts before "Mastered" lexically
	recorder = callRPC(t, router, "getSkills", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	skills := decodeResponse[[]models.Skill](t, recorder)
	require.Len(t, skills, 2)
	assert.Equal(t, "New Technology", skills[0].Name)
	assert.Equal(t, "Expert Technology", skills[1].Name)

	// An id-only update is a no-op returning the stored record
	recorder = callRPC(t, router, "updateSkill", map[string]any{"id": learning.ID})
	require.Equal(t, http.StatusOK, recorder.Code)
	unchanged := decodeResponse[*models.Skill](t, recorder)
	require.NotNil(t, unchanged)
	assert.Equal(t, "New Technology", unchanged.Name)
	assert.Equal(t, 1, unchanged.ProficiencyLevel)

	recorder = callRPC(t, router, "deleteSkill", map[string]any{"id": learning.ID})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "true", recorder.Body.String())
}

func TestCreateSkillProficiencyBounds(t *testing.T) {
	router := newTestRouter(t)

	for _, level := range []int{0, 6} {
		recorder := callRPC(t, router, "createSkill", map[string]any{
			"name": "Go", "category": "Backend", "proficiency_level": level,
		})
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeResponse[map[string]any](t, recorder)
		assert.Equal(t, "proficiency_level", response["field"])
	}
}

func TestContactMessageOperations(t *testing.T) {
	router := newTestRouter(t)

	recorder := callRPC(t, router, "createContactMessage", map[string]any{
		"name": "Alice", "email": "not-an-email", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = callRPC(t, router, "createContactMessage", map[string]any{
		"name": "Alice", "email": "alice@example.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	time.Sleep(10 * time.Millisecond)

	recorder = callRPC(t, router, "createContactMessage", map[string]any{
		"name": "Bob", "email": "bob@example.com", "subject": "Yo", "message": "Later",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = callRPC(t, router, "getContactMessages", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	messages := decodeResponse[[]models.ContactMessage](t, recorder)
	require.Len(t, messages, 2)
	assert.Equal(t, "Bob", messages[0].Name, "newest message first")
	assert.Equal(t, "Alice", messages[1].Name)
}

func TestProfileUpsertFlow(t *testing.T) {
	router := newTestRouter(t)

	// Empty store: getProfile yields a null body
	req := httptest.NewRequest(http.MethodGet, "/rpc/getProfile", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "null", recorder.Body.String())

	// First update creates the record, filling defaults
	recorder = callRPC(t, router, "updateProfile", map[string]any{"name": "X", "location": "Berlin"})
	require.Equal(t, http.StatusOK, recorder.Code)
	created := decodeResponse[models.Profile](t, recorder)
	assert.Equal(t, "X", created.Name)
	assert.Equal(t, "Default Title", created.Title)
	assert.Equal(t, "Default Bio", created.Bio)
	assert.Equal(t, "default@example.com", created.Email)
	require.NotNil(t, created.Location)
	assert.Equal(t, "Berlin", *created.Location)

	// Second update clears location with an explicit null, keeps the rest
	recorder = callRPC(t, router, "updateProfile", map[string]any{"location": nil})
	require.Equal(t, http.StatusOK, recorder.Code)
	patched := decodeResponse[models.Profile](t, recorder)
	assert.Equal(t, created.ID, patched.ID)
	assert.Nil(t, patched.Location)
	assert.Equal(t, "X", patched.Name)
}

func TestUpdateProfileValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		input map[string]any
		field string
	}{
		{"null name", map[string]any{"name": nil}, "name"},
		{"empty bio", map[string]any{"bio": ""}, "bio"},
		{"bad email", map[string]any{"email": "nope"}, "email"},
		{"bad linkedin url", map[string]any{"linkedin_url": "not a url"}, "linkedin_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := callRPC(t, router, "updateProfile", tt.input)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			response := decodeResponse[map[string]any](t, recorder)
			assert.Equal(t, tt.field, response["field"])
		})
	}
}
