package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rprasanth/content-journal/backend/internal/domain"
	"github.com/rprasanth/content-journal/backend/internal/handler"
)

// mockEntryServicer is a test double for handler.EntryServicer.
// Set only the method fields your test needs.
type mockEntryServicer struct {
	create func(ctx context.Context, owner, content string) (domain.Entry, error)
	list   func(ctx context.Context, owner string) ([]domain.Entry, error)
	update func(ctx context.Context, id uuid.UUID, content string) (domain.Entry, error)
	delete func(ctx context.Context, id uuid.UUID) error
	stats  func(ctx context.Context, owner string) (domain.UserStats, error)
}

func (m *mockEntryServicer) Create(ctx context.Context, owner, content string) (domain.Entry, error) {
	return m.create(ctx, owner, content)
}
func (m *mockEntryServicer) List(ctx context.Context, owner string) ([]domain.Entry, error) {
	return m.list(ctx, owner)
}
func (m *mockEntryServicer) Update(ctx context.Context, id uuid.UUID, content string) (domain.Entry, error) {
	return m.update(ctx, id, content)
}
func (m *mockEntryServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockEntryServicer) Stats(ctx context.Context, owner string) (domain.UserStats, error) {
	return m.stats(ctx, owner)
}

// compile-time check: mockEntryServicer must satisfy handler.EntryServicer.
var _ handler.EntryServicer = (*mockEntryServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into the chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(entries handler.EntryServicer) http.Handler {
	return handler.NewServer(entries, nil).Routes()
}

func entryFixture() domain.Entry {
	return domain.Entry{
		ID:        uuid.New(),
		Owner:     "ramprasanth",
		Content:   "test content",
		CreatedAt: time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// ---- GET /api/todos --------------------------------------------------------

func TestListEntries_200(t *testing.T) {
	entries := []domain.Entry{entryFixture(), entryFixture()}
	svc := &mockEntryServicer{
		list: func(_ context.Context, _ string) ([]domain.Entry, error) { return entries, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestListEntries_200_UserParamForwarded(t *testing.T) {
	var gotOwner string
	svc := &mockEntryServicer{
		list: func(_ context.Context, owner string) ([]domain.Entry, error) {
			gotOwner = owner
			return []domain.Entry{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/todos?user=shoban", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shoban", gotOwner)
}

func TestListEntries_200_Empty(t *testing.T) {
	svc := &mockEntryServicer{
		list: func(_ context.Context, _ string) ([]domain.Entry, error) { return []domain.Entry{}, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Must be a JSON array, not null.
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListEntries_400_UnknownUser(t *testing.T) {
	svc := &mockEntryServicer{
		list: func(_ context.Context, _ string) ([]domain.Entry, error) {
			return nil, fmt.Errorf("service.EntryService.List: %w: unknown user", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/todos?user=stranger", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "unknown user", resp.Error.Message)
}

// ---- POST /api/todos -------------------------------------------------------

func TestCreateEntry_201(t *testing.T) {
	fixture := entryFixture()
	svc := &mockEntryServicer{
		create: func(_ context.Context, _, _ string) (domain.Entry, error) { return fixture, nil },
	}

	body := jsonBody(t, map[string]any{"user": "ramprasanth", "content": "test content"})
	req := httptest.NewRequest(http.MethodPost, "/api/todos", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, fixture.Owner, resp.Owner)
}

func TestCreateEntry_400_ValidationError(t *testing.T) {
	svc := &mockEntryServicer{
		create: func(_ context.Context, _, _ string) (domain.Entry, error) {
			return domain.Entry{}, fmt.Errorf("service.EntryService.Create: %w: content is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"user": "ramprasanth", "content": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/todos", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "content is required", resp.Error.Message)
}

func TestCreateEntry_400_MalformedBody(t *testing.T) {
	svc := &mockEntryServicer{}

	req := httptest.NewRequest(http.MethodPost, "/api/todos", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- PUT /api/todos/{id} ---------------------------------------------------

func TestUpdateEntry_200(t *testing.T) {
	fixture := entryFixture()
	svc := &mockEntryServicer{
		update: func(_ context.Context, id uuid.UUID, content string) (domain.Entry, error) {
			fixture.ID = id
			fixture.Content = content
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{"content": "revised"})
	req := httptest.NewRequest(http.MethodPut, "/api/todos/"+fixture.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "revised", resp.Content)
}

func TestUpdateEntry_404_UnknownID(t *testing.T) {
	svc := &mockEntryServicer{
		update: func(_ context.Context, _ uuid.UUID, _ string) (domain.Entry, error) {
			return domain.Entry{}, fmt.Errorf("repo.EntryRepo.UpdateContent: %w", domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{"content": "revised"})
	req := httptest.NewRequest(http.MethodPut, "/api/todos/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateEntry_404_MalformedID(t *testing.T) {
	svc := &mockEntryServicer{}

	body := jsonBody(t, map[string]any{"content": "revised"})
	req := httptest.NewRequest(http.MethodPut, "/api/todos/not-a-uuid", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /api/todos/{id} ------------------------------------------------

func TestDeleteEntry_200(t *testing.T) {
	svc := &mockEntryServicer{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/todos/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"entry deleted"}`, rec.Body.String())
}

func TestDeleteEntry_404_UnknownID(t *testing.T) {
	svc := &mockEntryServicer{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return fmt.Errorf("repo.EntryRepo.Delete: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/todos/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "not_found", resp.Error.Code)
}

// ---- GET /api/todos/stats/{user} -------------------------------------------

func TestGetStats_200(t *testing.T) {
	recent := []domain.Entry{entryFixture()}
	svc := &mockEntryServicer{
		stats: func(_ context.Context, owner string) (domain.UserStats, error) {
			assert.Equal(t, "varsha", owner)
			return domain.UserStats{TotalEntries: 7, ActiveDays: 3, RecentEntries: recent}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/todos/stats/varsha", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.UserStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 7, resp.TotalEntries)
	assert.Equal(t, 3, resp.ActiveDays)
	assert.Len(t, resp.RecentEntries, 1)
}

func TestGetStats_400_UnknownUser(t *testing.T) {
	svc := &mockEntryServicer{
		stats: func(_ context.Context, _ string) (domain.UserStats, error) {
			return domain.UserStats{}, fmt.Errorf("service.EntryService.Stats: %w: unknown user", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/todos/stats/stranger", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
