package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dkarpov/notes-server/internal/api/http/context"
	"github.com/dkarpov/notes-server/internal/model"
	"github.com/dkarpov/notes-server/internal/service"
	"github.com/dkarpov/notes-server/internal/testutil"
)

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) Create(ctx context.Context, params service.CreateNoteParams) (model.Note, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockNoteService) List(ctx context.Context, ownerID uuid.UUID, query service.ListQuery) (model.NotePage, error) {
	args := m.Called(ctx, ownerID, query)
	return args.Get(0).(model.NotePage), args.Error(1)
}

func (m *mockNoteService) Get(ctx context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockNoteService) Update(ctx context.Context, ownerID, id uuid.UUID, params service.UpdateNoteParams) (model.Note, error) {
	args := m.Called(ctx, ownerID, id, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *mockNoteService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

var contextManager = httpctx.NewManager()

// authedRequest builds a request carrying claims the way the authenticate
// middleware would have injected them.
func authedRequest(method, target string, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ctx := contextManager.SetClaimsToContext(req.Context(), model.TokenClaims{
		UserID: userID,
		Email:  "alice@example.com",
	})
	return req.WithContext(ctx)
}

func sampleNote(ownerID uuid.UUID) model.Note {
	now := time.Now().Truncate(time.Second)
	return model.Note{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "Groceries",
		Content:   "milk, eggs",
		Tags:      []string{"shopping"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNoteHandler_Create_Success(t *testing.T) {
	ownerID := uuid.New()
	note := sampleNote(ownerID)

	svc := &mockNoteService{}
	svc.On("Create", mock.Anything, service.CreateNoteParams{
		OwnerID: ownerID,
		Title:   "Groceries",
		Content: "milk, eggs",
		Tags:    []string{"shopping"},
	}).Return(note, nil)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/notes",
		`{"title":"Groceries","content":"milk, eggs","tags":["shopping"]}`, ownerID))

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Note created successfully.", body["message"])

	noteBody, ok := body["note"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, note.ID.String(), noteBody["id"])
	assert.Equal(t, "Groceries", noteBody["title"])
	assert.NotContains(t, noteBody, "ownerId")
}

func TestNoteHandler_Create_NoClaims(t *testing.T) {
	h := NewNote(&mockNoteService{}, contextManager, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(`{"title":"t","content":"c"}`))

	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNoteHandler_Create_ValidationError(t *testing.T) {
	ownerID := uuid.New()
	svc := &mockNoteService{}
	svc.On("Create", mock.Anything, mock.Anything).
		Return(model.Note{}, model.NewValidationError("title and content are required"))

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/notes", `{"title":"","content":""}`, ownerID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title and content are required", decodeBody(t, rec)["message"])
}

func TestNoteHandler_List_QueryParsing(t *testing.T) {
	ownerID := uuid.New()

	svc := &mockNoteService{}
	svc.On("List", mock.Anything, ownerID, service.ListQuery{
		Tag:   "work",
		Tags:  []string{"a", "b"},
		Page:  2,
		Limit: 5,
	}).Return(model.NotePage{
		Notes:       []model.Note{sampleNote(ownerID)},
		CurrentPage: 2,
		TotalPages:  3,
		TotalNotes:  11,
		HasNext:     true,
		HasPrev:     true,
	}, nil)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/notes?tag=work&tags=a,b&page=2&limit=5", "", ownerID))

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, float64(11), pagination["totalNotes"])
	assert.Equal(t, true, pagination["hasNext"])
	assert.Equal(t, true, pagination["hasPrev"])

	notes, ok := body["notes"].([]any)
	require.True(t, ok)
	assert.Len(t, notes, 1)
}

func TestNoteHandler_List_EmptyPageSerializesAsArray(t *testing.T) {
	ownerID := uuid.New()

	svc := &mockNoteService{}
	svc.On("List", mock.Anything, ownerID, service.ListQuery{}).
		Return(model.NotePage{Notes: []model.Note{}, CurrentPage: 1}, nil)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/notes", "", ownerID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notes":[]`)
}

func TestNoteHandler_Get_Success(t *testing.T) {
	ownerID := uuid.New()
	note := sampleNote(ownerID)

	svc := &mockNoteService{}
	svc.On("Get", mock.Anything, ownerID, note.ID).Return(note, nil)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodGet, "/notes/"+note.ID.String(), "", ownerID)
	req.SetPathValue("id", note.ID.String())

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "message")
}

func TestNoteHandler_Get_MalformedID(t *testing.T) {
	ownerID := uuid.New()
	svc := &mockNoteService{}

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodGet, "/notes/not-a-uuid", "", ownerID)
	req.SetPathValue("id", "not-a-uuid")

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found.", decodeBody(t, rec)["message"])
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestNoteHandler_Get_OtherOwnersNote(t *testing.T) {
	ownerID := uuid.New()
	noteID := uuid.New()

	svc := &mockNoteService{}
	svc.On("Get", mock.Anything, ownerID, noteID).Return(model.Note{}, model.ErrNotFound)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodGet, "/notes/"+noteID.String(), "", ownerID)
	req.SetPathValue("id", noteID.String())

	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteHandler_Update_Success(t *testing.T) {
	ownerID := uuid.New()
	note := sampleNote(ownerID)

	svc := &mockNoteService{}
	svc.On("Update", mock.Anything, ownerID, note.ID, service.UpdateNoteParams{
		Title: "New title",
	}).Return(note, nil)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodPut, "/notes/"+note.ID.String(), `{"title":"New title"}`, ownerID)
	req.SetPathValue("id", note.ID.String())

	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Note updated successfully.", decodeBody(t, rec)["message"])
}

func TestNoteHandler_Update_NotFound(t *testing.T) {
	ownerID := uuid.New()
	noteID := uuid.New()

	svc := &mockNoteService{}
	svc.On("Update", mock.Anything, ownerID, noteID, mock.Anything).
		Return(model.Note{}, model.ErrNotFound)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodPut, "/notes/"+noteID.String(), `{"title":"x"}`, ownerID)
	req.SetPathValue("id", noteID.String())

	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteHandler_Delete_Success(t *testing.T) {
	ownerID := uuid.New()
	noteID := uuid.New()

	svc := &mockNoteService{}
	svc.On("Delete", mock.Anything, ownerID, noteID).Return(nil)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodDelete, "/notes/"+noteID.String(), "", ownerID)
	req.SetPathValue("id", noteID.String())

	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Note deleted successfully.", body["message"])
}

func TestNoteHandler_Delete_NotFound(t *testing.T) {
	ownerID := uuid.New()
	noteID := uuid.New()

	svc := &mockNoteService{}
	svc.On("Delete", mock.Anything, ownerID, noteID).Return(model.ErrNotFound)

	h := NewNote(svc, contextManager, testutil.MakeNoopLogger())

	req := authedRequest(http.MethodDelete, "/notes/"+noteID.String(), "", ownerID)
	req.SetPathValue("id", noteID.String())

	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
