package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dkarpov/notes-server/internal/api/http/context"
	"github.com/dkarpov/notes-server/internal/mocks"
	"github.com/dkarpov/notes-server/internal/model"
	"github.com/dkarpov/notes-server/internal/testutil"
)

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["message"]
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokMan := &mocks.TokenManager{}
	m := NewAuthenticate(tokMan, httpctx.NewManager(), testutil.MakeNoopLogger())

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No token provided.", decodeMessage(t, rec))
	assert.False(t, called)
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	m := NewAuthenticate(&mocks.TokenManager{}, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Basic abc123")

	rec := httptest.NewRecorder()
	m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No token provided.", decodeMessage(t, rec))
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokMan := &mocks.TokenManager{}
	tokMan.On("Parse", "bad-token").Return(model.TokenClaims{}, errors.New("signature invalid"))

	m := NewAuthenticate(tokMan, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	rec := httptest.NewRecorder()
	m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token.", decodeMessage(t, rec))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	contextManager := httpctx.NewManager()
	claims := model.TokenClaims{UserID: uuid.New(), Email: "alice@example.com"}

	tokMan := &mocks.TokenManager{}
	tokMan.On("Parse", "good-token").Return(claims, nil)

	m := NewAuthenticate(tokMan, contextManager, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	var gotClaims model.TokenClaims
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, gotOK = contextManager.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, claims, gotClaims)
}
