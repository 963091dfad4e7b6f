package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-service/api/router"
	"blog-service/models"
	"blog-service/repositories"
	"blog-service/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	store := repositories.NewMemoryPostStore()
	return router.New(services.NewPostService(store), nil)
}

// failingPostStore errors on every operation, standing in for a store whose
// connection is down.
type failingPostStore struct{}

var errStoreDown = errors.New("connection refused")

func (failingPostStore) Insert(ctx context.Context, p *models.Post) (*models.Post, error) {
	return nil, errStoreDown
}

func (failingPostStore) FindAll(ctx context.Context) ([]models.Post, error) {
	return nil, errStoreDown
}

func (failingPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	return nil, errStoreDown
}

func (failingPostStore) UpdateByID(ctx context.Context, id primitive.ObjectID, fields repositories.UpdateFields) error {
	return errStoreDown
}

func (failingPostStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return errStoreDown
}

func newFailingRouter() *gin.Engine {
	return router.New(services.NewPostService(failingPostStore{}), nil)
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createPost(t *testing.T, r *gin.Engine, title, content, first, last string) map[string]any {
	t.Helper()
	w := doJSON(r, "POST", "/posts", map[string]any{
		"title":   title,
		"content": content,
		"author":  map[string]string{"firstName": first, "lastName": last},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestListEmpty(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "GET", "/posts", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateFlattensAuthor(t *testing.T) {
	r := newTestRouter()
	got := createPost(t, r, "Hello", "First post", "Ada", "Lovelace")

	assert.Equal(t, "Hello", got["title"])
	assert.Equal(t, "First post", got["content"])
	assert.Equal(t, "Ada Lovelace", got["author"])
	assert.NotEmpty(t, got["id"])
}

func TestCreateResponseShape(t *testing.T) {
	r := newTestRouter()
	got := createPost(t, r, "Shape", "Body", "Grace", "Hopper")

	assert.Len(t, got, 4)
	for _, key := range []string{"id", "title", "content", "author"} {
		assert.Contains(t, got, key)
	}
}

func TestCreateThenGetByID(t *testing.T) {
	r := newTestRouter()
	created := createPost(t, r, "Roundtrip", "Read me back", "Alan", "Turing")

	w := doJSON(r, "GET", "/posts/"+created["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestGetMissingReturns404(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "GET", "/posts/65f000000000000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// malformed hex reads the same as absent
	w = doJSON(r, "GET", "/posts/not-a-hex-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	r := newTestRouter()
	created := createPost(t, r, "Mars", "Red planet", "Carl", "Sagan")
	id := created["id"].(string)

	w := doJSON(r, "PUT", "/posts/"+id, map[string]any{
		"title":   "Space",
		"content": "Space is so spacious",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(r, "GET", "/posts/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Space", got["title"])
	assert.Equal(t, "Space is so spacious", got["content"])
	assert.Equal(t, "Carl Sagan", got["author"])
	assert.Equal(t, id, got["id"])
}

func TestUpdateWithMatchingBodyID(t *testing.T) {
	r := newTestRouter()
	created := createPost(t, r, "Before", "Body", "Edsger", "Dijkstra")
	id := created["id"].(string)

	w := doJSON(r, "PUT", "/posts/"+id, map[string]any{
		"id":    id,
		"title": "After",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateBodyIDMismatchReturns400(t *testing.T) {
	r := newTestRouter()
	created := createPost(t, r, "Title", "Body", "Barbara", "Liskov")

	w := doJSON(r, "PUT", "/posts/"+created["id"].(string), map[string]any{
		"id":    "65f000000000000000000000",
		"title": "New",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMissingIDIsSilentNoOp(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "PUT", "/posts/65f000000000000000000000", map[string]any{
		"title": "Nobody home",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := newTestRouter()
	created := createPost(t, r, "Doomed", "Short lived", "John", "Backus")
	id := created["id"].(string)

	w := doJSON(r, "DELETE", "/posts/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, "GET", "/posts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// deleting the already-deleted id still succeeds
	w = doJSON(r, "DELETE", "/posts/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListSeededPosts(t *testing.T) {
	r := newTestRouter()
	for i := 0; i < 10; i++ {
		createPost(t, r,
			fmt.Sprintf("Generated post %d", i+1),
			fmt.Sprintf("Generated content %d", i+1),
			"Seed", fmt.Sprintf("Author%d", i+1))
	}

	w := doJSON(r, "GET", "/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 10)
	for _, item := range items {
		assert.Len(t, item, 4)
		assert.IsType(t, "", item["author"])
	}
}

func TestStoreFailureReturns500(t *testing.T) {
	r := newFailingRouter()
	id := "65f000000000000000000000"

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{"GET", "/posts", nil},
		{"POST", "/posts", map[string]any{
			"title":   "Hello",
			"content": "World",
			"author":  map[string]string{"firstName": "Ada", "lastName": "Lovelace"},
		}},
		{"GET", "/posts/" + id, nil},
		{"PUT", "/posts/" + id, map[string]any{"title": "New"}},
		{"DELETE", "/posts/" + id, nil},
	}
	for _, tc := range cases {
		w := doJSON(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", tc.method, tc.path)
		// no body detail beyond the generic message
		assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String(), "%s %s", tc.method, tc.path)
	}
}

func doRawJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMalformedJSONBodyReturns400(t *testing.T) {
	r := newTestRouter()

	w := doRawJSON(r, "POST", "/posts", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRawJSON(r, "PUT", "/posts/65f000000000000000000000", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
