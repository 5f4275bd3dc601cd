package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testCtx() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestSuccessWritesEnvelope(t *testing.T) {
	c, w := testCtx()
	c.Set("request_id", "req-123")

	resp := Success(c, http.StatusCreated, map[string]string{"id": "abc"}, "created", nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d, want 201", w.Code)
	}
	if !resp.Success || resp.RequestID != "req-123" {
		t.Fatalf("envelope = %+v", resp)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != true || body["message"] != "created" {
		t.Fatalf("body = %v", body)
	}
}

func TestErrorBuildsWithoutWriting(t *testing.T) {
	c, w := testCtx()

	resp := Error[any](c, http.StatusNotFound, "missing", map[string]string{"id": "unknown"})

	if w.Body.Len() != 0 {
		t.Fatalf("Error wrote to the response: %s", w.Body.String())
	}
	if resp.Success || resp.Status != http.StatusNotFound || resp.Message != "missing" {
		t.Fatalf("envelope = %+v", resp)
	}
}

func TestZeroStatusDefaults(t *testing.T) {
	c, _ := testCtx()
	if got := Success(c, 0, "x", "ok", nil); got.Status != http.StatusOK {
		t.Fatalf("Success status = %d, want 200", got.Status)
	}

	c2, _ := testCtx()
	if got := Error[any](c2, 0, "bad", nil); got.Status != http.StatusBadRequest {
		t.Fatalf("Error status = %d, want 400", got.Status)
	}
}
