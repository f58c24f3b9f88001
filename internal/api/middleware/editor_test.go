package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeRoleChecker struct {
	isEditor bool
	err      error
}

func (f *fakeRoleChecker) IsEditor(context.Context, uint) (bool, error) {
	return f.isEditor, f.err
}

func performEditorRequest(t *testing.T, checker RoleChecker, setUserID bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", func(c *gin.Context) {
		if setUserID {
			c.Set("userID", uint(1))
		}
		c.Next()
	}, RequireEditorMiddleware(checker), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequireEditor_AllowsEditor(t *testing.T) {
	w := performEditorRequest(t, &fakeRoleChecker{isEditor: true}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRequireEditor_DeniesNonEditor(t *testing.T) {
	w := performEditorRequest(t, &fakeRoleChecker{isEditor: false}, true)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
}

func TestRequireEditor_QueryErrorDenies(t *testing.T) {
	// 角色查询失败不是放行的理由。
	w := performEditorRequest(t, &fakeRoleChecker{isEditor: true, err: errors.New("connection refused")}, true)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
}

func TestRequireEditor_MissingUserIDUnauthorized(t *testing.T) {
	w := performEditorRequest(t, &fakeRoleChecker{isEditor: true}, false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}
