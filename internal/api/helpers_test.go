package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vfxfolio/internal/database"
)

type fakeToasts struct {
	kinds    []string
	messages []string
}

func (f *fakeToasts) Push(_ context.Context, kind, message string) {
	f.kinds = append(f.kinds, kind)
	f.messages = append(f.messages, message)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&database.User{},
		&database.Role{},
		&database.UserRole{},
		&database.HeroContent{},
		&database.AboutContent{},
		&database.ContactInfo{},
		&database.Service{},
		&database.Skill{},
		&database.Project{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedRoles(db); err != nil {
		t.Fatalf("seed roles: %v", err)
	}
	return db
}

func newJSONContext(t *testing.T, method, target string, payload any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d got %d body=%s", want, w.Code, w.Body.String())
	}
}
