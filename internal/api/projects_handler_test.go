package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
)

func TestListProjects_EmptyTableIsEmptyList(t *testing.T) {
	db := newTestDB(t)
	h := NewProjectsHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodGet, "/v1/projects", nil)
	h.List(c)
	requireStatus(t, w, http.StatusOK)

	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty json array, got %s", body)
	}
}

func TestListProjects_OrderedByOrderIndex(t *testing.T) {
	db := newTestDB(t)
	h := NewProjectsHandler(content.NewGormStore(db), &fakeToasts{})

	seed := []database.Project{
		{Title: "Later", OrderIndex: 5},
		{Title: "First", OrderIndex: 1},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed project: %v", err)
		}
	}

	c, w := newJSONContext(t, http.MethodGet, "/v1/projects", nil)
	h.List(c)
	requireStatus(t, w, http.StatusOK)

	var got []database.Project
	decodeBody(t, w, &got)
	if len(got) != 2 || got[0].Title != "First" || got[1].Title != "Later" {
		t.Fatalf("expected order_index ascending, got %+v", got)
	}
}

func TestCreateProject_PersistsTags(t *testing.T) {
	db := newTestDB(t)
	h := NewProjectsHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodPost, "/v1/projects", map[string]any{
		"title": "City Destruction",
		"tags":  []string{"Houdini", "RBD"},
	})
	h.Create(c)
	requireStatus(t, w, http.StatusCreated)

	var got database.Project
	decodeBody(t, w, &got)
	if got.ID == 0 {
		t.Fatalf("expected database-assigned id, got %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "Houdini" {
		t.Fatalf("expected tags persisted, got %+v", got.Tags)
	}
}

func TestUpdateProject_OverwritesRow(t *testing.T) {
	db := newTestDB(t)
	h := NewProjectsHandler(content.NewGormStore(db), &fakeToasts{})

	seed := database.Project{Title: "Old", Tags: datatypes.NewJSONSlice([]string{"old"})}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	c, w := newJSONContext(t, http.MethodPut, "/v1/projects/1", map[string]any{
		"title":       "New",
		"order_index": 3,
	})
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.Update(c)
	requireStatus(t, w, http.StatusOK)

	var row database.Project
	if err := db.First(&row, seed.ID).Error; err != nil {
		t.Fatalf("load project: %v", err)
	}
	if row.Title != "New" || row.OrderIndex != 3 {
		t.Fatalf("expected overwritten project, got %+v", row)
	}
}

func TestGetProject_MissingRowIs404(t *testing.T) {
	db := newTestDB(t)
	h := NewProjectsHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodGet, "/v1/projects/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	h.Get(c)
	requireStatus(t, w, http.StatusNotFound)
}
