package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
)

func TestListServices_EmptyTableFallsBackToDefault(t *testing.T) {
	db := newTestDB(t)
	h := NewServicesHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodGet, "/v1/services", nil)
	h.List(c)
	requireStatus(t, w, http.StatusOK)

	var got []database.Service
	decodeBody(t, w, &got)
	if len(got) != len(content.DefaultServices()) {
		t.Fatalf("expected default services, got %d entries", len(got))
	}
}

func TestCreateService_AssignsID(t *testing.T) {
	db := newTestDB(t)
	toasts := &fakeToasts{}
	h := NewServicesHandler(content.NewGormStore(db), toasts)

	c, w := newJSONContext(t, http.MethodPost, "/v1/services", map[string]string{
		"icon":  "🔥",
		"title": "Pyro FX",
		"desc":  "Fire and smoke",
	})
	h.Create(c)
	requireStatus(t, w, http.StatusCreated)

	var got database.Service
	decodeBody(t, w, &got)
	if got.ID == 0 {
		t.Fatalf("expected database-assigned id, got %+v", got)
	}
	if len(toasts.messages) != 1 || toasts.messages[0] != "Service added successfully!" {
		t.Fatalf("unexpected toasts: %+v", toasts)
	}
}

func TestDeleteService_RemovesExactlyOne(t *testing.T) {
	db := newTestDB(t)
	store := content.NewGormStore(db)
	h := NewServicesHandler(store, &fakeToasts{})

	seed := []database.Service{
		{Title: "Keep Me"},
		{Title: "Delete Me"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed service: %v", err)
		}
	}

	c, w := newJSONContext(t, http.MethodDelete, "/v1/services/2", nil)
	c.Params = gin.Params{{Key: "id", Value: "2"}}
	h.Delete(c)
	c.Writer.WriteHeaderNow()
	requireStatus(t, w, http.StatusNoContent)

	var remaining []database.Service
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("load services: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Title != "Keep Me" {
		t.Fatalf("expected only the other row to survive, got %+v", remaining)
	}
}

func TestDeleteService_MissingRowIs404(t *testing.T) {
	db := newTestDB(t)
	h := NewServicesHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodDelete, "/v1/services/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	h.Delete(c)
	requireStatus(t, w, http.StatusNotFound)
}
