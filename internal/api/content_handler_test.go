package api

import (
	"net/http"
	"testing"

	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
)

func TestGetHero_FallsBackToDefault(t *testing.T) {
	h := NewContentHandler(content.NewStubStore(), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodGet, "/v1/content/hero", nil)
	h.GetHero(c)

	requireStatus(t, w, http.StatusOK)

	var got database.HeroContent
	decodeBody(t, w, &got)
	want := content.DefaultHero()
	if got.Title != want.Title || got.Subtitle != want.Subtitle {
		t.Fatalf("expected default hero, got %+v", got)
	}
}

func TestSaveHero_RepeatedSavesKeepSingleRow(t *testing.T) {
	db := newTestDB(t)
	toasts := &fakeToasts{}
	h := NewContentHandler(content.NewGormStore(db), toasts)

	for _, title := range []string{"First Title", "Second Title"} {
		c, w := newJSONContext(t, http.MethodPut, "/v1/content/hero", map[string]string{
			"title":    title,
			"subtitle": "sub",
		})
		h.SaveHero(c)
		requireStatus(t, w, http.StatusOK)
	}

	var count int64
	if err := db.Model(&database.HeroContent{}).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single hero row, got %d", count)
	}

	var row database.HeroContent
	if err := db.First(&row, 1).Error; err != nil {
		t.Fatalf("load hero: %v", err)
	}
	if row.Title != "Second Title" {
		t.Fatalf("expected latest title persisted, got %q", row.Title)
	}
	if len(toasts.kinds) != 2 || toasts.messages[0] != "Hero section updated successfully!" {
		t.Fatalf("unexpected toasts: %+v", toasts)
	}
}

func TestSaveHero_ReturnsPersistedRow(t *testing.T) {
	db := newTestDB(t)
	h := NewContentHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodPut, "/v1/content/hero", map[string]string{
		"title": "Showreel 2026",
	})
	h.SaveHero(c)
	requireStatus(t, w, http.StatusOK)

	var got database.HeroContent
	decodeBody(t, w, &got)
	if got.ID != 1 {
		t.Fatalf("expected singleton id 1, got %d", got.ID)
	}
	if got.Title != "Showreel 2026" {
		t.Fatalf("expected persisted title in response, got %q", got.Title)
	}
}

func TestSaveHero_MissingTitleRejected(t *testing.T) {
	db := newTestDB(t)
	toasts := &fakeToasts{}
	h := NewContentHandler(content.NewGormStore(db), toasts)

	c, w := newJSONContext(t, http.MethodPut, "/v1/content/hero", map[string]string{
		"subtitle": "only a subtitle",
	})
	h.SaveHero(c)
	requireStatus(t, w, http.StatusBadRequest)

	var count int64
	if err := db.Model(&database.HeroContent{}).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected save must not persist, got %d rows", count)
	}
	if len(toasts.kinds) != 0 {
		t.Fatalf("rejected save must not push a toast: %+v", toasts)
	}
}

func TestSaveAbout_StubStoreRefusesWrite(t *testing.T) {
	toasts := &fakeToasts{}
	h := NewContentHandler(content.NewStubStore(), toasts)

	c, w := newJSONContext(t, http.MethodPut, "/v1/content/about", map[string]string{
		"bio1": "new bio",
	})
	h.SaveAbout(c)
	requireStatus(t, w, http.StatusServiceUnavailable)

	if len(toasts.kinds) != 1 || toasts.kinds[0] != "error" {
		t.Fatalf("expected a single error toast, got %+v", toasts)
	}
}

func TestSaveContactInfo_InvalidEmailRejected(t *testing.T) {
	db := newTestDB(t)
	h := NewContentHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodPut, "/v1/content/contact-info", map[string]string{
		"email": "not-an-email",
	})
	h.SaveContactInfo(c)
	requireStatus(t, w, http.StatusBadRequest)
}
