package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"vfxfolio/internal/content"
	"vfxfolio/internal/database"
)

func TestCreateSkill_DerivesSlugFromTitle(t *testing.T) {
	db := newTestDB(t)
	h := NewSkillsHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodPost, "/v1/skills", map[string]string{
		"title": "Karma XPU Rendering!",
	})
	h.Create(c)
	requireStatus(t, w, http.StatusCreated)

	var got database.Skill
	decodeBody(t, w, &got)
	if got.ID != "karma-xpu-rendering" {
		t.Fatalf("expected derived slug, got %q", got.ID)
	}
	if got.Icon != "✨" || got.Theme != "cyan" {
		t.Fatalf("expected default icon and theme, got %+v", got)
	}
}

func TestCreateSkill_KeepsExplicitSlug(t *testing.T) {
	db := newTestDB(t)
	h := NewSkillsHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodPost, "/v1/skills", map[string]string{
		"id":    "karma",
		"title": "Karma Rendering",
		"theme": "gold",
	})
	h.Create(c)
	requireStatus(t, w, http.StatusCreated)

	var got database.Skill
	decodeBody(t, w, &got)
	if got.ID != "karma" || got.Theme != "gold" {
		t.Fatalf("expected explicit slug and theme preserved, got %+v", got)
	}
}

func TestUpdateSkill_OverwritesBySlug(t *testing.T) {
	db := newTestDB(t)
	h := NewSkillsHandler(content.NewGormStore(db), &fakeToasts{})

	if err := db.Create(&database.Skill{ID: "pyro", Title: "Pyro FX", Theme: "orange"}).Error; err != nil {
		t.Fatalf("seed skill: %v", err)
	}

	c, w := newJSONContext(t, http.MethodPut, "/v1/skills/pyro", map[string]string{
		"title": "Pyro & Combustion",
		"theme": "red",
	})
	c.Params = gin.Params{{Key: "slug", Value: "pyro"}}
	h.Update(c)
	requireStatus(t, w, http.StatusOK)

	var count int64
	if err := db.Model(&database.Skill{}).Count(&count).Error; err != nil {
		t.Fatalf("count skills: %v", err)
	}
	if count != 1 {
		t.Fatalf("update must not create a second row, got %d", count)
	}

	var row database.Skill
	if err := db.First(&row, "id = ?", "pyro").Error; err != nil {
		t.Fatalf("load skill: %v", err)
	}
	if row.Title != "Pyro & Combustion" || row.Theme != "red" {
		t.Fatalf("expected overwritten skill, got %+v", row)
	}
}

func TestDeleteSkill_MissingRowIs404(t *testing.T) {
	db := newTestDB(t)
	h := NewSkillsHandler(content.NewGormStore(db), &fakeToasts{})

	c, w := newJSONContext(t, http.MethodDelete, "/v1/skills/ghost", nil)
	c.Params = gin.Params{{Key: "slug", Value: "ghost"}}
	h.Delete(c)
	requireStatus(t, w, http.StatusNotFound)
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Pyro FX", "pyro-fx"},
		{"  TOPs / PDG  ", "tops-pdg"},
		{"FLIP---Fluids", "flip-fluids"},
		{"日本語", ""},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
