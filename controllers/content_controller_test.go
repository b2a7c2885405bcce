package controllers_test

import (
	"net/http"
	"testing"

	"github.com/mapsearch/api-go/models"
)

func TestBlogSlugCollisions(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 1, "editor", "editor@example.com")

	want := []string{"hello-world", "hello-world-1", "hello-world-2"}
	for i, expected := range want {
		resp := doRequest(r, http.MethodPost, "/api/blogs", map[string]interface{}{
			"title":  "Hello, World!",
			"status": "published",
		}, token)
		if resp.Code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d: %s", i, resp.Code, resp.Body.String())
		}
		blog := decodeBody(t, resp)["blog"].(map[string]interface{})
		if blog["slug"] != expected {
			t.Fatalf("create %d: expected slug %q, got %v", i, expected, blog["slug"])
		}
	}
}

func TestBlogCreateRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	resp := doRequest(r, http.MethodPost, "/api/blogs", map[string]interface{}{"title": "Anon"}, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestListBlogsPublishedAndOrdered(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	for _, b := range []models.Blog{
		{Title: "Second", Slug: "second", Status: models.PostStatusPublished, Order: 2},
		{Title: "First", Slug: "first", Status: models.PostStatusPublished, Order: 1},
		{Title: "Hidden", Slug: "hidden", Status: models.PostStatusDraft, Order: 0},
	} {
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed blog: %v", err)
		}
	}

	resp := doRequest(r, http.MethodGet, "/api/blogs", nil, "")
	blogs := decodeBody(t, resp)["blogs"].([]interface{})
	if len(blogs) != 2 {
		t.Fatalf("expected 2 published blogs, got %d", len(blogs))
	}
	if blogs[0].(map[string]interface{})["title"] != "First" {
		t.Fatalf("expected display order sorting, got %v first", blogs[0].(map[string]interface{})["title"])
	}
}

func TestGetBlogBySlug(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	published := models.Blog{Title: "Live", Slug: "live", Status: models.PostStatusPublished}
	draft := models.Blog{Title: "WIP", Slug: "wip", Status: models.PostStatusDraft}
	db.Create(&published)
	db.Create(&draft)

	resp := doRequest(r, http.MethodGet, "/api/blogs/live", nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for published slug, got %d", resp.Code)
	}

	resp = doRequest(r, http.MethodGet, "/api/blogs/wip", nil, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for draft slug, got %d", resp.Code)
	}

	resp = doRequest(r, http.MethodGet, "/api/blogs/missing", nil, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", resp.Code)
	}
}

func TestUpdateBlogKeepsSlug(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 1, "editor", "editor@example.com")

	blog := models.Blog{Title: "Original", Slug: "original", Status: models.PostStatusPublished}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("failed to seed blog: %v", err)
	}

	resp := doRequest(r, http.MethodPut, "/api/blogs/1", map[string]interface{}{
		"title": "Renamed Entirely",
	}, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var stored models.Blog
	db.First(&stored, blog.ID)
	if stored.Title != "Renamed Entirely" {
		t.Fatalf("expected title update, got %q", stored.Title)
	}
	if stored.Slug != "original" {
		t.Fatalf("slug must not change on update, got %q", stored.Slug)
	}
}

func TestBlogRejectsLegacyStatusAliases(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 1, "editor", "editor@example.com")

	for _, path := range []string{"/api/blogs", "/api/about-posts"} {
		for _, status := range []string{"active", "inactive"} {
			resp := doRequest(r, http.MethodPost, path, map[string]interface{}{
				"title":  "Legacy Status",
				"status": status,
			}, token)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("%s with status %q: expected 400, got %d: %s", path, status, resp.Code, resp.Body.String())
			}
		}
	}

	var blogs, posts int64
	db.Model(&models.Blog{}).Count(&blogs)
	db.Model(&models.AboutPost{}).Count(&posts)
	if blogs != 0 || posts != 0 {
		t.Fatalf("expected nothing stored, got %d blogs and %d about posts", blogs, posts)
	}
}

func TestUpdateBlogKeepsOrderWhenOmitted(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 1, "editor", "editor@example.com")

	blog := models.Blog{Title: "Ranked", Slug: "ranked", Status: models.PostStatusPublished, Order: 7}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("failed to seed blog: %v", err)
	}

	resp := doRequest(r, http.MethodPut, "/api/blogs/1", map[string]interface{}{
		"title": "Ranked Still",
	}, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var stored models.Blog
	db.First(&stored, blog.ID)
	if stored.Order != 7 {
		t.Fatalf("order must survive an update that omits it, got %d", stored.Order)
	}

	resp = doRequest(r, http.MethodPut, "/api/blogs/1", map[string]interface{}{
		"order": 3,
	}, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	db.First(&stored, blog.ID)
	if stored.Order != 3 {
		t.Fatalf("expected explicit order update to 3, got %d", stored.Order)
	}
}

func TestExplicitSlugCollisionRejected(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 1, "editor", "editor@example.com")

	resp := doRequest(r, http.MethodPost, "/api/blogs", map[string]interface{}{
		"title": "Launch Notes",
		"slug":  "launch",
	}, token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doRequest(r, http.MethodPost, "/api/blogs", map[string]interface{}{
		"title": "Another Launch",
		"slug":  "launch",
	}, token)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a taken slug, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestBlogThreadHidesUnapprovedComments(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	blog := models.Blog{Title: "Live", Slug: "live", Status: models.PostStatusPublished}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("failed to seed blog: %v", err)
	}

	approved := models.BlogComment{BlogID: blog.ID, AuthorName: "Ada", CommentText: "visible", IsApproved: true, IsActive: true}
	db.Create(&approved)

	// A zero-valued bool is skipped on insert when the column has a default,
	// so the moderated state is set with an explicit update.
	held := models.BlogComment{BlogID: blog.ID, AuthorName: "Bob", CommentText: "held", IsApproved: true, IsActive: true}
	db.Create(&held)
	db.Model(&held).Update("is_approved", false)

	resp := doRequest(r, http.MethodGet, "/api/blogs/live", nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	blogJSON := decodeBody(t, resp)["blog"].(map[string]interface{})
	comments, _ := blogJSON["comments"].([]interface{})
	if len(comments) != 1 {
		t.Fatalf("expected only the approved comment, got %d", len(comments))
	}
	if comments[0].(map[string]interface{})["comment_text"] != "visible" {
		t.Fatalf("expected the approved comment, got %v", comments[0])
	}
}

func TestPartnerLegacyStatusAliases(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 1, "editor", "editor@example.com")

	resp := doRequest(r, http.MethodPost, "/api/partners", map[string]interface{}{
		"title":  "Acme Corp",
		"status": "active",
	}, token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var stored models.Partner
	db.Where("slug = ?", "acme-corp").First(&stored)
	if stored.Status != models.PostStatusPublished {
		t.Fatalf("expected legacy active to normalize to published, got %q", stored.Status)
	}

	// And it shows up on the published listing.
	resp = doRequest(r, http.MethodGet, "/api/partners", nil, "")
	partners := decodeBody(t, resp)["partners"].([]interface{})
	if len(partners) != 1 {
		t.Fatalf("expected 1 published partner, got %d", len(partners))
	}
}
