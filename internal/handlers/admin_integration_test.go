// admin_integration_test.go exercises the admin write surface against a
// real PostgreSQL database. Tests are skipped if the database is not
// available.
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pressly/goose/v3"

	"coverpress/internal/cache"
	"coverpress/internal/database"
	"coverpress/internal/media"
	"coverpress/internal/models"
	"coverpress/internal/store"
)

// adminApp wires real stores into the admin handler group plus the public
// read endpoints the lifecycle tests verify against.
type adminApp struct {
	db     *sql.DB
	router chi.Router
}

func newAdminApp(t *testing.T) *adminApp {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)
	t.Cleanup(func() { db.Close() })

	resolver := media.NewResolver(nil)
	articleStore := store.NewArticleStore(db)
	pageStore := store.NewPageStore(db)
	companyStore := store.NewCompanyStore(db)

	admin := NewAdmin(
		nil, articleStore,
		store.NewMainPageStore(db), store.NewCategoryStore(db),
		pageStore, store.NewSectionStore(db),
		companyStore, store.NewSiteStore(db), store.NewContactStore(db),
		nil, cache.NewResponseCache(nil, 0),
	)
	public := NewPublic(
		store.NewMainPageStore(db), store.NewCategoryStore(db), articleStore,
		pageStore, store.NewSectionStore(db), companyStore,
		store.NewSiteStore(db), store.NewContactStore(db), nil, resolver,
	)

	r := chi.NewRouter()
	r.Get("/api/pages", public.PagesList)
	r.Get("/api/companies/{slug}", public.CompanyDetail)
	r.Post("/admin/api/pages", admin.PageCreate)
	r.Put("/admin/api/pages/{id}", admin.PageUpdate)
	r.Delete("/admin/api/pages/{id}", admin.PageDelete)
	r.Post("/admin/api/sections", admin.SectionCreate)
	r.Put("/admin/api/sections/{id}", admin.SectionUpdate)
	r.Delete("/admin/api/sections/{id}", admin.SectionDelete)
	r.Post("/admin/api/categories", admin.CategoryCreate)
	r.Put("/admin/api/categories/{id}", admin.CategoryUpdate)
	r.Delete("/admin/api/categories/{id}", admin.CategoryDelete)
	r.Post("/admin/api/main-pages", admin.MainPageCreate)
	r.Put("/admin/api/main-pages/{id}", admin.MainPageUpdate)
	r.Put("/admin/api/homepage", admin.HomepageUpdate)
	r.Put("/admin/api/site-config", admin.SiteConfigUpdate)
	r.Post("/admin/api/videos", admin.VideoCreate)
	r.Put("/admin/api/companies/{id}", admin.CompanyUpdate)
	r.Delete("/admin/api/companies/{id}", admin.CompanyDelete)

	return &adminApp{db: db, router: r}
}

func (app *adminApp) send(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, req)
	return rr
}

func TestAdminPageLifecycle(t *testing.T) {
	app := newAdminApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM pages WHERE slug = 'admin-test-about-us'")
	})

	// Create with a blank slug; it is derived from the title.
	rr := app.send(t, http.MethodPost, "/admin/api/pages",
		`{"title":"Admin Test About Us","page_type":"company","published":true,"show_in_footer":true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got status %d: %s", rr.Code, rr.Body.String())
	}
	var created models.Page
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Slug != "admin-test-about-us" {
		t.Errorf("derived slug = %q, want admin-test-about-us", created.Slug)
	}

	// The published page shows up on the public list.
	rr = app.send(t, http.MethodGet, "/api/pages", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: got status %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"admin-test-about-us"`) {
		t.Error("created page missing from public pages list")
	}

	// Unpublishing removes it from the public read path.
	rr = app.send(t, http.MethodPut, "/admin/api/pages/"+created.ID.String(),
		`{"title":"Admin Test About Us","slug":"admin-test-about-us","page_type":"company","published":false}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got status %d: %s", rr.Code, rr.Body.String())
	}
	found, err := store.NewPageStore(app.db).FindPublishedBySlug("admin-test-about-us")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != nil {
		t.Error("unpublished page still served as published")
	}

	rr = app.send(t, http.MethodDelete, "/admin/api/pages/"+created.ID.String(), "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d", rr.Code)
	}
	var count int
	app.db.QueryRow("SELECT COUNT(*) FROM pages WHERE slug = 'admin-test-about-us'").Scan(&count)
	if count != 0 {
		t.Errorf("page rows after delete = %d, want 0", count)
	}
}

func TestAdminSectionEndpoints(t *testing.T) {
	app := newAdminApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM sections WHERE title LIKE 'Admin Test Section%'")
	})

	rr := app.send(t, http.MethodPost, "/admin/api/sections",
		`{"title":"Admin Test Section How It Works","type":"rich_text","body":"Three steps."}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got status %d: %s", rr.Code, rr.Body.String())
	}
	var created models.Section
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.AnchorID != "admin-test-section-how-it-works" {
		t.Errorf("derived anchor = %q", created.AnchorID)
	}
	if created.Layout != models.LayoutFull {
		t.Errorf("default layout = %q, want full", created.Layout)
	}

	rr = app.send(t, http.MethodPut, "/admin/api/sections/"+created.ID.String(),
		`{"title":"Admin Test Section Renamed","anchor_id":"admin-test-section-how-it-works","type":"rich_text","layout":"split"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got status %d: %s", rr.Code, rr.Body.String())
	}

	rr = app.send(t, http.MethodDelete, "/admin/api/sections/"+created.ID.String(), "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d", rr.Code)
	}
}

func TestAdminCategoryLifecycle(t *testing.T) {
	app := newAdminApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM categories WHERE slug = 'admin-test-liability'")
		app.db.Exec("DELETE FROM main_pages WHERE slug = 'admin-test-cat-page'")
	})

	page, err := store.NewMainPageStore(app.db).Create(&models.MainPage{
		Name: "Admin Test Cat Page", Slug: "admin-test-cat-page",
	})
	if err != nil {
		t.Fatalf("seed main page: %v", err)
	}

	rr := app.send(t, http.MethodPost, "/admin/api/categories",
		`{"parent_page_id":"`+page.ID.String()+`","name":"Admin Test Liability"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got status %d: %s", rr.Code, rr.Body.String())
	}
	var created models.Category
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Slug != "admin-test-liability" {
		t.Errorf("derived slug = %q", created.Slug)
	}

	rr = app.send(t, http.MethodPut, "/admin/api/categories/"+created.ID.String(),
		`{"parent_page_id":"`+page.ID.String()+`","name":"Admin Test Liability Renamed","slug":"admin-test-liability"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got status %d: %s", rr.Code, rr.Body.String())
	}
	reloaded, err := store.NewCategoryStore(app.db).FindByID(created.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Name != "Admin Test Liability Renamed" {
		t.Errorf("name after update = %q", reloaded.Name)
	}

	rr = app.send(t, http.MethodDelete, "/admin/api/categories/"+created.ID.String(), "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d", rr.Code)
	}
	gone, err := store.NewCategoryStore(app.db).FindByID(created.ID)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if gone != nil {
		t.Error("category still present after delete")
	}
}

func TestAdminMainPageUpdate(t *testing.T) {
	app := newAdminApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM main_pages WHERE slug = 'admin-test-nav'")
	})

	rr := app.send(t, http.MethodPost, "/admin/api/main-pages",
		`{"name":"Admin Test Nav","show_in_header":true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got status %d: %s", rr.Code, rr.Body.String())
	}
	var created models.MainPage
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Slug != "admin-test-nav" {
		t.Errorf("derived slug = %q", created.Slug)
	}

	rr = app.send(t, http.MethodPut, "/admin/api/main-pages/"+created.ID.String(),
		`{"name":"Admin Test Nav","slug":"admin-test-nav","order":7,"has_dropdown":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got status %d: %s", rr.Code, rr.Body.String())
	}
	reloaded, err := store.NewMainPageStore(app.db).FindBySlug("admin-test-nav")
	if err != nil || reloaded == nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Order != 7 || !reloaded.HasDropdown {
		t.Errorf("after update: order=%d dropdown=%v", reloaded.Order, reloaded.HasDropdown)
	}

	// Unknown IDs 404 instead of upserting.
	rr = app.send(t, http.MethodPut, "/admin/api/main-pages/00000000-0000-0000-0000-000000000000",
		`{"name":"Nobody"}`)
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown id: got status %d, want 404", rr.Code)
	}
}

func TestAdminHomepageUpsertKeepsIdentity(t *testing.T) {
	app := newAdminApp(t)
	site := store.NewSiteStore(app.db)

	// Restore whatever the row held before the test.
	before, err := site.Homepage()
	if err != nil {
		t.Fatalf("load homepage: %v", err)
	}
	t.Cleanup(func() {
		if before != nil {
			site.SaveHomepage(before)
		} else {
			app.db.Exec("DELETE FROM homepage")
		}
	})

	rr := app.send(t, http.MethodPut, "/admin/api/homepage",
		`{"meta_title":"Admin Test Home","cta_text":"Get Quotes"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("first save: got status %d: %s", rr.Code, rr.Body.String())
	}
	first, err := site.Homepage()
	if err != nil || first == nil {
		t.Fatalf("reload: %v", err)
	}
	if first.MetaTitle != "Admin Test Home" {
		t.Errorf("meta_title = %q", first.MetaTitle)
	}

	rr = app.send(t, http.MethodPut, "/admin/api/homepage",
		`{"meta_title":"Admin Test Home Again"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("second save: got status %d: %s", rr.Code, rr.Body.String())
	}
	second, err := site.Homepage()
	if err != nil || second == nil {
		t.Fatalf("reload: %v", err)
	}
	if second.ID != first.ID {
		t.Error("homepage singleton changed identity on upsert")
	}
	if second.MetaTitle != "Admin Test Home Again" {
		t.Errorf("meta_title after second save = %q", second.MetaTitle)
	}
}

func TestAdminSiteConfigUpsert(t *testing.T) {
	app := newAdminApp(t)
	site := store.NewSiteStore(app.db)

	before, err := site.SiteConfig()
	if err != nil {
		t.Fatalf("load site config: %v", err)
	}
	t.Cleanup(func() {
		if before != nil {
			site.SaveSiteConfig(before)
		} else {
			app.db.Exec("DELETE FROM site_config")
		}
	})

	rr := app.send(t, http.MethodPut, "/admin/api/site-config",
		`{"brand_name":"Admin Test Brand","email":"hello@example.com","company_address":"1 Test Way"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("save: got status %d: %s", rr.Code, rr.Body.String())
	}
	cfg, err := site.SiteConfig()
	if err != nil || cfg == nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.BrandName != "Admin Test Brand" || cfg.CompanyAddress != "1 Test Way" {
		t.Errorf("after save: brand=%q address=%q", cfg.BrandName, cfg.CompanyAddress)
	}

	// A bad payload is rejected before touching the row.
	rr = app.send(t, http.MethodPut, "/admin/api/site-config",
		`{"brand_name":"","email":"not-an-email"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid payload: got status %d, want 422", rr.Code)
	}
}

func TestAdminVideoCreate(t *testing.T) {
	app := newAdminApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM video_placements WHERE title = 'Admin Test Video'")
	})

	rr := app.send(t, http.MethodPost, "/admin/api/videos",
		`{"position":"below_hero","title":"Admin Test Video","video_url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ","published":true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got status %d: %s", rr.Code, rr.Body.String())
	}

	videos, err := store.NewSiteStore(app.db).ListVideoPlacements()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var found bool
	for _, v := range videos {
		if v.Title == "Admin Test Video" {
			found = true
		}
	}
	if !found {
		t.Error("created video missing from published placements")
	}
}

func TestAdminCompanyUpdateAndDelete(t *testing.T) {
	app := newAdminApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM insurance_companies WHERE slug = 'admin-test-mutual'")
	})

	companies := store.NewCompanyStore(app.db)
	created, err := companies.Create(&models.InsuranceCompany{
		Name: "Admin Test Mutual", Slug: "admin-test-mutual", Published: false,
	})
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}

	// Unpublished insurers are invisible on the public detail route.
	rr := app.send(t, http.MethodGet, "/api/companies/admin-test-mutual", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unpublished detail: got status %d, want 404", rr.Code)
	}

	rr = app.send(t, http.MethodPut, "/admin/api/companies/"+created.ID.String(),
		`{"name":"Admin Test Mutual","slug":"admin-test-mutual","rating":4.5,"published":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got status %d: %s", rr.Code, rr.Body.String())
	}

	rr = app.send(t, http.MethodGet, "/api/companies/admin-test-mutual", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("published detail: got status %d: %s", rr.Code, rr.Body.String())
	}
	var view struct {
		Slug   string   `json:"slug"`
		Rating *float64 `json:"rating"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Slug != "admin-test-mutual" || view.Rating == nil || *view.Rating != 4.5 {
		t.Errorf("detail after update: %+v", view)
	}

	rr = app.send(t, http.MethodDelete, "/admin/api/companies/"+created.ID.String(), "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d", rr.Code)
	}
	gone, err := companies.FindBySlug("admin-test-mutual")
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if gone != nil {
		t.Error("company still present after delete")
	}
}
