// integration_test.go exercises the public handlers against a real
// PostgreSQL database. Tests are skipped if the database is not available.
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"coverpress/internal/articles"
	"coverpress/internal/database"
	"coverpress/internal/feed"
	"coverpress/internal/media"
	"coverpress/internal/models"
	"coverpress/internal/store"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "coverpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "coverpress")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testApp wires real stores over the test database into a public handler
// group mounted on a minimal router.
type testApp struct {
	db     *sql.DB
	router chi.Router
}

func newTestApp(t *testing.T) *testApp {
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

	articleStore := store.NewArticleStore(db)
	categoryStore := store.NewCategoryStore(db)
	resolver := media.NewResolver(nil)

	public := NewPublic(
		store.NewMainPageStore(db),
		categoryStore,
		articleStore,
		store.NewPageStore(db),
		store.NewSectionStore(db),
		store.NewCompanyStore(db),
		store.NewSiteStore(db),
		store.NewContactStore(db),
		feed.NewService(articleStore, categoryStore, resolver),
		resolver,
	)

	r := chi.NewRouter()
	r.Get("/api/quotes", public.Quotes)
	r.Get("/api/blogs", public.BlogsList)
	r.Get("/api/blogs/{slug}", public.BlogDetail)
	r.Get("/api/menu/footer", public.FooterMenu)
	r.Post("/api/contact", public.ContactSubmit)

	return &testApp{db: db, router: r}
}

func (app *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, req)
	return rr
}

func TestQuotesMatchesSeededCoverage(t *testing.T) {
	app := newTestApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM insurance_companies WHERE slug IN ('handler-test-statewide', 'handler-test-range')")
	})

	companies := store.NewCompanyStore(app.db)
	statewide, err := companies.Create(&models.InsuranceCompany{
		Name: "Handler Test Statewide", Slug: "handler-test-statewide", Published: true,
	})
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	if _, err := companies.CreateCoverage(&models.InsuranceCoverage{
		CompanyID: statewide.ID, StateCode: "NH", CoversEntireState: true,
	}); err != nil {
		t.Fatalf("create coverage: %v", err)
	}
	ranged, err := companies.Create(&models.InsuranceCompany{
		Name: "Handler Test Range", Slug: "handler-test-range", Published: true,
	})
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	start, end := 75000, 75999
	if _, err := companies.CreateCoverage(&models.InsuranceCoverage{
		CompanyID: ranged.ID, StateCode: "TX", ZipRangeStart: &start, ZipRangeEnd: &end,
	}); err != nil {
		t.Fatalf("create coverage: %v", err)
	}

	// Dallas ZIP hits the range rule but not the NH statewide rule.
	rr := app.get(t, "/api/quotes?zip=75201")
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		OK        bool   `json:"ok"`
		Zip       string `json:"zip"`
		Count     int    `json:"count"`
		Companies []struct {
			Slug string `json:"slug"`
		} `json:"companies"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK {
		t.Error("ok = false on a successful lookup")
	}
	if resp.Zip != "75201" {
		t.Errorf("zip echoed as %q, want 75201", resp.Zip)
	}
	if resp.Count != len(resp.Companies) {
		t.Errorf("count = %d, companies = %d", resp.Count, len(resp.Companies))
	}
	var sawRange, sawStatewide bool
	for _, c := range resp.Companies {
		switch c.Slug {
		case "handler-test-range":
			sawRange = true
		case "handler-test-statewide":
			sawStatewide = true
		}
	}
	if !sawRange {
		t.Error("range-covered insurer missing from quotes")
	}
	if sawStatewide {
		t.Error("NH statewide insurer matched a TX ZIP")
	}

	// An invalid ZIP degrades to the full published list.
	rr = app.get(t, "/api/quotes?zip=nope")
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	sawRange, sawStatewide = false, false
	for _, c := range resp.Companies {
		switch c.Slug {
		case "handler-test-range":
			sawRange = true
		case "handler-test-statewide":
			sawStatewide = true
		}
	}
	if !sawRange || !sawStatewide {
		t.Error("invalid ZIP should return all published insurers")
	}
}

func TestBlogDetailNotFound(t *testing.T) {
	app := newTestApp(t)

	rr := app.get(t, "/api/blogs/handler-test-no-such-slug")
	if rr.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rr.Code)
	}
}

func TestBlogDetailServesArticle(t *testing.T) {
	app := newTestApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM articles WHERE slug = 'handler-test-article'")
		app.db.Exec("DELETE FROM main_pages WHERE slug = 'handler-test-page'")
	})

	page, err := store.NewMainPageStore(app.db).Create(&models.MainPage{
		Name: "Handler Test Page", Slug: "handler-test-page",
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	content := "# Minimums\n\nEvery state sets its own floor."
	if _, err := store.NewArticleStore(app.db).Create(&models.Article{
		Title: "Handler Test Article", Slug: "handler-test-article",
		Content: &content, ParentPageID: &page.ID, Published: true,
	}); err != nil {
		t.Fatalf("create article: %v", err)
	}

	rr := app.get(t, "/api/blogs/handler-test-article")
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}
	// The detail body is wrapped under an item key.
	var resp struct {
		Item struct {
			Slug        string `json:"slug"`
			Source      string `json:"source"`
			ContentHTML string `json:"content_html"`
		} `json:"item"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Item.Slug != "handler-test-article" || resp.Item.Source != "article" {
		t.Errorf("unexpected detail: %+v", resp.Item)
	}
	if !strings.Contains(resp.Item.ContentHTML, "<h1") {
		t.Errorf("markdown not rendered: %q", resp.Item.ContentHTML)
	}
}

func TestBlogsListNestsPagination(t *testing.T) {
	app := newTestApp(t)

	rr := app.get(t, "/api/blogs?page_size=5")
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Items      []json.RawMessage `json:"items"`
		Pagination struct {
			CurrentPage int `json:"current_page"`
			PageSize    int `json:"page_size"`
			TotalPages  int `json:"total_pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Pagination.CurrentPage != 1 || resp.Pagination.PageSize != 5 {
		t.Errorf("pagination block: %+v", resp.Pagination)
	}
	if resp.Pagination.TotalPages < 1 {
		t.Errorf("total_pages = %d, want >= 1", resp.Pagination.TotalPages)
	}
}

func TestContactSubmitPersists(t *testing.T) {
	app := newTestApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM contact_messages WHERE email = 'handler-test@example.com'")
	})

	body := `{"name":"Handler Test","email":"handler-test@example.com","subject":"Quotes","message":"How do I compare plans?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "new" {
		t.Errorf("status = %q, want new", resp.Status)
	}

	var count int
	if err := app.db.QueryRow(
		"SELECT COUNT(*) FROM contact_messages WHERE email = 'handler-test@example.com'",
	).Scan(&count); err != nil || count != 1 {
		t.Errorf("persisted rows = %d (%v), want 1", count, err)
	}
}

func TestFooterMenuGroupsByPageType(t *testing.T) {
	app := newTestApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM pages WHERE slug IN ('handler-test-about', 'handler-test-terms')")
	})

	pages := store.NewPageStore(app.db)
	if _, err := pages.Create(&models.Page{
		Title: "Handler Test About", Slug: "handler-test-about",
		PageType: models.PageTypeCompany, Published: true, ShowInFooter: true,
	}); err != nil {
		t.Fatalf("create page: %v", err)
	}
	if _, err := pages.Create(&models.Page{
		Title: "Handler Test Terms", Slug: "handler-test-terms",
		PageType: models.PageTypeLegal, Published: true, ShowInFooter: true,
	}); err != nil {
		t.Fatalf("create page: %v", err)
	}

	rr := app.get(t, "/api/menu/footer")
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}
	var groups map[string][]struct {
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &groups); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !containsSlug(groups["company"], "handler-test-about") {
		t.Error("company page missing from footer company column")
	}
	if !containsSlug(groups["legal"], "handler-test-terms") {
		t.Error("legal page missing from footer legal column")
	}
}

func containsSlug(links []struct {
	Slug string `json:"slug"`
}, slug string) bool {
	for _, l := range links {
		if l.Slug == slug {
			return true
		}
	}
	return false
}

// articles service wired over the real store, exercising the slug retry
// path end to end.
func TestArticleServiceAssignsUniqueSlugs(t *testing.T) {
	app := newTestApp(t)
	t.Cleanup(func() {
		app.db.Exec("DELETE FROM articles WHERE slug LIKE 'handler-test-twin%'")
		app.db.Exec("DELETE FROM main_pages WHERE slug = 'handler-test-twin-page'")
	})

	page, err := store.NewMainPageStore(app.db).Create(&models.MainPage{
		Name: "Handler Test Twin Page", Slug: "handler-test-twin-page",
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}

	articleStore := store.NewArticleStore(app.db)
	svc := articles.NewService(articleStore, store.NewCategoryStore(app.db))

	first, err := svc.Create(&models.Article{Title: "Handler Test Twin", ParentPageID: &page.ID})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(&models.Article{Title: "Handler Test Twin", ParentPageID: &page.ID})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if first.Slug != "handler-test-twin" {
		t.Errorf("first slug = %q", first.Slug)
	}
	if second.Slug != "handler-test-twin-1" {
		t.Errorf("second slug = %q", second.Slug)
	}
}
