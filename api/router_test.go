package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"watchmarket_server/config"
	"watchmarket_server/database"
	"watchmarket_server/lib"
	"watchmarket_server/services"

	"github.com/go-chi/chi/v5"
)

type testApp struct {
	t      *testing.T
	router chi.Router
	sm     *services.ServiceManager
	cookie *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	cfg := config.GetConfig()
	sm := services.NewServiceManager(config.GetLogger(), cfg, database.NewMemoryStore())
	sm.Load(context.Background())
	return &testApp{t: t, router: App(sm, cfg), sm: sm}
}

func (a *testApp) do(method, target, body string) (int, string) {
	a.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == lib.SessionCookieName {
			if c.MaxAge < 0 {
				a.cookie = nil
			} else {
				a.cookie = c
			}
		}
	}
	return rec.Code, rec.Body.String()
}

func (a *testApp) login() {
	a.t.Helper()
	code, body := a.do("POST", "/auth/login", `{"identifier":"jane@example.com","password":"secret1"}`)
	if code != http.StatusOK || a.cookie == nil {
		a.t.Fatalf("login = %d %s", code, body)
	}
}

const submarinerForm = `{
	"title": "Rolex Submariner",
	"description": "2019, full set",
	"price": "$9,500",
	"brand": "Rolex",
	"comesWith": ["Box and Papers"],
	"watchInfo": {"model": "116610LN", "year": "2019"},
	"condition": "Preowned"
}`

func TestListingEndpoints(t *testing.T) {
	app := newTestApp(t)

	code, body := app.do("GET", "/products?width=1024&height=768&page=2", "")
	if code != http.StatusOK || !strings.Contains(body, "Wireless Earbuds") || !strings.Contains(body, `"itemsPerPage":12`) {
		t.Fatalf("listing = %d %s", code, body)
	}

	if code, _ := app.do("GET", "/products?view=carousel", ""); code != http.StatusBadRequest {
		t.Fatalf("bad view = %d", code)
	}
	if code, body := app.do("GET", "/products/2", ""); code != http.StatusOK || !strings.Contains(body, "Smart Watch") {
		t.Fatalf("product 2 = %d %s", code, body)
	}
	if code, _ := app.do("GET", "/products/999", ""); code != http.StatusNotFound {
		t.Fatalf("missing product = %d", code)
	}
	if code, body := app.do("GET", "/products/1/invoice", ""); code != http.StatusOK || !strings.Contains(body, "$53.49") {
		t.Fatalf("invoice = %d %s", code, body)
	}
	if code, _ := app.do("GET", "/products/abc/invoice", ""); code != http.StatusBadRequest {
		t.Fatalf("bad id = %d", code)
	}
}

func TestInventoryRequiresSession(t *testing.T) {
	app := newTestApp(t)

	if code, _ := app.do("POST", "/inventory", submarinerForm); code != http.StatusUnauthorized {
		t.Fatalf("anonymous create = %d", code)
	}
	if code, _ := app.do("DELETE", "/inventory/31", ""); code != http.StatusUnauthorized {
		t.Fatalf("anonymous delete = %d", code)
	}
	if code, body := app.do("GET", "/inventory/next-id", ""); code != http.StatusOK || !strings.Contains(body, `"nextId":31`) {
		t.Fatalf("next id = %d %s", code, body)
	}
}

func TestInventoryLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.login()

	code, body := app.do("POST", "/inventory", submarinerForm)
	if code != http.StatusOK || !strings.Contains(body, `"id":31`) || !strings.Contains(body, `"$9500"`) {
		t.Fatalf("create = %d %s", code, body)
	}

	code, body = app.do("POST", "/inventory", `{"title":"","price":"abc","comesWith":[]}`)
	if code != http.StatusBadRequest || !strings.Contains(body, "Title is required") || !strings.Contains(body, "Please select at least one option") {
		t.Fatalf("invalid create = %d %s", code, body)
	}

	code, body = app.do("GET", "/inventory?owner=1", "")
	if code != http.StatusOK || !strings.Contains(body, "Rolex Submariner") {
		t.Fatalf("list = %d %s", code, body)
	}

	edited := strings.Replace(submarinerForm, "Rolex Submariner", "Rolex Submariner Date", 1)
	if code, body := app.do("PUT", "/inventory/31", edited); code != http.StatusOK || !strings.Contains(body, "Submariner Date") {
		t.Fatalf("update = %d %s", code, body)
	}
	noBrand := strings.Replace(submarinerForm, `"brand": "Rolex",`, "", 1)
	if code, body := app.do("PUT", "/inventory/31", noBrand); code != http.StatusBadRequest || !strings.Contains(body, "Brand is required") {
		t.Fatalf("update without brand = %d %s", code, body)
	}
	if code, _ := app.do("PUT", "/inventory/77", edited); code != http.StatusNotFound {
		t.Fatalf("update missing = %d", code)
	}

	if code, _ := app.do("DELETE", "/inventory/31", ""); code != http.StatusOK {
		t.Fatalf("delete = %d", code)
	}
	if code, _ := app.do("DELETE", "/inventory/31", ""); code != http.StatusNotFound {
		t.Fatalf("second delete = %d", code)
	}
	if got := app.sm.CatalogService.NextID(); got != 32 {
		t.Fatalf("next id = %d, want 32", got)
	}
}

func TestInventoryOwnership(t *testing.T) {
	app := newTestApp(t)
	app.login()
	app.do("POST", "/inventory", submarinerForm)

	code, body := app.do("POST", "/auth/signup", `{"name":"Sam","identifier":"sam@example.com","password":"secret1"}`)
	if code != http.StatusOK {
		t.Fatalf("signup = %d %s", code, body)
	}
	if code, _ := app.do("DELETE", "/inventory/31", ""); code != http.StatusForbidden {
		t.Fatalf("foreign delete = %d", code)
	}
}

func TestAuthEndpoints(t *testing.T) {
	app := newTestApp(t)

	if code, body := app.do("POST", "/auth/login", `{"identifier":"jane@example","password":"secret1"}`); code != http.StatusBadRequest || !strings.Contains(body, "valid email") {
		t.Fatalf("bad email = %d %s", code, body)
	}
	if code, _ := app.do("GET", "/auth/me", ""); code != http.StatusUnauthorized {
		t.Fatalf("me without session = %d", code)
	}

	app.login()
	if code, body := app.do("GET", "/auth/me", ""); code != http.StatusOK || !strings.Contains(body, "jane@example.com") {
		t.Fatalf("me = %d %s", code, body)
	}
	if code, body := app.do("PUT", "/auth/profile", `{"bio":"Dive watches only"}`); code != http.StatusOK || !strings.Contains(body, "Dive watches only") {
		t.Fatalf("profile = %d %s", code, body)
	}

	if code, _ := app.do("POST", "/auth/logout", ""); code != http.StatusOK {
		t.Fatalf("logout = %d", code)
	}
	if app.cookie != nil {
		t.Fatal("session cookie not cleared")
	}

	if code, body := app.do("POST", "/auth/forgot-password", `{"email":"jane@example.com"}`); code != http.StatusOK || !strings.Contains(body, services.ForgotPasswordMessage) {
		t.Fatalf("forgot = %d %s", code, body)
	}
	if code, _ := app.do("POST", "/auth/forgot-password", `{"email":"jane"}`); code != http.StatusBadRequest {
		t.Fatalf("forgot bad email = %d", code)
	}
}

func TestSettingsSearchAndBrands(t *testing.T) {
	app := newTestApp(t)

	if code, body := app.do("GET", "/settings/theme?system_dark=true", ""); code != http.StatusOK || !strings.Contains(body, `"isDarkMode":true`) {
		t.Fatalf("theme = %d %s", code, body)
	}
	if code, body := app.do("PUT", "/settings/theme", `{"preference":"light","systemDark":true}`); code != http.StatusOK || !strings.Contains(body, `"isDarkMode":false`) {
		t.Fatalf("set theme = %d %s", code, body)
	}
	if code, _ := app.do("PUT", "/settings/theme", `{"preference":"sepia"}`); code != http.StatusBadRequest {
		t.Fatalf("bad theme = %d", code)
	}

	if code, body := app.do("GET", "/search?q=charger", ""); code != http.StatusOK || !strings.Contains(body, "Portable Charger") {
		t.Fatalf("search = %d %s", code, body)
	}
	if code, body := app.do("GET", "/search/recent", ""); code != http.StatusOK || !strings.Contains(body, "charger") {
		t.Fatalf("recent = %d %s", code, body)
	}

	if code, body := app.do("GET", "/brands?q=omega", ""); code != http.StatusOK || !strings.Contains(body, "Omega") {
		t.Fatalf("brands = %d %s", code, body)
	}
}

func TestHealthAndFallbackRoutes(t *testing.T) {
	app := newTestApp(t)

	if code, _ := app.do("GET", "/health/storage", ""); code != http.StatusOK {
		t.Fatalf("storage health = %d", code)
	}
	if code, body := app.do("GET", "/", ""); code != http.StatusOK || !strings.Contains(body, "Welcome") {
		t.Fatalf("welcome = %d %s", code, body)
	}
	if code, _ := app.do("GET", "/nowhere", ""); code != http.StatusNotFound {
		t.Fatalf("unknown route = %d", code)
	}
}
