package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"encuestas-api/models"
	"encuestas-api/responses"
	"encuestas-api/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *testutil.FakeRespuestas) {
	t.Helper()
	respuestas := &testutil.FakeRespuestas{}
	usuarios := &testutil.FakeUsuarios{}
	router := NewRouter(testutil.TestConfig(), respuestas, usuarios, &testutil.FakePinger{})
	return router, respuestas
}

func TestUnmatchedAPIRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(t, "GET", "/api/no-existe", nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, w, &resp)
	if resp["path"] != "/api/no-existe" {
		t.Errorf("expected the path echoed, got %q", resp["path"])
	}
}

func TestWrongMethodUnderAPIIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(t, "PUT", "/api/respuestas", nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestNonAPIFallbackListsEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(t, "GET", "/cualquier-cosa", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}
	testutil.DecodeJSON(t, w, &resp)
	if len(resp.Endpoints) == 0 {
		t.Error("expected an endpoint listing")
	}
}

func TestNonAPIFallbackServesStaticAsset(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>encuesta</html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testutil.TestConfig()
	cfg.StaticDir = dir
	router := NewRouter(cfg, &testutil.FakeRespuestas{}, &testutil.FakeUsuarios{}, &testutil.FakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(t, "GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "<html>encuesta</html>" {
		t.Errorf("expected the static asset body, got %q", w.Body.String())
	}
}

// End-to-end through the router: a valid submission lands first in the
// subsequent listing.
func TestSubmitThenListThroughRouter(t *testing.T) {
	router, _ := newTestRouter(t)

	body := models.Respuesta{
		Nombre:                    "Ana",
		Puesto:                    "Vendedora",
		SeguridadGeneral:          "Buena",
		PresenciaGuardias:         "Suficiente",
		Iluminacion:               "Regular",
		CamarasFuncionan:          "Sí",
		TiempoRespuesta:           "Rápido",
		CapacitacionSeguridad:     "Sí",
		CalificacionGeneral:       "8",
		ConfianzaAdministracion:   "Alta",
		ParticipacionComerciantes: "Media",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(t, "POST", "/api/respuestas", body))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created responses.CreatedResponse
	testutil.DecodeJSON(t, w, &created)
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(t, "GET", "/api/respuestas", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list []models.Respuesta
	testutil.DecodeJSON(t, w, &list)
	if len(list) != 1 || list[0].ID.Hex() != created.ID {
		t.Errorf("expected the new record first in the listing, got %+v", list)
	}

	// And deleting it through the router works end to end.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(t, "DELETE", "/api/respuestas/"+created.ID, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(t, "DELETE", "/api/respuestas/"+created.ID, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
