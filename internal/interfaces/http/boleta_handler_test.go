package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boletas-api/internal/application/billing"
	"github.com/jhoicas/Boletas-api/internal/domain/entity"
	"github.com/jhoicas/Boletas-api/internal/infrastructure/objectstorage"
	apphttp "github.com/jhoicas/Boletas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Boletas-api/pkg/jwt"
	"github.com/jhoicas/Boletas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testBucket = "boletas-test"
	testSecret = "secret-de-pruebas"
	testIssuer = "boletas-api-test"
	fakePDF    = "%PDF-1.3 fake"
)

// stubGenerator devuelve un PDF fijo o err, y cuenta las llamadas.
type stubGenerator struct {
	calls int
	err   error
}

func (g *stubGenerator) GenerateBoletaPDF(_ context.Context, _ entity.Customer, _ entity.Transaction) ([]byte, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return []byte(fakePDF), nil
}

type testEnv struct {
	app   *fiber.App
	store *objectstorage.MemoryStore
	gen   *stubGenerator
}

func newTestEnv(t *testing.T, bucket string) *testEnv {
	t.Helper()
	store := objectstorage.NewMemoryStore(objectstorage.MemoryConfig{
		Bucket:        bucket,
		BaseURL:       "http://boletas.test",
		SigningSecret: testSecret,
		Issuer:        testIssuer,
	})
	t.Cleanup(func() { _ = store.Close() })

	gen := &stubGenerator{}
	uc := billing.NewBoletaUseCase(store, gen, billing.URLConfig{})

	app := fiber.New()
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		BoletaUC:  uc,
		Downloads: store,
		Log:       logger.Nop(),
	})
	return &testEnv{app: app, store: store, gen: gen}
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

const validBody = `{
	"grupo": "G1",
	"usuario": {"nombre": "Ana", "id": "a@b.com"},
	"accion": {"nombre": "Casa 1", "precio": 100000, "pagado": 20000}
}`

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/boletas
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_BoletaOK(t *testing.T) {
	env := newTestEnv(t, testBucket)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas", validBody)

	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "Boleta generada", body["message"])
	assert.Equal(t, testBucket, body["bucket"])
	key, _ := body["key"].(string)
	assert.Regexp(t, regexp.MustCompile(`^boletas/G1/a_b\.com-\d+\.pdf$`), key)
	assert.True(t, strings.HasPrefix(body["urlDescarga"].(string), "http://boletas.test"+objectstorage.DownloadPath))

	stored, ct, err := env.store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, fakePDF, string(stored))
	assert.Equal(t, "application/pdf", ct)
}

func TestGenerate_GrupoNumerico(t *testing.T) {
	env := newTestEnv(t, testBucket)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas",
		`{"grupo": 15, "usuario": {"nombre": "Ana", "id": "u-1"}, "accion": {"nombre": "X", "precio": "1000", "pagado": "0"}}`)

	require.Equal(t, fiber.StatusOK, status, body)
	assert.Regexp(t, `^boletas/15/u-1-\d+\.pdf$`, body["key"])
}

func TestGenerate_FaltaAccion_400SinEscritura(t *testing.T) {
	env := newTestEnv(t, testBucket)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas",
		`{"grupo": "G1", "usuario": {"nombre": "Ana"}}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"message": "Faltan campos: grupo, usuario, accion"}, body)
	assert.Zero(t, env.gen.calls, "no debe dibujar")
}

func TestGenerate_UsuarioOAccionFalsos_400(t *testing.T) {
	const accion = `{"nombre": "Casa 1", "precio": 100000, "pagado": 20000}`
	const usuario = `{"nombre": "Ana", "id": "a@b.com"}`
	cases := map[string]string{
		"usuario vacío":  `{"grupo": "G1", "usuario": "", "accion": ` + accion + `}`,
		"usuario false":  `{"grupo": "G1", "usuario": false, "accion": ` + accion + `}`,
		"usuario null":   `{"grupo": "G1", "usuario": null, "accion": ` + accion + `}`,
		"accion cero":    `{"grupo": "G1", "usuario": ` + usuario + `, "accion": 0}`,
		"accion vacía":   `{"grupo": "G1", "usuario": ` + usuario + `, "accion": ""}`,
		"accion false":   `{"grupo": "G1", "usuario": ` + usuario + `, "accion": false}`,
		"ambos ausentes": `{"grupo": "G1", "usuario": 0, "accion": null}`,
		"grupo cero":     `{"grupo": 0, "usuario": ` + usuario + `, "accion": ` + accion + `}`,
	}
	for name, reqBody := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t, testBucket)

			status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas", reqBody)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, map[string]any{"message": "Faltan campos: grupo, usuario, accion"}, body)
			assert.Zero(t, env.gen.calls)
		})
	}
}

func TestGenerate_BodyVacio_400(t *testing.T) {
	env := newTestEnv(t, testBucket)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas", "")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Faltan campos: grupo, usuario, accion", body["message"])
}

func TestGenerate_BodyInvalido_500(t *testing.T) {
	env := newTestEnv(t, testBucket)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas", `{"grupo":`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Error generando boleta", body["message"])
	assert.NotEmpty(t, body["error"])
}

func TestGenerate_SinBucket_500(t *testing.T) {
	env := newTestEnv(t, "")

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas", validBody)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Error generando boleta", body["message"])
	assert.Contains(t, body["error"], "BOLETAS_BUCKET")
	assert.Zero(t, env.gen.calls)
}

func TestGenerate_FallaDibujo_500(t *testing.T) {
	env := newTestEnv(t, testBucket)
	env.gen.err = errors.New("fuente no disponible")

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas", validBody)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Error generando boleta", body["message"])
	assert.Contains(t, body["error"], "fuente no disponible")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/boletas/url
// ──────────────────────────────────────────────────────────────────────────────

func TestRefreshURL_OK(t *testing.T) {
	env := newTestEnv(t, testBucket)
	key := "boletas/G1/x-1.pdf"
	require.NoError(t, env.store.Put(context.Background(), key, []byte(fakePDF), "application/pdf"))

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas/url", `{"fileKey": "`+key+`"}`)

	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "URL regenerada exitosamente", body["message"])
	assert.Equal(t, key, body["key"])
	assert.NotEmpty(t, body["urlDescarga"])
}

func TestRefreshURL_BodyComoString(t *testing.T) {
	env := newTestEnv(t, testBucket)
	key := "boletas/G1/x-1.pdf"
	require.NoError(t, env.store.Put(context.Background(), key, []byte(fakePDF), "application/pdf"))

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas/url", `"{\"fileKey\":\"`+key+`\"}"`)

	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, key, body["key"])
}

func TestRefreshURL_FaltaFileKey_400(t *testing.T) {
	env := newTestEnv(t, testBucket)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas/url", `{}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"message": "Falta el campo: fileKey"}, body)
}

func TestRefreshURL_NoExiste_404(t *testing.T) {
	env := newTestEnv(t, testBucket)

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas/url", `{"fileKey": "boletas/none.pdf"}`)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, map[string]any{"message": "El archivo no existe"}, body)
}

func TestRefreshURL_KeyDerivadaDeOtraNoExiste_404(t *testing.T) {
	env := newTestEnv(t, testBucket)
	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas", validBody)
	require.Equal(t, fiber.StatusOK, status, body)
	key := body["key"].(string)

	status, body = doJSON(t, env.app, http.MethodPost, "/api/boletas/url", `{"fileKey": "`+key+`#content-type"}`)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, map[string]any{"message": "El archivo no existe"}, body)
}

func TestRefreshURL_SinBucket_500(t *testing.T) {
	env := newTestEnv(t, "")

	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas/url", `{"fileKey": "boletas/x.pdf"}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Error regenerando URL", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/boletas/descarga
// ──────────────────────────────────────────────────────────────────────────────

func TestDownload_URLGeneradaSirvePDF(t *testing.T) {
	env := newTestEnv(t, testBucket)
	status, body := doJSON(t, env.app, http.MethodPost, "/api/boletas", validBody)
	require.Equal(t, fiber.StatusOK, status, body)

	u, err := url.Parse(body["urlDescarga"].(string))
	require.NoError(t, err)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, u.RequestURI(), nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fakePDF, string(raw))
}

func TestDownload_TokenExpirado_403(t *testing.T) {
	env := newTestEnv(t, testBucket)
	tok, err := pkgjwt.GenerateDownload(testSecret, testIssuer, testBucket, "boletas/G1/x-1.pdf",
		time.Now().Add(-2*time.Hour), time.Minute)
	require.NoError(t, err)

	status, body := doJSON(t, env.app, http.MethodGet, objectstorage.DownloadPath+"?token="+url.QueryEscape(tok), "")

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestDownload_TokenAlterado_403(t *testing.T) {
	env := newTestEnv(t, testBucket)
	tok, err := pkgjwt.GenerateDownload("otro-secret", testIssuer, testBucket, "boletas/G1/x-1.pdf",
		time.Now(), time.Minute)
	require.NoError(t, err)

	status, _ := doJSON(t, env.app, http.MethodGet, objectstorage.DownloadPath+"?token="+url.QueryEscape(tok), "")

	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestDownload_KeyDesconocida_404(t *testing.T) {
	env := newTestEnv(t, testBucket)
	tok, err := pkgjwt.GenerateDownload(testSecret, testIssuer, testBucket, "boletas/G1/none.pdf",
		time.Now(), time.Minute)
	require.NoError(t, err)

	status, body := doJSON(t, env.app, http.MethodGet, objectstorage.DownloadPath+"?token="+url.QueryEscape(tok), "")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "El archivo no existe", body["message"])
}

func TestRequestID_RespuestaTraeCabecera(t *testing.T) {
	env := newTestEnv(t, testBucket)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodPost, "/api/boletas/url", strings.NewReader(`{}`)), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get(apphttp.RequestIDHeader), 36)
}
