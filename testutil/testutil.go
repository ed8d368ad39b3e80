// Package testutil provides in-memory persistence fakes and HTTP
// helpers shared by the handler tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"encuestas-api/configs"
	"encuestas-api/models"
	"encuestas-api/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestConfig returns a configuration suitable for handler tests.
func TestConfig() configs.Config {
	return configs.Config{
		DBName:     "plaza_seguridad_test",
		Host:       "127.0.0.1",
		Port:       "0",
		AppEnv:     "development",
		CORSOrigin: "http://localhost:5173",
		AdminCode:  "test-admin-code",
		StaticDir:  "testdata/public",
	}
}

// FakeRespuestas is an in-memory stand-in for the survey-record store.
// Setting Err makes every operation fail with that error.
type FakeRespuestas struct {
	mu      sync.Mutex
	Records []models.Respuesta
	Err     error
}

// Seed inserts a record without touching its timestamps, so tests can
// backdate fechaCreacion.
func (f *FakeRespuestas) Seed(r models.Respuesta) models.Respuesta {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	f.Records = append(f.Records, r)
	return r
}

func (f *FakeRespuestas) Insert(_ context.Context, r models.Respuesta) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	now := time.Now()
	r.ID = primitive.NewObjectID()
	r.FechaCreacion = now
	r.FechaActualizacion = now
	f.Records = append(f.Records, r)
	return r.ID.Hex(), nil
}

func (f *FakeRespuestas) FindAll(_ context.Context) ([]models.Respuesta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]models.Respuesta, len(f.Records))
	copy(out, f.Records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FechaCreacion.After(out[j].FechaCreacion)
	})
	return out, nil
}

func (f *FakeRespuestas) FindByID(_ context.Context, id string) (models.Respuesta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return models.Respuesta{}, f.Err
	}
	for _, r := range f.Records {
		if r.ID.Hex() == id {
			return r, nil
		}
	}
	return models.Respuesta{}, store.ErrNotFound
}

func (f *FakeRespuestas) DeleteByID(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	for i, r := range f.Records {
		if r.ID.Hex() == id {
			f.Records = append(f.Records[:i], f.Records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeRespuestas) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	n := int64(len(f.Records))
	f.Records = nil
	return n, nil
}

func (f *FakeRespuestas) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	return int64(len(f.Records)), nil
}

func (f *FakeRespuestas) CountSince(_ context.Context, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return 0, f.Err
	}
	var n int64
	for _, r := range f.Records {
		if !r.FechaCreacion.Before(since) {
			n++
		}
	}
	return n, nil
}

// FakeUsuarios is an in-memory stand-in for the administrator store,
// including the unique-field behavior of the real indexes.
type FakeUsuarios struct {
	mu       sync.Mutex
	Accounts []models.Usuario
	Err      error
}

func (f *FakeUsuarios) Insert(_ context.Context, u models.Usuario) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	for _, existing := range f.Accounts {
		if existing.Usuario == u.Usuario {
			return "", &store.DuplicateKeyError{Field: "usuario"}
		}
		if existing.Email == u.Email {
			return "", &store.DuplicateKeyError{Field: "email"}
		}
	}
	u.ID = primitive.NewObjectID()
	u.FechaRegistro = time.Now()
	f.Accounts = append(f.Accounts, u)
	return u.ID.Hex(), nil
}

func (f *FakeUsuarios) FindByUsuario(_ context.Context, usuario string) (models.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return models.Usuario{}, f.Err
	}
	for _, u := range f.Accounts {
		if u.Usuario == usuario {
			return u, nil
		}
	}
	return models.Usuario{}, store.ErrNotFound
}

// FakePinger reports whatever connectivity state the test configures.
type FakePinger struct {
	Err error
}

func (f *FakePinger) Ping(context.Context) error {
	return f.Err
}

// MakeRequest builds a JSON test request.
func MakeRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus fails the test when the recorded status differs.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// DecodeJSON decodes the recorded body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode JSON response: %v", err)
	}
}
