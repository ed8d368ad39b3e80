package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"encuestas-api/models"
	"encuestas-api/responses"
	"encuestas-api/testutil"

	"golang.org/x/crypto/bcrypt"
)

func registerBody(code string) models.RegisterRequest {
	return models.RegisterRequest{
		CodigoAdmin: code,
		Usuario:     "admin-plaza",
		Email:       "admin@plaza.test",
		Password:    "superclave123",
	}
}

func doRegister(t *testing.T, usuarios *testutil.FakeUsuarios, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	Register(testutil.TestConfig(), usuarios)(w, testutil.MakeRequest(t, "POST", "/api/register", body))
	return w
}

func TestRegisterSecretPrecedence(t *testing.T) {
	// A wrong shared secret must answer 403 before any field rule runs,
	// even when every other field is invalid too.
	usuarios := &testutil.FakeUsuarios{}
	w := doRegister(t, usuarios, models.RegisterRequest{
		CodigoAdmin: "wrong-code",
		Usuario:     "x",
		Password:    "short",
	})

	testutil.AssertStatus(t, w, http.StatusForbidden)
	if len(usuarios.Accounts) != 0 {
		t.Error("no account may be created with a wrong shared secret")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		message string
	}{
		{
			name:    "missing usuario",
			mutate:  func(r *models.RegisterRequest) { r.Usuario = "" },
			message: "obligatorios",
		},
		{
			name:    "missing email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "" },
			message: "obligatorios",
		},
		{
			name:    "missing password",
			mutate:  func(r *models.RegisterRequest) { r.Password = "" },
			message: "obligatorios",
		},
		{
			name:    "usuario too short",
			mutate:  func(r *models.RegisterRequest) { r.Usuario = "abc" },
			message: "al menos 4 caracteres",
		},
		{
			name:    "password too short",
			mutate:  func(r *models.RegisterRequest) { r.Password = "7chars." },
			message: "al menos 8 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usuarios := &testutil.FakeUsuarios{}
			body := registerBody("test-admin-code")
			tt.mutate(&body)

			w := doRegister(t, usuarios, body)
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp responses.ErrorResponse
			testutil.DecodeJSON(t, w, &resp)
			if !strings.Contains(resp.Message, tt.message) {
				t.Errorf("expected message naming the violated rule, got %q", resp.Message)
			}
			if len(usuarios.Accounts) != 0 {
				t.Error("rejected registration must not create an account")
			}
		})
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	usuarios := &testutil.FakeUsuarios{}
	w := doRegister(t, usuarios, registerBody("test-admin-code"))

	testutil.AssertStatus(t, w, http.StatusCreated)
	if len(usuarios.Accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(usuarios.Accounts))
	}

	stored := usuarios.Accounts[0]
	if stored.Password == "superclave123" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("superclave123")); err != nil {
		t.Errorf("stored hash does not verify against the original password: %v", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	usuarios := &testutil.FakeUsuarios{}
	testutil.AssertStatus(t, doRegister(t, usuarios, registerBody("test-admin-code")), http.StatusCreated)

	t.Run("duplicate usuario", func(t *testing.T) {
		body := registerBody("test-admin-code")
		body.Email = "otro@plaza.test"

		w := doRegister(t, usuarios, body)
		testutil.AssertStatus(t, w, http.StatusConflict)

		var resp responses.ErrorResponse
		testutil.DecodeJSON(t, w, &resp)
		if resp.Campo != "usuario" {
			t.Errorf("expected campo \"usuario\", got %q", resp.Campo)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		body := registerBody("test-admin-code")
		body.Usuario = "otro-admin"

		w := doRegister(t, usuarios, body)
		testutil.AssertStatus(t, w, http.StatusConflict)

		var resp responses.ErrorResponse
		testutil.DecodeJSON(t, w, &resp)
		if resp.Campo != "email" {
			t.Errorf("expected campo \"email\", got %q", resp.Campo)
		}
	})
}

func doLogin(t *testing.T, usuarios *testutil.FakeUsuarios, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	Login(testutil.TestConfig(), usuarios)(w, testutil.MakeRequest(t, "POST", "/api/login", body))
	return w
}

func TestLoginMissingFields(t *testing.T) {
	usuarios := &testutil.FakeUsuarios{}
	w := doLogin(t, usuarios, models.LoginRequest{Usuario: "admin-plaza"})
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestLoginSuccess(t *testing.T) {
	usuarios := &testutil.FakeUsuarios{}
	doRegister(t, usuarios, registerBody("test-admin-code"))

	w := doLogin(t, usuarios, models.LoginRequest{Usuario: "admin-plaza", Password: "superclave123"})
	testutil.AssertStatus(t, w, http.StatusOK)

	if strings.Contains(w.Body.String(), "superclave123") || strings.Contains(w.Body.String(), "password") {
		t.Error("login response must never echo the password")
	}

	var resp responses.LoginResponse
	testutil.DecodeJSON(t, w, &resp)
	if resp.User.Usuario != "admin-plaza" || resp.User.Email != "admin@plaza.test" {
		t.Errorf("unexpected user payload %+v", resp.User)
	}
	if resp.User.FechaRegistro.IsZero() {
		t.Error("expected registration date in login response")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	usuarios := &testutil.FakeUsuarios{}
	doRegister(t, usuarios, registerBody("test-admin-code"))

	wrongPass := doLogin(t, usuarios, models.LoginRequest{Usuario: "admin-plaza", Password: "not-the-password"})
	unknownUser := doLogin(t, usuarios, models.LoginRequest{Usuario: "nadie", Password: "whatever123"})

	testutil.AssertStatus(t, wrongPass, http.StatusUnauthorized)
	testutil.AssertStatus(t, unknownUser, http.StatusUnauthorized)

	// The two failure bodies must be byte-identical so callers cannot
	// probe which usernames exist.
	if wrongPass.Body.String() != unknownUser.Body.String() {
		t.Errorf("credential failures leak information: %q vs %q", wrongPass.Body.String(), unknownUser.Body.String())
	}
}
