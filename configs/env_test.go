package configs

import "testing"

func TestLoadConfigRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGOURI", "")
	t.Setenv("ADMIN_CODE", "secreto")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error when MONGOURI is missing")
	}
}

func TestLoadConfigRequiresAdminCode(t *testing.T) {
	t.Setenv("MONGOURI", "mongodb://localhost:27017/plaza_seguridad")
	t.Setenv("ADMIN_CODE", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error when ADMIN_CODE is missing")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGOURI", "mongodb://localhost:27017/plaza_seguridad")
	t.Setenv("ADMIN_CODE", "secreto")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("FRONTEND_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr() != "0.0.0.0:4000" {
		t.Errorf("unexpected default addr %q", cfg.Addr())
	}
	if cfg.Production() {
		t.Error("default mode must not be production")
	}
}

func TestCORSOrigins(t *testing.T) {
	cfg := Config{CORSOrigin: "http://localhost:5173, https://plaza.example ,"}
	origins := cfg.CORSOrigins()
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %v", origins)
	}
	if origins[0] != "http://localhost:5173" || origins[1] != "https://plaza.example" {
		t.Errorf("unexpected origins %v", origins)
	}
}
