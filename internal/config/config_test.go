package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
server:
  port: 9090
messages:
  templates:
    message_-1000: "Atención|Tu sesión ha expirado"
  generic:
    error_code: MSCM0
    message_code: -1
channel:
  locale: es
  records:
    - code: SUP
      name: SuperApp
      active: true
      hours:
        days: [Lun, Mar, Mie, Jue, Vie]
        start: "09:00:00"
        end: "18:00:00"
propagation:
  ignore_headers: [Authorization]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Messages.Templates["message_-1000"] != "Atención|Tu sesión ha expirado" {
		t.Errorf("templates = %+v", cfg.Messages.Templates)
	}
	if len(cfg.Channel.Records) != 1 {
		t.Fatalf("records = %+v", cfg.Channel.Records)
	}
	rec := cfg.Channel.Records[0]
	if rec.Code != "SUP" || !rec.Active {
		t.Errorf("record = %+v", rec)
	}
	if rec.Hours == nil || rec.Hours.Start != "09:00:00" || len(rec.Hours.Days) != 5 {
		t.Errorf("hours = %+v", rec.Hours)
	}
	if len(cfg.Propagation.IgnoreHeaders) != 1 || cfg.Propagation.IgnoreHeaders[0] != "Authorization" {
		t.Errorf("ignore headers = %+v", cfg.Propagation.IgnoreHeaders)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
	if cfg.Channel.Locale != "es" {
		t.Errorf("default locale = %q", cfg.Channel.Locale)
	}
	if cfg.Messages.Generic.ErrorCode != "MSCM0" || cfg.Messages.Generic.MessageCode != -1 {
		t.Errorf("generic = %+v", cfg.Messages.Generic)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("COMMONS_SERVER_PORT", "7070")
	t.Setenv("COMMONS_CHANNEL_LOCALE", "en")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Channel.Locale != "en" {
		t.Errorf("locale = %q", cfg.Channel.Locale)
	}
}

func TestCatalogOptions(t *testing.T) {
	m := MessagesConfig{Prefix: "msg.", Split: "#"}
	if got := len(m.CatalogOptions()); got != 2 {
		t.Errorf("expected 2 options, got %d", got)
	}
	m = MessagesConfig{}
	if got := len(m.CatalogOptions()); got != 0 {
		t.Errorf("expected no options, got %d", got)
	}
}
