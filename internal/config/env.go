package config

import (
	"os"
	"path/filepath"
	"strings"

	"simaru-admin/internal/domain"
)

type Env struct {
	Mode        domain.SourceMode
	APIBase     string
	FixturesDir string
	SessionFile string
	AppAddr     string
	GinMode     string
}

func LoadEnv() Env {
	mode := domain.SourceMode(strings.TrimSpace(os.Getenv("SIMARU_MODE")))
	if mode != domain.ModeAPI {
		mode = domain.ModeStatic
	}

	apiBase := strings.TrimSpace(os.Getenv("SIMARU_API_BASE"))
	if apiBase == "" {
		apiBase = "https://simaru.amisbudi.cloud/api"
	}

	fixturesDir := strings.TrimSpace(os.Getenv("SIMARU_FIXTURES_DIR"))
	if fixturesDir == "" {
		fixturesDir = "fixtures"
	}

	sessionFile := strings.TrimSpace(os.Getenv("SIMARU_SESSION_FILE"))
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		sessionFile = filepath.Join(home, ".simaru-admin", "session.json")
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	return Env{
		Mode:        mode,
		APIBase:     apiBase,
		FixturesDir: fixturesDir,
		SessionFile: sessionFile,
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
	}
}
