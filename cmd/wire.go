package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	statusadapter "github.com/mcarrasqub/itimer/internal/adapters/render/status"
	chainstore "github.com/mcarrasqub/itimer/internal/adapters/secrets/chain"
	"github.com/mcarrasqub/itimer/internal/adapters/timerapi"
	"github.com/mcarrasqub/itimer/internal/application"
	"github.com/mcarrasqub/itimer/internal/config"
	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/mcarrasqub/itimer/internal/logging"
	"github.com/mcarrasqub/itimer/internal/ports"
	"github.com/spf13/viper"
)

const configFileEnv = "ITIMER_CONFIG"

type app struct {
	cfg            config.Config
	secretStore    ports.SecretStore
	cookies        *application.CookieVault
	statusRenderer func(domain.SessionStatus, statusadapter.RenderOptions) (string, error)
	clock          ports.Clock
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New(), config.Options{ConfigFile: os.Getenv(configFileEnv)})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:            cfg,
		secretStore:    secretStore,
		cookies:        application.NewCookieVault(secretStore),
		statusRenderer: statusadapter.Render,
		clock:          ports.SystemClock{},
	}, nil
}

// newLogger writes to the configured log file, or to fallback when none is
// set.
func (a *app) newLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	return logging.New(logging.Options{
		Level:    a.cfg.Log.Level,
		File:     a.cfg.Log.File,
		Fallback: fallback,
	})
}

// newTimerClient returns a backend client whose cookie jar holds the stored
// session cookies.
func (a *app) newTimerClient(ctx context.Context) (*timerapi.Client, error) {
	cookies, err := a.cookies.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load backend cookies: %w", err)
	}

	jar, err := timerapi.NewJar(a.cfg.BaseURL, cookies)
	if err != nil {
		return nil, err
	}

	return timerapi.NewClient(a.cfg.BaseURL, &http.Client{Jar: jar}, a.cfg.RequestTimeout), nil
}
