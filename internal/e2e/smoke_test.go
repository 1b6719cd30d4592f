package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	var polls atomic.Int32
	var ticks atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sessions/42/timer/":
			if polls.Add(1) == 1 {
				_, _ = fmt.Fprint(w, `{"status":"RUNNING","message":"Sigue así","remaining_seconds":600}`)
				return
			}
			_, _ = fmt.Fprint(w, `{"status":"ENDED","message":"fin","remaining_seconds":0}`)
		case "/api/sessions/42/timer/tick/":
			assert.Equal(t, "csrf-e2e", r.Header.Get("X-CSRFToken"))
			ticks.Add(1)
			_, _ = fmt.Fprint(w, `{"success":true,"status":"RUNNING"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	home := t.TempDir()
	binaryPath := buildBinary(t)
	env := []string{
		"HOME=" + home,
		"PASSWORD_STORE_DIR=" + filepath.Join(home, ".password-store"),
		"ITIMER_BASE_URL=" + server.URL,
		"ITIMER_POLLER_STARTUP_DELAY=0s",
		"ITIMER_POLLER_POLL_INTERVAL=10ms",
		"ITIMER_POLLER_STOP_ON_ENDED=true",
	}

	_, stderr, err := runItimer(t, binaryPath, env, "cookie", "set", "--name", "csrftoken", "--value", "csrf-e2e")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runItimer(t, binaryPath, env, "watch", "--session", "42")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "[Motivación] Sigue así — Tiempo transcurrido: 05:00")
	assert.Contains(t, stdout, "[Consejo] Tu práctica ha finalizado.")
	assert.Equal(t, int32(1), ticks.Load())
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "itimer-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/itimer")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build itimer binary: %s", string(output))
	return binaryPath
}

func runItimer(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
