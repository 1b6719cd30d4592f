package sessionctx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONBlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantID    string
		wantTotal int
	}{
		{name: "numeric id and total", body: `{"currentSessionId":42,"totalTimeAllowed":600}`, wantID: "42", wantTotal: 600},
		{name: "string id", body: `{"currentSessionId":"abc-1","totalTimeAllowed":1200}`, wantID: "abc-1", wantTotal: 1200},
		{name: "string total", body: `{"currentSessionId":7,"totalTimeAllowed":"300"}`, wantID: "7", wantTotal: 300},
		{name: "missing total defaults", body: `{"currentSessionId":7}`, wantID: "7", wantTotal: domain.DefaultTotalTimeAllowedSeconds},
		{name: "garbage total defaults", body: `{"currentSessionId":7,"totalTimeAllowed":"soon"}`, wantID: "7", wantTotal: domain.DefaultTotalTimeAllowedSeconds},
		{name: "extra keys ignored", body: `{"currentSessionId":7,"questions":[1,2]}`, wantID: "7", wantTotal: domain.DefaultTotalTimeAllowedSeconds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			session, err := Parse([]byte(tt.body), FormatJSON)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, session.SessionID)
			assert.Equal(t, tt.wantTotal, session.TotalTimeAllowedSeconds)
		})
	}
}

func TestParseWithoutSessionIsNoSession(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{}`, `{"currentSessionId":null}`, `{"currentSessionId":"  "}`} {
		_, err := Parse([]byte(body), FormatJSON)
		assert.ErrorIs(t, err, domain.ErrNoSession, body)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"currentSessionId":`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode session context")
}

func TestLoadPicksFormatByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "session.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("currentSessionId = 99\ntotalTimeAllowed = 450\n"), 0o600))
	jsonPath := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"currentSessionId":"12"}`), 0o600))

	fromTOML, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionContext{SessionID: "99", TotalTimeAllowedSeconds: 450}, fromTOML)

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionContext{SessionID: "12", TotalTimeAllowedSeconds: 900}, fromJSON)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
