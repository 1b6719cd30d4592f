// Package sessionctx reads the startup session blob that names the session
// to watch and its total allotted time.
package sessionctx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

const (
	sessionIDKey = "currentSessionId"
	totalTimeKey = "totalTimeAllowed"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Load reads path once. Files ending in .toml are TOML; everything else is
// JSON. A blob without a session id yields domain.ErrNoSession.
func Load(path string) (domain.SessionContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SessionContext{}, fmt.Errorf("read session context: %w", err)
	}

	format := FormatJSON
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = FormatTOML
	}

	return Parse(data, format)
}

func Parse(data []byte, format Format) (domain.SessionContext, error) {
	fields := map[string]any{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &fields); err != nil {
			return domain.SessionContext{}, fmt.Errorf("decode session context: %w", err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&fields); err != nil {
			return domain.SessionContext{}, fmt.Errorf("decode session context: %w", err)
		}
	}

	total, _ := coerceInt(fields[totalTimeKey])
	return domain.NewSessionContext(coerceString(fields[sessionIDKey]), total)
}

func coerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// coerceInt accepts integral numbers and numeric strings. Fractions truncate.
func coerceInt(value any) (int, bool) {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), true
		}
		if f, err := v.Float64(); err == nil {
			return int(f), true
		}
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i, true
		}
	}
	return 0, false
}
