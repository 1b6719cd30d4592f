package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/mcarrasqub/itimer/internal/ports"
)

const cookieKeyPrefix = "itimer/cookies/"

// KnownCookies are the backend cookies loaded into the HTTP client at startup.
var KnownCookies = []string{"sessionid", "csrftoken"}

var errUnknownCookie = errors.New("unknown cookie name")

// CookieVault keeps backend cookies in a secret store.
type CookieVault struct {
	store ports.SecretStore
}

func NewCookieVault(store ports.SecretStore) *CookieVault {
	return &CookieVault{store: store}
}

func (v *CookieVault) Set(ctx context.Context, name string, value string) error {
	key, err := cookieKey(name)
	if err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("cookie value is empty")
	}

	if err := v.store.Put(ctx, key, value); err != nil {
		return fmt.Errorf("store cookie %q: %w", name, err)
	}
	return nil
}

func (v *CookieVault) Get(ctx context.Context, name string) (string, error) {
	key, err := cookieKey(name)
	if err != nil {
		return "", err
	}

	value, err := v.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read cookie %q: %w", name, err)
	}
	return value, nil
}

func (v *CookieVault) Remove(ctx context.Context, name string) error {
	key, err := cookieKey(name)
	if err != nil {
		return err
	}

	if err := v.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove cookie %q: %w", name, err)
	}
	return nil
}

// Load returns every known cookie that is stored. Missing cookies are
// skipped; any other store failure is returned.
func (v *CookieVault) Load(ctx context.Context) (map[string]string, error) {
	cookies := make(map[string]string, len(KnownCookies))
	for _, name := range KnownCookies {
		value, err := v.Get(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrSecretNotFound) {
				continue
			}
			return nil, err
		}
		cookies[name] = value
	}
	return cookies, nil
}

func cookieKey(name string) (string, error) {
	name = strings.TrimSpace(name)
	for _, known := range KnownCookies {
		if name == known {
			return cookieKeyPrefix + name, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", errUnknownCookie, name, strings.Join(KnownCookies, ", "))
}
