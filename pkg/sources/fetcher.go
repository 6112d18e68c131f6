package sources

import (
	"context"
	"os"

	gocache "github.com/patrickmn/go-cache"

	"github.com/agentstation/swatchmap/internal/transport"
	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/logging"
)

// Fetcher retrieves the raw text behind a locator.
type Fetcher interface {
	Fetch(ctx context.Context, loc Locator) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, loc Locator) (string, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, loc Locator) (string, error) {
	return f(ctx, loc)
}

// DefaultFetcher reads remote locators through a transport client and local
// locators from disk. Fetched text is cached per locator for the lifetime
// of the fetcher, so one fetcher should serve exactly one run.
type DefaultFetcher struct {
	client *transport.Client
	cache  *gocache.Cache
}

// NewFetcher creates a fetcher. A nil client gets transport defaults.
func NewFetcher(client *transport.Client) *DefaultFetcher {
	if client == nil {
		client = transport.New()
	}
	return &DefaultFetcher{
		client: client,
		cache:  gocache.New(gocache.NoExpiration, 0),
	}
}

// Fetch returns the text behind loc. Empty text is reported as
// errors.ErrEmptySource so the caller treats the source as failed.
func (f *DefaultFetcher) Fetch(ctx context.Context, loc Locator) (string, error) {
	key := loc.String()
	if cached, ok := f.cache.Get(key); ok {
		logging.Ctx(ctx).Debug().Str("locator", key).Msg("source served from run cache")
		return cached.(string), nil
	}

	var (
		text string
		err  error
	)
	if loc.IsRemote() {
		text, err = f.fetchRemote(ctx, loc)
	} else {
		text, err = f.readLocal(loc)
	}
	if err == nil && text == "" {
		err = errors.WrapResource("fetch", "source", key, errors.ErrEmptySource)
	}
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("locator", key).Bool("remote", loc.IsRemote()).Msg("fetch attempt failed")
		return "", err
	}

	f.cache.Set(key, text, gocache.NoExpiration)
	return text, nil
}

func (f *DefaultFetcher) fetchRemote(ctx context.Context, loc Locator) (string, error) {
	body, err := f.client.Get(ctx, loc.String())
	if err != nil {
		return "", err
	}
	return decodeUTF8(body), nil
}

func (f *DefaultFetcher) readLocal(loc Locator) (string, error) {
	b, err := os.ReadFile(loc.String())
	if err != nil {
		return "", errors.WrapIO("read", loc.String(), err)
	}
	return decodeUTF8(b), nil
}
