package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
)

const (
	// httpClientTimeout is the timeout for HTTP requests to identity providers
	httpClientTimeout = 30 * time.Second

	defaultKeySetTTL = 24 * time.Hour
)

var ErrUnknownKey = errors.New("signing key not found in key set")

// CachedKeySet is a fetched key set with its expiry.
type CachedKeySet struct {
	Value     map[string]*rsa.PublicKey
	ExpiresAt time.Time
}

// KeySetCache holds the last fetched key set for one provider.
type KeySetCache interface {
	Load() (CachedKeySet, bool)
	Store(set CachedKeySet)
}

type MemoryKeySetCache struct {
	mu    sync.RWMutex
	entry *CachedKeySet
}

func NewMemoryKeySetCache() *MemoryKeySetCache {
	return &MemoryKeySetCache{}
}

func (c *MemoryKeySetCache) Load() (CachedKeySet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil {
		return CachedKeySet{}, false
	}
	return *c.entry, true
}

func (c *MemoryKeySetCache) Store(set CachedKeySet) {
	c.mu.Lock()
	c.entry = &set
	c.mu.Unlock()
}

// JWKSClient resolves RSA signing keys by kid. The cached set is refetched
// when it expires or when an unknown kid shows up.
type JWKSClient struct {
	url        string
	httpClient *http.Client
	cache      KeySetCache
	ttl        time.Duration
	now        func() time.Time
	fetchMu    sync.Mutex
}

func NewJWKSClient(url string, cache KeySetCache) *JWKSClient {
	if cache == nil {
		cache = NewMemoryKeySetCache()
	}
	return &JWKSClient{
		url:        url,
		httpClient: &http.Client{Timeout: httpClientTimeout},
		cache:      cache,
		ttl:        defaultKeySetTTL,
		now:        time.Now,
	}
}

func (c *JWKSClient) cached(kid string) (*rsa.PublicKey, bool) {
	set, ok := c.cache.Load()
	if !ok || !c.now().Before(set.ExpiresAt) {
		return nil, false
	}
	key, ok := set.Value[kid]
	return key, ok
}

// Key returns the public key for kid, refreshing the set at most once per call.
func (c *JWKSClient) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key, ok := c.cached(kid); ok {
		return key, nil
	}

	c.fetchMu.Lock()
	defer c.fetchMu.Unlock()

	if key, ok := c.cached(kid); ok {
		return key, nil
	}

	keys, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Store(CachedKeySet{Value: keys, ExpiresAt: c.now().Add(c.ttl)})

	key, ok := keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: kid %q", ErrUnknownKey, kid)
	}
	return key, nil
}

func (c *JWKSClient) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	set, err := jwk.Fetch(ctx, c.url, jwk.WithHTTPClient(c.httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key set: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, set.Len())
	for i := 0; i < set.Len(); i++ {
		k, ok := set.Key(i)
		if !ok {
			continue
		}
		if k.KeyType() != jwa.RSA || (k.KeyUsage() != "" && k.KeyUsage() != string(jwk.ForSignature)) {
			continue
		}
		var pub rsa.PublicKey
		if err := k.Raw(&pub); err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", k.KeyID(), err)
		}
		keys[k.KeyID()] = &pub
	}
	return keys, nil
}
