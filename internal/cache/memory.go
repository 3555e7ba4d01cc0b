package cache

import (
	"bytes"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryCache)
}

// memoryCache keeps serialized extraction responses in process.
// Values are copied in and out so a payload handed to the emitter can never alias
// the stored entry.
type memoryCache struct {
	responses *lru.LRU[string, []byte]
}

func newMemoryCache(cfg ProviderConfig) (Cache, error) {
	var onEvict lru.EvictCallback[string, []byte]
	if cfg.OnEvict != nil {
		onEvict = func(key string, response []byte) {
			cfg.OnEvict(key, response)
		}
	}
	return &memoryCache{
		responses: lru.NewLRU[string, []byte](cfg.Size, onEvict, cfg.TTL),
	}, nil
}

func (m *memoryCache) Get(key string) ([]byte, bool) {
	response, ok := m.responses.Get(key)
	if !ok {
		return nil, false
	}
	return bytes.Clone(response), true
}

func (m *memoryCache) Set(key string, response []byte) {
	m.responses.Add(key, bytes.Clone(response))
}

// Delete drops a response, e.g. one that no longer decodes
func (m *memoryCache) Delete(key string) {
	m.responses.Remove(key)
}

func (m *memoryCache) Len() int {
	return m.responses.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
