package marvel

import (
	"errors"
	"sync"
)

var ErrNoKeys = errors.New("marvel: no api keys configured")

type KeyPair struct {
	Public  string
	Private string
}

// KeyPool hands out API keys round-robin. A key is used until it reaches
// maxUsage acquisitions or is reported as rejected by the API.
type KeyPool struct {
	mu           sync.Mutex
	keys         []KeyPair
	currentIndex int
	usageCount   int
	maxUsage     int
}

// NewKeyPool builds a pool from parallel public and private key lists.
// maxUsage <= 0 disables usage based rotation.
func NewKeyPool(publicKeys, privateKeys []string, maxUsage int) (*KeyPool, error) {
	if len(publicKeys) == 0 {
		return nil, ErrNoKeys
	}

	if len(publicKeys) != len(privateKeys) {
		return nil, errors.New("marvel: public and private key lists differ in length")
	}

	keys := make([]KeyPair, 0, len(publicKeys))
	for i := range publicKeys {
		keys = append(keys, KeyPair{Public: publicKeys[i], Private: privateKeys[i]})
	}

	return &KeyPool{
		keys:     keys,
		maxUsage: maxUsage,
	}, nil
}

// Acquire returns the current key with its index and counts one use.
func (p *KeyPool) Acquire() (KeyPair, int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.maxUsage > 0 && p.usageCount >= p.maxUsage {
		p.advance()
		keyRotationsTotal.WithLabelValues(reasonUsage).Inc()
	}

	p.usageCount++

	return p.keys[p.currentIndex], p.currentIndex
}

// Rotate moves past the key at index. It is a no-op when another caller has
// already rotated away from it; the result reports whether this call rotated.
func (p *KeyPool) Rotate(index int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index != p.currentIndex {
		return false
	}

	p.advance()

	return true
}

func (p *KeyPool) Size() int {
	return len(p.keys)
}

func (p *KeyPool) advance() {
	p.currentIndex = (p.currentIndex + 1) % len(p.keys)
	p.usageCount = 0
}
