package identity

import (
	"strconv"
	"strings"
	"sync"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"

	"github.com/goliatone/go-loading/pkg/interfaces"
)

// DefaultPrefix keeps generated ids valid as CSS class names, which may not
// start with a digit.
const DefaultPrefix = "a"

// UUID derives a stable UUID from key with go-hashid, falling back to a
// name-based SHA1 UUID if hashing fails.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// Random returns a generator that yields prefix followed by a random v4
// UUID, ignoring the seed.
func Random(prefix string) interfaces.IDGenerator {
	prefix = normalizePrefix(prefix)
	return interfaces.IDGeneratorFunc(func(string) string {
		return prefix + uuid.New().String()
	})
}

// Deterministic returns a generator whose ids depend only on namespace, the
// seed passed to NewID and how many ids the generator has produced. Two
// generators built with the same namespace yield the same sequence.
func Deterministic(namespace, prefix string) interfaces.IDGenerator {
	return &deterministic{
		namespace: strings.TrimSpace(namespace),
		prefix:    normalizePrefix(prefix),
	}
}

type deterministic struct {
	mu        sync.Mutex
	namespace string
	prefix    string
	issued    int
}

func (d *deterministic) NewID(seed string) string {
	d.mu.Lock()
	d.issued++
	n := d.issued
	d.mu.Unlock()

	key := "go-loading:widget:" + d.namespace + ":" + strings.ToLower(strings.TrimSpace(seed)) + ":" + strconv.Itoa(n)
	return d.prefix + UUID(key).String()
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || !isLetter(prefix[0]) {
		return DefaultPrefix + prefix
	}
	return prefix
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
