package services

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	orderNumberPrefix = "ORD-"
	orderNumberLength = 6
	base36Alphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

type OrderNumberGenerator interface {
	Generate() string
}

// RandomOrderNumberGenerator produces references of the form ORD-XXXXXX
// with a six character upper-case base36 suffix.
//
// Known limitation: the suffix comes from a pseudo-random source and is
// not collision resistant. That is acceptable only because orders are
// never persisted in this demo; a real system must replace this with a
// storage-backed counter or a UUID. The issued set only guards against a
// number being handed out twice within a single process session.
type RandomOrderNumberGenerator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	issued map[string]struct{}
}

func NewRandomOrderNumberGenerator() *RandomOrderNumberGenerator {
	return &RandomOrderNumberGenerator{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		issued: map[string]struct{}{},
	}
}

func (g *RandomOrderNumberGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		var sb strings.Builder
		sb.WriteString(orderNumberPrefix)
		for i := 0; i < orderNumberLength; i++ {
			sb.WriteByte(base36Alphabet[g.rng.Intn(len(base36Alphabet))])
		}
		number := sb.String()
		if _, seen := g.issued[number]; seen {
			continue
		}
		g.issued[number] = struct{}{}
		return number
	}
}

var _ OrderNumberGenerator = (*RandomOrderNumberGenerator)(nil)
