// Package fs provides content digests for loaded networks.
package fs

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes network digests with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// NetworkDigest hashes the nodes in declaration order, their resources and the edges in insertion order.
// Two networks with the same digest enumerate neighbors identically, so they answer every query the same way.
func (h *Hasher) NetworkDigest(net *domain.Network) string {
	hasher := xxhash.New()

	for _, id := range net.Nodes() {
		_, _ = hasher.WriteString(id.String())
		_, _ = hasher.Write([]byte{0})
		for _, r := range net.ResourcesOf(id) {
			_, _ = hasher.WriteString(r.String())
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}
	_, _ = hasher.Write([]byte{0})

	var count uint64
	for e := range net.Edges() {
		_, _ = hasher.WriteString(e.A.String())
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(e.B.String())
		_, _ = hasher.Write([]byte{0})
		count++
	}
	_ = binary.Write(hasher, binary.LittleEndian, count)

	return fmt.Sprintf("%016x", hasher.Sum64())
}
