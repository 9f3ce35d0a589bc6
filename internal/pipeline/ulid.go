package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Job IDs are ULIDs: 48 bits of millisecond timestamp followed by 80 bits
// of entropy, Crockford base32 encoded to 26 characters. IDs minted in the
// same millisecond carry an increasing counter so they sort in order.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	idMu   sync.Mutex
	lastMs uint64
	seq    uint16
)

// NewJobID returns a new lexically sortable job ID.
func NewJobID() string {
	return newULID(time.Now())
}

func newULID(now time.Time) string {
	idMu.Lock()
	ms := uint64(now.UnixMilli())
	if ms == lastMs {
		seq++
	} else {
		lastMs, seq = ms, 0
	}
	s := seq
	idMu.Unlock()

	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], ms<<16)
	rand.Read(b[6:])
	binary.BigEndian.PutUint16(b[6:8], s)
	return encodeBase32(b)
}

// encodeBase32 writes the 128-bit value five bits at a time from the most
// significant end. 26 characters hold 130 bits; the top two are zero.
func encodeBase32(b [16]byte) string {
	hi := binary.BigEndian.Uint64(b[:8])
	lo := binary.BigEndian.Uint64(b[8:])
	var out [26]byte
	for i := 25; i >= 0; i-- {
		out[i] = crockford[lo&31]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}
