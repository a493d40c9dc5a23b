// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ptnet

import (
	"encoding/binary"
	"unique"
)

// Handle is a unique identifier for a Config: the canonical, interned
// version (using the standard library's unique package) of a Config's byte
// encoding. Two Configs with the same contents always produce the same
// Handle, and comparing two Handles is a pointer/uintptr comparison rather
// than a per-element scan — the same trick the teacher package used to
// intern Markings, generalized here from sparse (place, multiplicity) pairs
// to this package's dense, Omega-aware Config.
type Handle unique.Handle[string]

// Handle returns the interned Handle for c.
func (c Config) Handle() Handle {
	buf := make([]byte, 8*len(c))
	for i, v := range c {
		binary.BigEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return Handle(unique.Make(string(buf)))
}

// Config decodes the Config that produced h.
func (h Handle) Config() Config {
	s := []byte(unique.Handle[string](h).Value())
	out := make(Config, len(s)/8)
	for i := range out {
		out[i] = int64(binary.BigEndian.Uint64(s[i*8:]))
	}
	return out
}
