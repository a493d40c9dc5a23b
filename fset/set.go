// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package fset

import (
	"sort"
	"strings"

	"github.com/dalzilio/ptcheck/formula"
)

// Set is a set of formula.Formula values, hashable and order-independent:
// building the same mathematical set in two different insertion orders
// always yields the same Hash and compares Equal. Members are bucketed by
// their individual formula.Hash to make membership tests and Equal cheap
// while still tolerating the (astronomically unlikely) 64-bit hash
// collision correctly.
type Set struct {
	buckets map[uint64][]*formula.Formula
	size    int
}

// New returns the set containing exactly the given formulas (duplicates are
// collapsed).
func New(fs ...*formula.Formula) Set {
	s := Set{buckets: map[uint64][]*formula.Formula{}}
	for _, f := range fs {
		s.Add(f)
	}
	return s
}

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s.size == 0 }

// Len returns the number of members of s.
func (s Set) Len() int { return s.size }

// Add inserts f into s, returning whether it was not already present.
func (s *Set) Add(f *formula.Formula) bool {
	if s.buckets == nil {
		s.buckets = map[uint64][]*formula.Formula{}
	}
	h := formula.Hash(f)
	for _, g := range s.buckets[h] {
		if formula.Equal(f, g) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], f)
	s.size++
	return true
}

// Contains reports whether f is a member of s.
func (s Set) Contains(f *formula.Formula) bool {
	h := formula.Hash(f)
	for _, g := range s.buckets[h] {
		if formula.Equal(f, g) {
			return true
		}
	}
	return false
}

// Slice returns the members of s in an arbitrary, but fixed for a given s,
// order (sorted by hash then by string form, so iteration is deterministic
// across calls even though it carries no particular mathematical meaning).
func (s Set) Slice() []*formula.Formula {
	out := make([]*formula.Formula, 0, s.size)
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	sort.Slice(out, func(i, j int) bool {
		hi, hj := formula.Hash(out[i]), formula.Hash(out[j])
		if hi != hj {
			return hi < hj
		}
		return out[i].String() < out[j].String()
	})
	return out
}

// Hash returns a hash of s that is the same regardless of insertion order:
// it commutatively XOR-folds each member's hash together with the set size,
// so {a, b} and {b, a} always hash equal (spec.md section 9).
func (s Set) Hash() uint64 {
	var h uint64
	for bucketHash, bucket := range s.buckets {
		for range bucket {
			h ^= mix(bucketHash)
		}
	}
	// Fold in the size so that, e.g., a multiset-like accidental double-add
	// (impossible via Add, but defensive) cannot silently cancel out in the
	// XOR fold.
	h ^= mix(uint64(s.size)) * 0x9e3779b97f4a7c15
	return h
}

// mix applies a fixed avalanche step so that XOR-folding hashes from
// different buckets does not degrade into simple bit cancellation for
// formulas whose hashes happen to share low bits.
func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// Equal reports whether s and t contain exactly the same formulas.
func Equal(s, t Set) bool {
	if s.size != t.size {
		return false
	}
	for _, f := range s.Slice() {
		if !t.Contains(f) {
			return false
		}
	}
	return true
}

// Union returns the set union of s and t.
func Union(s, t Set) Set {
	out := New(s.Slice()...)
	for _, f := range t.Slice() {
		out.Add(f)
	}
	return out
}

// Intersect returns the set intersection of s and t.
func Intersect(s, t Set) Set {
	out := New()
	for _, f := range s.Slice() {
		if t.Contains(f) {
			out.Add(f)
		}
	}
	return out
}

// Diff returns the members of s that are not in t.
func Diff(s, t Set) Set {
	out := New()
	for _, f := range s.Slice() {
		if !t.Contains(f) {
			out.Add(f)
		}
	}
	return out
}

// Subset reports whether every member of s is also a member of t.
func Subset(s, t Set) bool {
	for _, f := range s.Slice() {
		if !t.Contains(f) {
			return false
		}
	}
	return true
}

// String renders s as a brace-enclosed, comma-separated list in the
// deterministic order given by Slice.
func (s Set) String() string {
	parts := make([]string, 0, s.size)
	for _, f := range s.Slice() {
		parts = append(parts, f.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
