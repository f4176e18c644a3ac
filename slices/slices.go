// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slices defines the small set of generic slice helpers the
// grammar and earley packages build on: cartesian-product expansion,
// concatenation, and deterministic sorting for otherwise map-ordered
// output.
package slices

import "sort"

// Possibles returns every way of picking one element from each slice in
// z, in the order the source slices were given — the cartesian product.
// An empty element of z is skipped rather than collapsing the whole
// result to nothing, so a position contributing no fragment (a dropped
// optional) does not veto the other positions.
func Possibles[S ~[]T, T any](z []S) []S {
	if len(z) == 0 {
		return []S{}
	}
	if len(z[0]) == 0 {
		return Possibles(z[1:])
	}

	res := []S{}
	for _, elem := range z[0] {
		morePossibilities := Possibles(z[1:])
		if len(morePossibilities) == 0 {
			res = append(res, S{elem})
			continue
		}
		for _, nextItems := range morePossibilities {
			res = append(res, append(S{elem}, nextItems...))
		}
	}
	return res
}

// AppendMany concatenates items in order into a single slice.
func AppendMany[S ~[]T, T any](items ...S) S {
	res := S{}
	for _, item := range items {
		res = append(res, item...)
	}
	return res
}

// SortFunc sorts a copy of s using less, leaving s untouched — most
// callers feed it the unordered result of maps.Keys/maps.Values and want
// a fresh, deterministically ordered slice back.
func SortFunc[T any](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
