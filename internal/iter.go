// Package internal holds iterator helpers shared by the intcode packages.
package internal

import (
	"iter"
)

// Seq2Concat yields the pairs of each sequence in turn.
func Seq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}
