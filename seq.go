package teststate

import "iter"

// Seq renders the elements of seq as an array, each through [Of].
func Seq[T any](seq iter.Seq[T]) Value {
	var values []Value
	seq(func(item T) bool {
		values = append(values, Of(item))
		return true
	})
	return Array(values...)
}

// Seq2 renders the pairs of seq as an object in iteration order, each value
// through [Of].
func Seq2[V any](seq iter.Seq2[string, V]) Value {
	var props []Property
	seq(func(name string, item V) bool {
		props = append(props, PropOf(name, item))
		return true
	})
	return Object(props...)
}

// Chan renders everything received from ch until it is closed as an array.
// It is a thin wrapper around [Seq].
func Chan[T any](ch <-chan T) Value {
	return Seq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
