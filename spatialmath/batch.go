package spatialmath

import "github.com/pkg/errors"

// Batch applies a single-value conversion to every element of a slice and
// returns the results in order. Single values do not need to be wrapped in a
// slice to be converted; calling the conversion directly gives the unbatched
// result.
func Batch[In, Out any](f func(In) Out, in []In) []Out {
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// BatchErr applies a fallible single-value conversion to every element of a
// slice, stopping at the first failure.
func BatchErr[In, Out any](f func(In) (Out, error), in []In) ([]Out, error) {
	out := make([]Out, 0, len(in))
	for i, v := range in {
		converted, err := f(v)
		if err != nil {
			return nil, errors.Wrapf(err, "converting element %d", i)
		}
		out = append(out, converted)
	}
	return out, nil
}
