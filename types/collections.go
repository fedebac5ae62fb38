package types

import (
	"maps"
	"slices"
)

// ConvertEach converts ws in order and stops at the first failing element. A
// nil input gives a nil result.
func ConvertEach[W, M any](ws []W, into func(W) (M, error)) ([]M, error) {
	if ws == nil {
		return nil, nil
	}
	out := make([]M, 0, len(ws))
	for _, w := range ws {
		m, err := into(w)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// MapBy re-keys a wire mapping by the parsed form of its string keys and
// converts every value. Keys are visited in sorted order so that the failure
// reported for a given input is always the same one. Two keys that parse to
// the same model key fail with a DuplicateKeyError. Key failures are passed
// through onKey and value failures through onValue.
func MapBy[K comparable, W, M any](
	m map[string]W,
	parse func(string) (K, error),
	into func(W) (M, error),
	onKey, onValue func(error) error,
) (map[K]M, error) {
	out := make(map[K]M, len(m))
	for _, s := range slices.Sorted(maps.Keys(m)) {
		k, err := parse(s)
		if err == nil {
			if _, dup := out[k]; dup {
				err = &DuplicateKeyError{Key: s}
			}
		}
		if err != nil {
			return nil, onKey(err)
		}
		v, err := into(m[s])
		if err != nil {
			return nil, onValue(err)
		}
		out[k] = v
	}
	return out, nil
}

// Opt applies parse to an optional wire string. A nil input gives a nil
// result and no error.
func Opt[T any](s *string, parse func(string) (T, error)) (*T, error) {
	if s == nil {
		return nil, nil
	}
	v, err := parse(*s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
