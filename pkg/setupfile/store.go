package setupfile

import (
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/mfriesen/toolup/pkg/errors"
)

// Store is the flat mapping from qualified keys to string values produced by
// a parse. It is immutable once returned; concurrent readers need no
// synchronization.
//
// The store performs no type coercion. Boolean-flavored settings are kept as
// the literal strings "true"/"false" and interpreted at lookup time.
type Store struct {
	values map[string]string
}

func newStore() *Store {
	return &Store{values: make(map[string]string)}
}

// FromMap builds a store from an existing qualified-key mapping. The input
// is copied, so later mutation of values does not affect the store.
func FromMap(values map[string]string) *Store {
	s := newStore()
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get returns the value stored under key, or fallback when the key is
// absent. It is total: there is no error case, and no interpretation of the
// returned string happens here.
func (s *Store) Get(key, fallback string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// Bool resolves key as the conventional boolean gate: absent keys default to
// "false", and only the literal value "true" counts as enabled.
func (s *Store) Bool(key string) bool {
	return s.Get(key, "false") == "true"
}

// Has reports whether key was assigned in the parsed input.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of qualified keys in the store.
func (s *Store) Len() int {
	return len(s.values)
}

// Keys returns every qualified key in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a copy of the underlying mapping.
func (s *Store) All() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Nested rebuilds the dotted keys into a nested map, suitable for koanf
// merging and for structured export. Keys are visited in sorted order so the
// result is deterministic even when a key collides with a section path.
func (s *Store) Nested() map[string]any {
	root := make(map[string]any)
	for _, key := range s.Keys() {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = s.values[key]
	}
	return root
}

// Decode populates out from the keys under prefix, using weakly typed
// decoding so that "true" and "false" literals land in bool fields. Field
// names are matched against the last key segment via mapstructure tags.
func (s *Store) Decode(prefix string, out any) error {
	sub := make(map[string]any)
	for k, v := range s.values {
		rest, found := strings.CutPrefix(k, prefix+".")
		if !found {
			continue
		}
		parts := strings.Split(rest, ".")
		node := sub
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to build decoder")
	}
	if err := dec.Decode(sub); err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "failed to decode section %q", prefix)
	}
	return nil
}
