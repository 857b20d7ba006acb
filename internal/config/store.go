package config

import (
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// DefaultDocument is the starting document for a Store created with New
// and no initial bytes: an empty object, with the editor and dock
// top-level sections the rest of this module reads settings from.
const DefaultDocument = `{"editor":{},"dock":{}}`

// Store is a JSON document addressed by gjson/sjson dotted paths (e.g.
// "editor.tabWidth", "dock.separatorWidth"). It is the one settings
// surface the editor core and Dock Manager read from; nothing below it
// knows paths exist at all.
type Store struct {
	mu  sync.RWMutex
	raw []byte
}

// New returns a Store over raw, or over DefaultDocument if raw is empty.
// raw must be valid JSON.
func New(raw []byte) (*Store, error) {
	if len(raw) == 0 {
		raw = []byte(DefaultDocument)
	}
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidPath
	}
	return &Store{raw: append([]byte(nil), raw...)}, nil
}

// Bytes returns the store's current document, pretty-printed.
func (s *Store) Bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pretty.Pretty(s.raw)
}

// Get returns the raw gjson result at path, which may be gjson.Result{}
// (Exists() == false) if path has no value.
func (s *Store) Get(path string) gjson.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gjson.GetBytes(s.raw, path)
}

// GetString returns the string value at path, or ErrSettingNotFound if
// path does not exist.
func (s *Store) GetString(path string) (string, error) {
	r := s.Get(path)
	if !r.Exists() {
		return "", ErrSettingNotFound
	}
	return r.String(), nil
}

// GetInt returns the integer value at path, or ErrSettingNotFound if path
// does not exist.
func (s *Store) GetInt(path string) (int64, error) {
	r := s.Get(path)
	if !r.Exists() {
		return 0, ErrSettingNotFound
	}
	return r.Int(), nil
}

// GetBool returns the boolean value at path, or ErrSettingNotFound if path
// does not exist.
func (s *Store) GetBool(path string) (bool, error) {
	r := s.Get(path)
	if !r.Exists() {
		return false, ErrSettingNotFound
	}
	return r.Bool(), nil
}

// GetFloat returns the floating-point value at path, or ErrSettingNotFound
// if path does not exist.
func (s *Store) GetFloat(path string) (float64, error) {
	r := s.Get(path)
	if !r.Exists() {
		return 0, ErrSettingNotFound
	}
	return r.Float(), nil
}

// Set writes value at path, creating any intermediate objects path implies.
func (s *Store) Set(path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := sjson.SetBytes(s.raw, path, value)
	if err != nil {
		return err
	}
	s.raw = next
	return nil
}

// Delete removes the value at path, if present.
func (s *Store) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := sjson.DeleteBytes(s.raw, path)
	if err != nil {
		return err
	}
	s.raw = next
	return nil
}

// Merge overlays every leaf value of overlay onto the store, last write
// wins, matching the teacher's layered-configuration intent (a later
// layer's settings override an earlier one's) collapsed to a single
// generic merge since this module carries no separate env/CLI/file layer
// stack.
func (s *Store) Merge(overlay []byte) error {
	if !gjson.ValidBytes(overlay) {
		return ErrInvalidPath
	}
	var mergeErr error
	walkLeaves("", gjson.ParseBytes(overlay), func(path string, value gjson.Result) {
		if mergeErr != nil {
			return
		}
		mergeErr = s.Set(path, value.Value())
	})
	return mergeErr
}

// walkLeaves calls fn for every non-object leaf in v, building dotted
// paths as it descends into objects. Arrays are passed to fn whole.
func walkLeaves(prefix string, v gjson.Result, fn func(path string, value gjson.Result)) {
	if !v.IsObject() {
		fn(prefix, v)
		return
	}
	v.ForEach(func(key, value gjson.Result) bool {
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		walkLeaves(path, value, fn)
		return true
	})
}
