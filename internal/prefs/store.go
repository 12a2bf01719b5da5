package prefs

import (
	"bytes"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// DBFilename is the default database file name inside the database
	// directory.
	DBFilename = "db.bolt"

	// prefix namespaces preference entries. Other namespaces share the
	// same flat mapping and are never touched by this package.
	prefix = "prefs:"
)

// bucketKV is the single bucket holding the flat key-value mapping.
var bucketKV = []byte("kv")

// Store is a typed preference store over a bbolt database file.
//
// Only backing-store I/O errors are surfaced. Stored values that fail to
// decode as JSON are returned as string values; failed coercions fall
// back to the caller's default. The store holds the database file open
// for its lifetime; callers close it via Close. Concurrent access from
// multiple processes is not part of the contract (bbolt's own file lock
// applies as-is).
type Store struct {
	db *bolt.DB
}

// Open opens (creating if absent) the preference database at path.
// bbolt holds an exclusive file lock; the timeout makes a second open of
// the same path fail with an error instead of blocking indefinitely.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening preference db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKV)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing preference db %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

func storageKey(key string) []byte {
	return []byte(prefix + key)
}

// Set writes a preference, overwriting any existing entry.
func (s *Store) Set(key string, v Value) error {
	encoded, err := v.Encode()
	if err != nil {
		return fmt.Errorf("encoding preference %q: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketKV).Put(storageKey(key), []byte(encoded))
	})
	if err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}

// load reads and decodes one entry, reporting whether it was present.
func (s *Store) load(key string) (Value, bool, error) {
	var raw []byte
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketKV).Get(storageKey(key)); v != nil {
			found = true
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return Null, false, fmt.Errorf("reading preference %q: %w", key, err)
	}
	if !found {
		return Null, false, nil
	}
	return decodeStored(raw), true, nil
}

// Get reads a preference, returning def when the key is absent. A stored
// value that is not valid JSON (written by older code) is returned
// verbatim as a string value.
func (s *Store) Get(key string, def Value) (Value, error) {
	v, found, err := s.load(key)
	if err != nil {
		return Null, err
	}
	if !found {
		return def, nil
	}
	return v, nil
}

// GetAs reads a preference and coerces it to the requested kind. The
// default is returned unchanged on a missing key or a failed coercion;
// a stored null is returned as null without coercion.
func (s *Store) GetAs(key string, def Value, want Kind) (Value, error) {
	v, found, err := s.load(key)
	if err != nil {
		return Null, err
	}
	if !found {
		return def, nil
	}
	if v.IsNull() {
		return v, nil
	}
	coerced, err := Coerce(v, want)
	if err != nil {
		return def, nil
	}
	return coerced, nil
}

// Delete removes a preference, reporting whether it existed. Deleting an
// absent key is not an error.
func (s *Store) Delete(key string) (bool, error) {
	existed := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		k := storageKey(key)
		if b.Get(k) == nil {
			return nil
		}
		existed = true
		return b.Delete(k)
	})
	if err != nil {
		return false, fmt.Errorf("deleting preference %q: %w", key, err)
	}
	return existed, nil
}

// Exists reports whether a preference is present, without decoding it.
func (s *Store) Exists(key string) (bool, error) {
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(bucketKV).Get(storageKey(key)) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("checking preference %q: %w", key, err)
	}
	return found, nil
}

// All returns every preference, keyed by its unprefixed name. Entries
// outside the preference namespace are skipped. Values decode with the
// same raw fallback as Get.
func (s *Store) All() (map[string]Value, error) {
	out := make(map[string]Value)
	p := []byte(prefix)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketKV).Cursor()
		for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
			out[string(k[len(p):])] = decodeStored(v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing preferences: %w", err)
	}
	return out, nil
}

// Clear removes every preference and returns the number removed. Keys
// outside the preference namespace are untouched.
func (s *Store) Clear() (int, error) {
	count := 0
	p := []byte(prefix)
	err := s.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketKV).Cursor()
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("clearing preferences: %w", err)
	}
	return count, nil
}

// decodeStored applies the JSON-with-raw-fallback policy: bytes that do
// not parse as a single JSON document are legacy or foreign data and come
// back as a plain string value.
func decodeStored(raw []byte) Value {
	v, err := Decode(string(raw))
	if err != nil {
		return String(string(raw))
	}
	return v
}
