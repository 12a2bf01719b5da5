// Package keychain provides secret storage backed by macOS Keychain.
//
// Secrets are stored as generic passwords with:
//   - Service: "com.loom" by default (callers may scope their own)
//   - Account: the secret key (e.g. "openai-api-key")
//   - Label: "loom: <key>" (for Keychain Access.app visibility)
//
// Secrets are scoped with kSecAttrAccessibleWhenUnlockedThisDeviceOnly:
// never synced to iCloud, never available when the machine is locked.
//
// The Keychain offers no enumeration of stored items, so there is no
// List operation; callers must know their key names.
package keychain

import "errors"

// ErrNotFound is returned when a secret does not exist in the store.
var ErrNotFound = errors.New("secret not found")

// DefaultService is the Keychain service attribute used when the caller
// does not supply one.
const DefaultService = "com.loom"

// Store is the interface for secret storage operations.
type Store interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}
