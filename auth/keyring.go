// Package auth persists source credentials in the system keyring.
package auth

import (
	"errors"

	"github.com/samber/mo"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/log"
	"github.com/zalando/go-keyring"
)

// service namespaces every entry; the keyring user is the source ID.
const service = constant.Youngoor

// SetToken stores the credential of a source.
func SetToken(sourceID, token string) error {
	return keyring.Set(service, sourceID, token)
}

// GetToken returns the credential of a source.
func GetToken(sourceID string) (string, error) {
	return keyring.Get(service, sourceID)
}

// DeleteToken removes the credential of a source. Removing a missing one is not an error.
func DeleteToken(sourceID string) error {
	err := keyring.Delete(service, sourceID)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// Lookup returns the stored credential of a source, if any.
// Keyring failures other than a missing entry are logged and treated as absent.
func Lookup(sourceID string) mo.Option[string] {
	token, err := GetToken(sourceID)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Warnf("keyring lookup for %s: %s", sourceID, err)
		}
		return mo.None[string]()
	}
	if token == "" {
		return mo.None[string]()
	}
	return mo.Some(token)
}
