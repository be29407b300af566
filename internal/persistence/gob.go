// Package persistence stores the model snapshot on disk using gob. The index
// itself is never serialized: it is cheap to rebuild and is reconstructed from
// the snapshot at startup.
package persistence

import (
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/crimescripting/flexsearch/internal/errors"
)

// SaveGob encodes the object with gob and writes it to filePath, creating the
// parent directory when needed.
func SaveGob(filePath string, object interface{}) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath) // #nosec G304 -- filePath is derived from the configured data dir
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Warning: failed to close snapshot file %s: %v", filePath, closeErr)
		}
	}()

	if err := gob.NewEncoder(file).Encode(object); err != nil {
		return fmt.Errorf("failed to gob encode to file %s: %w", filePath, err)
	}
	return nil
}

// LoadGob decodes a gob-encoded file into objectPointer. A missing file is
// reported as a SnapshotNotFoundError, so callers can treat a fresh start as
// a non-error via errors.Is(err, errors.ErrSnapshotNotFound).
func LoadGob(filePath string, objectPointer interface{}) error {
	file, err := os.Open(filePath) // #nosec G304 -- filePath is derived from the configured data dir
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewSnapshotNotFoundError(filePath)
		}
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Warning: failed to close snapshot file %s: %v", filePath, closeErr)
		}
	}()

	if err := gob.NewDecoder(file).Decode(objectPointer); err != nil {
		return fmt.Errorf("failed to gob decode from file %s: %w", filePath, err)
	}
	return nil
}
