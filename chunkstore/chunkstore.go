// Package chunkstore materializes chunks of large reference databases at
// deterministic local paths. Remote chunk n of <db> lives at <db>.<n>
// (1-based, matching the published mirrors); the slot indices used by the
// rest of the pipeline are 0-based.
package chunkstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// localSlots maps chunk slot indices onto files in the working directory
// and owns their removal. Shared by every retriever backend.
type localSlots struct {
	workDir string
	dbName  string
}

// LocalPath returns the working path for a chunk slot.
func (l localSlots) LocalPath(index int) string {
	return filepath.Join(l.workDir, fmt.Sprintf("%s.%d", l.dbName, index+1))
}

// Cleanup removes a materialized chunk. Missing files are not an error.
func (l localSlots) Cleanup(index int) error {
	err := os.Remove(l.LocalPath(index))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RemoveStale deletes chunk files left behind by an earlier run so a huge
// database cannot fill the working disk twice over.
func (l localSlots) RemoveStale() error {
	matches, err := filepath.Glob(filepath.Join(l.workDir, l.dbName+".*"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			slog.Warn("unable to remove stale chunk", "path", m, "error", err)
		}
	}
	return nil
}
