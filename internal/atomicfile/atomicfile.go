// Package atomicfile replaces file contents atomically.
//
// Replace streams new content into a pending temporary file created next to
// the target, then renames it over the target in a single step. Readers see
// either the old bytes or the new bytes, never a mix. If producing the
// content fails, the target keeps its previous content and the temporary
// file is removed.
package atomicfile

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Replace atomically replaces target with the bytes written by write.
//
// The temporary file is created in target's own directory so the final
// rename never crosses a filesystem boundary. An existing target keeps its
// permissions; a new one is created 0644. On any error — from write or from
// the rename itself — the original file is left untouched.
func Replace(target string, write func(io.Writer) error) error {
	pending, err := renameio.NewPendingFile(target,
		renameio.WithTempDir(filepath.Dir(target)),
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer pending.Cleanup()

	if err := write(pending); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(target), err)
	}
	return nil
}
