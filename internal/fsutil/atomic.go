// Package fsutil provides filesystem helpers shared by writers.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/podkit/internal/messages"
)

// seams for tests
var (
	createTemp = os.CreateTemp
	rename     = os.Rename
)

// WriteFileAtomic writes data to a temp file in the target directory and renames
// it over filename, so readers see either the old content or the new content.
// On any failure the temp file is removed and filename is left untouched.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	tmp, err := createTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFmt, filename, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf(messages.FsutilWriteTempFmt, filename, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf(messages.FsutilSyncTempFmt, filename, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf(messages.FsutilChmodTempFmt, filename, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFmt, filename, err)
	}
	if err = rename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameFmt, filename, err)
	}
	return nil
}
