package writer

import (
	"os"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to a uniquely named temporary file beside
// path, fsyncs it and renames it over path. The random suffix and O_EXCL
// keep concurrent writers of the same target from sharing a temp file, and
// a failed write leaves no temp file behind.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp := path + ".tmp-" + uuid.NewString()[:8]
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
