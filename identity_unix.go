//go:build unix

package iocycle

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// Identity names a file on Unix systems by its device and inode pair, the
// kernel's uniqueness contract for a live filesystem object on one device.
// The field layout is platform specific; portable callers should use only
// equality and the serialized field names.
type Identity struct {
	Device uint64 `json:"device"`
	Inode  uint64 `json:"inode"`
}

func (id Identity) String() string {
	return fmt.Sprintf("dev=%d ino=%d", id.Device, id.Inode)
}

// LogValue emits the identity as a structured group so it logs with named
// fields instead of a flattened string.
func (id Identity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("device", id.Device),
		slog.Uint64("inode", id.Inode),
	)
}

// IdentifyPath builds the Identity of the filesystem object that path
// resolves to right now. The path must exist; failures from the underlying
// stat are wrapped, so errors.Is with fs.ErrNotExist and fs.ErrPermission
// works. Pipes, sockets, and device nodes yield a *BackingError.
func IdentifyPath(path string) (Identity, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Identity{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return identityFromStat(&st)
}

// IdentifyFile builds the Identity of an already-open handle. The handle is
// queried in place, never reopened, so the result compares correctly against
// path-derived identities of the same file.
func IdentifyFile(f *os.File) (Identity, error) {
	if f == nil {
		return Identity{}, errors.New("identify: nil file")
	}
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return Identity{}, fmt.Errorf("fstat %s: %w", f.Name(), err)
	}
	return identityFromStat(&st)
}

func identityFromStat(st *unix.Stat_t) (Identity, error) {
	if b := backingFromMode(uint32(st.Mode)); b != BackingFile {
		return Identity{}, &BackingError{Backing: b}
	}
	return Identity{Device: uint64(st.Dev), Inode: uint64(st.Ino)}, nil
}

// backingFromMode maps a stat mode to the backing kind used by both the
// identity constructors and the stream classifier. Directories count as
// identifiable storage; they have stable device/inode pairs like any file.
func backingFromMode(mode uint32) Backing {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG, unix.S_IFDIR:
		return BackingFile
	case unix.S_IFIFO, unix.S_IFSOCK:
		return BackingPipe
	default:
		return BackingOther
	}
}
