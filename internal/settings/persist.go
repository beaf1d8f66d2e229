package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileMode is the permission given to files the installer creates.
const FileMode fs.FileMode = 0o644

// Persist writes doc to path, creating parent directories as needed and
// replacing any previous content in full.
func Persist(path string, doc *Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return WriteFile(path, data)
}

// WriteFile writes data to path through a temporary file in the same
// directory followed by a rename. Parent directories are created first.
// A symlink at path is followed so the link survives and its target is
// updated. An existing file keeps its permissions; new files get FileMode.
func WriteFile(path string, data []byte) error {
	target, mode, err := resolveTarget(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// resolveTarget returns the file a write to path lands in and the
// permissions it should carry.
func resolveTarget(path string) (string, fs.FileMode, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		info, err := os.Stat(resolved)
		if err != nil {
			return "", 0, fmt.Errorf("stat %s: %w", filepath.Base(path), err)
		}
		return resolved, info.Mode().Perm(), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", 0, fmt.Errorf("resolve %s: %w", filepath.Base(path), err)
	}

	// Dangling link: create the file it points at.
	if info, lerr := os.Lstat(path); lerr == nil && info.Mode()&fs.ModeSymlink != 0 {
		dest, err := os.Readlink(path)
		if err != nil {
			return "", 0, fmt.Errorf("read link %s: %w", filepath.Base(path), err)
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		return dest, FileMode, nil
	}
	return path, FileMode, nil
}

// Exists reports whether a file is present at path. Errors other than
// "not exist" are returned so callers can tell absence from denial.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
