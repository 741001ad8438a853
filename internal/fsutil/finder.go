// Package fsutil resolves the path-bearing descriptors of a configuration
// document into verified file system paths.
package fsutil

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/geotransform/internal/config"
)

// requireKeys returns a MissingKeyError for the first empty key, in order.
func requireKeys(pairs ...[2]string) error {
	for _, p := range pairs {
		if p[1] == "" {
			return &config.MissingKeyError{Key: p[0]}
		}
	}
	return nil
}

// ExistingPath returns path unchanged if something exists there.
func ExistingPath(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", &config.NotFoundError{Path: path}
		}
		return "", err
	}
	return path, nil
}

// Load resolves a `{path, file}` descriptor to an existing file.
func Load(ref config.FileRef) (string, error) {
	if err := requireKeys([2]string{"path", ref.Path}, [2]string{"file", ref.File}); err != nil {
		return "", err
	}
	dir, err := ExistingPath(ref.Path)
	if err != nil {
		return "", err
	}
	file := filepath.Join(dir, ref.File)
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return "", &config.NotFoundError{Path: ref.File}
		}
		return "", err
	}
	return file, nil
}

// Find resolves a `{path, pattern}` descriptor to every file below path,
// at any depth, matching `**/pattern`. A pattern with separators, such as
// "sub/*.csv", is matched against the same number of trailing path
// components. At least one match is required.
func Find(ref config.FileRef) ([]string, error) {
	if err := requireKeys([2]string{"path", ref.Path}, [2]string{"pattern", ref.Pattern}); err != nil {
		return nil, err
	}
	root, err := ExistingPath(ref.Path)
	if err != nil {
		return nil, err
	}
	pattern := filepath.ToSlash(filepath.Clean(ref.Pattern))
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, err
	}
	depth := strings.Count(pattern, "/") + 1

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < depth {
			return nil
		}
		// The pattern was validated above, so Match cannot fail here.
		if ok, _ := path.Match(pattern, strings.Join(parts[len(parts)-depth:], "/")); ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &config.NotFoundError{Path: filepath.Join(ref.Path, "**", ref.Pattern)}
	}
	sort.Strings(files)
	return files, nil
}

// Save resolves a `{path, file}` descriptor to a file inside an existing
// directory. The file itself need not exist.
func Save(ref config.FileRef) (string, error) {
	if err := requireKeys([2]string{"path", ref.Path}, [2]string{"file", ref.File}); err != nil {
		return "", err
	}
	dir, err := ExistingPath(ref.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ref.File), nil
}

// Base resolves a `{path, base_name}` descriptor to a filename template
// inside an existing directory.
func Base(ref config.FileRef) (string, error) {
	if err := requireKeys([2]string{"path", ref.Path}, [2]string{"base_name", ref.BaseName}); err != nil {
		return "", err
	}
	dir, err := ExistingPath(ref.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ref.BaseName), nil
}
