// Package workdir owns the transient directory tree that clones are placed in.
package workdir

import (
	"errors"
	"fmt"
	"gtc/internal/log"
	"os"
	"path/filepath"
	"strings"
)

const fallbackName = "repo"

// BaseName derives a folder name from the last path segment of a repository URL,
// without a trailing ".git".
func BaseName(url string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	name := trimmed[strings.LastIndexAny(trimmed, "/:")+1:]
	name = strings.TrimSuffix(name, ".git")
	if name == "" || name == "." || name == ".." {
		return fallbackName
	}
	return name
}

// Namer hands out collision-free clone destinations below Root.
type Namer struct {
	Root string
}

func NewNamer(root string) *Namer {
	return &Namer{Root: root}
}

// Reserve claims the first free name out of base, base_1, base_2, ... by creating the
// directory exclusively, so concurrent callers never receive the same path.
func (n *Namer) Reserve(url string) (string, error) {
	base := BaseName(url)
	for suffix := 0; ; suffix++ {
		name := base
		if suffix > 0 {
			name = fmt.Sprintf("%s_%d", base, suffix)
		}
		path := filepath.Join(n.Root, name)
		err := os.Mkdir(path, 0o755)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("failed to create clone directory %s: %w", path, err)
		}
		logger.Log.Tracef("%s already taken", path)
	}
}

func Prepare(root string) error {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create working directory %s: %w", root, err)
	}
	return nil
}

// Cleanup removes the working directory and everything below it.
func Cleanup(root string) error {
	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("failed to remove working directory %s: %w", root, err)
	}
	return nil
}
