// Package harvest copies template files out of the cloned working copies into the output directory.
//
// Files are identified by name only. When two working copies contain a template with the same
// name, the one visited later in lexical walk order replaces the earlier copy; the collision is
// logged and reported in Result.Collisions but not otherwise resolved.
package harvest

import (
	"fmt"
	"gtc/internal/color"
	"gtc/internal/log"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

const DefaultExtension = ".yaml"

// Collision records a template that replaced another one copied earlier in the same run.
type Collision struct {
	Name        string
	Replaced    string
	Replacement string
}

type Result struct {
	// Copied is the number of copy operations performed in this run.
	Copied int
	// Total is the number of templates present in the output directory after copying.
	Total      int
	Collisions []Collision
}

// Harvest copies every file below workRoot whose name ends in extension into outputDir.
func Harvest(workRoot, outputDir, extension string) (Result, error) {
	result := Result{}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return result, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	copiedFrom := map[string]string{}
	err := filepath.WalkDir(workRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			return nil
		}
		if entry.Type()&fs.ModeSymlink != 0 && !isFileLink(path) {
			return nil
		}
		if previous, ok := copiedFrom[entry.Name()]; ok {
			logger.Log.Warnf("Template %s from %s overwrites the copy from %s", color.FgYellow(entry.Name()), path, previous)
			result.Collisions = append(result.Collisions, Collision{Name: entry.Name(), Replaced: previous, Replacement: path})
		}
		if err := copyFile(path, filepath.Join(outputDir, entry.Name())); err != nil {
			return err
		}
		copiedFrom[entry.Name()] = path
		result.Copied++
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("failed to harvest templates from %s: %w", workRoot, err)
	}

	result.Total, err = CountTemplates(outputDir, extension)
	if err != nil {
		return result, err
	}
	logger.Log.Infof("Copied %d templates, %d now in %s", result.Copied, result.Total, outputDir)
	return result, nil
}

// CountTemplates counts the files in dir (not recursive) whose name ends in extension.
func CountTemplates(dir, extension string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list output directory %s: %w", dir, err)
	}
	return lo.CountBy(entries, func(entry os.DirEntry) bool {
		return !entry.IsDir() && strings.HasSuffix(entry.Name(), extension)
	}), nil
}

// isFileLink reports whether the symlink at path resolves to something other than a directory.
// WalkDir does not follow links, so a linked directory would otherwise look like a file.
func isFileLink(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		logger.Log.Warnf("Skipping unresolvable link %s: %v", path, err)
		return false
	}
	if info.IsDir() {
		logger.Log.Debugf("Skipping link to directory %s", path)
		return false
	}
	return true
}

// copyFile copies content, permission bits and modification time.
func copyFile(source, destination string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", source, destination, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := os.Chmod(destination, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(destination, info.ModTime(), info.ModTime())
}
