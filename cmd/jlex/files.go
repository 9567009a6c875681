package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/jlex/logs"
)

// expandFiles resolves patterns to regular text files, in argument order.
func expandFiles(logger logs.Logger, patterns []string) (ret []string, err error) {
	seen := make(map[string]bool)
	add := func(path string) {
		if seen[path] {
			return
		}
		if !isText(path) {
			logger.Warn("skip non-text file", "path", path)
			return
		}
		seen[path] = true
		ret = append(ret, path)
	}

	for _, pattern := range patterns {
		paths, err := filepath.Glob(pattern)
		if err != nil || len(paths) == 0 {
			// not a pattern, report at open
			paths = []string{pattern}
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				return nil, wrap(err)
			}
			if !info.IsDir() {
				add(path)
				continue
			}
			if err := filepath.WalkDir(path, func(path string, entry fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if entry.Type().IsRegular() && strings.HasSuffix(path, ".java") {
					add(path)
				}
				return nil
			}); err != nil {
				return nil, wrap(err)
			}
		}
	}

	return
}

func isText(path string) bool {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		// unreadable files fail later with a proper error
		return true
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
