package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"playtally/internal/config"
	"playtally/internal/logging"
)

// Find walks each root and returns every regular file whose extension is in
// cfg.Scan.Extensions, sorted for deterministic runs. A root may also be a
// single file, which is returned as-is when its extension matches.
func Find(roots []string, cfg *config.Config, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	extensions := make(map[string]struct{}, len(cfg.Scan.Extensions))
	for _, ext := range cfg.Scan.Extensions {
		extensions[strings.ToLower(ext)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var found []string
	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		found = append(found, path)
	}

	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(absRoot)
		if err != nil {
			logger.Warn("skipping unreadable root", slog.String("root", root), slog.String("error", err.Error()))
			continue
		}

		if !info.IsDir() {
			if matchesExtension(absRoot, extensions) && !underDir(absRoot, cfg.Paths.StatsDir) {
				add(absRoot)
			}
			continue
		}

		walkErr := filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("skipping unreadable path", slog.String("path", path), slog.String("error", err.Error()))
				if entry != nil && entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				if underDir(path, cfg.Paths.StatsDir) {
					return filepath.SkipDir
				}
				if path != absRoot && isHidden(entry.Name()) && !cfg.Scan.IncludeHidden {
					return filepath.SkipDir
				}
				return nil
			}
			if isHidden(entry.Name()) && !cfg.Scan.IncludeHidden {
				return nil
			}
			if underDir(path, cfg.Paths.StatsDir) {
				return nil
			}
			if matchesExtension(path, extensions) {
				add(path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Strings(found)
	return found, nil
}

func matchesExtension(path string, extensions map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := extensions[ext]
	return ok
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func underDir(path, dir string) bool {
	if dir == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}
