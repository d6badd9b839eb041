package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver finds data files such as word lists and usage tables
type PathResolver struct {
	executableDir string
	configDir     string
	workDir       string
}

// NewPathResolver creates a resolver rooted at the executable, the config dir and the working dir
func NewPathResolver(configDir string) *PathResolver {
	pr := &PathResolver{configDir: configDir}

	if execDir, err := GetExecutableDir(); err == nil {
		if resolved, err := filepath.EvalSymlinks(execDir); err == nil {
			execDir = resolved
		}
		pr.executableDir = execDir
	} else {
		log.Warnf("Could not determine executable directory: %v", err)
	}
	if cwd, err := os.Getwd(); err == nil {
		pr.workDir = cwd
	}

	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s, workDir=%s",
		pr.executableDir, pr.configDir, pr.workDir)
	return pr
}

// Candidates lists where name is looked up, in order of preference:
// 1. name itself when absolute
// 2. relative to the working directory
// 3. relative to the config dir and its data/ subdir
// 4. relative to the executable dir and its data/ subdir
func (pr *PathResolver) Candidates(name string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}
	var paths []string
	for _, dir := range []string{pr.workDir, pr.configDir, pr.executableDir} {
		if dir == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, name), filepath.Join(dir, "data", name))
	}
	return paths
}

// ResolveFile returns the first existing candidate for name, or
// os.ErrNotExist when none exists
func (pr *PathResolver) ResolveFile(name string) (string, error) {
	for _, path := range pr.Candidates(name) {
		if FileExists(path) {
			log.Debugf("Resolved %s to %s", name, path)
			return path, nil
		}
		log.Debugf("Data file candidate not found: %s", path)
	}
	return "", os.ErrNotExist
}
