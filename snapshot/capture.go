package snapshot

import (
	"time"

	"github.com/grovetools/envbackup/util/pathutil"
)

// Capture reads the live environment, history files and config files into a
// new State stamped with at. Unreadable files are skipped.
func (s *Store) Capture(at time.Time) *State {
	return &State{
		EnvVars:      s.denylist.Filter(s.env.Environ()),
		ShellHistory: s.captureHistory(),
		ShellConfig:  s.captureConfig(),
		CapturedAt:   at.UTC().Truncate(time.Millisecond),
	}
}

func (s *Store) captureHistory() map[ShellKind][]string {
	history := make(map[ShellKind][]string, len(KnownShells))
	for _, kind := range KnownShells {
		history[kind] = []string{}
	}

	for kind, path := range s.opts.HistoryFiles {
		content, ok := s.readOptional(path)
		if !ok {
			continue
		}
		history[kind] = parseHistory(kind, content)
		s.logger.WithField("shell", kind).WithField("lines", len(history[kind])).Debug("Captured shell history")
	}

	return history
}

func (s *Store) captureConfig() map[string]string {
	configs := make(map[string]string)
	for _, name := range s.opts.ConfigFiles {
		content, ok := s.readOptional(pathutil.ResolveHome(s.opts.Home, name))
		if !ok {
			continue
		}
		configs[name] = content
	}
	return configs
}

// readOptional returns a file's content, or false if it is missing or
// unreadable for any reason.
func (s *Store) readOptional(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	data, err := s.backend.ReadFile(path)
	if err != nil {
		s.logger.WithError(err).WithField("path", path).Debug("Skipping unreadable file")
		return "", false
	}
	return string(data), true
}
