package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/grovetools/envbackup/errors"
	"github.com/grovetools/envbackup/pkg/profiling"
	"github.com/grovetools/envbackup/schema"
	"github.com/grovetools/envbackup/util/pathutil"
	"github.com/grovetools/envbackup/util/sanitize"
	"github.com/sirupsen/logrus"
)

const (
	storeDirPerm  = 0o700
	stateFilePerm = 0o600
	tmpSuffix     = ".tmp"
)

// Store manages snapshots under a single root directory.
type Store struct {
	backend   Backend
	env       Environ
	opts      Options
	denylist  *Denylist
	validator *schema.Validator
	now       func() time.Time
	logger    *logrus.Entry
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock sets the time source used for snapshot names and timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *logrus.Entry) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a Store. It does not touch the filesystem.
func NewStore(backend Backend, env Environ, opts Options, storeOpts ...StoreOption) (*Store, error) {
	if opts.StoreRoot == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "store root must not be empty")
	}

	denylist, err := NewDenylist(opts.ExcludedVars, opts.ExcludePatterns)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to build denylist")
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load state schema")
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Store{
		backend:   backend,
		env:       env,
		opts:      opts,
		denylist:  denylist,
		validator: validator,
		now:       time.Now,
		logger:    logrus.NewEntry(discard),
	}
	for _, opt := range storeOpts {
		opt(s)
	}
	return s, nil
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.opts.StoreRoot
}

// Save captures the current state and writes it as a new snapshot named
// after the current time and the optional label.
func (s *Store) Save(label string) (*Snapshot, error) {
	defer profiling.Start("snapshot.Save").Stop()

	safeLabel := sanitize.ForSnapshotLabel(label)
	if label != "" && safeLabel == "" {
		return nil, errors.InvalidName(label, "label has no usable characters")
	}

	if err := s.ensureRoot(); err != nil {
		return nil, err
	}

	at := s.now()
	name := FormatName(at, safeLabel)
	dir := s.snapshotDir(name)

	s.logger.WithField("snapshot", name).Debug("Capturing environment state")
	captureSpan := profiling.Start("capture")
	state := s.Capture(at)
	captureSpan.Stop()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to encode state document")
	}
	data = append(data, '\n')

	if err := s.backend.MkdirAll(dir, storeDirPerm); err != nil {
		return nil, errors.IOFailure("create snapshot directory", dir, err)
	}

	// Write to a temp file and rename so state.json is either absent or complete.
	statePath := filepath.Join(dir, StateFileName)
	tmpPath := statePath + tmpSuffix
	if err := s.backend.WriteFile(tmpPath, data, stateFilePerm); err != nil {
		return nil, errors.IOFailure("write state document", tmpPath, err)
	}
	if err := s.backend.Rename(tmpPath, statePath); err != nil {
		return nil, errors.IOFailure("write state document", statePath, err)
	}

	s.logger.WithFields(logrus.Fields{
		"snapshot": name,
		"env_vars": len(state.EnvVars),
		"configs":  len(state.ShellConfig),
	}).Info("Snapshot saved")

	return &Snapshot{Name: name, Path: dir, State: state}, nil
}

// List returns summaries of every snapshot with a valid state document,
// most recent first. The store root is created if missing.
func (s *Store) List() ([]Summary, error) {
	defer profiling.Start("snapshot.List").Stop()

	if err := s.ensureRoot(); err != nil {
		return nil, err
	}

	entries, err := s.backend.ReadDir(s.opts.StoreRoot)
	if err != nil {
		return nil, errors.IOFailure("read store directory", s.opts.StoreRoot, err)
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		state, err := s.readState(name)
		if err != nil {
			s.logger.WithError(err).WithField("snapshot", name).Debug("Skipping directory without valid state")
			continue
		}

		info, err := s.backend.Stat(s.snapshotDir(name))
		if err != nil {
			s.logger.WithError(err).WithField("snapshot", name).Debug("Skipping directory that cannot be stat'ed")
			continue
		}

		summaries = append(summaries, Summary{
			Name:        name,
			CapturedAt:  state.CapturedAt,
			EnvVarCount: len(state.EnvVars),
			Size:        info.Size(),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].CapturedAt.Equal(summaries[j].CapturedAt) {
			return summaries[i].CapturedAt.After(summaries[j].CapturedAt)
		}
		return summaries[i].Name > summaries[j].Name
	})

	return summaries, nil
}

// Load returns the state document of the named snapshot.
func (s *Store) Load(name string) (*State, error) {
	if err := sanitize.ValidateName(name); err != nil {
		return nil, err
	}
	if err := s.requireDir(name); err != nil {
		return nil, err
	}
	return s.readState(name)
}

// Restore sets every captured variable of the named snapshot in the live
// environment and returns how many were set. Variables not in the snapshot
// are left untouched. Keys that no environment accepts are rejected before
// anything is set; if Setenv still fails, the count applied so far is
// returned with the error.
func (s *Store) Restore(name string) (int, error) {
	defer profiling.Start("snapshot.Restore").Stop()

	state, err := s.Load(name)
	if err != nil {
		return 0, err
	}

	vars := s.denylist.Filter(state.EnvVars)
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !validEnvKey(k) || strings.IndexByte(vars[k], 0) >= 0 {
			return 0, errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("snapshot contains an unsettable variable %q", k)).
				WithDetail("snapshot", name)
		}
	}

	for i, k := range keys {
		if err := s.env.Setenv(k, vars[k]); err != nil {
			return i, errors.Wrap(err, errors.ErrCodeInternal, fmt.Sprintf("failed to set %s", k)).
				WithDetail("snapshot", name).
				WithDetail("applied", i)
		}
	}

	s.logger.WithField("snapshot", name).WithField("env_vars", len(keys)).Info("Snapshot restored")
	return len(keys), nil
}

// Delete removes the named snapshot and everything in it.
func (s *Store) Delete(name string) error {
	return s.delete(name, false)
}

// ForceDelete removes the named snapshot directory even when its state
// document is missing or invalid.
func (s *Store) ForceDelete(name string) error {
	return s.delete(name, true)
}

func (s *Store) delete(name string, force bool) error {
	if err := sanitize.ValidateName(name); err != nil {
		return err
	}
	if err := s.requireDir(name); err != nil {
		return err
	}
	if _, err := s.readState(name); err != nil {
		if !force || !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
			return err
		}
	}

	dir := s.snapshotDir(name)
	if err := s.checkInsideRoot(name, dir); err != nil {
		return err
	}
	if err := s.backend.RemoveAll(dir); err != nil {
		return errors.IOFailure("remove snapshot", dir, err)
	}

	s.logger.WithField("snapshot", name).Info("Snapshot deleted")
	return nil
}

func (s *Store) ensureRoot() error {
	if err := s.backend.MkdirAll(s.opts.StoreRoot, storeDirPerm); err != nil {
		return errors.IOFailure("create store directory", s.opts.StoreRoot, err)
	}
	return nil
}

func (s *Store) snapshotDir(name string) string {
	return filepath.Join(s.opts.StoreRoot, name)
}

// checkInsideRoot refuses any dir that is not strictly beneath the store root.
func (s *Store) checkInsideRoot(name, dir string) error {
	root := filepath.Clean(s.opts.StoreRoot)
	if filepath.Clean(dir) == root || !pathutil.Within(root, dir) {
		return errors.InvalidName(name, "resolves outside the store root").WithDetail("path", dir)
	}
	return nil
}

// requireDir checks that the named snapshot directory exists.
func (s *Store) requireDir(name string) error {
	dir := s.snapshotDir(name)
	info, err := s.backend.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.SnapshotNotFound(name)
		}
		return errors.IOFailure("stat snapshot", dir, err)
	}
	if !info.IsDir() {
		return errors.SnapshotNotFound(name).WithDetail("reason", "not a directory")
	}
	return nil
}

// readState loads and validates a snapshot's state document. Missing,
// truncated and malformed documents all report SNAPSHOT_NOT_FOUND.
func (s *Store) readState(name string) (*State, error) {
	path := filepath.Join(s.snapshotDir(name), StateFileName)

	data, err := s.backend.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.SnapshotNotFound(name).WithDetail("reason", "missing "+StateFileName)
		}
		return nil, errors.IOFailure("read state document", path, err)
	}

	if err := s.validator.ValidateBytes(data); err != nil {
		return nil, errors.SnapshotNotFound(name).WithDetail("reason", err.Error())
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.SnapshotNotFound(name).WithDetail("reason", err.Error())
	}
	if state.ShellHistory == nil {
		state.ShellHistory = make(map[ShellKind][]string)
	}
	if state.ShellConfig == nil {
		state.ShellConfig = make(map[string]string)
	}

	return &state, nil
}

// validEnvKey reports whether key can name an environment variable.
func validEnvKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, "=\x00")
}
