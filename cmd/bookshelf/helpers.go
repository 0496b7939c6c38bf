// Shared helpers for bookshelf commands.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/viper"

	"github.com/IrinaKra/Bookshelf/internal/sqlite"
	"github.com/IrinaKra/Bookshelf/pkg/library"
)

// sysError marks failures of the environment (config, storage) rather than
// of the user's request; main maps it to exitSysError.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func sysErrorf(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("BOOKSHELF_CONFIG_DIR"); v != "" {
		return v
	}
	return ".bookshelf"
}

// resolveDataDir returns the data directory from flag, config, or default.
func resolveDataDir(v *viper.Viper) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if dir := v.GetString(cfgKeyDataDir); dir != "" {
		return dir
	}
	return defaultDataDir
}

// attachStore loads the config and attaches the inventory store. The
// caller must Detach the returned store.
func attachStore() (*sqlite.Store, *viper.Viper, error) {
	v, err := loadConfig(resolveConfigDir())
	if err != nil {
		return nil, nil, sysErrorf("load config: %w", err)
	}

	cfg := sqlite.Config{
		Backend: v.GetString(cfgKeyBackend),
		DataDir: resolveDataDir(v),
	}
	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, nil, sysErrorf("attach store: %w", err)
	}
	logger.Debug("store attached", "backend", cfg.Backend, "data_dir", cfg.DataDir)
	return store, v, nil
}

// buildRoom reconstructs the room from the configured shelf layout and the
// placements recorded in the store. Configured shelves keep their config
// order; placements on shelves no longer in the config are appended in
// name order so the result stays deterministic.
func buildRoom(v *viper.Viper, store *sqlite.Store) (*library.Room, error) {
	shelved, err := store.Shelved()
	if err != nil {
		return nil, sysErrorf("load placements: %w", err)
	}

	room := library.NewRoom(v.GetString(cfgKeyOwner))
	seen := make(map[string]bool)
	for _, name := range v.GetStringSlice(cfgKeyShelves) {
		if seen[name] {
			continue
		}
		seen[name] = true
		room.AddShelf(library.NewShelf(name, shelved[name]...))
	}

	var extra []string
	for name := range shelved {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		logger.Debug("shelf not in config, keeping recorded placement", "shelf", name)
		room.AddShelf(library.NewShelf(name, shelved[name]...))
	}
	return room, nil
}
