package installer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/i18n-agent/i18n-agent-mcp/internal/settings"
)

// Result describes what an install or uninstall touched.
type Result struct {
	ConfigPath string
	AssetDir   string
	// Changed is false when uninstall found nothing to remove.
	Changed bool
	// Discarded is set when install replaced an unreadable or malformed
	// settings document.
	Discarded error
	// Skipped is set when uninstall left an unreadable or malformed
	// settings document as it was.
	Skipped error
}

// Reconciler applies install, uninstall and status operations to targets
// on a single platform. It holds no state between calls.
type Reconciler struct {
	platform Platform
	logger   *slog.Logger
}

// NewReconciler creates a Reconciler for p. A nil logger discards output.
func NewReconciler(p Platform, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reconciler{platform: p, logger: logger}
}

// Platform returns the platform paths are resolved against.
func (r *Reconciler) Platform() Platform {
	return r.platform
}

// ResolvePath returns the settings document and asset directory of t.
func (r *Reconciler) ResolvePath(t Target) (settingsPath, assetDir string) {
	return t.SettingsPath(r.platform), t.AssetDir(r.platform)
}

// Install writes t's assets and upserts its entries into the settings
// document. Steps already applied are not rolled back on failure; running
// Install again completes them.
func (r *Reconciler) Install(t Target, cfg InstallConfig) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	path, assetDir := r.ResolvePath(t)
	res := Result{ConfigPath: path, AssetDir: assetDir, Changed: true}
	log := r.logger.With("target", t.Name(), "path", path)
	log.Debug("installing")

	if assetDir != "" {
		assets, err := t.Assets(cfg)
		if err != nil {
			return res, err
		}
		if err := os.MkdirAll(assetDir, 0o755); err != nil {
			return res, fmt.Errorf("%w: create %s: %w", ErrFilesystem, assetDir, err)
		}
		for _, a := range assets {
			dst := filepath.Join(assetDir, a.Name)
			if err := settings.WriteFile(dst, a.Data); err != nil {
				return res, fmt.Errorf("%w: write %s: %w", ErrFilesystem, dst, err)
			}
			log.Debug("wrote asset", "file", dst, "bytes", len(a.Data))
		}
	}

	doc := r.load(t, path)
	res.Discarded = doc.Recovered()

	entries, err := t.Entries(cfg)
	if err != nil {
		return res, err
	}
	for _, e := range entries {
		if err := doc.Upsert(e.Path, e.Value); err != nil {
			return res, err
		}
	}

	if err := settings.Persist(path, doc); err != nil {
		return res, fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	log.Debug("settings persisted", "entries", len(entries))
	return res, nil
}

// Uninstall removes t's entries and asset directory. Absent files and
// entries are not errors, and nothing is created. A settings document that
// cannot be parsed is left untouched.
func (r *Reconciler) Uninstall(t Target) (Result, error) {
	path, assetDir := r.ResolvePath(t)
	res := Result{ConfigPath: path, AssetDir: assetDir}
	log := r.logger.With("target", t.Name(), "path", path)

	exists, err := settings.Exists(path)
	if err != nil {
		return res, fmt.Errorf("%w: stat %s: %w", ErrFilesystem, path, err)
	}
	if exists {
		doc := r.load(t, path)
		res.Skipped = doc.Recovered()
		if res.Skipped == nil {
			removed := false
			for _, kp := range t.EntryPaths() {
				if doc.Remove(kp) {
					removed = true
				}
			}
			if removed {
				if err := settings.Persist(path, doc); err != nil {
					return res, fmt.Errorf("%w: %w", ErrFilesystem, err)
				}
				res.Changed = true
				log.Debug("entries removed")
			}
		}
	}

	if assetDir != "" {
		_, err := os.Stat(assetDir)
		switch {
		case err == nil:
			if err := os.RemoveAll(assetDir); err != nil {
				return res, fmt.Errorf("%w: remove %s: %w", ErrFilesystem, assetDir, err)
			}
			res.Changed = true
			log.Debug("asset directory removed", "dir", assetDir)
		case !errors.Is(err, fs.ErrNotExist):
			return res, fmt.Errorf("%w: stat %s: %w", ErrFilesystem, assetDir, err)
		}
	}
	return res, nil
}

// Status reports whether t is installed. It never writes to disk and never
// fails; read problems degrade to an uninstalled report with a detail.
func (r *Reconciler) Status(t Target) StatusReport {
	path, assetDir := r.ResolvePath(t)

	exists, err := settings.Exists(path)
	if err != nil {
		return StatusReport{
			ConfigPath: path,
			Detail:     fmt.Sprintf("Error reading %s config: %v", t.DisplayName(), err),
		}
	}

	obs := Observation{Exists: exists, Doc: settings.New(), AssetDir: assetDir}
	if exists {
		obs.Doc = r.load(t, path)
		if cause := obs.Doc.Recovered(); cause != nil {
			return StatusReport{
				ConfigPath: path,
				Detail:     fmt.Sprintf("Error reading %s config: %v", t.DisplayName(), cause),
			}
		}
	}

	report := t.Inspect(obs)
	report.ConfigPath = path
	return report
}

// load reads the settings document, logging when content is discarded.
func (r *Reconciler) load(t Target, path string) *settings.Document {
	doc := settings.Load(path)
	if cause := doc.Recovered(); cause != nil {
		r.logger.Warn("discarding unusable settings document",
			"target", t.Name(), "path", path, "error", cause)
	}
	return doc
}
