package pluginversion

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultManifestPath is the plugin manifest, relative to the project directory.
	DefaultManifestPath = "src/main/resources/META-INF/plugin.xml"
	// DefaultBuildConfigPath is the Gradle build file, relative to the project directory.
	DefaultBuildConfigPath = "build.gradle"
	// ReleaseDateLayout formats the default release date (YYYYMMDD).
	ReleaseDateLayout = "20060102"
)

// Options configures a version bump. Zero values select the defaults:
// the working directory, the standard manifest and build file locations,
// operator prompts that accept every default, stdout and slog.Default().
type Options struct {
	ProjectDir      string
	ManifestPath    string // Relative paths are resolved against ProjectDir.
	BuildConfigPath string // Relative paths are resolved against ProjectDir.

	// NewVersion and ReleaseDate skip the matching prompt when set.
	NewVersion  string
	ReleaseDate string

	Prompter Prompter
	Out      io.Writer
	Logger   *slog.Logger
	Now      func() time.Time
}

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion        string // Version found in the manifest.
	OldReleaseVersion string // release-version found in the manifest.
	ProposedVersion   string // Empty when no proposal could be computed.
	NewVersion        string
	ReleaseVersion    string
	ReleaseDate       string
	ManifestPath      string
	BuildConfigPath   string
	UpdatedFiles      []string // Files written (or that would be, in a dry run).
	UnchangedFiles    []string // Files left as they were.
}

func (o Options) withDefaults() Options {
	if o.ProjectDir == "" {
		o.ProjectDir = "."
	}
	if o.ManifestPath == "" {
		o.ManifestPath = DefaultManifestPath
	}
	if o.BuildConfigPath == "" {
		o.BuildConfigPath = DefaultBuildConfigPath
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Prompter == nil {
		o.Prompter = DefaultsPrompter{Out: o.Out}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func (o Options) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.ProjectDir, p)
}

// prepare reads the manifest, asks for the new version and release date and
// derives the release version. Nothing is written.
func prepare(opts Options) (VersionMeta, error) {
	var meta VersionMeta
	log := opts.Logger
	label := lipgloss.NewRenderer(opts.Out).NewStyle().Bold(true)

	meta.ManifestPath = opts.resolve(opts.ManifestPath)
	meta.BuildConfigPath = opts.resolve(opts.BuildConfigPath)
	log.Debug("resolved project files",
		slog.String("manifest", meta.ManifestPath),
		slog.String("build_config", meta.BuildConfigPath),
	)

	cur, err := ReadCurrentVersion(meta.ManifestPath)
	if err != nil {
		return meta, err
	}
	curRelease, err := ReadCurrentReleaseVersion(meta.ManifestPath)
	if err != nil {
		return meta, err
	}
	meta.OldVersion = cur
	meta.OldReleaseVersion = curRelease
	fmt.Fprintf(opts.Out, "%s %s\n", label.Render("Current version:"), cur)
	fmt.Fprintf(opts.Out, "%s %s\n", label.Render("Current release-version:"), curRelease)

	proposed, err := NextVersion(cur)
	if err != nil {
		// An explicit version makes the proposal irrelevant.
		if opts.NewVersion == "" {
			return meta, err
		}
		log.Warn("cannot propose a next version", slog.Any("err", err))
	} else {
		meta.ProposedVersion = proposed
		fmt.Fprintf(opts.Out, "%s %s\n", label.Render("Proposed next version:"), proposed)
	}

	meta.NewVersion = opts.NewVersion
	if meta.NewVersion == "" {
		meta.NewVersion, err = opts.Prompter.Ask("Enter the new version", proposed)
		if err != nil {
			return meta, err
		}
	}
	switch {
	case !IsConventional(meta.NewVersion):
		log.Warn("new version is not MAJOR.MINOR[.PATCH]", slog.String("version", meta.NewVersion))
	case IsConventional(cur) && CompareVersions(meta.NewVersion, cur) <= 0:
		log.Warn("new version does not increase the current version",
			slog.String("current", cur),
			slog.String("new", meta.NewVersion),
		)
	}

	meta.ReleaseDate = opts.ReleaseDate
	if meta.ReleaseDate == "" {
		today := opts.Now().Format(ReleaseDateLayout)
		meta.ReleaseDate, err = opts.Prompter.Ask("Enter the new release date", today)
		if err != nil {
			return meta, err
		}
	}
	if !isDigits(meta.ReleaseDate) {
		log.Warn("release date is not numeric; later runs will not find it in the manifest",
			slog.String("release_date", meta.ReleaseDate),
		)
	}

	meta.ReleaseVersion, err = ReleaseVersion(meta.NewVersion)
	if err != nil {
		return meta, err
	}
	return meta, nil
}

// Run reads the current version from the plugin manifest, asks for the new
// version and release date, then rewrites the manifest and the build
// configuration. The build configuration is searched for the version the
// manifest held before the run.
func Run(opts Options) (VersionMeta, error) {
	opts = opts.withDefaults()

	meta, err := prepare(opts)
	if err != nil {
		return meta, err
	}

	if err := UpdateManifest(opts.Out, meta.ManifestPath, meta.ReleaseDate, meta.ReleaseVersion, meta.NewVersion); err != nil {
		return meta, err
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, meta.ManifestPath)

	logOccurrences(opts.Logger, meta.BuildConfigPath, meta.OldVersion)

	changed, err := UpdateBuildConfig(opts.Out, meta.BuildConfigPath, meta.OldVersion, meta.NewVersion)
	if err != nil {
		return meta, err
	}
	if changed {
		meta.UpdatedFiles = append(meta.UpdatedFiles, meta.BuildConfigPath)
	} else {
		meta.UnchangedFiles = append(meta.UnchangedFiles, meta.BuildConfigPath)
	}

	return meta, nil
}

// DryRun goes through the same reads and prompts as Run and reports which
// files would change, without writing anything.
func DryRun(opts Options) (VersionMeta, error) {
	opts = opts.withDefaults()

	meta, err := prepare(opts)
	if err != nil {
		return meta, err
	}

	data, err := os.ReadFile(meta.ManifestPath)
	if err != nil {
		return meta, fmt.Errorf("reading manifest %s: %w", meta.ManifestPath, err)
	}
	if RenderManifest(string(data), meta.ReleaseDate, meta.ReleaseVersion, meta.NewVersion) != string(data) {
		meta.UpdatedFiles = append(meta.UpdatedFiles, meta.ManifestPath)
	} else {
		meta.UnchangedFiles = append(meta.UnchangedFiles, meta.ManifestPath)
	}

	occ, err := FindVersionOccurrences(meta.BuildConfigPath, meta.OldVersion)
	if err != nil {
		return meta, err
	}
	if len(occ) > 0 && meta.OldVersion != meta.NewVersion {
		meta.UpdatedFiles = append(meta.UpdatedFiles, meta.BuildConfigPath)
		for _, o := range occ {
			fmt.Fprintf(opts.Out, "%s:%d:%d: %s\n", meta.BuildConfigPath, o.Line, o.Column, o.Text)
		}
	} else {
		meta.UnchangedFiles = append(meta.UnchangedFiles, meta.BuildConfigPath)
	}

	return meta, nil
}

func logOccurrences(log *slog.Logger, path, version string) {
	occ, err := FindVersionOccurrences(path, version)
	if err != nil {
		// UpdateBuildConfig reports the same read error.
		return
	}
	for _, o := range occ {
		log.Debug("version occurrence in build config",
			slog.String("file", path),
			slog.Int("line", o.Line),
			slog.Int("column", o.Column),
		)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
