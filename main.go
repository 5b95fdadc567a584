// Package main implements a CLI tool to bump the version of a plugin
// project in its plugin.xml manifest and build.gradle.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	pluginversion "github.com/gbti/pluginversion/pkg"
	"github.com/gbti/pluginversion/pkg/log"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

const longDesc = `Bumps the version of a plugin project.

Reads the current version and release-version from the plugin manifest
(default: src/main/resources/META-INF/plugin.xml), proposes the next version,
and asks for the new version and release date. Empty answers keep the
defaults. The manifest's release-date, release-version and version fields
are rewritten, and every occurrence of the old version in build.gradle is
replaced with the new one.`

type rootArgs struct {
	dir         string
	manifest    string
	buildFile   string
	newVersion  string
	releaseDate string
	yes         bool
	dryRun      bool
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	args := &rootArgs{}

	cmd := &cobra.Command{
		Use:   "pluginversion",
		Short: "Bump the version in plugin.xml and build.gradle",
		Long:  longDesc,
		Example: `  pluginversion
  pluginversion --dir ../my-plugin
  pluginversion --new-version 3.5.0 --release-date 20240701 --yes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	cmd.Flags().StringVar(&args.dir, "dir", ".", "Project directory containing the plugin sources")
	cmd.Flags().StringVar(&args.manifest, "manifest", pluginversion.DefaultManifestPath, "Path to plugin.xml, relative to --dir")
	cmd.Flags().StringVar(&args.buildFile, "build-file", pluginversion.DefaultBuildConfigPath, "Path to the build configuration, relative to --dir")
	cmd.Flags().StringVar(&args.newVersion, "new-version", "", "Use this version instead of prompting")
	cmd.Flags().StringVar(&args.releaseDate, "release-date", "", "Use this release date (YYYYMMDD) instead of prompting")
	cmd.Flags().BoolVarP(&args.yes, "yes", "y", false, "Accept every default without prompting")
	cmd.Flags().BoolVar(&args.dryRun, "dry", false, "Show what would change without modifying any files")
	cmd.Flags().StringVar(&args.logLevel, "log-level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&args.logFormat, "log-format", "text", "Set the log format (text, json)")

	if err := cmd.MarkFlagDirname("dir"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagFilename("manifest", "xml"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagFilename("build-file"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), args.logLevel, args.logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}
		slog.SetDefault(slog.New(h))
		return nil
	}

	cmd.RunE = func(cc *cobra.Command, _ []string) error {
		out := cc.OutOrStdout()

		opts := pluginversion.Options{
			ProjectDir:      args.dir,
			ManifestPath:    args.manifest,
			BuildConfigPath: args.buildFile,
			NewVersion:      args.newVersion,
			ReleaseDate:     args.releaseDate,
			Out:             out,
			Logger:          slog.Default(),
		}
		if args.yes {
			opts.Prompter = pluginversion.DefaultsPrompter{Out: out}
		} else {
			opts.Prompter = pluginversion.NewConsolePrompter(cc.InOrStdin(), out)
		}

		var meta pluginversion.VersionMeta
		var err error
		if args.dryRun {
			meta, err = pluginversion.DryRun(opts)
		} else {
			meta, err = pluginversion.Run(opts)
		}
		if err != nil {
			return err
		}

		if args.dryRun {
			fmt.Fprintln(out, "Dry run complete — no files were modified.")
		} else {
			fmt.Fprintln(out, "Version bump successful!")
		}
		fmt.Fprintf(out, "Old Version:     %s\n", meta.OldVersion)
		fmt.Fprintf(out, "New Version:     %s\n", meta.NewVersion)
		fmt.Fprintf(out, "Release Version: %s\n", meta.ReleaseVersion)
		fmt.Fprintf(out, "Release Date:    %s\n", meta.ReleaseDate)

		if len(meta.UpdatedFiles) > 0 {
			if args.dryRun {
				fmt.Fprintln(out, "Files that would be updated:")
			} else {
				fmt.Fprintln(out, "Files updated:")
			}
			for _, f := range meta.UpdatedFiles {
				fmt.Fprintf(out, "  %s\n", f)
			}
		}
		return nil
	}

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
