// Package main implements the pluginversion CLI tool.
//
// The pluginversion tool bumps the version of a single plugin project. It reads
// the current version and release-version from the plugin manifest
// (src/main/resources/META-INF/plugin.xml), proposes the next version and asks
// the operator to confirm or override it, together with the release date.
// It then rewrites the manifest and replaces the old version in build.gradle.
//
// Command Usage:
//
//	pluginversion [flags]
//
// Flags:
//
//	--dir:          Project directory the manifest and build file are resolved against.
//	                (Defaults to the working directory)
//	--manifest:     Path to the plugin manifest, relative to --dir.
//	--build-file:   Path to the build configuration, relative to --dir.
//	--new-version:  Use this version instead of asking for one.
//	--release-date: Use this release date instead of asking for one.
//	--yes, -y:      Accept the proposed version and today's date without prompting.
//	--dry:          Report which files would change without writing them.
//	--log-level:    debug, info, warn or error. Debug lists every occurrence of the
//	                old version found in the build file.
//	--log-format:   text or json.
//	--version:      Displays the version of the pluginversion CLI tool and exits.
//
// Examples:
//
//	# Bump interactively (3.4.1 → 3.4.2 proposed, today as release date)
//	pluginversion
//
//	# Bump a two-part version (3.4 → 3.5 proposed)
//	pluginversion --dir ../my-plugin
//
//	# Release 4.0.0 on a fixed date without prompting
//	pluginversion --new-version 4.0.0 --release-date 20240701 --yes
//
// The manifest receives three substitutions:
//
//	release-date="<digits>"    → release-date="<release date>"
//	release-version="<digits>" → release-version="<first two version components>"
//	<version>...</version>     → <version><new version></version>
//
// build.gradle is rewritten only when it contains the old version. Every literal
// occurrence is replaced, so a dependency that happens to share the version
// string is changed as well; run with --dry or --log-level=debug to review the
// matches first.
package main
