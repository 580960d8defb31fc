// Package constants provides shared constants used throughout the boosterconv codebase.
// This includes catalog defaults, file names, permissions and timeouts that
// should be consistent across the converter, the catalog source and the CLI.
package constants

import "time"

// Catalog defaults
const (
	// DefaultCatalogURL is the booster catalog used when none is given
	DefaultCatalogURL = "https://github.com/fabric8-launcher/launcher-booster-catalog.git"

	// DefaultDevelopmentRef is the git ref of the development (baseline) catalog
	DefaultDevelopmentRef = "master"

	// CatalogBundleName is the bundle holding the catalog in a local bundle directory
	CatalogBundleName = "booster-catalog"

	// BundleExtension is the file extension of git bundles
	BundleExtension = ".bundle"

	// GitHubURLPrefix is prepended to a booster's githubRepo slug
	GitHubURLPrefix = "https://github.com/"
)

// File names
const (
	// BoosterFileName is the leaf file written for every booster
	BoosterFileName = "booster.yaml"

	// MetadataFileName is the catalog-wide category index, written at the
	// destination root. The catalog checkout uses the same name for its
	// mission and runtime definitions.
	MetadataFileName = "metadata.yaml"

	// DescriptorExtension is the extension of booster descriptors in the catalog
	DescriptorExtension = ".yaml"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants
const (
	// CloneTimeout bounds a single git clone of the catalog or a booster repository
	CloneTimeout = 10 * time.Minute
)

// Path constants
const (
	// WorkDirPattern is the pattern for the temporary clone directory
	WorkDirPattern = "boosterconv-"

	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".boosterconv"

	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "BOOSTERCONV"
)
