package domain

import (
	"fmt"
	"strings"
)

// Index identifies a package repository that artifacts are uploaded to
// and installed from.
type Index struct {
	// Repository is the twine repository name; empty means twine's default.
	Repository string `yaml:"repository"      json:"repository,omitempty"`
	// SimpleURL is the pip --index-url for install verification; empty
	// means pip's default index.
	SimpleURL  string `yaml:"simple_url"      json:"simple_url,omitempty"`
	ProjectURL string `yaml:"project_url"     json:"project_url,omitempty"`
}

// Config holds the tool configuration loaded from .shipkit.yaml.
// Every field has a default tuned to the TubeHarvest package, so an
// absent config file is fully supported.
type Config struct {
	PackageName  string `yaml:"package_name"  json:"package_name"`
	PackageDir   string `yaml:"package_dir"   json:"package_dir"`
	DistDir      string `yaml:"dist_dir"      json:"dist_dir"`
	Python       string `yaml:"python"        json:"python"`
	EntryPoint   string `yaml:"entry_point"   json:"entry_point"`
	TestsDir     string `yaml:"tests_dir"     json:"tests_dir"`

	TestIndex Index `yaml:"test_index" json:"test_index"`
	ProdIndex Index `yaml:"prod_index" json:"prod_index"`

	// CriticalDeps must each appear as a substring of at least one
	// declared dependency. The substring match is deliberately lax.
	CriticalDeps       []string `yaml:"critical_deps"       json:"critical_deps"`
	RequiredFiles      []string `yaml:"required_files"      json:"required_files"`
	PackageSubdirs     []string `yaml:"package_subdirs"     json:"package_subdirs"`
	ManifestEssentials []string `yaml:"manifest_essentials" json:"manifest_essentials"`
}

// DefaultConfig returns the configuration used when no .shipkit.yaml exists.
func DefaultConfig() Config {
	return Config{
		PackageName: "tubeharvest",
		PackageDir:  "tubeharvest",
		DistDir:     "dist",
		Python:      "python",
		EntryPoint:  "tubeharvest",
		TestsDir:    "tests",
		TestIndex: Index{
			Repository: "testpypi",
			SimpleURL:  "https://test.pypi.org/simple/",
			ProjectURL: "https://test.pypi.org/project/tubeharvest/",
		},
		ProdIndex: Index{
			ProjectURL: "https://pypi.org/project/tubeharvest/",
		},
		CriticalDeps: []string{"yt-dlp", "rich", "click"},
		RequiredFiles: []string{
			"README.md",
			"LICENSE",
			"CHANGELOG.md",
			"pyproject.toml",
			"MANIFEST.in",
			"requirements.txt",
		},
		PackageSubdirs:     []string{"cli", "core"},
		ManifestEssentials: []string{"README.md", "LICENSE", "CHANGELOG.md"},
	}
}

// Validate catches values that would make a run nonsensical before any
// step executes.
func (c Config) Validate() error {
	if strings.TrimSpace(c.PackageName) == "" {
		return fmt.Errorf("package_name must not be empty")
	}
	if strings.TrimSpace(c.PackageDir) == "" {
		return fmt.Errorf("package_dir must not be empty")
	}
	if strings.ContainsAny(c.PackageDir, " \t") {
		return fmt.Errorf("package_dir %q must not contain whitespace", c.PackageDir)
	}
	if strings.TrimSpace(c.DistDir) == "" {
		return fmt.Errorf("dist_dir must not be empty")
	}
	if strings.TrimSpace(c.Python) == "" {
		return fmt.Errorf("python must not be empty")
	}
	if strings.TrimSpace(c.EntryPoint) == "" {
		return fmt.Errorf("entry_point must not be empty")
	}
	if len(c.CriticalDeps) == 0 {
		return fmt.Errorf("critical_deps must not be empty")
	}
	return nil
}
