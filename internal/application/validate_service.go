package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tubeharvest/shipkit/internal/domain"
)

// ValidateService evaluates the pre-release checklist for the package.
// Every check is independent: a read or parse failure is recorded as a
// failed check in its own category and never stops the others.
type ValidateService struct {
	meta domain.MetadataSource
	cfg  domain.Config
}

// NewValidateService creates a ValidateService.
func NewValidateService(meta domain.MetadataSource, cfg domain.Config) *ValidateService {
	return &ValidateService{meta: meta, cfg: cfg}
}

// pyprojectFields maps check names to the [project] keys they assert.
var pyprojectFields = []struct {
	check string
	key   string
}{
	{"Name", "name"},
	{"Version", "version"},
	{"Description", "description"},
	{"Authors", "authors"},
	{"License", "license"},
	{"Readme", "readme"},
	{"RequiresPython", "requires-python"},
	{"Dependencies", "dependencies"},
	{"Classifiers", "classifiers"},
	{"Keywords", "keywords"},
	{"URLs", "urls"},
	{"Scripts", "scripts"},
	{"OptionalDependencies", "optional-dependencies"},
}

// Validate runs the full checklist against projectPath and returns the
// aggregated report. The order of groups is fixed for rendering, but no
// check depends on another's result.
func (s *ValidateService) Validate(projectPath string) *domain.Report {
	return &domain.Report{Groups: []domain.CheckGroup{
		s.checkPyproject(projectPath),
		s.checkStructure(projectPath),
		s.checkRequiredFiles(projectPath),
		s.checkVersionConsistency(projectPath),
		s.checkDependencies(projectPath),
		s.checkEntryPoints(projectPath),
		s.checkManifest(projectPath),
	}}
}

func (s *ValidateService) checkPyproject(projectPath string) domain.CheckGroup {
	group := domain.CheckGroup{Name: "Pyproject"}

	pp, err := s.meta.LoadPyproject(projectPath)
	if err != nil {
		group.Checks = append(group.Checks, failedCheck("Parse", err))
		return group
	}

	group.Checks = append(group.Checks, domain.Check{
		Name:   "BuildSystem",
		Passed: pp.HasBuildSystem(),
	})
	for _, f := range pyprojectFields {
		group.Checks = append(group.Checks, domain.Check{
			Name:   f.check,
			Passed: pp.HasProjectField(f.key),
		})
	}
	return group
}

func (s *ValidateService) checkStructure(projectPath string) domain.CheckGroup {
	paths := []string{
		s.cfg.PackageDir,
		filepath.Join(s.cfg.PackageDir, "__init__.py"),
		filepath.Join(s.cfg.PackageDir, "__main__.py"),
	}
	for _, sub := range s.cfg.PackageSubdirs {
		paths = append(paths, filepath.Join(s.cfg.PackageDir, sub))
	}

	group := domain.CheckGroup{Name: "Structure"}
	for _, rel := range paths {
		group.Checks = append(group.Checks, domain.Check{
			Name:   rel,
			Passed: pathExists(filepath.Join(projectPath, rel)),
		})
	}
	return group
}

func (s *ValidateService) checkRequiredFiles(projectPath string) domain.CheckGroup {
	group := domain.CheckGroup{Name: "Files"}
	for _, name := range s.cfg.RequiredFiles {
		group.Checks = append(group.Checks, domain.Check{
			Name:   name,
			Passed: pathExists(filepath.Join(projectPath, name)),
		})
	}
	return group
}

func (s *ValidateService) checkVersionConsistency(projectPath string) domain.CheckGroup {
	group := domain.CheckGroup{Name: "Version"}

	pp, err := s.meta.LoadPyproject(projectPath)
	if err != nil {
		group.Checks = append(group.Checks, failedCheck("Consistency", err))
		return group
	}

	pkgVersion, err := s.meta.PackageVersion(projectPath, s.cfg.PackageDir)
	if err != nil {
		group.Checks = append(group.Checks, failedCheck("Consistency", err))
		return group
	}

	check := domain.Check{Name: "Consistency"}
	// Exact string equality: "2.1.0" vs "2.01.0" or "2.1.0rc1" must fail.
	if pp.Version() != "" && pp.Version() == pkgVersion {
		check.Passed = true
		check.Detail = pp.Version()
	} else {
		check.Detail = fmt.Sprintf("pyproject.toml=%q __init__.py=%q", pp.Version(), pkgVersion)
	}
	group.Checks = append(group.Checks, check)
	return group
}

func (s *ValidateService) checkDependencies(projectPath string) domain.CheckGroup {
	group := domain.CheckGroup{Name: "Dependencies"}

	pp, err := s.meta.LoadPyproject(projectPath)
	if err != nil {
		group.Checks = append(group.Checks, failedCheck("CriticalDeps", err))
		return group
	}

	declared := pp.Dependencies()
	var missing []string
	for _, want := range s.cfg.CriticalDeps {
		found := false
		for _, dep := range declared {
			// Substring on purpose: requirement strings carry version
			// specifiers ("yt-dlp>=2023.12.30").
			if strings.Contains(dep, want) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}

	check := domain.Check{Name: "CriticalDeps", Passed: len(missing) == 0}
	if check.Passed {
		check.Detail = fmt.Sprintf("%d dependencies declared", len(declared))
	} else {
		check.Detail = "missing: " + strings.Join(missing, ", ")
	}
	group.Checks = append(group.Checks, check)
	return group
}

func (s *ValidateService) checkEntryPoints(projectPath string) domain.CheckGroup {
	group := domain.CheckGroup{Name: "EntryPoints"}

	pp, err := s.meta.LoadPyproject(projectPath)
	if err != nil {
		group.Checks = append(group.Checks, failedCheck("CLIEntryPoint", err))
		return group
	}

	check := domain.Check{Name: "CLIEntryPoint"}
	if target, ok := pp.Scripts()[s.cfg.EntryPoint]; ok {
		check.Passed = true
		check.Detail = target
	} else {
		check.Detail = fmt.Sprintf("script %q not declared", s.cfg.EntryPoint)
	}
	group.Checks = append(group.Checks, check)
	return group
}

func (s *ValidateService) checkManifest(projectPath string) domain.CheckGroup {
	group := domain.CheckGroup{Name: "Manifest"}

	content, err := s.meta.ReadManifest(projectPath)
	if err != nil {
		group.Checks = append(group.Checks, failedCheck("Read", err))
		return group
	}

	for _, name := range s.cfg.ManifestEssentials {
		group.Checks = append(group.Checks, domain.Check{
			Name:   name,
			Passed: strings.Contains(content, name),
		})
	}
	return group
}

func failedCheck(name string, err error) domain.Check {
	return domain.Check{Name: name, Detail: err.Error()}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
