package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/project"
	"github.com/tubeharvest/shipkit/internal/application"
	"github.com/tubeharvest/shipkit/internal/domain"
)

const (
	completeDir   = "../../testdata/pypackage/complete"
	mismatchedDir = "../../testdata/pypackage/mismatched"
	malformedDir  = "../../testdata/pypackage/malformed"
)

func newValidateService() *application.ValidateService {
	return application.NewValidateService(project.New(), domain.DefaultConfig())
}

func groupByName(t *testing.T, report *domain.Report, name string) domain.CheckGroup {
	t.Helper()
	for _, g := range report.Groups {
		if g.Name == name {
			return g
		}
	}
	t.Fatalf("no group named %q", name)
	return domain.CheckGroup{}
}

func checkByName(t *testing.T, g domain.CheckGroup, name string) domain.Check {
	t.Helper()
	for _, c := range g.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q in group %q", name, g.Name)
	return domain.Check{}
}

func TestValidate_CompletePackagePasses(t *testing.T) {
	report := newValidateService().Validate(completeDir)

	assert.True(t, report.AllPassed(), "all checks should pass: %+v", report)
	assert.InDelta(t, 100.0, report.SuccessRate(), 0.01)
	assert.Len(t, report.Groups, 7)
}

func TestValidate_VersionMismatch(t *testing.T) {
	report := newValidateService().Validate(mismatchedDir)

	consistency := checkByName(t, groupByName(t, report, "Version"), "Consistency")
	assert.False(t, consistency.Passed)
	assert.Contains(t, consistency.Detail, "2.1.0")
	assert.Contains(t, consistency.Detail, "2.0.9")
}

func TestValidate_MissingCriticalDepsListed(t *testing.T) {
	report := newValidateService().Validate(mismatchedDir)

	deps := checkByName(t, groupByName(t, report, "Dependencies"), "CriticalDeps")
	assert.False(t, deps.Passed)
	assert.Equal(t, "missing: click", deps.Detail, "only the absent names are listed")
}

func TestValidate_EntryPointMissing(t *testing.T) {
	report := newValidateService().Validate(mismatchedDir)

	entry := checkByName(t, groupByName(t, report, "EntryPoints"), "CLIEntryPoint")
	assert.False(t, entry.Passed, "script is registered as 'th', not 'tubeharvest'")
}

func TestValidate_FileAndStructureChecksMatchDisk(t *testing.T) {
	report := newValidateService().Validate(mismatchedDir)

	files := groupByName(t, report, "Files")
	assert.True(t, checkByName(t, files, "README.md").Passed)
	assert.False(t, checkByName(t, files, "CHANGELOG.md").Passed)

	structure := groupByName(t, report, "Structure")
	assert.True(t, checkByName(t, structure, "tubeharvest/cli").Passed)
	assert.False(t, checkByName(t, structure, "tubeharvest/core").Passed)
}

func TestValidate_ManifestEssentials(t *testing.T) {
	report := newValidateService().Validate(mismatchedDir)

	manifest := groupByName(t, report, "Manifest")
	assert.True(t, checkByName(t, manifest, "README.md").Passed)
	assert.False(t, checkByName(t, manifest, "CHANGELOG.md").Passed)
}

// A broken pyproject.toml must only fail the checks that read it; the
// disk-based groups still evaluate normally.
func TestValidate_MalformedMetadataIsIsolated(t *testing.T) {
	report := newValidateService().Validate(malformedDir)

	pyproject := groupByName(t, report, "Pyproject")
	require.Len(t, pyproject.Checks, 1)
	assert.Equal(t, "Parse", pyproject.Checks[0].Name)
	assert.False(t, pyproject.Checks[0].Passed)

	assert.False(t, checkByName(t, groupByName(t, report, "Version"), "Consistency").Passed)
	assert.False(t, checkByName(t, groupByName(t, report, "Dependencies"), "CriticalDeps").Passed)
	assert.False(t, checkByName(t, groupByName(t, report, "EntryPoints"), "CLIEntryPoint").Passed)

	for _, c := range groupByName(t, report, "Files").Checks {
		assert.True(t, c.Passed, "file check %s should still pass", c.Name)
	}
	for _, c := range groupByName(t, report, "Structure").Checks {
		assert.True(t, c.Passed, "structure check %s should still pass", c.Name)
	}
	for _, c := range groupByName(t, report, "Manifest").Checks {
		assert.True(t, c.Passed, "manifest check %s should still pass", c.Name)
	}

	assert.False(t, report.AllPassed())
}
