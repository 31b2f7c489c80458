package domain

// Pyproject is the parsed project metadata file. It keeps the raw
// decoded tables so presence checks can distinguish an absent field
// from an empty one.
type Pyproject struct {
	raw map[string]any
}

// NewPyproject wraps a decoded pyproject.toml document.
func NewPyproject(raw map[string]any) *Pyproject {
	return &Pyproject{raw: raw}
}

// HasBuildSystem reports whether the [build-system] table is declared.
func (p *Pyproject) HasBuildSystem() bool {
	_, ok := p.raw["build-system"]
	return ok
}

func (p *Pyproject) project() map[string]any {
	m, _ := p.raw["project"].(map[string]any)
	return m
}

// HasProjectField reports whether the [project] table declares key.
func (p *Pyproject) HasProjectField(key string) bool {
	_, ok := p.project()[key]
	return ok
}

// Version returns project.version, or "" when absent.
func (p *Pyproject) Version() string {
	v, _ := p.project()["version"].(string)
	return v
}

// Dependencies returns the declared project.dependencies strings.
func (p *Pyproject) Dependencies() []string {
	items, _ := p.project()["dependencies"].([]any)
	deps := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			deps = append(deps, s)
		}
	}
	return deps
}

// Scripts returns the declared console script entry points.
func (p *Pyproject) Scripts() map[string]string {
	table, _ := p.project()["scripts"].(map[string]any)
	scripts := make(map[string]string, len(table))
	for name, target := range table {
		if s, ok := target.(string); ok {
			scripts[name] = s
		}
	}
	return scripts
}
