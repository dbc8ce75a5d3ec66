package yamlplan

// planFile is the document shape of a YAML plan.
type planFile struct {
	Steps []stepDTO `yaml:"steps"`
}

type stepDTO struct {
	Type      string         `yaml:"type"`
	Name      string         `yaml:"name"`
	Arguments map[string]any `yaml:"arguments"`
	DependsOn []string       `yaml:"depends_on"`
}
