package config

// manifestFile is the YAML shape of glslpp.yaml.
type manifestFile struct {
	// Version is the pragma line injected at the top of every source.
	Version string `yaml:"version"`

	// Root derives the shader layout: <root>/src and <root>/include.
	Root string `yaml:"root"`

	// SrcRoot and IncludeRoot name the two directories explicitly. They are
	// mutually exclusive with Root.
	SrcRoot     string `yaml:"src_root"`
	IncludeRoot string `yaml:"include_root"`

	// Out is the directory flattened shaders are written to.
	Out string `yaml:"out"`

	// Defines maps macro names to values; an empty value is a flag macro.
	Defines map[string]string `yaml:"defines"`

	// Sources lists the entry-point shader names to process.
	Sources []string `yaml:"sources"`
}
