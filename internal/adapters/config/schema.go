package config

// File represents the structure of the config.yaml rule file.
type File struct {
	Paths []PathDTO `yaml:"paths"`
}

// PathDTO represents one configured rule in the file.
type PathDTO struct {
	Path   string `yaml:"path"`
	Action string `yaml:"action"`
	Mode   string `yaml:"mode"`
}
