package domain

// ConfigLoader reads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// RevisionReader reports the version-control revision of a project directory.
type RevisionReader interface {
	CommitHash(projectPath string) (string, error)
}
