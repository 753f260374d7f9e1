package domain

const (
	// SceneFileName is the scene file searched for when a directory is given.
	SceneFileName = "strata.yaml"

	// SceneFileVersion is the only scene file format version understood.
	SceneFileVersion = "1"

	// DirPerm is the default permission for directories.
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for files written by strata.
	PrivateFilePerm = 0o600
)
