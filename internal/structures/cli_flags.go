package structures

type CliFlags struct {
	ConfigPath  string
	PackagePath string
	DebugMode   bool
}
