package domain

// PlatformLayout describes where a virtualenv keeps its executables.
type PlatformLayout struct {
	// BinDir is the virtualenv subdirectory holding executables.
	BinDir string
	// ExeSuffix is appended to executable names.
	ExeSuffix string
}

// LayoutFor returns the virtualenv layout for the given GOOS value.
func LayoutFor(goos string) PlatformLayout {
	if goos == "windows" {
		return PlatformLayout{BinDir: "Scripts", ExeSuffix: ".exe"}
	}
	return PlatformLayout{BinDir: "bin"}
}

// DefaultPythonBinary returns the interpreter used when the config names none.
func DefaultPythonBinary(goos string) string {
	if goos == "windows" {
		return "python"
	}
	return "python3"
}
