package types

import "strings"

// FMIVersion is the FMI standard version a fixture was exported for, e.g. "2.0".
type FMIVersion string

// VersionDirPrefix prefixes the top level directories of the fixture tree.
const VersionDirPrefix = "FMI_"

func (x FMIVersion) String() string { return string(x) }

// Dir returns the directory name used for the version, e.g. "FMI_2.0".
func (x FMIVersion) Dir() string { return VersionDirPrefix + string(x) }

// ParseFMIVersionDir converts a directory name such as "FMI_1.0" into a version.
func ParseFMIVersionDir(name string) (FMIVersion, bool) {
	v, ok := strings.CutPrefix(name, VersionDirPrefix)
	if !ok || v == "" {
		return "", false
	}
	return FMIVersion(v), true
}

type FMUType string

const (
	ModelExchange FMUType = "ModelExchange"
	CoSimulation  FMUType = "CoSimulation"
)

func (x FMUType) String() string { return string(x) }

func (x FMUType) Valid() bool {
	switch x {
	case ModelExchange, CoSimulation:
		return true
	}
	return false
}

// Platform is the binary platform directory, e.g. "linux64" or "win64".
type Platform string

func (x Platform) String() string { return string(x) }

// FMUExt is the file extension of an FMU archive.
const FMUExt = ".fmu"
