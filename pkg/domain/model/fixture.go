package model

import (
	"path"
	"strings"

	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/m-mizutani/goerr"
)

// Fixture is one FMU file found in the fixture directory.
//
// The fixture tree is laid out as
//
//	FMI_<version>/<type>/<platform>/<tool>/<toolVersion>/<model>/<model>.fmu
type Fixture struct {
	Version     types.FMIVersion `json:"version"`
	Type        types.FMUType    `json:"type"`
	Platform    types.Platform   `json:"platform"`
	Tool        string           `json:"tool"`
	ToolVersion string           `json:"tool_version"`
	Model       string           `json:"model"`

	// Path is the location of the FMU. Catalog results carry the slash
	// separated path relative to the fixture directory; use case results
	// carry a path on the local filesystem.
	Path string `json:"path"`
}

const fixturePathDepth = 7

// RelPath rebuilds the slash separated path of the fixture relative to the
// fixture directory.
func (x Fixture) RelPath() string {
	return path.Join(
		x.Version.Dir(),
		x.Type.String(),
		x.Platform.String(),
		x.Tool,
		x.ToolVersion,
		x.Model,
		x.Model+types.FMUExt,
	)
}

// ParseFixturePath converts a slash separated path relative to the fixture
// directory into a Fixture.
func ParseFixturePath(p string) (*Fixture, error) {
	elems := strings.Split(path.Clean(p), "/")
	if len(elems) != fixturePathDepth {
		return nil, goerr.Wrap(types.ErrInvalidFixturePath, "unexpected depth").With("path", p)
	}

	version, ok := types.ParseFMIVersionDir(elems[0])
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidFixturePath, "version directory must start with FMI_").With("path", p)
	}

	fmuType := types.FMUType(elems[1])
	if !fmuType.Valid() {
		return nil, goerr.Wrap(types.ErrInvalidFixturePath, "unknown FMU type").With("path", p).With("type", elems[1])
	}

	model := elems[5]
	if elems[6] != model+types.FMUExt {
		return nil, goerr.Wrap(types.ErrInvalidFixturePath, "FMU file name must match model directory").With("path", p)
	}

	for _, e := range elems[2:5] {
		if e == "" || e == "." || e == ".." {
			return nil, goerr.Wrap(types.ErrInvalidFixturePath, "empty path element").With("path", p)
		}
	}

	return &Fixture{
		Version:     version,
		Type:        fmuType,
		Platform:    types.Platform(elems[2]),
		Tool:        elems[3],
		ToolVersion: elems[4],
		Model:       model,
		Path:        p,
	}, nil
}

// FixtureQuery selects fixtures. Empty fields match anything.
type FixtureQuery struct {
	Version     types.FMIVersion `json:"version,omitempty"`
	Type        types.FMUType    `json:"type,omitempty"`
	Platform    types.Platform   `json:"platform,omitempty"`
	Tool        string           `json:"tool,omitempty"`
	ToolVersion string           `json:"tool_version,omitempty"`
	Model       string           `json:"model,omitempty"`
}

func (x FixtureQuery) Match(f Fixture) bool {
	return match(x.Version, f.Version) &&
		match(x.Type, f.Type) &&
		match(x.Platform, f.Platform) &&
		match(x.Tool, f.Tool) &&
		match(x.ToolVersion, f.ToolVersion) &&
		match(x.Model, f.Model)
}

// Validate rejects queries that can never match a fixture.
func (x FixtureQuery) Validate() error {
	if x.Type != "" && !x.Type.Valid() {
		return goerr.Wrap(types.ErrInvalidInput, "type must be ModelExchange or CoSimulation").With("type", x.Type)
	}
	return nil
}

func match[T ~string](want, got T) bool {
	return want == "" || want == got
}

// Filter returns fixtures matching the query, keeping their order.
func (x FixtureQuery) Filter(fixtures []Fixture) []Fixture {
	resp := make([]Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if x.Match(f) {
			resp = append(resp, f)
		}
	}
	return resp
}
