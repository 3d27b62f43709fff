// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.calc.sh/pkg/buildinfo.Var=value" to "go build" or
// "go install".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"src.calc.sh/pkg/prog"
)

// VersionBase identifies the version of calc. On development commits, it
// identifies the next release.
const VersionBase = "0.3.0"

// VCSOverride may be set during compilation to a value of the form
// "<commit timestamp>-<commit hash>" to build a development version string
// when the Go toolchain does not record VCS information.
var VCSOverride string

// Type contains all the build information fields.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:   devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo),
	GoVersion: runtime.Version(),
}

func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	// Set when built with "go install src.calc.sh/cmd/calc@version".
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	var revision, timestamp string
	modified := false
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			timestamp = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(revision) < 12 || timestamp == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return fallback
	}
	v := fmt.Sprintf("%s-dev.0.%s-%s",
		next, t.UTC().Format("20060102150405"), revision[:12])
	if modified {
		v += "-dirty"
	}
	return v
}

// Program is the buildinfo subprogram.
type Program struct {
	version, buildinfo bool
	json               *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
	p.json = fs.JSON()
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	switch {
	case p.buildinfo:
		if *p.json {
			return writeJSON(fds[1], Value)
		}
		fmt.Fprintln(fds[1], "Version:", Value.Version)
		fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
	case p.version:
		if *p.json {
			return writeJSON(fds[1], Value.Version)
		}
		fmt.Fprintln(fds[1], Value.Version)
	default:
		return prog.ErrNextProgram
	}
	return nil
}

func writeJSON(f *os.File, v any) error {
	return json.NewEncoder(f).Encode(v)
}
