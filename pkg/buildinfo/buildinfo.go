// Package buildinfo contains build information.
//
// A build without VCS data can supply it by passing
// -ldflags "-X src.lined.dev/pkg/buildinfo.VCSOverride=20260314092653-9f3c2ab41e07"
// to "go build".
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// VersionBase identifies the version of the next release.
const VersionBase = "0.1.0"

// VCSOverride, when set, is used in place of the VCS data of the build.
var VCSOverride string

// Version is the full version of this build.
var Version = devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo)

func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		// Installed as a module with "go install".
		return strings.TrimPrefix(v, "v")
	}

	var revision, vcsTime string
	modified := false
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, vcsTime)
	if err != nil {
		return fallback
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := fmt.Sprintf("%s-dev.0.%s-%s", next, t.UTC().Format("20060102150405"), revision)
	if modified {
		v += "-dirty"
	}
	return v
}
