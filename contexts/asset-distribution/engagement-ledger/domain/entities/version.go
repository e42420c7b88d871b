package entities

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// InitialVersion is the version stamped on a file's first download.
const InitialVersion = "v1.0"

// NextVersion bumps the minor counter of a vMAJOR.MINOR tag, so v1.9 becomes
// v1.10. A missing "v" prefix is tolerated. Anything that does not parse
// restarts from InitialVersion and is bumped from there.
func NextVersion(version string) string {
	major, minor, ok := parseVersion(version)
	if !ok {
		major, minor, _ = parseVersion(InitialVersion)
	}
	return "v" + strconv.Itoa(major) + "." + strconv.Itoa(minor+1)
}

func parseVersion(version string) (major int, minor int, ok bool) {
	version = strings.TrimSpace(version)
	if version == "" {
		return 0, 0, false
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return 0, 0, false
	}
	parts := strings.Split(strings.TrimPrefix(semver.MajorMinor(version), "v"), ".")
	if len(parts) != 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
