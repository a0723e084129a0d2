package scheduler

import (
	"strings"

	"golang.org/x/mod/semver"
)

// MinSlurmVersion is the oldest SLURM release the generated directive set
// is known to work with ("%x"/"%j" filename patterns, --mem suffixes).
const MinSlurmVersion = "17.11.0"

// VersionSupported reports whether a detected SLURM version is at least
// MinSlurmVersion. Unparseable versions are treated as supported so an odd
// vendor build only produces a skipped check, not a false warning.
func VersionSupported(version string) bool {
	if version == "" {
		return true
	}
	cmp, ok := compareVersions(version, MinSlurmVersion)
	if !ok {
		return true
	}
	return cmp >= 0
}

// compareVersions compares two SLURM release strings, returning -1/0/1 and
// whether both sides parsed.
func compareVersions(v1, v2 string) (int, bool) {
	c1 := canonicalSlurmVersion(v1)
	c2 := canonicalSlurmVersion(v2)
	if c1 == "" || c2 == "" {
		return 0, false
	}
	return semver.Compare(c1, c2), true
}

// canonicalSlurmVersion converts a SLURM release string into a canonical
// semver string. SLURM reports zero-padded minor components ("23.02.6")
// and omits the leading 'v'; both are rejected by the semver package, so
// each numeric component is stripped of leading zeros first. Returns ""
// when the version does not parse.
func canonicalSlurmVersion(version string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")

	parts := strings.Split(version, ".")
	for i, part := range parts {
		trimmed := strings.TrimLeft(part, "0")
		if trimmed == "" && part != "" {
			trimmed = "0"
		}
		parts[i] = trimmed
	}

	return semver.Canonical("v" + strings.Join(parts, "."))
}
