package domain

import (
	"bufio"
	"slices"
	"strings"
)

// OSRelease holds the fields of /etc/os-release used to pick packages.
type OSRelease struct {
	ID         string
	IDLike     []string
	VersionID  string
	PrettyName string
}

func (o OSRelease) IsDebianFamily() bool {
	return o.ID == "debian" || o.ID == "ubuntu" || slices.Contains(o.IDLike, "debian") || slices.Contains(o.IDLike, "ubuntu")
}

func (o OSRelease) IsUbuntu() bool {
	return o.ID == "ubuntu"
}

func (o OSRelease) String() string {
	if o.PrettyName != "" {
		return o.PrettyName
	}
	if o.ID == "" {
		return "unknown"
	}
	return strings.TrimSpace(o.ID + " " + o.VersionID)
}

// ParseOSRelease reads the KEY=value format of os-release(5). Unknown keys,
// comments and malformed lines are ignored.
func ParseOSRelease(content string) OSRelease {
	var release OSRelease
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = unquoteOSReleaseValue(strings.TrimSpace(value))
		switch strings.TrimSpace(key) {
		case "ID":
			release.ID = strings.ToLower(value)
		case "ID_LIKE":
			release.IDLike = strings.Fields(strings.ToLower(value))
		case "VERSION_ID":
			release.VersionID = value
		case "PRETTY_NAME":
			release.PrettyName = value
		}
	}
	return release
}

func unquoteOSReleaseValue(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			return value[1 : len(value)-1]
		}
	}
	return value
}
