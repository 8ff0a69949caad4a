package distro

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"browsermgr/internal/executor"
)

// Info describes the running distribution.
type Info struct {
	ID         string   // Distribution ID (e.g., "ubuntu", "arch", "fedora")
	IDLike     []string // Related distributions
	Name       string   // Distribution name
	PrettyName string   // Human-readable name
	VersionID  string   // Version number (e.g., "22.04", "39")
	Codename   string   // Release codename (e.g., "jammy")
}

// Family returns the family of the distribution.
func (i *Info) Family() Family {
	return Classify(i.ID)
}

// osReleasePath is a variable so tests can point it at a fixture.
var osReleasePath = "/etc/os-release"

// releaseFiles are checked when neither os-release nor lsb_release is available.
var releaseFiles = []struct {
	path   string
	distro string
}{
	{"/etc/arch-release", "arch"},
	{"/etc/debian_version", "debian"},
	{"/etc/fedora-release", "fedora"},
	{"/etc/centos-release", "centos"},
	{"/etc/redhat-release", "rhel"},
	{"/etc/SuSE-release", "suse"},
}

// Detect identifies the running distribution. It never fails: an unidentifiable
// host is reported as "unknown", which classifies to FamilyDefault.
func Detect(ctx context.Context, host executor.Host) *Info {
	info := &Info{}

	if f, err := os.Open(osReleasePath); err == nil {
		defer f.Close()
		if err := parseOSRelease(f, info); err == nil && info.ID != "" {
			return info
		}
	}

	if out, err := host.Output(ctx, executor.Cmd("lsb_release", "-a")); err == nil {
		parseLSBRelease(out, info)
		if info.ID != "" {
			return info
		}
	}

	for _, rf := range releaseFiles {
		if host.PathExists(rf.path) {
			info.ID = rf.distro
			info.PrettyName = strings.ToUpper(rf.distro[:1]) + rf.distro[1:] + " Linux"
			return info
		}
	}

	info.ID = "unknown"
	info.PrettyName = "Unknown Linux"
	return info
}

// parseOSRelease parses os-release(5) content.
func parseOSRelease(r io.Reader, info *Info) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"'")

		switch key {
		case "ID":
			info.ID = strings.ToLower(value)
		case "ID_LIKE":
			info.IDLike = strings.Fields(value)
		case "NAME":
			info.Name = value
		case "PRETTY_NAME":
			info.PrettyName = value
		case "VERSION_ID":
			info.VersionID = value
		case "VERSION_CODENAME":
			info.Codename = value
		case "UBUNTU_CODENAME":
			if info.Codename == "" {
				info.Codename = value
			}
		}
	}

	return scanner.Err()
}

// parseLSBRelease parses `lsb_release -a` output.
func parseLSBRelease(output string, info *Info) {
	for _, line := range strings.Split(output, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		value := strings.TrimSpace(parts[1])
		switch strings.TrimSpace(parts[0]) {
		case "Distributor ID":
			info.ID = strings.ToLower(value)
		case "Release":
			info.VersionID = value
		case "Description":
			info.PrettyName = value
		case "Codename":
			info.Codename = value
		}
	}
}
