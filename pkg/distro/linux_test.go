package distro

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"browsermgr/internal/testutil"
)

const ubuntuOSRelease = `PRETTY_NAME="Ubuntu 22.04.4 LTS"
NAME="Ubuntu"
VERSION_ID="22.04"
VERSION="22.04.4 LTS (Jammy Jellyfish)"
VERSION_CODENAME=jammy
ID=ubuntu
ID_LIKE=debian
UBUNTU_CODENAME=jammy
`

func TestParseOSRelease(t *testing.T) {
	info := &Info{}
	if err := parseOSRelease(strings.NewReader(ubuntuOSRelease), info); err != nil {
		t.Fatalf("parseOSRelease() error: %v", err)
	}

	if info.ID != "ubuntu" {
		t.Errorf("ID = %q, want ubuntu", info.ID)
	}
	if info.PrettyName != "Ubuntu 22.04.4 LTS" {
		t.Errorf("PrettyName = %q", info.PrettyName)
	}
	if info.VersionID != "22.04" {
		t.Errorf("VersionID = %q", info.VersionID)
	}
	if info.Codename != "jammy" {
		t.Errorf("Codename = %q", info.Codename)
	}
	if len(info.IDLike) != 1 || info.IDLike[0] != "debian" {
		t.Errorf("IDLike = %v", info.IDLike)
	}
	if info.Family() != FamilyUbuntu {
		t.Errorf("Family() = %s, want ubuntu", info.Family())
	}
}

func TestParseLSBRelease(t *testing.T) {
	out := "Distributor ID:\tManjaro\nDescription:\tManjaro Linux\nRelease:\t23.1.0\nCodename:\tVulcan\n"
	info := &Info{}
	parseLSBRelease(out, info)

	if info.ID != "manjaro" || info.VersionID != "23.1.0" || info.Codename != "Vulcan" {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.Family() != FamilyArch {
		t.Errorf("Family() = %s, want arch", info.Family())
	}
}

func withOSRelease(t *testing.T, content string) {
	t.Helper()
	orig := osReleasePath
	path := filepath.Join(t.TempDir(), "os-release")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	osReleasePath = path
	t.Cleanup(func() { osReleasePath = orig })
}

func TestDetectFromOSRelease(t *testing.T) {
	withOSRelease(t, ubuntuOSRelease)
	host := testutil.NewFakeHost()

	info := Detect(context.Background(), host)
	if info.ID != "ubuntu" {
		t.Errorf("ID = %q, want ubuntu", info.ID)
	}
	if len(host.Calls()) != 0 {
		t.Errorf("os-release hit should not shell out, ran %v", host.CallLines())
	}
}

func TestDetectFallbacks(t *testing.T) {
	withOSRelease(t, "")

	host := testutil.NewFakeHost().Respond("lsb_release -a", "Distributor ID:\tDebian\nRelease:\t12\n")
	if info := Detect(context.Background(), host); info.ID != "debian" {
		t.Errorf("lsb_release fallback: ID = %q, want debian", info.ID)
	}

	host = testutil.NewFakeHost().WithPaths("/etc/arch-release")
	info := Detect(context.Background(), host)
	if info.ID != "arch" || info.PrettyName != "Arch Linux" {
		t.Errorf("release file fallback: %+v", info)
	}

	info = Detect(context.Background(), testutil.NewFakeHost())
	if info.ID != "unknown" || info.Family() != FamilyDefault {
		t.Errorf("unknown host: %+v", info)
	}
}
