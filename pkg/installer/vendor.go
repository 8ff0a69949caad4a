package installer

import (
	"context"
	"path"
	"path/filepath"

	"browsermgr/internal/executor"
	"browsermgr/pkg/manager"
)

// vendorRecipe describes how to install a browser that is published in its
// vendor's own repositories rather than the distribution's.
type vendorRecipe struct {
	// packages is the package name per packaging; for arch it is the AUR package.
	packages map[manager.Packaging]string

	// repo returns the repository bootstrap steps for a native manager.
	repo map[manager.Packaging]func(native manager.NativeManager) []executor.Command

	// direct is the vendor download URL per packaging.
	direct map[manager.Packaging]string
}

const (
	chromeKeyURL     = "https://dl.google.com/linux/linux_signing_key.pub"
	chromeKeyring    = "/usr/share/keyrings/google-chrome.asc"
	chromeRPMRepo    = "https://dl.google.com/linux/chrome/rpm/stable/x86_64"
	chromeZypperRepo = "http://dl.google.com/linux/chrome/rpm/stable/x86_64"

	braveAPTHost   = "https://brave-browser-apt-release.s3.brave.com/"
	braveKeyring   = "/usr/share/keyrings/brave-browser-archive-keyring.gpg"
	braveRPMRepo   = "https://brave-browser-rpm-release.s3.brave.com/x86_64/"
	braveRPMKeyURL = "https://brave-browser-rpm-release.s3.brave.com/brave-core.asc"
)

var vendors = map[string]vendorRecipe{
	"chrome": {
		packages: map[manager.Packaging]string{
			manager.PackagingDeb:    "google-chrome-stable",
			manager.PackagingRPM:    "google-chrome-stable",
			manager.PackagingZypper: "google-chrome-stable",
			manager.PackagingArch:   "google-chrome",
		},
		repo: map[manager.Packaging]func(manager.NativeManager) []executor.Command{
			manager.PackagingDeb: func(manager.NativeManager) []executor.Command {
				return aptRepo(chromeKeyURL, chromeKeyring, "google-chrome",
					"deb [arch=amd64 signed-by="+chromeKeyring+"] https://dl.google.com/linux/chrome/deb/ stable main")
			},
			manager.PackagingRPM: func(m manager.NativeManager) []executor.Command {
				return rpmRepo(m, chromeKeyURL, chromeRPMRepo)
			},
			manager.PackagingZypper: func(m manager.NativeManager) []executor.Command {
				return zypperRepo(m, chromeKeyURL, chromeZypperRepo, "google-chrome")
			},
		},
		direct: map[manager.Packaging]string{
			manager.PackagingDeb: "https://dl.google.com/linux/direct/google-chrome-stable_current_amd64.deb",
			manager.PackagingRPM: "https://dl.google.com/linux/direct/google-chrome-stable_current_x86_64.rpm",
		},
	},
	"brave": {
		packages: map[manager.Packaging]string{
			manager.PackagingDeb:    "brave-browser",
			manager.PackagingRPM:    "brave-browser",
			manager.PackagingZypper: "brave-browser",
			manager.PackagingArch:   "brave-bin",
		},
		repo: map[manager.Packaging]func(manager.NativeManager) []executor.Command{
			manager.PackagingDeb: func(manager.NativeManager) []executor.Command {
				steps := []executor.Command{executor.Sudo("apt-get", "install", "-y", "apt-transport-https", "curl", "gnupg")}
				return append(steps, aptRepo(braveAPTHost+"brave-browser-archive-keyring.gpg", braveKeyring, "brave-browser-release",
					"deb [signed-by="+braveKeyring+"] "+braveAPTHost+" stable main")...)
			},
			manager.PackagingRPM: func(m manager.NativeManager) []executor.Command {
				return rpmRepo(m, braveRPMKeyURL, braveRPMRepo)
			},
			manager.PackagingZypper: func(m manager.NativeManager) []executor.Command {
				return zypperRepo(m, braveRPMKeyURL, braveRPMRepo, "brave-browser")
			},
		},
	},
}

func aptRepo(keyURL, keyring, listName, entry string) []executor.Command {
	return []executor.Command{
		executor.Sudo("curl", "-fsSLo", keyring, keyURL),
		executor.Sudo("tee", "/etc/apt/sources.list.d/"+listName+".list").WithStdin(entry + "\n"),
		executor.Sudo("apt-get", "update"),
	}
}

// repoAdder is implemented by dnf and yum.
type repoAdder interface {
	AddRepoCommand(url string) executor.Command
}

// aliasRepoAdder is implemented by zypper, whose repositories are named.
type aliasRepoAdder interface {
	AddRepoCommand(url, alias string) executor.Command
}

func rpmRepo(m manager.NativeManager, keyURL, repoURL string) []executor.Command {
	steps := []executor.Command{executor.Sudo("rpm", "--import", keyURL)}
	if ra, ok := m.(repoAdder); ok {
		steps = append(steps, ra.AddRepoCommand(repoURL))
	}
	return steps
}

func zypperRepo(m manager.NativeManager, keyURL, repoURL, alias string) []executor.Command {
	steps := []executor.Command{executor.Sudo("rpm", "--import", keyURL)}
	if ra, ok := m.(aliasRepoAdder); ok {
		steps = append(steps, ra.AddRepoCommand(repoURL, alias))
	}
	return append(steps, executor.Sudo("zypper", "refresh"))
}

// vendorAttempts builds the install chain for a vendor browser:
// vendor repository, then direct download, then the AUR on Arch.
func (i *Installer) vendorAttempts(id string, recipe vendorRecipe, nm manager.NativeManager) []Attempt {
	packaging := nm.Packaging()
	pkg, ok := recipe.packages[packaging]
	if !ok {
		return nil
	}

	var attempts []Attempt

	if setup, ok := recipe.repo[packaging]; ok {
		attempts = append(attempts, Attempt{
			Name: "vendor repository",
			Run: func(ctx context.Context) bool {
				for _, step := range setup(nm) {
					if err := i.host.Run(ctx, step); err != nil {
						i.warnf("Repository step failed (%s): %v; continuing", step, err)
					}
				}
				return i.installNative(ctx, nm, id, pkg)
			},
		})
	}

	if url, ok := recipe.direct[packaging]; ok {
		attempts = append(attempts, Attempt{
			Name: "direct download",
			Run: func(ctx context.Context) bool {
				return i.installDownload(ctx, nm, id, url)
			},
		})
	}

	if packaging == manager.PackagingArch && i.aur != nil {
		attempts = append(attempts, i.aurAttempts(id, pkg)...)
	}

	return attempts
}

// aurAttempts installs pkg through an AUR helper, or builds it by hand when there is none.
func (i *Installer) aurAttempts(id, pkg string) []Attempt {
	return []Attempt{
		{
			Name: "AUR helper (" + pkg + ")",
			When: func() bool { return i.aur.Helper() != "" },
			Run: func(ctx context.Context) bool {
				if err := i.aur.Install(ctx, pkg); err != nil {
					i.warnf("AUR helper: %v", err)
					return false
				}
				return i.verify(ctx, id)
			},
		},
		{
			Name: "AUR build (" + pkg + ")",
			When: func() bool { return i.aur.Helper() == "" },
			Run: func(ctx context.Context) bool {
				if err := i.aur.Build(ctx, pkg); err != nil {
					i.warnf("AUR build: %v", err)
					return false
				}
				return i.verify(ctx, id)
			},
		},
	}
}

// installDownload fetches a vendor package with wget, falling back to curl,
// and installs it with the native low-level installer.
func (i *Installer) installDownload(ctx context.Context, nm manager.NativeManager, id, url string) bool {
	file := filepath.Join(i.downloadDir, path.Base(url))

	if err := i.host.Run(ctx, executor.Cmd("mkdir", "-p", i.downloadDir)); err != nil {
		i.warnf("Cannot create %s: %v", i.downloadDir, err)
		return false
	}
	defer func() { _ = i.host.Run(ctx, executor.Cmd("rm", "-f", file)) }()

	if !i.download(ctx, url, file) {
		return false
	}

	if err := nm.InstallLocal(ctx, file); err != nil {
		i.warnf("Installing %s failed: %v", filepath.Base(file), err)
	}
	return i.verify(ctx, id)
}

func (i *Installer) download(ctx context.Context, url, file string) bool {
	i.infof("Downloading %s", url)

	if i.host.CommandExists("wget") {
		if err := i.host.Run(ctx, executor.Cmd("wget", "-O", file, url)); err == nil {
			return true
		}
		i.warnf("wget failed, trying curl")
	}

	if i.host.CommandExists("curl") {
		if err := i.host.Run(ctx, executor.Cmd("curl", "-fL", "-o", file, url)); err == nil {
			return true
		}
	}

	i.warnf("Could not download %s", url)
	return false
}
