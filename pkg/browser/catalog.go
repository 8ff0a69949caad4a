package browser

import "browsermgr/pkg/distro"

// Default returns the built-in browser catalog.
func Default() *Registry {
	r, err := NewRegistry(catalog...)
	if err != nil {
		// The catalog is static; a bad entry is a programming error.
		panic(err)
	}
	return r
}

var catalog = []Descriptor{
	{
		ID:          "firefox",
		Name:        "Mozilla Firefox",
		Description: "Popular open-source web browser from Mozilla",
		Packages: map[distro.Family][]string{
			distro.FamilyDebian:   {"firefox-esr", "firefox"},
			distro.FamilyUbuntu:   {"firefox"},
			distro.FamilyFedora:   {"firefox"},
			distro.FamilyArch:     {"firefox"},
			distro.FamilyOpenSUSE: {"MozillaFirefox"},
			distro.FamilyDefault:  {"firefox", "firefox-esr"},
		},
		Snap:    "firefox",
		Flatpak: "org.mozilla.firefox",
	},
	{
		ID:          "chromium",
		Name:        "Chromium",
		Description: "Open-source browser project that forms the basis for Chrome",
		Packages: map[distro.Family][]string{
			distro.FamilyDebian:   {"chromium", "chromium-browser"},
			distro.FamilyUbuntu:   {"chromium-browser"},
			distro.FamilyFedora:   {"chromium"},
			distro.FamilyArch:     {"chromium"},
			distro.FamilyOpenSUSE: {"chromium"},
			distro.FamilyDefault:  {"chromium", "chromium-browser"},
		},
		Snap:    "chromium",
		Flatpak: "org.chromium.Chromium",
	},
	{
		ID:          "chrome",
		Name:        "Google Chrome",
		Description: "Google's web browser",
		Packages: map[distro.Family][]string{
			distro.FamilyDebian:   {"google-chrome-stable"},
			distro.FamilyUbuntu:   {"google-chrome-stable"},
			distro.FamilyFedora:   {"google-chrome-stable"},
			distro.FamilyArch:     {"google-chrome"},
			distro.FamilyOpenSUSE: {"google-chrome-stable"},
			distro.FamilyDefault:  {"google-chrome-stable", "google-chrome"},
		},
		Snap:    "google-chrome",
		Flatpak: "com.google.Chrome",
		Vendor:  true,
	},
	{
		ID:          "tor-browser",
		Name:        "Tor Browser",
		Description: "Privacy-focused browser for anonymous browsing",
		Packages: map[distro.Family][]string{
			distro.FamilyDebian:   {"torbrowser-launcher"},
			distro.FamilyUbuntu:   {"torbrowser-launcher"},
			distro.FamilyFedora:   {"torbrowser-launcher"},
			distro.FamilyArch:     {"tor-browser"},
			distro.FamilyOpenSUSE: {"torbrowser-launcher"},
			distro.FamilyDefault:  {"torbrowser-launcher", "tor-browser"},
		},
		Snap:    "tor-browser",
		Flatpak: "com.github.micahflee.torbrowser-launcher",
	},
	{
		ID:          "brave",
		Name:        "Brave Browser",
		Description: "Privacy-focused browser based on Chromium",
		Packages: map[distro.Family][]string{
			distro.FamilyDebian:   {"brave-browser"},
			distro.FamilyUbuntu:   {"brave-browser"},
			distro.FamilyFedora:   {"brave-browser"},
			distro.FamilyArch:     {"brave-bin"},
			distro.FamilyOpenSUSE: {"brave-browser"},
			distro.FamilyDefault:  {"brave-browser", "brave-bin"},
		},
		Snap:    "brave",
		Flatpak: "com.brave.Browser",
		Vendor:  true,
	},
	{
		ID:          "vivaldi",
		Name:        "Vivaldi",
		Description: "Feature-rich browser based on Chromium",
		Packages: map[distro.Family][]string{
			distro.FamilyDebian:   {"vivaldi-stable"},
			distro.FamilyUbuntu:   {"vivaldi-stable"},
			distro.FamilyFedora:   {"vivaldi-stable"},
			distro.FamilyArch:     {"vivaldi"},
			distro.FamilyOpenSUSE: {"vivaldi"},
			distro.FamilyDefault:  {"vivaldi-stable", "vivaldi"},
		},
		Snap:    "vivaldi",
		Flatpak: "com.vivaldi.Vivaldi",
	},
	{
		ID:          "opera",
		Name:        "Opera",
		Description: "Feature-rich browser with built-in VPN",
		Packages: map[distro.Family][]string{
			distro.FamilyDebian:   {"opera-stable"},
			distro.FamilyUbuntu:   {"opera-stable"},
			distro.FamilyFedora:   {"opera-stable"},
			distro.FamilyArch:     {"opera"},
			distro.FamilyOpenSUSE: {"opera"},
			distro.FamilyDefault:  {"opera-stable", "opera"},
		},
		Snap:    "opera",
		Flatpak: "com.opera.Opera",
	},
	{
		ID:          "edge",
		Name:        "Microsoft Edge",
		Description: "Microsoft's Chromium-based browser",
		Packages: map[distro.Family][]string{
			distro.FamilyDebian:   {"microsoft-edge-stable"},
			distro.FamilyUbuntu:   {"microsoft-edge-stable"},
			distro.FamilyFedora:   {"microsoft-edge-stable"},
			distro.FamilyArch:     {"microsoft-edge-stable-bin"},
			distro.FamilyOpenSUSE: {"microsoft-edge"},
			distro.FamilyDefault:  {"microsoft-edge-stable", "microsoft-edge"},
		},
		Snap:    "microsoft-edge",
		Flatpak: "com.microsoft.Edge",
	},
	{
		ID:          "falkon",
		Name:        "Falkon",
		Description: "KDE web browser using QtWebEngine",
		Packages: map[distro.Family][]string{
			distro.FamilyDefault: {"falkon"},
		},
		Snap:    "falkon",
		Flatpak: "org.kde.falkon",
	},
	{
		ID:          "midori",
		Name:        "Midori",
		Description: "Lightweight web browser",
		Packages: map[distro.Family][]string{
			distro.FamilyDefault: {"midori"},
		},
		Snap:    "midori",
		Flatpak: "org.midori_browser.Midori",
	},
}
