package installer

import (
	"context"

	"browsermgr/internal/log"
)

// Attempt is one way of getting a browser installed.
type Attempt struct {
	// Name describes the method to the user, e.g. "Snap".
	Name string

	// When reports whether the attempt applies on this host; nil means always.
	When func() bool

	// Run performs the attempt and reports whether the browser is now installed.
	Run func(ctx context.Context) bool
}

// runChain evaluates attempts in order and returns the name of the first that succeeds.
func (i *Installer) runChain(ctx context.Context, attempts []Attempt) (string, bool) {
	for _, a := range attempts {
		if ctx.Err() != nil {
			return "", false
		}
		if a.When != nil && !a.When() {
			log.Debug("skipping %s: not applicable", a.Name)
			continue
		}

		i.infof("Trying %s...", a.Name)
		if a.Run(ctx) {
			return a.Name, true
		}
		i.warnf("%s did not succeed", a.Name)
	}
	return "", false
}
