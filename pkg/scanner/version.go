package scanner

import (
	"context"
	"regexp"

	"github.com/Masterminds/semver"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

// nmcli gained stable terse-mode field selection in 0.9.10; older
// releases render the bssid column differently.
const minNmcliVersion = ">= 0.9.10"

var nmcliVersionRe = regexp.MustCompile(`version ([0-9]+(?:\.[0-9]+)*)`)

// parseNmcliVersion pulls the release number out of `nmcli --version`
// output, eg. "nmcli tool, version 1.42.4".
func parseNmcliVersion(output string) (*semver.Version, error) {
	m := nmcliVersionRe.FindStringSubmatch(output)
	if m == nil {
		return nil, wifiscan.ErrNoValue
	}
	return semver.NewVersion(m[1])
}

func (t *NmcliScanner) warnOldNmcli(ctx context.Context) {
	out, err := t.runner.Run(ctx, "nmcli", "--version")
	if err != nil {
		t.log.WithError(err).Debug("could not probe nmcli version")
		return
	}

	version, err := parseNmcliVersion(out)
	if err != nil {
		t.log.Debugf("unrecognized nmcli version output: %q", out)
		return
	}

	constraint, err := semver.NewConstraint(minNmcliVersion)
	if err != nil {
		return
	}

	if !constraint.Check(version) {
		t.log.Warnf("nmcli %s is older than %s, terse output may not parse cleanly", version, minNmcliVersion)
	}
}
