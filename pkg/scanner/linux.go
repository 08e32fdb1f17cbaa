package scanner

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

var _ wifiscan.Scanner = &LinuxScanner{}

// LinuxScanner prefers nmcli and falls back to iw when NetworkManager
// is not installed at all. A failing nmcli run (non-zero exit) is still
// surfaced as-is: the tool being present but unhappy usually means the
// radio is blocked, and iw would fare no better.
type LinuxScanner struct {
	nmcli *NmcliScanner
	iw    *IWScanner
	log   *logrus.Logger
}

func NewLinuxScanner(config wifiscan.Config, log *logrus.Logger) *LinuxScanner {
	return &LinuxScanner{
		nmcli: NewNmcliScanner(config, log),
		iw:    NewIWScanner(config, log),
		log:   log,
	}
}

func (t *LinuxScanner) Scan(ctx context.Context) ([]wifiscan.Network, error) {
	networks, err := t.nmcli.Scan(ctx)

	var notFound *wifiscan.CommandNotFoundError
	if errors.As(err, &notFound) {
		t.log.WithError(err).Debug("nmcli not available, falling back to iw")
		return t.iw.Scan(ctx)
	}

	return networks, err
}

// Devices lists the wireless devices visible on this host.
func (t *LinuxScanner) Devices(ctx context.Context) ([]string, error) {
	return t.iw.Devices(ctx)
}
