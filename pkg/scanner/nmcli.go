package scanner

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	wifiscan "github.com/wifilab/wifiscan/pkg"
	"github.com/wifilab/wifiscan/pkg/parse"
	"github.com/wifilab/wifiscan/pkg/runner"
)

var _ wifiscan.Scanner = &NmcliScanner{}

// NmcliScanner surveys via NetworkManager's nmcli in terse mode.
type NmcliScanner struct {
	runner wifiscan.CommandRunner
	log    *logrus.Logger

	versionCheck sync.Once
}

func NewNmcliScanner(config wifiscan.Config, log *logrus.Logger) *NmcliScanner {
	return &NmcliScanner{
		runner: runner.New(config),
		log:    log,
	}
}

func (t *NmcliScanner) Scan(ctx context.Context) ([]wifiscan.Network, error) {
	out, err := t.runner.Run(ctx, "nmcli",
		"--color", "no",
		"--terse",
		"-f", "ssid,chan,signal,security,bssid",
		"dev", "wifi", "list")
	if err != nil {
		return nil, err
	}

	t.versionCheck.Do(func() { t.warnOldNmcli(ctx) })

	return parse.NmcliList(out), nil
}
