package scanner

import (
	"context"

	"github.com/sirupsen/logrus"

	wifiscan "github.com/wifilab/wifiscan/pkg"
	"github.com/wifilab/wifiscan/pkg/parse"
	"github.com/wifilab/wifiscan/pkg/runner"
)

var _ wifiscan.Scanner = &NetshScanner{}
var _ wifiscan.InterfaceLister = &NetshScanner{}

// NetshScanner surveys via Windows' netsh wlan reports.
type NetshScanner struct {
	runner wifiscan.CommandRunner
	log    *logrus.Logger
}

func NewNetshScanner(config wifiscan.Config, log *logrus.Logger) *NetshScanner {
	return &NetshScanner{
		runner: runner.New(config),
		log:    log,
	}
}

func (t *NetshScanner) Scan(ctx context.Context) ([]wifiscan.Network, error) {
	out, err := t.runner.Run(ctx, "netsh", "wlan", "show", "networks", "mode=Bssid")
	if err != nil {
		return nil, err
	}
	return parse.NetshNetworks(out)
}

// Interfaces reports each wlan adapter's current association, State
// included. Records here are not gated on completeness: a disconnected
// adapter yields a mostly empty record.
func (t *NetshScanner) Interfaces(ctx context.Context) ([]wifiscan.Network, error) {
	out, err := t.runner.Run(ctx, "netsh", "wlan", "show", "interfaces")
	if err != nil {
		return nil, err
	}
	return parse.NetshInterfaces(out)
}
