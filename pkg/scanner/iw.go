package scanner

import (
	"context"

	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"

	wifiscan "github.com/wifilab/wifiscan/pkg"
	"github.com/wifilab/wifiscan/pkg/parse"
	"github.com/wifilab/wifiscan/pkg/runner"
)

var _ wifiscan.Scanner = &IWScanner{}

// IWScanner surveys via the low-level `iw` tool. iw usually lives in
// /usr/sbin, which non-root shells omit from PATH, so the runner gets
// the sbin directories appended.
type IWScanner struct {
	runner wifiscan.CommandRunner
	log    *logrus.Logger
	iface  string
}

func NewIWScanner(config wifiscan.Config, log *logrus.Logger) *IWScanner {
	r := runner.New(config)
	r.ExtraPath = "/usr/sbin:/sbin"
	return &IWScanner{
		runner: r,
		log:    log,
		iface:  config.Interface,
	}
}

func (t *IWScanner) Scan(ctx context.Context) ([]wifiscan.Network, error) {
	iface := t.iface
	if iface == "" {
		var err error
		iface, err = t.findDevice(ctx)
		if err != nil {
			return nil, err
		}
	}

	out, err := t.runner.Run(ctx, "iw", "dev", iface, "scan")
	if err != nil {
		return nil, err
	}

	return parse.IWScan(out), nil
}

// Devices lists the wireless device names iw would scan on.
func (t *IWScanner) Devices(ctx context.Context) ([]string, error) {
	if names, err := nl80211Devices(); err == nil && len(names) > 0 {
		return names, nil
	}

	out, err := t.runner.Run(ctx, "iw", "dev")
	if err != nil {
		return nil, err
	}
	name, err := parse.IWDevice(out)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// findDevice prefers nl80211 enumeration and falls back to parsing
// `iw dev` when netlink is unavailable (containers, locked-down hosts).
func (t *IWScanner) findDevice(ctx context.Context) (string, error) {
	names, err := nl80211Devices()
	if err == nil && len(names) > 0 {
		return names[0], nil
	}
	if err != nil {
		t.log.WithError(err).Debug("nl80211 enumeration failed, parsing iw dev output")
	}

	out, err := t.runner.Run(ctx, "iw", "dev")
	if err != nil {
		return "", err
	}
	return parse.IWDevice(out)
}

func nl80211Devices() ([]string, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	interfaces, err := client.Interfaces()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, iface := range interfaces {
		if iface.Name != "" {
			names = append(names, iface.Name)
		}
	}
	return names, nil
}
