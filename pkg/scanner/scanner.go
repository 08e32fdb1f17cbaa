// Package scanner runs the platform's wireless survey tool and feeds
// its output through pkg/parse. One scanner per tool; New picks the
// right one for the current platform.
package scanner

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

// New returns the scanner for the current platform: nmcli with an iw
// fallback on Linux, netsh on Windows.
func New(config wifiscan.Config, log *logrus.Logger) (wifiscan.Scanner, error) {
	switch runtime.GOOS {
	case "linux":
		return NewLinuxScanner(config, log), nil
	case "windows":
		return NewNetshScanner(config, log), nil
	default:
		return nil, fmt.Errorf("no wireless scanner available for platform %q", runtime.GOOS)
	}
}
