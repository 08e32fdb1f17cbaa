package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

var (
	// Matches the remainder of a numbered "SSID N : name" line after
	// the block split has eaten the "SSID" literal.
	netshSSIDIndexRe = regexp.MustCompile(`^ [0-9]* : `)
	netshMACRe       = regexp.MustCompile(`[a-fA-F0-9:]{17}`)
)

// NetshNetworks parses the report of `netsh wlan show networks
// mode=Bssid`. Blocks split on the "SSID" record marker; each block
// carries one SSID and authentication value plus repeated BSSID, channel
// and signal sub-fields. Same-index BSSID/channel/signal values are
// paired positionally into one record per access point, truncating to
// the shortest of the three sequences; excess entries are silently
// dropped. Signal percentages convert to dBm as percent/2 - 100, and a
// non-numeric percentage fails the whole parse.
func NetshNetworks(output string) ([]wifiscan.Network, error) {
	var networks []wifiscan.Network

	for _, block := range strings.Split(output, "\nSSID") {
		var ssid, security string
		var macs, channels, signals []string

		for _, line := range lines(block) {
			switch {
			case netshSSIDIndexRe.MatchString(line):
				ssid = fieldAfterColon(line)
			case strings.Contains(line, "Authentication"):
				security = fieldAfterColon(line)
			case strings.Contains(line, "BSSID"):
				if mac := netshMACRe.FindString(line); mac != "" {
					macs = append(macs, strings.ToLower(mac))
				}
			case strings.Contains(line, "Signal"):
				dbm, err := signalToDBm(fieldAfterColon(line))
				if err != nil {
					return nil, err
				}
				signals = append(signals, dbm)
			case strings.Contains(line, "Channel"):
				channels = append(channels, fieldAfterColon(line))
			}
		}

		n := len(macs)
		if len(channels) < n {
			n = len(channels)
		}
		if len(signals) < n {
			n = len(signals)
		}
		for i := 0; i < n; i++ {
			networks = append(networks, wifiscan.Network{
				MAC:         macs[i],
				SSID:        ssid,
				Channel:     channels[i],
				SignalLevel: signals[i],
				Security:    security,
			})
		}
	}

	return networks, nil
}

// NetshInterfaces parses the report of `netsh wlan show interfaces`.
// Blocks split on the "Name" record marker and each block yields exactly
// one record, last-seen value winning per field. Unlike the scan
// parsers there is no completeness gate: a block with no recognized
// fields still produces a record with every field empty.
func NetshInterfaces(output string) ([]wifiscan.Network, error) {
	var networks []wifiscan.Network

	for _, block := range strings.Split(output, "\nName") {
		var network wifiscan.Network

		for _, line := range lines(block) {
			switch {
			case strings.Contains(line, "Authentication"):
				network.Security = fieldAfterColon(line)
			// BSSID before SSID: a BSSID line contains "SSID" too.
			case strings.Contains(line, "BSSID"):
				network.MAC = strings.ToLower(strings.TrimSpace(afterFirstColon(line)))
			case strings.Contains(line, "SSID"):
				network.SSID = strings.TrimSpace(afterFirstColon(line))
			case strings.Contains(line, "Signal"):
				dbm, err := signalToDBm(fieldAfterColon(line))
				if err != nil {
					return nil, err
				}
				network.SignalLevel = dbm
			case strings.Contains(line, "Channel"):
				network.Channel = fieldAfterColon(line)
			case strings.Contains(line, "State"):
				network.State = fieldAfterColon(line)
			}
		}

		networks = append(networks, network)
	}

	return networks, nil
}

// fieldAfterColon returns the trimmed text between the first and second
// colon of a "key : value" report line, or "" when there is no colon.
func fieldAfterColon(line string) string {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// afterFirstColon returns everything past the first colon, for values
// like BSSIDs that themselves contain colons.
func afterFirstColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return rest
}

// signalToDBm converts netsh's signal percentage to a dBm string.
func signalToDBm(value string) (string, error) {
	percent, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(value, "%", "")))
	if err != nil {
		return "", fmt.Errorf("malformed signal percentage %q: %w", value, err)
	}
	return strconv.Itoa(percent/2 - 100), nil
}
