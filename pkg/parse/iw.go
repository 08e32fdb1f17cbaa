package parse

import (
	"strings"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

// Line prefixes in the `iw dev <if> scan` report. Only the BSS marker is
// structurally significant; the field lines may appear in any order
// within a block.
const (
	iwDeviceMarker   = "\tInterface "
	iwBSSPrefix      = "BSS "
	iwSignalPrefix   = "\tsignal: "
	iwChannelPrefix  = "\t\t * primary channel: "
	iwSSIDPrefix     = "\tSSID: "
	iwSecurityPrefix = "\t\t * Authentication suites: "
)

// IWDevice picks the first wireless device name out of `iw dev` output.
// Returns wifiscan.ErrNoValue when the report is empty.
func IWDevice(output string) (string, error) {
	parts := strings.SplitN(output, iwDeviceMarker, 2)
	segment := parts[len(parts)-1]
	if segment == "" {
		return "", wifiscan.ErrNoValue
	}
	name, _, _ := strings.Cut(segment, "\n")
	return strings.TrimSuffix(name, "\r"), nil
}

// IWScan parses the multi-line report of `iw dev <if> scan`. Each access
// point starts at a "BSS <mac>(..." line; the indented lines that follow
// fill in signal, channel, SSID and authentication suite, overwriting
// earlier values within the same block. A record reaches the output only
// once MAC, SSID, channel and signal have all been seen; a truncated
// block is dropped when the next BSS line (or end of input) arrives.
func IWScan(output string) []wifiscan.Network {
	var networks []wifiscan.Network
	var current wifiscan.Network
	for _, line := range lines(output) {
		if mac, err := extractValue(line, iwBSSPrefix, "("); err == nil {
			if current.Complete() {
				networks = append(networks, current)
			}
			current = wifiscan.Network{MAC: strings.ToLower(mac)}
		} else if signal, err := extractValue(line, iwSignalPrefix, " dBm"); err == nil {
			current.SignalLevel = signal
		} else if channel, err := extractValue(line, iwChannelPrefix, ""); err == nil {
			current.Channel = channel
		} else if ssid, err := extractValue(line, iwSSIDPrefix, ""); err == nil {
			current.SSID = ssid
		} else if security, err := extractValue(line, iwSecurityPrefix, ""); err == nil {
			current.Security = security
		}
	}
	if current.Complete() {
		networks = append(networks, current)
	}
	return networks
}
