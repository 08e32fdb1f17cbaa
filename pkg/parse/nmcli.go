package parse

import (
	"strings"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

// nmcli's terse mode uses ':' as the field separator, so colons inside
// the BSSID arrive escaped as '\:'.
const nmcliFieldCount = 5

// NmcliList parses the output of
//
//	nmcli --color no --terse -f ssid,chan,signal,security,bssid dev wifi list
//
// One record per well-formed line, in input order. A line with fewer
// than five colon-separated fields contributes nothing; partial records
// are never emitted. BSSIDs are unescaped and lowercased to the
// canonical xx:xx:xx:xx:xx:xx form.
func NmcliList(output string) []wifiscan.Network {
	var networks []wifiscan.Network
	for _, line := range lines(output) {
		fields := strings.SplitN(line, ":", nmcliFieldCount)
		if len(fields) < nmcliFieldCount {
			continue
		}
		networks = append(networks, wifiscan.Network{
			SSID:        fields[0],
			Channel:     fields[1],
			SignalLevel: fields[2],
			Security:    fields[3],
			MAC:         strings.ToLower(strings.ReplaceAll(fields[4], `\:`, ":")),
		})
	}
	return networks
}
