// Package parse turns the raw text output of OS wireless utilities into
// canonical wifiscan.Network records. One entry point per tool grammar:
// NmcliList for nmcli's terse colon-separated listing, IWScan for the
// indented multi-line report of `iw dev <if> scan`, and NetshNetworks /
// NetshInterfaces for netsh's human-readable wlan reports.
//
// Everything here is pure: no processes are spawned, no state survives a
// call, and concurrent calls on separate inputs need no coordination.
package parse

import (
	"fmt"
	"strings"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

// Parse applies the grammar for the given source to output. Callers
// that know which tool produced the text can also reach for the
// per-tool entry points directly.
func Parse(source wifiscan.Source, output string) ([]wifiscan.Network, error) {
	switch source {
	case wifiscan.SourceNmcli:
		return NmcliList(output), nil
	case wifiscan.SourceIW:
		return IWScan(output), nil
	case wifiscan.SourceNetsh:
		return NetshNetworks(output)
	}
	return nil, fmt.Errorf("unknown scan source %v", source)
}

// lines splits on newlines, dropping a trailing carriage return from
// each line so CRLF report text parses the same as LF.
func lines(s string) []string {
	out := strings.Split(s, "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
