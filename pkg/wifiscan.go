/*
wifiscan internal architecture:

 OS wireless utilities (nmcli, iw, netsh) each emit their own loosely
 structured text describing visible access points.  The packages under
 pkg/parse turn each grammar into the one canonical Network shape below.
 The packages under pkg/scanner own running the right utility for the
 current platform and feeding its captured stdout to the right parser.

            ┌─────────┐   stdout    ┌───────────┐   []Network
  nmcli ──► │         │ ──────────► │ parse.    │ ─────────────┐
  iw ─────► │ runner. │             │ NmcliList │              │
  netsh ──► │ Run     │             │ IWScan    │              ▼
            │         │             │ Netsh*    │          CLI / caller
            └─────────┘             └───────────┘

 Parsing is pure and reentrant; only the runner touches the system.
*/

package wifiscan

import "context"

// Source identifies which utility's grammar a blob of output uses.
type Source int

const (
	SourceNmcli Source = iota
	SourceIW
	SourceNetsh
)

func (s Source) String() string {
	switch s {
	case SourceNmcli:
		return "nmcli"
	case SourceIW:
		return "iw"
	case SourceNetsh:
		return "netsh"
	}
	return "unknown"
}

// Network is one observed access point, or one adapter's current
// association when produced by the interface-status parser.
//
// Every field is a string as rendered by the originating tool: Channel
// keeps tool-specific formatting (some tools print decimal frequency
// channels) and SignalLevel keeps the signed decimal text (raw dBm from
// iw, percentage-derived dBm from netsh). Absent fields stay "".
type Network struct {
	MAC         string `json:"mac"`
	SSID        string `json:"ssid"`
	Channel     string `json:"channel"`
	SignalLevel string `json:"signalLevel"`
	Security    string `json:"security"`
	State       string `json:"state,omitempty"`
}

// Complete reports whether the four defining fields have all been seen.
// Block-based parsers only emit complete records; partial ones are dropped.
func (n Network) Complete() bool {
	return n.MAC != "" && n.SignalLevel != "" && n.Channel != "" && n.SSID != ""
}

// see ./scanner/ for implementations

// Scanner runs one platform's wireless survey and returns the
// normalized records in the order the tool reported them.
type Scanner interface {
	Scan(ctx context.Context) ([]Network, error)
}

// InterfaceLister reports the adapters the platform tool knows about,
// one Network per adapter with State populated.
type InterfaceLister interface {
	Interfaces(ctx context.Context) ([]Network, error)
}

// CommandRunner executes a utility and returns its captured stdout.
// Implemented by pkg/runner; faked in tests.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}
