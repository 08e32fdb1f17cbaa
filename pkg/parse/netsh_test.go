package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

func TestNetshNetworks(t *testing.T) {
	networks, err := NetshNetworks(fixture(t, "netsh_networks.txt"))
	require.NoError(t, err)
	require.Len(t, networks, 4)

	// Vodafone Hotspot has two BSSIDs, one record each.
	assert.Equal(t, wifiscan.Network{
		MAC:         "ab:cd:ef:01:23:45",
		SSID:        "Vodafone Hotspot",
		Channel:     "6",
		SignalLevel: "-92",
		Security:    "Open",
	}, networks[0])
	assert.Equal(t, wifiscan.Network{
		MAC:         "ab:cd:ef:01:23:46",
		SSID:        "Vodafone Hotspot",
		Channel:     "6",
		SignalLevel: "-73",
		Security:    "Open",
	}, networks[1])

	assert.Equal(t, wifiscan.Network{
		MAC:         "ab:cd:ef:01:23:47",
		SSID:        "EdaBox",
		Channel:     "11",
		SignalLevel: "-82",
		Security:    "WPA2-Personal",
	}, networks[2])

	assert.Equal(t, wifiscan.Network{
		MAC:         "ab:cd:ef:01:23:48",
		SSID:        "FRITZ!Box 2345 Cable",
		Channel:     "1",
		SignalLevel: "-50",
		Security:    "WPA2-Personal",
	}, networks[3])
}

func TestNetshNetworksPercentConversion(t *testing.T) {
	output := strings.Join([]string{
		"SSID 1 : EdaBox",
		"    Authentication          : WPA2-Personal",
		"    BSSID 1                 : ab:cd:ef:01:23:45",
		"         Signal             : 64%",
		"         Channel            : 11",
	}, "\n")

	networks, err := NetshNetworks("\n" + output)
	require.NoError(t, err)
	require.Len(t, networks, 1)
	assert.Equal(t, "EdaBox", networks[0].SSID)
	assert.Equal(t, "-68", networks[0].SignalLevel)
	assert.Equal(t, "11", networks[0].Channel)
}

func TestNetshNetworksTruncatesToShortest(t *testing.T) {
	// Two BSSIDs but only one signal and one channel: the excess
	// BSSID is silently dropped.
	output := strings.Join([]string{
		"SSID 1 : Lopsided",
		"    Authentication          : WPA2-Personal",
		"    BSSID 1                 : 11:11:11:11:11:11",
		"         Signal             : 50%",
		"         Channel            : 1",
		"    BSSID 2                 : 22:22:22:22:22:22",
	}, "\n")

	networks, err := NetshNetworks("\n" + output)
	require.NoError(t, err)
	require.Len(t, networks, 1)
	assert.Equal(t, "11:11:11:11:11:11", networks[0].MAC)
}

func TestNetshNetworksSkipsBlockWithoutTriples(t *testing.T) {
	output := "Interface name : Wi-Fi\nThere are 0 networks currently visible.\n"
	networks, err := NetshNetworks(output)
	require.NoError(t, err)
	assert.Empty(t, networks)
}

func TestNetshNetworksMalformedPercentFails(t *testing.T) {
	output := strings.Join([]string{
		"SSID 1 : Broken",
		"    BSSID 1                 : 11:11:11:11:11:11",
		"         Signal             : strong",
		"         Channel            : 1",
	}, "\n")

	_, err := NetshNetworks("\n" + output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signal percentage")
}

func TestNetshNetworksLowercasesMAC(t *testing.T) {
	output := strings.Join([]string{
		"SSID 1 : Shouty",
		"    BSSID 1                 : AB:CD:EF:01:23:45",
		"         Signal             : 50%",
		"         Channel            : 1",
	}, "\n")

	networks, err := NetshNetworks("\n" + output)
	require.NoError(t, err)
	require.Len(t, networks, 1)
	assert.Equal(t, "ab:cd:ef:01:23:45", networks[0].MAC)
}

func TestNetshInterfaces(t *testing.T) {
	networks, err := NetshInterfaces(fixture(t, "netsh_interfaces.txt"))
	require.NoError(t, err)

	// The header text before the first Name marker forms a block of
	// its own: no completeness gate means it still yields a record.
	require.Len(t, networks, 2)
	assert.Equal(t, wifiscan.Network{}, networks[0])

	assert.Equal(t, wifiscan.Network{
		MAC:         "ab:cd:ef:01:23:47",
		SSID:        "EdaBox",
		Channel:     "11",
		SignalLevel: "-68",
		Security:    "WPA2-Personal",
		State:       "connected",
	}, networks[1])
}

func TestNetshInterfacesEmptyBlockYieldsEmptyRecord(t *testing.T) {
	networks, err := NetshInterfaces("nothing recognizable here")
	require.NoError(t, err)
	require.Len(t, networks, 1)
	assert.Equal(t, wifiscan.Network{}, networks[0])
}

func TestNetshInterfacesMalformedPercentFails(t *testing.T) {
	output := "\nName : Wi-Fi\n    Signal                 : N/A\n"
	_, err := NetshInterfaces(output)
	require.Error(t, err)
}

func TestNetshNetworksIdempotent(t *testing.T) {
	output := fixture(t, "netsh_networks.txt")
	first, err := NetshNetworks(output)
	require.NoError(t, err)
	second, err := NetshNetworks(output)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
