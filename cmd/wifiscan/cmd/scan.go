package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	wifiscan "github.com/wifilab/wifiscan/pkg"
	"github.com/wifilab/wifiscan/pkg/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List visible wireless networks",
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		s, err := scanner.New(scanConfig(), log)
		if err != nil {
			log.Errorf("Cannot scan on this platform: %v", err)
			os.Exit(1)
		}

		networks, err := s.Scan(cmd.Context())
		if err != nil {
			log.Errorf("Scan failed: %v", err)
			os.Exit(1)
		}

		if flagJSON {
			printJSON(networks)
			return
		}

		fmt.Println("== List of networks")
		for _, network := range networks {
			fmt.Printf("%s %-15s %-10s %4s %s\n",
				network.MAC, network.SSID, network.Channel,
				network.SignalLevel, network.Security)
		}
	},
}

func printJSON(networks []wifiscan.Network) {
	out, err := json.MarshalIndent(networks, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
