package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wifilab/wifiscan/pkg/scanner"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "Show each wireless adapter's current association (Windows)",
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		if runtime.GOOS != "windows" {
			log.Error("interface status reports need netsh, which only exists on Windows")
			os.Exit(1)
		}

		s := scanner.NewNetshScanner(scanConfig(), log)
		networks, err := s.Interfaces(cmd.Context())
		if err != nil {
			log.Errorf("Cannot read interface status: %v", err)
			os.Exit(1)
		}

		if flagJSON {
			printJSON(networks)
			return
		}

		fmt.Println("== List of interfaces")
		for _, network := range networks {
			fmt.Printf("%s %-15s %-10s %4s %s %s\n",
				network.MAC, network.SSID, network.Channel,
				network.SignalLevel, network.Security, network.State)
		}
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
