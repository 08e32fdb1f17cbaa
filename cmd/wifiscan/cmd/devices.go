package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wifilab/wifiscan/pkg/scanner"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List wireless devices available for scanning (Linux)",
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		if runtime.GOOS != "linux" {
			log.Error("device discovery uses nl80211 and iw, which only exist on Linux")
			os.Exit(1)
		}

		s := scanner.NewIWScanner(scanConfig(), log)
		devices, err := s.Devices(cmd.Context())
		if err != nil {
			log.Errorf("Cannot list wireless devices: %v", err)
			os.Exit(1)
		}

		for _, device := range devices {
			fmt.Println(device)
		}
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
