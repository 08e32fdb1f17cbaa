package cmd

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"

	"github.com/wifilab/wifiscan/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get wifiscan version and host information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()

		fmt.Printf("Release: %s\n", info.Release)
		fmt.Printf("Git: %s\n", info.Git.Commit)
		fmt.Printf("Dirty: %t\n", info.Git.Dirty)

		hostInfo, err := host.Info()
		if err != nil {
			return
		}
		fmt.Printf("Host: %s %s (kernel %s)\n",
			hostInfo.Platform, hostInfo.PlatformVersion, hostInfo.KernelVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
