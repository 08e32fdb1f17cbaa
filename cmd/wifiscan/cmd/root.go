package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	wifiscan "github.com/wifilab/wifiscan/pkg"
	"github.com/wifilab/wifiscan/pkg/journal"
)

var (
	flagInterface string
	flagTimeout   time.Duration
	flagVerbose   bool
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:   "wifiscan",
	Short: "wifiscan lists nearby wireless networks using the OS survey tools",
	Long:  `wifiscan lists nearby wireless networks using the OS survey tools (nmcli, iw, netsh)`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagInterface, "interface", "i", "", "wireless interface to scan on (default: discover one)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "time limit per tool invocation")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print records as JSON")
}

func scanConfig() wifiscan.Config {
	return wifiscan.Config{
		Interface: flagInterface,
		Timeout:   flagTimeout,
		Verbose:   flagVerbose,
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if journal.Available() {
		log.AddHook(journal.Hook{})
	}
	return log
}
