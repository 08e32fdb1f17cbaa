package main

import (
	"github.com/wifilab/wifiscan/cmd/wifiscan/cmd"
)

func main() {
	cmd.Execute()
}
