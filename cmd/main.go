package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crypto-rebound",
	Short: "A CLI for managing the CryptoRebound ranking services",
	Long:  `CryptoRebound scores and ranks cryptocurrencies by their potential to recover toward a prior yearly high.`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
