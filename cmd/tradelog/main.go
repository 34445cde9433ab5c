package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "tradelog - personal trading journal with performance analytics",
	Long: `tradelog records discrete trade outcomes and serves derived performance
analytics (win rate, profit factor, expectancy, drawdown) over selectable
time windows, plus chart-ready daily and cumulative P&L series.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
