package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log      = logrus.New()
	logLevel string
)

var mainCommand = &cobra.Command{
	Use:   "sudoku",
	Short: "Sudoku solver, generator, and web service",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			log.Fatal("parse log level: ", err)
		}
		log.SetLevel(lvl)
	},
}

func init() {
	mainCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "trace|debug|info|warn|error")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
