/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "servoctl",
	Short: "Drive an SG90 servo from the Pi's hardware PWM",
	Long: `servoctl drives an SG90-class hobby servo from a Raspberry Pi using
hardware PWM on GPIO18, with a non-linear calibration curve measured for
the attached servo. Angles are read interactively and each commanded
angle is appended to a local SQLite file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
