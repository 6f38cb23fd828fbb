/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jason89923/servoctl/pkg/controller"
	servoio "github.com/jason89923/servoctl/pkg/io"
	"github.com/jason89923/servoctl/pkg/servo"
	"github.com/jason89923/servoctl/pkg/store"
	"github.com/spf13/cobra"
)

var (
	backend string
	pin     int
	channel int
	i2cBus  string
	dbPath  string
	noLog   bool
	delay   time.Duration
)

// driver is the common shape of the selectable PWM backends.
type driver interface {
	servo.Sink
	Close()
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive angle control loop",
	Long: `Read target angles from standard input, one integer per line in the
range 0-180, and drive the servo to each. Every accepted angle is also
appended to the SQLite log unless --no-log is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		sink, err := openDriver()
		if err != nil {
			fmt.Fprintf(os.Stderr, "PWM setup failed: %v\n", err)
			os.Exit(1)
		}
		defer sink.Close()

		var rec servo.Recorder
		if !noLog {
			rec = store.New(dbPath)
		}

		table := controller.LoadConfig().CalibrationTable()
		proc := servo.NewProcessor(table, sink, rec, os.Stdout)
		c := controller.New(proc, os.Stdin, os.Stdout, delay)

		ctx, cancel := context.WithCancel(cmd.Context())
		go func() {
			<-sigs
			cancel()
		}()
		_ = c.Run(ctx)
	},
}

func openDriver() (driver, error) {
	switch backend {
	case "hw":
		return servoio.OpenHardwarePWM(pin)
	case "pca9685":
		return servoio.OpenPCA9685(channel)
	case "periph":
		return servoio.OpenPeriphPCA9685(i2cBus, channel)
	default:
		return nil, fmt.Errorf("unknown backend %q (want hw, pca9685 or periph)", backend)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&backend, "backend", "hw", "PWM backend: hw, pca9685 or periph")
	runCmd.Flags().IntVar(&pin, "pin", servoio.DefaultPin, "BCM pin for the hw backend")
	runCmd.Flags().IntVar(&channel, "channel", 0, "PCA9685 channel for the i2c backends")
	runCmd.Flags().StringVar(&i2cBus, "i2c-bus", "", "i2c bus name for the periph backend (empty picks the first)")
	runCmd.Flags().StringVar(&dbPath, "db", "motor.db", "path of the SQLite angle log")
	runCmd.Flags().BoolVar(&noLog, "no-log", false, "disable the angle log")
	runCmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "pause after each command while the servo slews")
}
