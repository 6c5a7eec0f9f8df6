package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/openarchive/aipkit/pkg/dlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aipkit",
	Short: "aipkit works with archival information packages",
	Long: `aipkit backs up and restores hierarchical repository objects as
self-contained archival information packages (AIPs).

The heavy lifting of serializing package bytes is delegated to codecs
registered by the embedding application; this tool covers the surrounding
orchestration: size estimation over an object tree, bundle filtering, and
packaging parameter resolution from task configuration.`,
}

var logLevel string

// used to patch over calls to os.Exit() during test
var logFatalln = log.Fatalln
var logFatalf = log.Fatalf

func wrapFatalln(msg string, err error) {
	if err == nil {
		logFatalln(msg)
	} else {
		logFatalf("%v", fmt.Errorf(msg+": %w", err))
	}
}

func logger() *zap.Logger {
	l, err := dlog.New(logLevel)
	if err != nil {
		wrapFatalln("invalid log level "+logLevel, err)
		return zap.NewNop()
	}
	return l
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", dlog.LevelNone,
		"log level (none, info, debug)")
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfg := os.Getenv("AIPKIT_CONFIG"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.aipkit")
		viper.AddConfigPath("/etc/aipkit")
		viper.SetConfigName("aipkit")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
