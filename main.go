package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-loggr/config"
	"github.com/mordilloSan/go-loggr/logger"
)

var (
	cfgFile         string
	level           string
	shard           string
	shardLength     int
	timestampFormat string
	noColor         bool
	callerTag       bool

	holder *logger.Holder
)

var rootCmd = &cobra.Command{
	Use:   "go-loggr [level] [message...]",
	Short: "Print leveled, timestamped lines to the console",
	Long: `go-loggr prints one log line per message at the given level.

With no message, lines are read from standard input and each one is logged.

Examples:
  go-loggr info "Posting to matt"
  go-loggr --shard 3 --shard-length 4 warn "disk almost full"
  tail -f app.out | go-loggr --level info verbose`,
	Args:              cobra.MinimumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	RunE:              runLog,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels in priority order",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print one line for every level",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.StringVarP(&level, "level", "l", "", "threshold level (default: LOGGR_LEVEL or the last level)")
	flags.StringVar(&shard, "shard", "", `shard label; "auto" generates one`)
	flags.IntVar(&shardLength, "shard-length", 0, "width of the shard field")
	flags.StringVar(&timestampFormat, "timestamp-format", "", "strftime pattern for timestamps")
	flags.BoolVar(&noColor, "no-color", false, "disable colors")
	flags.BoolVar(&callerTag, "caller", false, "tag lines with the calling function")

	rootCmd.AddCommand(levelsCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogger merges the config file with the flags and installs the result
// in the holder.
func setupLogger(cmd *cobra.Command, _ []string) error {
	var cfg logger.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Level = level
	}
	if flags.Changed("shard") {
		cfg.Shard = shard
		if shard == "auto" {
			cfg.Shard = uuid.NewString()[:8]
		}
	}
	if flags.Changed("shard-length") {
		cfg.ShardLength = shardLength
	}
	if flags.Changed("timestamp-format") {
		cfg.TimestampFormat = timestampFormat
	}
	if noColor {
		cfg.NoColor = true
	}
	if callerTag {
		cfg.IncludeCallerTag = true
	}
	cfg.Output = cmd.OutOrStdout()

	holder = logger.NewHolder(cfg)
	_, err := holder.Get()
	return err
}

func runLog(_ *cobra.Command, args []string) error {
	l, err := holder.Get()
	if err != nil {
		return err
	}
	lvl := args[0]
	if len(args) > 1 {
		return l.Log(lvl, strings.Join(args[1:], " "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := l.Log(lvl, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runLevels(cmd *cobra.Command, _ []string) error {
	l, err := holder.Get()
	if err != nil {
		return err
	}
	threshold := l.Level()
	for _, lv := range l.Levels() {
		marker := " "
		if lv.Name == threshold {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d %-10s %s\n", marker, lv.Rank(), lv.Name, lv.Style)
	}
	return nil
}

func runDemo(_ *cobra.Command, _ []string) error {
	l, err := holder.Get()
	if err != nil {
		return err
	}
	for _, lv := range l.Levels() {
		if err := l.Logf(lv.Name, "this is a %s message", lv.Name); err != nil {
			return err
		}
	}

	// API logging (automatic level selection based on HTTP status code)
	for _, code := range []int{200, 301, 404, 500} {
		if err := l.API(code, "request handled"); err != nil && !errors.Is(err, logger.ErrUnknownLevel) {
			return err
		}
	}
	return nil
}
