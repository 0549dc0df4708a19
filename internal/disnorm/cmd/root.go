package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"disnorm/internal/disnorm/log"
	"disnorm/internal/listing"
	"disnorm/internal/ui/colorize"
)

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.disnorm.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON log records to this file")

	rootCmd.Flags().BoolP("help", "h", false, "Help")
	rootCmd.Flags().BoolP("follow", "F", false, "Keep reading the listing as it grows")
	rootCmd.Flags().Bool("color", true, "Highlight output when writing to a terminal")

	bindFlag("debug", rootCmd.PersistentFlags(), "debug")
	bindFlag("log_file", rootCmd.PersistentFlags(), "log-file")
	bindFlag("color", rootCmd.Flags(), "color")
}

var rootCmd = &cobra.Command{
	Use:   "disnorm [file]",
	Short: "Normalize disassembler listings for diffing",
	Long: `Disnorm rewrites the output of objdump, llvm-objdump and similar AArch64
disassemblers into one canonical form: hex immediates, folded move-wide
sequences, and a fixed set of alias spellings. Two normalized listings of the
same code compare equal line by line.`,
	Example: `
# Normalize a listing to stdout
disnorm app.lst

# Keep normalizing while the disassembler is still writing
disnorm -F app.lst

# Compare two listings after normalization
disnorm diff gnu.lst llvm.lst
  `,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Setup(viper.GetString("log_file"), viper.GetBool("debug")); err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			slog.Debug("Using config file", "path", used)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		follow, _ := cmd.Flags().GetBool("follow")
		out := outputWriter(cmd.OutOrStdout(), viper.GetBool("color"))

		if follow {
			return listing.Follow(cmd.Context(), args[0], out)
		}

		counts, err := listing.NormalizeFile(args[0], out)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
		slog.Debug("Done", "lines", counts.Lines, "retained", counts.Retained, "unknown", counts.Unknown)
		return nil
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".disnorm")
	}

	viper.SetEnvPrefix("disnorm")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Failed to read config file:", err)
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// outputWriter returns w, wrapped in a highlighter when color is wanted
// and w is a terminal.
func outputWriter(w io.Writer, color bool) io.Writer {
	if !color || colorize.Disabled() || !isTerminal(w) {
		return w
	}
	return &colorWriter{w: w}
}

func Execute() {
	defer log.Close()

	// Bypass fang when output is being piped
	if !term.IsTerminal(os.Stdout.Fd()) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			log.Close()
			os.Exit(1)
		}
		return
	}

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		log.Close()
		os.Exit(1)
	}
}
