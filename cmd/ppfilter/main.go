// 15 Oct 2026
// Mask unreliable residues in a set of sequences, given a confidence
// score for every residue.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andrew-torda/ppfilter/pkg/logging"
	"github.com/andrew-torda/ppfilter/pkg/ppfilter"
	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

var cfgFile string

// rootCmd is the only command. Everything else is a flag.
var rootCmd = &cobra.Command{
	Use:   "ppfilter [flags] infile",
	Short: "Mask residues with low posterior probability scores",
	Long: `ppfilter reads sequences in fasta format and a matching file of
scores, one per residue. Residues scoring below a threshold are replaced
by a mask character. Short stretches between masked regions and bad
looking ends are masked too. Input may be gzip or xz compressed.
Use "-" as the input name to read from standard input.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
	Version:       "0.1.0",
}

func init() {
	cobra.OnInitialize(initConfig)
	d := ppfilter.NewCmdFlag()
	f := rootCmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	f.StringP("pp", "p", "", "score file, default infile"+ppfilter.PPSuffix)
	f.Float32P("threshold", "t", 0,
		fmt.Sprintf("remove residues scoring below this (%g if neither this nor retain is set)", ppfilter.DefaultThreshold))
	f.Float32P("retain", "r", 0, "pick the threshold to keep this proportion of residues")
	f.IntP("join", "j", d.Join, "join removed regions closer than this, 0 to turn off")
	f.IntP("run", "n", d.Run, "trim ends with removed residues within this many, 0 to turn off")
	f.StringP("mask", "m", d.Mask, "character replacing removed residues")
	f.StringSliceP("ignore", "i", nil, "sequence ids to write unfiltered")
	f.String("outsuffix", d.OutSuffix, "suffix for filtered output")
	f.StringP("out", "o", "", "filtered output file, \"-\" for stdout")
	f.Bool("detail", false, "write per residue details to infile"+ppfilter.DetailSuffix)
	f.Bool("summary", false, "write per sequence summary to infile"+ppfilter.SummarySuffix)
	f.Int("profile", 0, "bins for a position profile in infile"+ppfilter.ProfileSuffix)
	f.Bool("dry-run", false, "do not write filtered sequences")
	f.Int("nproc", d.NProc, "goroutines to use")
	f.String("log-level", d.LogLevel, "debug, info, warn or error")
	f.String("log-format", d.LogFormat, "text or json")

	f.VisitAll(func(fl *pflag.Flag) {
		if fl.Name != "config" {
			viper.BindPFlag(fl.Name, fl)
		}
	})
}

// initConfig sets up environment variables, PPFILTER_JOIN and so on,
// and the config file if there is one.
func initConfig() {
	viper.SetEnvPrefix("ppfilter")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}
	flags := ppfilter.NewCmdFlag()
	if err := viper.Unmarshal(flags); err != nil {
		return fmt.Errorf("unable to decode flags: %w", err)
	}
	// The flag defaults would always be decoded, so only keep values
	// from the command line, environment or config file.
	if !viper.IsSet("threshold") {
		flags.Threshold = nil
	}
	if !viper.IsSet("retain") {
		flags.Retain = nil
	}
	level, err := logging.ParseLevel(flags.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(flags.LogFormat)
	if err != nil {
		return err
	}
	lg := logging.Init(os.Stderr, level, format)
	return ppfilter.Mymain(flags, args[0], lg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
