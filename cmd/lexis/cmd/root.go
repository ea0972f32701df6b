// Package cmd implements the lexis command line:
//
//	lexis <source-file> <token|symbols> [--language | -l <name-or-extension>]
//
// Successful runs print one JSON envelope on stdout and exit 0; failures
// print one JSON envelope with a stable error code on stderr and exit 1.
package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/corey/lexis/internal/adapters/yamlprofile"
	"github.com/corey/lexis/internal/app"
	"github.com/corey/lexis/internal/log"
	"github.com/corey/lexis/internal/ports"
	"github.com/corey/lexis/internal/profiles"
)

const (
	extractTokens  = "token"
	extractSymbols = "symbols"
)

var (
	flagLanguage string
	flagProfile  string
	flagWatch    bool
	flagColor    bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "lexis <source-file> <token|symbols>",
	Short: "lexis — profile-driven source analysis",
	Long: "Tokenize source files and extract structural symbols using declarative\n" +
		"language profiles. No grammar is compiled per language; a profile is data.",
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&flagLanguage, "language", "l", "",
		"language name or extension (defaults to the source file's extension)")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "",
		"YAML profile to register before analyzing")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false,
		"re-run the extraction whenever the source file changes")
	rootCmd.Flags().BoolVar(&flagColor, "color", false,
		"human-readable colorized output instead of JSON")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false,
		"enable debug logging on stderr")

	_ = viper.BindPFlag("color", rootCmd.Flags().Lookup("color"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("LEXIS")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "lexis"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig() // a missing config file is fine
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ce *CodedError
		if !errors.As(err, &ce) {
			ce = coded(CodeInvalidArgs, "%s", err.Error())
		}
		writeError(os.Stderr, ce)
		return 1
	}
	return 0
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	if len(args) != 2 {
		return coded(CodeInvalidArgs, "expected <source-file> <token|symbols>, got %d arguments", len(args))
	}
	sourceFile, extract := args[0], args[1]
	if extract != extractTokens && extract != extractSymbols {
		return coded(CodeInvalidExtract, "extract must be %q or %q, got %q", extractTokens, extractSymbols, extract)
	}

	log.SetDebug(viper.GetBool("debug"))

	language := flagLanguage
	if language == "" {
		language = strings.ToLower(filepath.Ext(sourceFile))
	}
	if language == "" {
		return coded(CodeLanguageRequired, "%s has no extension; pass --language", sourceFile)
	}

	engine := app.New(profiles.Default())
	if flagProfile != "" {
		lang, err := yamlprofile.Load(flagProfile)
		if err != nil {
			return coded(CodeExecutionError, "%s", err.Error())
		}
		engine.Registry().Register(lang)
	}

	run := func() error {
		return extractOnce(engine, sourceFile, extract, language)
	}
	if err := run(); err != nil {
		return err
	}
	if flagWatch {
		return watchLoop(sourceFile, run)
	}
	return nil
}

// extractOnce reads the file, runs one extraction, and prints one
// envelope.
func extractOnce(engine *app.Engine, sourceFile, extract, language string) error {
	data, err := os.ReadFile(sourceFile)
	if err != nil {
		return coded(CodeExecutionError, "%s", err.Error())
	}
	src := string(data)

	switch extract {
	case extractTokens:
		tokens, err := engine.Tokenize(src, language)
		if err != nil {
			return translate(err)
		}
		if viper.GetBool("color") {
			writeColorTokens(os.Stdout, tokens)
			return nil
		}
		writeSuccess(os.Stdout, extract, sourceFile, language, len(tokens), tokens)
	case extractSymbols:
		syms, err := engine.ExtractSymbols(src, language)
		if err != nil {
			return translate(err)
		}
		if viper.GetBool("color") {
			writeColorSymbols(os.Stdout, syms)
			return nil
		}
		writeSuccess(os.Stdout, extract, sourceFile, language, len(syms), syms)
	}
	return nil
}

// translate maps engine errors to stable CLI codes.
func translate(err error) error {
	if errors.Is(err, ports.ErrUnknownLanguage) {
		return coded(CodeUnknownLanguage, "%s", err.Error())
	}
	return coded(CodeExecutionError, "%s", err.Error())
}
