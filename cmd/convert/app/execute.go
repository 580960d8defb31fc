package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabric8-launcher/boosterconv"
	"github.com/fabric8-launcher/boosterconv/internal/cmd/output"
	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/constants"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
	"github.com/fabric8-launcher/boosterconv/pkg/logging"
	"github.com/fabric8-launcher/boosterconv/pkg/save"
)

// Execute runs the convert CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the convert command.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "convert <dest> [<catalog>] [<dev_ref>] [<staging_ref>] [<prod_ref>]",
		Short:   "Convert a booster catalog into booster.yaml documents",
		Version: a.version,
		Long: `Convert reads the booster catalog at the development ref, and optionally at
staging and production refs, and writes one booster.yaml per booster under
<dest>.

<catalog> is a git URL or a local directory of git bundles. An empty value
uses ` + constants.DefaultCatalogURL + `.
<dev_ref> defaults to master. Staging and production refs are only
accepted in environments mode.`,
		Example: `  convert out
  convert out "" master staging production
  convert out ./bundles master --mode catalog`,
		Args:              cobra.MaximumNArgs(5),
		PersistentPreRunE: a.setupCommand,
		RunE:              a.run,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.boosterconv.yaml)")
	flags.BoolP("verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", a.config.NoColor, "disable colored output")
	flags.String("log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.StringP("format", "o", a.config.Format, "summary format: table, json, yaml (default: table on a terminal, json otherwise)")

	rootCmd.Flags().String("mode", a.config.Mode, "conversion mode: environments, catalog")
	rootCmd.Flags().String("output-format", a.config.DocumentFormat, "document format: yaml, json")
	rootCmd.Flags().String("work-dir", a.config.WorkDir, "directory clones are placed under (default is the system temp dir)")
	rootCmd.Flags().Bool("keep-work-dir", a.config.KeepWorkDir, "keep the clones after the run")
	rootCmd.Flags().Bool("no-content", !a.config.CloneContent, "do not clone booster repositories (descriptions are not read)")

	rootCmd.SetVersionTemplate("convert {{.Version}}\n")

	return rootCmd
}

// setupCommand applies the config file and the parsed flags, then
// reinitializes the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		config, err := LoadConfig(a.config.ConfigFile)
		if err != nil {
			return errors.NewConfigError("config", "cannot read "+a.config.ConfigFile, err)
		}
		a.config = config
	}

	a.applyFlags(cmd)

	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}

// applyFlags copies the flags given on the command line over the config.
func (a *App) applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		a.config.Verbose = mustGetBool(cmd, "verbose")
	}
	if flags.Changed("quiet") {
		a.config.Quiet = mustGetBool(cmd, "quiet")
	}
	if flags.Changed("no-color") {
		a.config.NoColor = mustGetBool(cmd, "no-color")
	}
	if flags.Changed("log-level") {
		a.config.LogLevel = mustGetString(cmd, "log-level")
	}
	if flags.Changed("format") {
		a.config.Format = mustGetString(cmd, "format")
	}
	if flags.Changed("mode") {
		a.config.Mode = mustGetString(cmd, "mode")
	}
	if flags.Changed("output-format") {
		a.config.DocumentFormat = mustGetString(cmd, "output-format")
	}
	if flags.Changed("work-dir") {
		a.config.WorkDir = mustGetString(cmd, "work-dir")
	}
	if flags.Changed("keep-work-dir") {
		a.config.KeepWorkDir = mustGetBool(cmd, "keep-work-dir")
	}
	if flags.Changed("no-content") {
		a.config.CloneContent = !mustGetBool(cmd, "no-content")
	}
}

// run converts the catalog named by args and prints the summary.
func (a *App) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	mode, err := boosters.ParseMode(a.config.Mode)
	if err != nil {
		return err
	}
	docFormat, err := save.ParseFormat(a.config.DocumentFormat)
	if err != nil {
		return err
	}
	summaryFormat, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return errors.NewValidationError("format", a.config.Format, err.Error())
	}
	if summaryFormat == "" {
		summaryFormat = output.DetectFormat("")
	}

	repository := a.config.Catalog
	if len(args) > 1 {
		// An explicit empty argument selects the default catalog
		repository = args[1]
	}
	req := boosterconv.Request{
		Dest:           args[0],
		DevelopmentRef: a.config.DevRef,
	}
	if len(args) > 2 && args[2] != "" {
		req.DevelopmentRef = args[2]
	}
	if len(args) > 3 {
		req.StagingRef = args[3]
	}
	if len(args) > 4 {
		req.ProductionRef = args[4]
	}

	src, err := a.newSource(repository, a.config)
	if err != nil {
		return err
	}

	conv, err := boosterconv.New(
		boosterconv.WithSource(src),
		boosterconv.WithMode(mode),
		boosterconv.WithLogger(a.logger),
		boosterconv.WithFileSystem(a.fs),
		boosterconv.WithFormat(docFormat),
	)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	result, err := conv.Convert(ctx, req)
	if err != nil {
		return err
	}

	return output.WriteResult(a.stdout, result, summaryFormat)
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
