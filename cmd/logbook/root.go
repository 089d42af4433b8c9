package main

import (
	"io"
	"os"

	"logbook/cmd/logbook/cli"
	"logbook/internal/config"
	"logbook/internal/content"
	"logbook/internal/errors"
	"logbook/internal/log"
	"logbook/internal/metadata"
	"logbook/internal/tui"
	"logbook/internal/tui/styles"

	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags and the configuration loaded
// from them.
type rootOptions struct {
	cfgFile string
	logFile string
	debug   bool

	cfg *config.Config
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "logbook",
		Short: "Browse your nodes and keep a log from the terminal",
		Long: cli.DrawLogo() + `

Logbook keeps its nodes under .metadata/root in the current directory.
Run it without a subcommand to open the interactive view.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/logbook/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while the interactive view is open")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newCommandsCmd(opts))
	rootCmd.AddCommand(newLsCmd(opts))

	return rootCmd
}

// setup loads the configuration and applies it to the theme and the
// logger. A broken config file is reported and replaced by the defaults.
func (o *rootOptions) setup(cmd *cobra.Command) {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		cli.PrintWarning(cmd.ErrOrStderr(), err.Error())
		cli.PrintInfo(cmd.ErrOrStderr(), "Using default settings.")
		o.cfg = config.New()
	}

	styles.Apply(o.cfg)
	cli.SetTheme(o.cfg)

	var logOpts []log.Option
	logOpts = append(logOpts, log.WithOutput(cmd.ErrOrStderr()))
	if o.cfg.Log.JSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	log.Configure(logOpts...)
	log.SetDebug(o.debug || o.cfg.Log.Debug)
}

// ensure bootstraps the metadata tree in the working directory.
func (o *rootOptions) ensure() (metadata.Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return metadata.Paths{}, errors.Wrap(err, "cannot determine working directory")
	}
	return metadata.Ensure(wd)
}

func (o *rootOptions) builder() (*content.Builder, error) {
	paths, err := o.ensure()
	if err != nil {
		return nil, err
	}
	return content.NewBuilder(paths, content.FromConfig(o.cfg)), nil
}

func (o *rootOptions) runTUI() error {
	b, err := o.builder()
	if err != nil {
		return err
	}

	restore, err := o.redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	m, err := tui.New(b)
	if err != nil {
		return err
	}
	log.LogWithFields(log.F("root", b.Paths().RootDir)).Debug("Starting interactive view")
	return tui.Run(m)
}

// redirectLogs keeps log lines off the screen while the interactive view
// owns it.
func (o *rootOptions) redirectLogs() (func(), error) {
	path := o.logFile
	if path == "" {
		path = o.cfg.Log.File
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.FromOS("cannot open log file", path, errors.FileCreateFailed, err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
