package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexanderramin/timepaisa/internal/app"
	"github.com/alexanderramin/timepaisa/internal/cli"
	"github.com/alexanderramin/timepaisa/internal/config"
	"github.com/alexanderramin/timepaisa/internal/insight"
	"github.com/alexanderramin/timepaisa/internal/llm"
	"github.com/alexanderramin/timepaisa/internal/logging"
	"github.com/alexanderramin/timepaisa/internal/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// The analyze command has already printed its own notice.
		if !errors.Is(err, insight.ErrAnalysisFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	config.LoadDotEnv()

	// --config and --demo shape the App, so they are read before cobra
	// builds the command tree.
	pre := pflag.NewFlagSet("timepaisa", pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	pre.SetOutput(io.Discard)
	file := pre.String("config", "", "")
	demo := pre.Bool("demo", false, "")
	_ = pre.Parse(args)

	v := viper.New()
	if pre.Changed("demo") {
		v.Set(config.KeyDemo, *demo)
	}
	cfg, err := config.Load(v, *file)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(logger.With(logging.FieldComponent, "llm"))
	}
	client, err := llm.NewClient(cfg.LLMConfig(), observer)
	if err != nil {
		return fmt.Errorf("creating llm client: %w", err)
	}

	entries := store.New()
	if cfg.Demo {
		entries.Seed()
	}

	dashboard := app.NewDashboard(
		entries,
		insight.NewService(client, insight.WithTimeout(cfg.LLM.Timeout)),
		app.WithObserver(app.NewLogUseCaseObserver(logger.With(logging.FieldComponent, "dashboard"))),
	)

	a := &cli.App{
		Dashboard: dashboard,
		Config:    cfg,
		Logger:    logger,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	root := cli.NewRootCmd(a)
	root.SetArgs(args)
	return root.Execute()
}
