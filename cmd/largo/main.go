package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcgregorio/logger"
	"github.com/urfave/cli/v2"

	"largo/interpreter-go/pkg/driver"
)

const cliToolVersion = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// syncWriter lets plain writers back a logger.
type syncWriter struct {
	io.Writer
}

func (syncWriter) Sync() error { return nil }

func newLogger(w io.Writer, verbose bool) *logger.Logger {
	sw, ok := w.(logger.SyncWriter)
	if !ok {
		sw = syncWriter{Writer: w}
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   sw,
		IncludeDebug: verbose,
	})
}

func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	var (
		session *driver.Session
		log     *logger.Logger
	)

	return &cli.App{
		Name:      "largo",
		Usage:     "evaluate parenthesized arithmetic expressions",
		Version:   cliToolVersion,
		Writer:    stdout,
		ErrWriter: stderr,
		// Errors are reported by run; never let the library call os.Exit.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a largo.yml config file (default: $LARGO_CONFIG, then the nearest largo.yml)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log tokens and parsed forms to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}
			cfg, err := driver.ResolveConfig(c.String("config"), cwd)
			if err != nil {
				return err
			}
			if c.Bool("verbose") {
				cfg.Verbose = true
			}
			log = newLogger(stderr, cfg.Verbose)
			if cfg.Path != "" {
				log.Debugf("loaded config %s", cfg.Path)
			}
			session = driver.NewSession(cfg, log)
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(c.Args().Slice(), " "))
			}
			return replCommand(session, log, stdout, stderr)
		},
		Commands: []*cli.Command{
			{
				Name:  "repl",
				Usage: "start an interactive read/eval/print loop",
				Action: func(c *cli.Context) error {
					return replCommand(session, log, stdout, stderr)
				},
			},
			{
				Name:      "eval",
				Usage:     "evaluate an expression given on the command line",
				ArgsUsage: "EXPR...",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return errors.New("eval requires an expression")
					}
					result, err := session.Eval(strings.Join(c.Args().Slice(), " "))
					if err != nil {
						return err
					}
					fmt.Fprintln(stdout, result)
					return nil
				},
			},
			{
				Name:      "run",
				Usage:     "evaluate every expression in a source file",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("run requires exactly one source file")
					}
					results, err := session.RunFile(c.Args().First())
					if err != nil {
						return err
					}
					for _, result := range results {
						fmt.Fprintln(stdout, result)
					}
					return nil
				},
			},
		},
	}
}
