package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jcgregorio/logger"
	"github.com/peterh/liner"

	"largo/interpreter-go/pkg/driver"
)

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func replCommand(session *driver.Session, log *logger.Logger, stdout, stderr io.Writer) error {
	cfg := session.Config()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Restore the terminal before dying on a hangup or kill.
	stopSignals := watchSignals(func() {
		ln.Close()
		os.Exit(130)
	}, syscall.SIGTERM, syscall.SIGHUP)
	defer stopSignals()

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Warningf("read history %s: %v", cfg.HistoryFile, err)
			}
			_ = f.Close()
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Warningf("open history %s: %v", cfg.HistoryFile, err)
		}
		defer saveHistory(ln, cfg.HistoryFile, log)
	}

	return runREPL(session, ln, stdout, stderr)
}

// watchSignals runs onSignal the first time one of sigs arrives. The
// returned stop function unregisters the handler and waits for the watcher
// goroutine to exit.
func watchSignals(onSignal func(), sigs ...os.Signal) (stop func()) {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, sigs...)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-sigc:
			onSignal()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigc)
		close(done)
		<-exited
	}
}

func saveHistory(ln *liner.State, path string, log *logger.Logger) {
	f, err := os.Create(path)
	if err != nil {
		log.Warningf("save history %s: %v", path, err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Warningf("write history %s: %v", path, err)
	}
}

// runREPL reads lines until EOF or the quit command. Input with unclosed
// parens keeps reading under the continuation prompt; each complete input
// is evaluated and its rendering (or error) printed.
func runREPL(session *driver.Session, in lineReader, stdout, stderr io.Writer) error {
	cfg := session.Config()
	var pending strings.Builder

	for {
		prompt := cfg.Prompt
		if pending.Len() > 0 {
			prompt = cfg.ContinuationPrompt
		}
		line, err := in.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(stdout)
			if pending.Len() > 0 {
				// An unclosed form at end of input still gets its parse error.
				if _, err := session.Eval(pending.String()); err != nil {
					fmt.Fprintln(stderr, err)
				}
			}
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			pending.Reset()
			continue
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		if pending.Len() == 0 && session.IsQuit(line) {
			return nil
		}
		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(line)

		src := pending.String()
		if session.NeedsMore(src) {
			continue
		}
		pending.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}
		in.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		result, err := session.Eval(src)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		fmt.Fprintln(stdout, result)
	}
}
