package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFile = ".bexpr_history"
	prompt      = "bexpr> "
)

// repl reads expressions from the terminal until end of input or ":quit".
// A line of the form ":vector 5" replaces the test vectors.
func (b *bexpr) repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			b.outf("")
			return
		}
		b.check(err)

		if b.replLine(line) {
			return
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}

// replLine handles a single line of interactive input and reports whether
// the session is finished.
func (b *bexpr) replLine(line string) (quit bool) {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return false

	case line == ":quit":
		return true

	case strings.HasPrefix(line, ":vector"):
		b.vectors = nil
		flag := newVectorFlag(&b.vectors)
		for _, arg := range strings.Fields(line)[1:] {
			if err := flag.Set(arg); err != nil {
				b.errf("%s", err)
			}
		}
		return false

	case strings.HasPrefix(line, ":"):
		b.errf("unknown command %q; the commands are :vector and :quit", line)
		return false
	}

	if err := b.process(line); err != nil {
		b.errf("%s", err)
	}
	return false
}
