// Console entrypoint. It loads a session fixture, builds the services and
// runs dashboard actions against them, one per line on stdin or a single one
// from the command line.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"brandbridge/internal/app/bootstrap"
	"brandbridge/internal/app/fixture"
	"brandbridge/internal/platform/config"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	// A local .env is optional; the process environment wins.
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var fixturePath, actor, brand, now string
	flagSet := pflag.NewFlagSet("brandbridge-console", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&fixturePath, "fixture", "f", cfg.FixturePath, "session fixture (YAML)")
	flagSet.StringVarP(&actor, "actor", "a", "brand-admin", "name recorded as the acting user")
	flagSet.StringVarP(&brand, "brand", "b", "", "brand id used for lists and new records")
	flagSet.StringVar(&now, "now", "", "pin the clock (RFC 3339), overrides the fixture")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}

	seed := fixture.Fixture{}
	if strings.TrimSpace(fixturePath) != "" {
		seed, err = fixture.Load(fixturePath)
		if err != nil {
			return err
		}
	}
	if now != "" {
		pinned, err := time.Parse(time.RFC3339, now)
		if err != nil {
			return fmt.Errorf("parse --now: %w", err)
		}
		seed.Now = &pinned
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := bootstrap.NewLogger(cfg, stderr)
	app, err := bootstrap.Build(ctx, cfg, seed, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	session := &session{
		app:    app,
		actor:  actor,
		brand:  brand,
		out:    stdout,
		styles: newStyles(),
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		session.exec(ctx, rest)
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		session.exec(ctx, splitArgs(line))
	}
	return scanner.Err()
}

// splitArgs splits on whitespace and keeps double-quoted runs together.
func splitArgs(line string) []string {
	var args []string
	var current strings.Builder
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case (r == ' ' || r == '\t') && !quoted:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: brandbridge-console [flags] [command args...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, commands are read from stdin, one per line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commandHelp {
		fmt.Fprintf(w, "  %-44s %s\n", c[0], c[1])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagSet.FlagUsages())
}
