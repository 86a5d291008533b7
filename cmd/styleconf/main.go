package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"git.sr.ht/~spc/go-log"
	"github.com/briandowns/spinner"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/tributes/styleconf/internal/conf"
	"github.com/tributes/styleconf/internal/glob"
	"github.com/tributes/styleconf/internal/l10n"
	"github.com/tributes/styleconf/internal/mode"
	"github.com/tributes/styleconf/internal/scan"
)

// Version is set at build time.
var Version = "dev"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "styleconf",
		Usage:   l10n.T("resolve the utility stylesheet configuration"),
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "styleconf.toml",
				Usage:   l10n.T("read configuration from `FILE` (TOML, YAML or JSON)"),
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: l10n.T("apply drop-in files from `DIR` (default: FILE.d)"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "error",
				Usage: l10n.T("set log verbosity to `LEVEL` (error, warn, info, debug)"),
			},
		},
		Before: beforeAction,
		Commands: []*cli.Command{
			{
				Name:  "resolve",
				Usage: l10n.T("print the resolved configuration as JSON"),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "query",
						Usage: l10n.T("print only the theme token at dotted `PATH`"),
					},
				},
				Action: resolveAction,
			},
			{
				Name:      "match",
				Usage:     l10n.T("list the files selected by the content patterns"),
				ArgsUsage: "[ROOT]",
				Action:    matchAction,
			},
		},
	}
}

func beforeAction(c *cli.Context) error {
	name := strings.ToLower(c.String("log-level"))
	level, err := log.ParseLevel(name)
	if err != nil {
		return errors.New(l10n.T("invalid log level %q", name))
	}
	log.SetLevel(level)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(name),
	})))

	return nil
}

// slogLevel maps a go-log level name onto the slog level used by the
// internal packages.
func slogLevel(name string) slog.Level {
	switch name {
	case "debug", "trace":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	}
	return slog.LevelError
}

func loadConfig(c *cli.Context) (*conf.ResolvedConfig, error) {
	path := c.String("config")
	dropInDir := c.String("config-dir")
	if dropInDir == "" {
		dropInDir = path + ".d"
	}
	log.Debugf("loading configuration from %v (drop-ins: %v)", path, dropInDir)

	source := &conf.ConfigSource{Path: path, DropInDir: dropInDir}
	resolved, err := source.Load()
	if err != nil {
		return nil, describeError(err)
	}
	return resolved, nil
}

// describeError rewrites resolution failures into a message that names the
// offending value verbatim.
func describeError(err error) error {
	var invalidPattern *glob.InvalidPatternError
	var unknownMode *mode.UnknownStrategyError
	switch {
	case errors.As(err, &invalidPattern):
		return errors.New(l10n.T("content pattern %q is invalid: %s", invalidPattern.Pattern, invalidPattern.Reason))
	case errors.As(err, &unknownMode):
		return errors.New(l10n.T("darkMode %q is not one of \"media\", \"class\" or \"selector\"", unknownMode.Value))
	}
	return err
}

func resolveAction(c *cli.Context) error {
	resolved, err := loadConfig(c)
	if err != nil {
		return err
	}

	if query := c.String("query"); query != "" {
		data, err := json.Marshal(resolved.Theme())
		if err != nil {
			return err
		}
		token := gjson.GetBytes(data, query)
		if !token.Exists() {
			return errors.New(l10n.T("no theme token at %q", query))
		}
		fmt.Fprintln(c.App.Writer, token.String())
		return nil
	}

	data, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

func matchAction(c *cli.Context) error {
	resolved, err := loadConfig(c)
	if err != nil {
		return err
	}

	root := "."
	if c.Args().Present() {
		root = c.Args().First()
	}

	var s *spinner.Spinner
	if term.IsTerminal(int(os.Stdout.Fd())) {
		s = spinner.New(spinner.CharSets[9], 100*time.Millisecond)
		s.Suffix = l10n.T(" Scanning content files...")
		s.Start()
	}
	files, err := scan.Files(c.Context, os.DirFS(root), resolved.Patterns())
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Fprintln(c.App.Writer, f)
	}
	log.Debugf("%v", l10n.TN("%d file matched", "%d files matched", uint32(len(files)), len(files)))
	return nil
}
