package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/michael-freling/command-restrictions/internal/config"
	"github.com/michael-freling/command-restrictions/internal/guard"
	"github.com/michael-freling/command-restrictions/internal/restrictions"
	"github.com/spf13/cobra"
)

// exitCodeBlocked is returned by check when the command is blocked.
const exitCodeBlocked = 2

var exit = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configDir string
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".command-restrictions"
	}
	return filepath.Join(dir, "command-restrictions")
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "command-restrictions",
		Short: "Restrict commands with regex rules",
		Long:  `A CLI tool that checks commands against an ordered list of regex rules and blocks whole matches or captured blocked text.`,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", defaultConfigDir(), "directory containing settings.yml and locale files")

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newFilterCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))

	return rootCmd
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration files",
		Long:  `Writes the bundled settings.yml and locale files into the config directory. Existing files are kept unless --force is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := config.InstallDefaults(opts.configDir, force)
			if err != nil {
				return fmt.Errorf("failed to install default configuration: %w", err)
			}

			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			if len(written) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "configuration already exists")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "check [COMMAND...]",
		Short: "Check a single command",
		Long:  `Checks the command given as arguments, or a JSON request {"actor": "...", "command": "..."} read from stdin. Returns exit code 0 to allow, exit code 2 to block.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &restrictions.Request{Actor: actor, Command: strings.Join(args, " ")}
			if len(args) == 0 {
				parsed, err := restrictions.ParseRequest(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to parse request: %w", err)
				}
				request = parsed
			}

			logger := newLogger(cmd.ErrOrStderr())
			g := guard.New(config.NewFileLoader(opts.configDir, logger), guard.NewWriterNotifier(cmd.ErrOrStderr()), logger)

			decision := g.Check(request.Actor, request.Command)
			if !decision.Allowed {
				exit(exitCodeBlocked)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "", "name of the actor issuing the command")

	return cmd
}

// filterResponse is written as one JSON line per request.
type filterResponse struct {
	Actor   string `json:"actor,omitempty"`
	Command string `json:"command,omitempty"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
	Rule    *int   `json:"rule,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Error   string `json:"error,omitempty"`
}

func newFilterCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filter",
		Short: "Check a stream of commands",
		Long:  `Reads one JSON request per line from stdin and writes one JSON decision per line to stdout. Send SIGHUP to reload the configuration.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr())
			g := guard.New(config.NewFileLoader(opts.configDir, logger), guard.NewWriterNotifier(cmd.ErrOrStderr()), logger)

			hangup := make(chan os.Signal, 1)
			signal.Notify(hangup, syscall.SIGHUP)
			defer signal.Stop(hangup)
			done := make(chan struct{})
			defer close(done)
			go func() {
				for {
					select {
					case <-hangup:
						// failures are logged by the guard and the old rules stay active
						_ = g.Reload()
					case <-done:
						return
					}
				}
			}()

			return runFilter(g, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runFilter(g *guard.Guard, in io.Reader, out io.Writer) error {
	encoder := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var response filterResponse
		request, err := restrictions.ParseRequest(strings.NewReader(line))
		if err != nil {
			response.Error = err.Error()
		} else {
			decision := g.Check(request.Actor, request.Command)
			response = filterResponse{
				Actor:   request.Actor,
				Command: request.Command,
				Allowed: decision.Allowed,
				Reason:  string(decision.Reason),
				Pattern: decision.Pattern,
			}
			if !decision.Allowed {
				response.Rule = &decision.RuleIndex
			}
		}

		if err := encoder.Encode(response); err != nil {
			return fmt.Errorf("failed to write decision: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read requests: %w", err)
	}
	return nil
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long:  `Loads the configuration and lists every rule. Fails when settings cannot be loaded or a rule has a missing or invalid regex.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewFileLoader(opts.configDir, newLogger(cmd.ErrOrStderr()))
			snapshot, err := loader.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, rule := range snapshot.Rules.Rules() {
				status := "ok"
				if rule.Err() != nil {
					status = rule.Err().Err.Error()
				}

				policy := "blocked text " + strings.Join(rule.BlockedText(), ", ")
				if rule.BlockAllMatches() {
					policy = "all matches"
				}
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", rule.Index(), rule.Pattern(), policy, status)
			}

			if errs := snapshot.Rules.ConfigErrors(); len(errs) > 0 {
				return fmt.Errorf("%d of %d rules are invalid", len(errs), snapshot.Rules.Len())
			}
			return nil
		},
	}
}
