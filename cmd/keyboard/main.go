package main

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"keyboardmadness/internal/config"
	"keyboardmadness/internal/interpreter"
)

const (
	defaultInstructions = "R,S,U,L:3,S,D,R:6,S,S,U,S"
	defaultText         = "Hello"
)

type options struct {
	configPath string
	verbose    bool
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "keyboard",
		Short:         "Drive a cursor over a keyboard grid, or work out how to type a text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file with layout and start position")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log skipped tokens and characters")
	root.AddCommand(newRunCmd(opts), newGenerateCmd(opts))
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	var (
		x, y  int
		trace bool
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "run [instructions]",
		Short: "Run instructions on the keyboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instructions := defaultInstructions
			if len(args) == 1 {
				instructions = args[0]
			}
			s, err := newSession(cmd, opts, x, y)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !trace {
				s.Run(instructions)
				fmt.Fprintln(out, s)
				return nil
			}
			board := interpreter.DefaultBoard()
			board.Display(out, s)
			for _, st := range interpreter.Parse(instructions) {
				if delay > 0 {
					time.Sleep(delay)
				}
				fmt.Fprintf(out, "\n%q\n", st.Token)
				s.Step(st)
				board.Display(out, s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&x, "x-position", "x", 4, "X starting position on the keyboard")
	cmd.Flags().IntVarP(&y, "y-position", "y", 2, "Y starting position on the keyboard")
	cmd.Flags().BoolVar(&trace, "trace", false, "draw the keyboard after every instruction")
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause between traced instructions")
	return cmd
}

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		x, y int
		raw  bool
	)
	cmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Generate instructions that type the given text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := defaultText
			if len(args) == 1 {
				text = args[0]
			}
			if !raw {
				text = strings.ToUpper(text)
			}
			s, err := newSession(cmd, opts, x, y)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Synthesize(text))
			return nil
		},
	}
	cmd.Flags().IntVarP(&x, "x-position", "x", 4, "X starting position on the keyboard")
	cmd.Flags().IntVarP(&y, "y-position", "y", 2, "Y starting position on the keyboard")
	cmd.Flags().BoolVar(&raw, "raw", false, "keep the text's case instead of upper-casing it")
	return cmd
}

// newSession builds a session from the config file, if any. Start flags set
// on the command line win over the config.
func newSession(cmd *cobra.Command, opts *options, x, y int) (*interpreter.Session, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	start := cfg.StartPosition()
	if cmd.Flags().Changed("x-position") {
		start.X = x
	}
	if cmd.Flags().Changed("y-position") {
		start.Y = y
	}

	s := interpreter.NewSession(grid, start)
	if opts.verbose {
		s.SetLogger(newLogger(cmd.ErrOrStderr()))
	}
	return s, nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "keyboard: ", 0)
}
