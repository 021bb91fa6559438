package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/pkg/adapters/query"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

var errWatchNeedsFile = errors.New("--watch needs a description file argument")

// addSourceFlags registers the flags that select which program to use.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("tape", "t", "", "Initial tape, symbols separated by spaces")
	cmd.Flags().StringP("description", "d", "", "Inline transition table")
	cmd.Flags().String("program", "", "ID of a program in the configured store")
	cmd.Flags().String("example", "", "ID of a library program (see 'turing examples')")
	cmd.Flags().String("library", "", "Directory of machine documents used by --example")
	cmd.Flags().String("url", "", "Shareable link or query string carrying tape and tm_description")
}

// resolveProgram reads the program named by the source flags or the file argument.
// An explicit --tape overrides the tape of a stored or linked program.
func resolveProgram(ctx context.Context, cmd *cobra.Command, args []string) (domain.Program, cli.RunOptions, error) {
	opts := cli.RunOptions{}
	opts.Tape, _ = cmd.Flags().GetString("tape")
	opts.Description, _ = cmd.Flags().GetString("description")
	if len(args) > 0 {
		opts.File = args[0]
	}

	programID, _ := cmd.Flags().GetString("program")
	exampleID, _ := cmd.Flags().GetString("example")
	link, _ := cmd.Flags().GetString("url")

	var p domain.Program
	var err error
	switch {
	case programID != "":
		p, err = loadStored(ctx, programID)
	case exampleID != "":
		dir, _ := cmd.Flags().GetString("library")
		p, err = loadExample(ctx, dir, exampleID)
	case link != "":
		p, err = decodeLink(link)
	case opts.File != "" || opts.Description != "":
		p, err = cli.LoadProgram(opts, os.Stdin)
	default:
		err = errors.New("no program given: pass a file, --description, --program, --example or --url")
	}
	if err != nil {
		return p, opts, err
	}

	if cmd.Flags().Changed("tape") {
		p.Tape = opts.Tape
	}
	return p, opts, nil
}

func loadStored(ctx context.Context, id string) (domain.Program, error) {
	store, closeStore, err := cli.NewStore(ctx, cfg)
	if err != nil {
		return domain.Program{}, err
	}
	defer closeStore()

	p, err := store.Load(ctx, id)
	if err != nil {
		return domain.Program{}, err
	}
	return *p, nil
}

func loadExample(ctx context.Context, dir, id string) (domain.Program, error) {
	lib, err := cli.OpenLibrary(dir)
	if err != nil {
		return domain.Program{}, err
	}
	p, err := lib.GetProgram(ctx, id)
	if err != nil {
		return domain.Program{}, err
	}
	return *p, nil
}

func decodeLink(link string) (domain.Program, error) {
	raw := link
	if i := strings.IndexByte(link, '?'); i >= 0 {
		raw = link[i+1:]
	}
	p, err := query.Decode(raw)
	if err != nil {
		return p, fmt.Errorf("decode link: %w", err)
	}
	return p, nil
}
