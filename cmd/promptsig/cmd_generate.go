package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sant0-9/promptsig/internal/examples"
	"github.com/sant0-9/promptsig/internal/logging"
	"github.com/sant0-9/promptsig/internal/render"
	"github.com/sant0-9/promptsig/internal/signature"
	"github.com/sant0-9/promptsig/internal/writer"
	"github.com/spf13/cobra"
)

var (
	genExample string
	genRefine  bool
	genRaw     bool
	genStdin   bool
	genOut     string
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a signature for one prompt and print it",
	Example: `  promptsig generate "extract the patient name and diagnosis"
  promptsig generate --example resume --refine
  cat task.md | promptsig generate --stdin --out ./signatures`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genExample, "example", "e", "", "use an example prompt (slug, name or number)")
	generateCmd.Flags().BoolVar(&genRefine, "refine", false, "ask the backend to refine the signature")
	generateCmd.Flags().BoolVar(&genRaw, "raw", false, "print without syntax highlighting")
	generateCmd.Flags().BoolVar(&genStdin, "stdin", false, "read the prompt from stdin")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "also save the result into this directory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prompt, err := resolvePrompt(cmd.InOrStdin(), args, genExample, genStdin)
	if err != nil {
		return err
	}

	refine := cfg.Refine
	if cmd.Flags().Changed("refine") {
		refine = genRefine
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := signature.NewClient(cfg.APIURL, signature.WithTimeout(cfg.Timeout))
	res, err := generate(ctx, client, signature.Request{Prompt: prompt, Refine: refine})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	text := res.Text
	if !genRaw && isTerminal(out) {
		hl := render.NewHighlighter(cfg.Theme, "terminal256")
		if colored, err := hl.Code(text, render.DetectLanguage(text)); err == nil {
			text = colored
		}
	}
	fmt.Fprintln(out, text)

	if genOut != "" {
		path, err := writer.New(genOut).Save(res)
		if err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", path)
	}
	return nil
}

type generator interface {
	Generate(ctx context.Context, req signature.Request) (signature.Result, error)
}

func generate(ctx context.Context, g generator, req signature.Request) (signature.Result, error) {
	logging.S().Infow("submitting prompt", "prompt_len", len(req.Prompt), "refine", req.Refine)
	res, err := g.Generate(ctx, req)
	if err != nil {
		var se *signature.StatusError
		if errors.As(err, &se) {
			logging.S().Warnw("backend returned error", "status", se.Code, "body", se.Body)
		}
		return signature.Result{}, err
	}
	logging.S().Infow("generation done", "kind", res.Kind.String(), "bytes", len(res.Text))
	return res, nil
}

// resolvePrompt picks the prompt from exactly one of args, an example or stdin.
func resolvePrompt(stdin io.Reader, args []string, example string, fromStdin bool) (string, error) {
	sources := 0
	if len(args) > 0 {
		sources++
	}
	if example != "" {
		sources++
	}
	if fromStdin {
		sources++
	}
	if sources > 1 {
		return "", errors.New("use only one of a prompt argument, --example or --stdin")
	}

	switch {
	case example != "":
		e, _, ok := examples.Find(example)
		if !ok {
			return "", fmt.Errorf("unknown example %q (see 'promptsig examples')", example)
		}
		return e.Body, nil
	case fromStdin:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		return strings.Join(args, " "), nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
