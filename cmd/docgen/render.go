package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/dealer-docs/internal/config"
	"github.com/nurpe/dealer-docs/internal/documents"
	"github.com/nurpe/dealer-docs/internal/logger"
	"github.com/nurpe/dealer-docs/internal/model"
	"github.com/nurpe/dealer-docs/internal/numbering"
)

type renderOptions struct {
	kind    string
	input   string
	output  string
	preview bool
	strict  bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a data bundle into a PDF",
		Example: `  # Write contrato-compraventa-<plate>-<date>.pdf to the current directory
  docgen render --kind purchase_contract --input contract.json

  # Print a data URI instead of writing a file
  docgen render --kind proforma --input quote.json --preview

  # Read the bundle from stdin and choose the output path
  cat invoice.json | docgen render --kind invoice --input - --output out/factura.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "document kind: purchase_contract, deposit_agreement, invoice, proforma_invoice")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "JSON data bundle file, or - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path (default: derived file name in the current directory)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "print a data:application/pdf URI instead of writing a file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject incomplete bundles (overrides DOCS_STRICT)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.WithComponent(logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Environment, cfg.LogLevel), "docgen")

	kind, err := model.ParseDocumentKind(opts.kind)
	if err != nil {
		return err
	}
	raw, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}
	doc, err := model.DecodeDocument(kind, raw)
	if err != nil {
		return err
	}

	style, err := cfg.Style()
	if err != nil {
		log.Warn().Err(err).Msg("rendering without company logo")
	}
	strict := cfg.Docs.Strict
	if cmd.Flags().Changed("strict") {
		strict = opts.strict
	}
	renderer, err := documents.NewRenderer(style,
		documents.WithLogger(log),
		documents.WithStrict(strict),
		documents.WithNumbering(cliNumbers(cfg, log)),
		documents.WithDefaultTaxRate(cfg.Docs.DefaultTaxRate),
		documents.WithDefaultValidityDays(cfg.Docs.ProformaValidityDays),
		documents.WithPrefixes(cfg.Docs.InvoicePrefix, cfg.Docs.ProformaPrefix),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	render := renderer.Render
	if opts.preview {
		render = renderer.Preview
	}
	rendered, err := render(ctx, doc)
	if err != nil {
		return err
	}

	if opts.preview {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered.DataURL())
		return err
	}

	path := opts.output
	if path == "" {
		path = rendered.FileName
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := rendered.Save(path); err != nil {
		return err
	}
	log.Info().
		Str("file", path).
		Str("number", rendered.Number).
		Int("pages", rendered.Pages).
		Msg("document written")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return raw, nil
}

func cliNumbers(cfg *config.Config, log zerolog.Logger) numbering.Generator {
	if cfg.Redis.Addr != "" {
		return numbering.NewRedisSequence(numbering.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), "")
	}
	log.Debug().Msg("no redis configured, using random document numbers")
	return numbering.NewRandomGenerator(uint64(time.Now().UnixNano()))
}
