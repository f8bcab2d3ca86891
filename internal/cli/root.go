package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go-mdtext/html"
	"go-mdtext/internal/config"
	"go-mdtext/internal/logger"
	"go-mdtext/markdown"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	cfgFile    string
	format     string
	outputPath string
	jsonOutput bool
	nfc        bool
	strict     bool
	debugMode  bool
	workers    int
)

// Result is the extraction outcome for one document.
type Result struct {
	File        string             `json:"file"`
	Title       string             `json:"title,omitempty"`
	Text        string             `json:"text"`
	Headings    []markdown.Heading `json:"headings,omitempty"`
	Diagnostics []string           `json:"diagnostics"`
}

// document is an input waiting to be extracted. Files are read lazily.
type document struct {
	name string
	data []byte
}

// NewRootCommand returns the mdtext command.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdtext [flags] [files...]",
		Short: "Extract readable plain text from Markdown and HTML documents",
		Long: `mdtext extracts the readable text of Markdown documents, including
R Markdown, Quarto and Pandoc extensions, for spell checkers, word counters
and search indexers. HTML documents are converted to Markdown first.

With no files, the document is read from standard input.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Debug)
			defer func() {
				_ = log.Sync()
			}()

			docs, err := collectDocuments(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			results, err := extractAll(cmd.Context(), cfg, docs, log)
			if err != nil {
				return err
			}

			if outputPath != "" {
				err = writeOutputFile(outputPath, results, cfg.JSON)
			} else {
				err = writeResults(cmd.OutOrStdout(), results, cfg.JSON)
			}
			if err != nil {
				return err
			}

			total := 0
			for _, r := range results {
				total += len(r.Diagnostics)
				if len(r.Diagnostics) > 0 {
					log.Warn("document has diagnostics",
						zap.String("file", r.File),
						zap.Strings("diagnostics", r.Diagnostics))
				}
			}
			if cfg.Strict && total > 0 {
				return fmt.Errorf("%d diagnostic(s) reported", total)
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default $HOME/.mdtext.yaml)")
	flags.StringVarP(&format, "format", "f", config.FormatAuto, "input format: auto, markdown or html")
	flags.StringVarP(&outputPath, "output", "o", "", "write output to a file instead of stdout")
	flags.BoolVar(&jsonOutput, "json", false, "write one JSON record per document")
	flags.BoolVar(&nfc, "nfc", false, "normalize extracted text to Unicode NFC")
	flags.BoolVar(&strict, "strict", false, "exit with an error when diagnostics are reported")
	flags.BoolVarP(&debugMode, "debug", "d", false, "enable debug logging")
	flags.IntVarP(&workers, "workers", "j", runtime.NumCPU(), "documents processed concurrently")

	return rootCmd
}

func collectDocuments(stdin io.Reader, args []string) ([]document, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []document{{name: "-", data: data}}, nil
	}

	docs := make([]document, 0, len(args))
	for _, arg := range args {
		docs = append(docs, document{name: arg})
	}
	return docs, nil
}

// extractAll processes docs concurrently and returns results in input order.
func extractAll(ctx context.Context, cfg *config.Config, docs []document, log *zap.Logger) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]Result, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, doc := range docs {
		g.Go(func() error {
			r, err := extractDocument(ctx, cfg, doc, log)
			if err != nil {
				return fmt.Errorf("extract %s: %w", doc.name, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func extractDocument(ctx context.Context, cfg *config.Config, doc document, log *zap.Logger) (Result, error) {
	data := doc.data
	if data == nil {
		var err error
		if data, err = os.ReadFile(doc.name); err != nil {
			return Result{}, err
		}
	}

	src := string(data)
	title := ""
	if resolveFormat(cfg.Format, doc.name, src) == config.FormatHTML {
		title = html.ParseMetadata(src).Title
		md, err := html.ConvertToMarkdown(ctx, src)
		if err != nil {
			return Result{}, err
		}
		src = md
	}

	docLog := log.With(zap.String("file", doc.name))
	meta, _, err := markdown.ParseFrontMatter(src)
	if err != nil {
		docLog.Warn("ignoring front matter", zap.Error(err))
	}
	if meta.Title != "" {
		title = meta.Title
	}

	e := markdown.New(
		markdown.WithLogger(docLog),
		markdown.WithNFC(cfg.NormalizeNFC),
	)
	text := e.Extract(src)

	diagnostics := e.Diagnostics()
	if diagnostics == nil {
		diagnostics = []string{}
	}

	docLog.Debug("document extracted",
		zap.Int("input_bytes", len(data)),
		zap.Int("output_bytes", len(text)),
		zap.Int("diagnostics", len(diagnostics)))

	return Result{
		File:        doc.name,
		Title:       title,
		Text:        text,
		Headings:    markdown.Outline(src),
		Diagnostics: diagnostics,
	}, nil
}

// resolveFormat picks the input format for a document. In auto mode,
// .html and .htm files and stdin starting like an HTML document are HTML.
func resolveFormat(format, name, src string) string {
	if format != config.FormatAuto {
		return format
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return config.FormatHTML
	}

	if name == "-" {
		head := strings.ToLower(strings.TrimSpace(src))
		if strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") {
			return config.FormatHTML
		}
	}
	return config.FormatMarkdown
}

// writeOutputFile writes results to path. The file is closed before
// returning so a failed final write is reported.
func writeOutputFile(path string, results []Result, asJSON bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := writeResults(f, results, asJSON); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func writeResults(w io.Writer, results []Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("write json: %w", err)
			}
		}
		return nil
	}

	for i, r := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		if _, err := io.WriteString(w, r.Text+"\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
