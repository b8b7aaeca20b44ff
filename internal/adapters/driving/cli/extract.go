package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/normalisers"
	"github.com/custodia-labs/docsift/internal/postprocessors/truncator"
)

// stdinArg reads the document from standard input.
const stdinArg = "-"

var (
	extractMIME      string
	extractMaxLength int
	extractExcerpt   bool
	extractJSON      bool
	extractJobs      int
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE...",
	Short: "Recover readable text from documents",
	Long: `Recover readable text from one or more documents and print it.

The MIME type is detected from the file name and content unless --mime is
given. Binary documents with no recoverable text print the extraction-failed
notice instead of failing. Use - to read a single document from stdin.

Examples:
  docsift extract report.pdf
  docsift extract --excerpt *.pdf
  docsift extract --json --jobs 8 docs/*.docx
  cat notes.txt | docsift extract --mime text/plain -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractMIME, "mime", "m", "", "declared MIME type (default: detect per file)")
	extractCmd.Flags().IntVarP(&extractMaxLength, "max-length", "n", 0,
		"further bound the printed text in characters (0 = text budget only)")
	extractCmd.Flags().BoolVar(&extractExcerpt, "excerpt", false, "print the excerpt instead of the text")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print results as JSON")
	extractCmd.Flags().IntVarP(&extractJobs, "jobs", "j", 4, "documents processed in parallel")
	rootCmd.AddCommand(extractCmd)
}

// extractResult is the JSON shape of one extraction.
type extractResult struct {
	ID          string          `json:"id"`
	URI         string          `json:"uri"`
	MIMEType    string          `json:"mime_type"`
	Strategy    string          `json:"strategy"`
	Placeholder bool            `json:"placeholder"`
	Text        string          `json:"text"`
	Excerpt     string          `json:"excerpt"`
	Attempts    []attemptResult `json:"attempts"`
	CreatedAt   time.Time       `json:"created_at"`
}

type attemptResult struct {
	Strategy string `json:"strategy"`
	Length   int    `json:"length"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}
	if extractJobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", extractJobs)
	}
	if extractMaxLength < 0 {
		return fmt.Errorf("--max-length must not be negative, got %d", extractMaxLength)
	}
	if countStdinArgs(args) > 1 {
		return errors.New("stdin (-) can be read only once")
	}

	results := make([]*domain.Extraction, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(extractJobs)

	for i, path := range args {
		g.Go(func() error {
			raw, err := readDocument(cmd.InOrStdin(), path, extractMIME)
			if err != nil {
				return err
			}
			ext, err := extractionService.Extract(ctx, raw)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = ext
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if extractJSON {
		return writeJSON(out, results)
	}

	for i, ext := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", ext.URI)
		}
		fmt.Fprintln(out, selectedText(ext))
	}
	return nil
}

func countStdinArgs(args []string) int {
	n := 0
	for _, arg := range args {
		if arg == stdinArg {
			n++
		}
	}
	return n
}

// readDocument loads a file (or stdin for "-") into a RawDocument.
func readDocument(stdin io.Reader, path, mimeType string) (*domain.RawDocument, error) {
	var (
		content []byte
		err     error
	)
	if path == stdinArg {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if mimeType == "" {
		name := path
		if path == stdinArg {
			name = ""
		}
		mimeType = normalisers.DetectMIMEType(name, content)
	}

	return &domain.RawDocument{
		URI:      path,
		MIMEType: mimeType,
		Content:  content,
	}, nil
}

func selectedText(ext *domain.Extraction) string {
	text := ext.Text
	if extractExcerpt {
		text = ext.Excerpt
	}
	if extractMaxLength > 0 {
		text = truncator.Truncate(text, extractMaxLength)
	}
	return text
}

func writeJSON(w io.Writer, results []*domain.Extraction) error {
	views := make([]extractResult, len(results))
	for i, ext := range results {
		views[i] = toResult(ext)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(views) == 1 {
		return enc.Encode(views[0])
	}
	return enc.Encode(views)
}

func toResult(ext *domain.Extraction) extractResult {
	text := ext.Text
	if extractMaxLength > 0 {
		text = truncator.Truncate(text, extractMaxLength)
	}

	res := extractResult{
		ID:          ext.ID,
		URI:         ext.URI,
		MIMEType:    ext.MIMEType,
		Strategy:    ext.Strategy.String(),
		Placeholder: ext.Placeholder,
		Text:        text,
		Excerpt:     ext.Excerpt,
		Attempts:    make([]attemptResult, len(ext.Attempts)),
		CreatedAt:   ext.CreatedAt,
	}
	for i, a := range ext.Attempts {
		res.Attempts[i] = attemptResult{Strategy: a.Strategy.String(), Length: len(a.Text)}
	}
	return res
}
