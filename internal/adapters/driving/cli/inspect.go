package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/logger"
)

// previewLength is how many characters of each attempt inspect shows.
const previewLength = 60

var (
	inspectMIME string
	inspectRaw  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Show how text was recovered from a document",
	Long: `Run a document through the pipeline and report the dispatch type, every
recovery attempt with its length and a preview, and which strategy won.

Use --raw to print the recovered text before sanitisation.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectMIME, "mime", "m", "", "declared MIME type (default: detect)")
	inspectCmd.Flags().BoolVar(&inspectRaw, "raw", false, "print the unsanitised recovered text")
	rootCmd.AddCommand(inspectCmd)
}

// inspectStyles holds the styles used for inspect output.
type inspectStyles struct {
	label   lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newInspectStyles(colour bool) inspectStyles {
	if !colour {
		plain := lipgloss.NewStyle()
		return inspectStyles{label: plain, success: plain, muted: plain, warning: plain}
	}
	return inspectStyles{
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	raw, err := readDocument(cmd.InOrStdin(), args[0], inspectMIME)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger.Section("inspect " + raw.URI)

	if inspectRaw {
		text, err := extractionService.ExtractText(cmd.Context(), raw.Content, raw.MIMEType)
		if err != nil {
			return fmt.Errorf("%s: %w", raw.URI, err)
		}
		fmt.Fprintln(out, text)
		return nil
	}

	ext, err := extractionService.Extract(cmd.Context(), raw)
	if err != nil {
		return fmt.Errorf("%s: %w", raw.URI, err)
	}

	writeInspection(out, ext, newInspectStyles(isTerminal(out)))
	return nil
}

func writeInspection(w io.Writer, ext *domain.Extraction, st inspectStyles) {
	fmt.Fprintf(w, "%s %s\n", st.label.Render("Document:"), ext.URI)
	fmt.Fprintf(w, "%s %s\n", st.label.Render("MIME type:"), ext.MIMEType)
	fmt.Fprintf(w, "%s %d bytes raw, %d characters kept, %d in excerpt\n",
		st.label.Render("Size:"), len(ext.RawText),
		utf8.RuneCountInString(ext.Text), utf8.RuneCountInString(ext.Excerpt))

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.label.Render("Attempts:"))
	for i, a := range ext.Attempts {
		marker := st.muted.Render("  ")
		if a.Strategy == ext.Strategy && a.Succeeded() {
			marker = st.success.Render("* ")
		}
		fmt.Fprintf(w, "%s%d. %-10s %6d  %s\n", marker, i+1, a.Strategy, len(a.Text),
			st.muted.Render(preview(a.Text)))
	}

	fmt.Fprintln(w)
	if ext.Placeholder {
		fmt.Fprintf(w, "%s %s\n", st.label.Render("Result:"),
			st.warning.Render("no recoverable text; placeholder notice used"))
		return
	}
	fmt.Fprintf(w, "%s %s\n", st.label.Render("Result:"), st.success.Render(ext.Strategy.String()))
}

// preview returns the first characters of text on a single line.
func preview(text string) string {
	line := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(line) <= previewLength {
		return line
	}
	runes := []rune(line)
	return string(runes[:previewLength]) + "..."
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
