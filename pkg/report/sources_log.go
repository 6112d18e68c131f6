package report

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/pipeline"
)

// RenderSourcesLog writes the Markdown provenance log for a run to w.
func RenderSourcesLog(w io.Writer, result *pipeline.Result) error {
	doc := md.NewMarkdown(w).
		H1("Sources log").
		PlainText("").
		BulletList(
			fmt.Sprintf("sources processed: %d", len(result.Sources)),
			fmt.Sprintf("entries attempted: %d", result.TotalAttempted()),
			fmt.Sprintf("final entries: %d", result.TotalAdded()),
		).
		PlainText("").
		H2("Per-source details")

	details := make([]string, 0, len(result.Sources))
	for _, s := range result.Sources {
		details = append(details, sourceLine(s))
	}
	if len(details) > 0 {
		doc.BulletList(details...)
	}

	if err := doc.Build(); err != nil {
		return errors.WrapIO("write", "sources log", err)
	}
	return nil
}

// WriteSourcesLog renders the sources log to path.
func WriteSourcesLog(path string, result *pipeline.Result) error {
	var b strings.Builder
	if err := RenderSourcesLog(&b, result); err != nil {
		return err
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return writeFile(path, []byte(out))
}

func sourceLine(s pipeline.SourceLog) string {
	added := "failed"
	if !s.Failed {
		added = fmt.Sprint(s.Added)
	}
	return fmt.Sprintf("%s — attempted: %d, added: %s", s.Locator, s.Attempted, added)
}
