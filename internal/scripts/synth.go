// Package scripts builds the literal shell script text executed remotely for
// each file operation. Every script performs its own precondition check, does
// the work and emits a self-describing textual report, so one exec-and-capture
// round trip per invocation is sufficient.
//
// Script exit codes: 1 for a missing target, 2 for "pattern not found" on a
// block replace.
package scripts

import (
	"fmt"
	"strconv"

	"github.com/aymerick/raymond"
)

// Write modes accepted by WriteChunk.
const (
	ModeRewrite = "rewrite"
	ModeAppend  = "append"
)

func render(name string, values map[string]string) (string, error) {
	templateText, err := templates.ReadFile("templates/" + name)

	if err != nil {
		return "", err
	}

	tpl, err := raymond.Parse(string(templateText))

	if err != nil {
		return "", err
	}

	return tpl.Exec(values)
}

// ReadLines builds the ranged-read script. endLine 0 means "to end of file,
// capped by maxLines"; the script also caps the effective end at the actual
// line count, which only the remote side knows.
func ReadLines(path string, startLine, endLine, maxLines int) (string, error) {
	return render("read_lines.sh.hbs", map[string]string{
		"file":  Path(path),
		"start": strconv.Itoa(startLine),
		"end":   strconv.Itoa(endLine),
		"max":   strconv.Itoa(maxLines),
	})
}

// EditBlock builds the literal text-replace script: count occurrences, back
// the file up, substitute globally, re-count. The reported replaced-count
// equals the pre-edit occurrence count.
func EditBlock(path, oldText, newText string, expectedReplacements int) (string, error) {
	sedExpr := "s/" + PatternLiteral(oldText) + "/" + ReplacementLiteral(newText) + "/g"

	return render("edit_block.sh.hbs", map[string]string{
		"file":     Path(path),
		"oldText":  QuotedContent(oldText),
		"newText":  QuotedContent(newText),
		"sedExpr":  shellQuote(sedExpr),
		"expected": strconv.Itoa(expectedReplacements),
	})
}

// SearchCode builds the recursive pattern-search script. An empty filePattern
// matches every file name.
func SearchCode(dir, pattern, filePattern string, ignoreCase bool, maxResults, contextLines int) (string, error) {
	if filePattern == "" {
		filePattern = "*"
	}

	grepFlags := "-n -H"
	if ignoreCase {
		grepFlags += " -i"
	}
	if contextLines > 0 {
		grepFlags += fmt.Sprintf(" -C %d", contextLines)
	}

	return render("search_code.sh.hbs", map[string]string{
		"dir":       Path(dir),
		"pattern":   QuotedContent(pattern),
		"filter":    QuotedContent(filePattern),
		"grepFlags": grepFlags,
		"max":       strconv.Itoa(maxResults),
	})
}

// WriteChunk builds the content-write script. Parent directories are created
// when absent; the content is written byte-for-byte with no added newline.
func WriteChunk(path, content, mode string) (string, error) {
	redirect := ">"
	if mode == ModeAppend {
		redirect = ">>"
	}

	return render("write_chunk.sh.hbs", map[string]string{
		"file":     Path(path),
		"content":  QuotedContent(content),
		"redirect": redirect,
		"mode":     mode,
	})
}
