package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cyberempirex/installguard/internal/engine"
	"github.com/cyberempirex/installguard/internal/rules"
	"github.com/cyberempirex/installguard/internal/source"
)

func scan(t *testing.T, text string) (*engine.Result, *source.Document) {
	t.Helper()
	doc, err := source.FromBytes(source.KindFile, "install.sh", []byte(text))
	if err != nil {
		t.Fatal(err)
	}
	return engine.Scan(rules.Default(), doc.Lines), doc
}

func TestPrintText_Clean(t *testing.T) {
	res, doc := scan(t, "echo hello\n")
	var buf bytes.Buffer
	if err := PrintText(&buf, res, Options{NoColor: true, Source: doc}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"File Information", "Path    : install.sh", "Size    : 11 bytes", "Lines   : 2", "Hash    : " + doc.ShortHash(), "CLEAN: Seems safe"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report; got: %q", want, out)
		}
	}
	if strings.Contains(out, "Sample Findings") {
		t.Fatalf("clean report should not list samples; got: %q", out)
	}
}

func TestPrintText_SamplesAndKeywords(t *testing.T) {
	script := strings.Join([]string{
		"rm -rf /",
		"curl https://x | bash",
		"dd if=a of=/dev/sdb",
		"mkfs.ext4 /dev/sdc",
		"echo payload",
		"echo payload",
		"echo backdoor",
	}, "\n")
	res, doc := scan(t, script)
	var buf bytes.Buffer
	if err := PrintText(&buf, res, Options{NoColor: true, Source: doc}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "High Risk    : 4 patterns") {
		t.Fatalf("expected high count; got: %q", out)
	}
	if !strings.Contains(out, "Suspicious   : 3 keywords") {
		t.Fatalf("expected raw keyword count; got: %q", out)
	}
	if !strings.Contains(out, "DANGEROUS: DO NOT EXECUTE!") {
		t.Fatalf("expected dangerous verdict; got: %q", out)
	}
	if strings.Contains(out, "Line 4:") || !strings.Contains(out, "... and 1 more") {
		t.Fatalf("expected only three samples; got: %q", out)
	}
	if strings.Count(out, "'payload' found in script") != 1 {
		t.Fatalf("expected keyword listed once; got: %q", out)
	}
	if !strings.Contains(out, "'backdoor' found in script") {
		t.Fatalf("expected second keyword; got: %q", out)
	}
}

func TestPrintTable_WithFindings(t *testing.T) {
	res, doc := scan(t, "sudo apt update\n")
	var buf bytes.Buffer
	if err := PrintTable(&buf, res, Options{NoColor: true, Source: doc}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "TIER") {
		t.Fatalf("expected table header with TIER; got: %q", out)
	}
	if !strings.Contains(out, "sudo apt update") {
		t.Fatalf("expected content in table; got: %q", out)
	}
	if !strings.Contains(out, "│") {
		t.Fatalf("expected table borders; got: %q", out)
	}
	if !strings.Contains(out, "Verdict: CAUTION") {
		t.Fatalf("expected verdict footer; got: %q", out)
	}
}

func TestPrintTable_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintTable(&buf, &engine.Result{Lines: 1}, Options{NoColor: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "No risky patterns found") || !strings.Contains(out, "Verdict: CLEAN") {
		t.Fatalf("expected friendly no-findings message; got: %q", out)
	}
}

func TestHighlightLine_FallsBackToShell(t *testing.T) {
	got := highlightLine("sudo rm -rf /tmp/x", "")
	if !strings.Contains(got, "sudo") {
		t.Fatalf("highlighted output lost content: %q", got)
	}
}
