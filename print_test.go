package bstree

import (
	"strings"
	"testing"
)

func buildInts(ints ...int) *Node[int] {
	var root *Node[int]
	for _, i := range ints {
		root, _ = Insert(root, i, Ordered[int]())
	}
	return root
}

func TestFprintGrid(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	var b strings.Builder
	if err := Fprint(&b, buildInts(5, 3, 8), nil, nil); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", b.String())
	if b.String() != "  5\n3   8\n" {
		t.Errorf("unexpected rendering %q", b.String())
	}
	b.Reset()
	Fprint(&b, buildInts(50, 3, 100, 7), nil, nil)
	t.Logf("\n%s", b.String())
	expected := "        50\n 3          100\n     7\n"
	if b.String() != expected {
		t.Errorf("expected\n%q\nhave\n%q", expected, b.String())
	}
}

func TestFprintSideways(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	var b strings.Builder
	Fprint(&b, buildInts(5, 3, 8), &PrintConfig{LineWidth: 4}, nil)
	t.Logf("\n%s", b.String())
	if b.String() != "    8\n5\n    3\n" {
		t.Errorf("unexpected rendering %q", b.String())
	}
}

func TestLabelWidth(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	cfg := (*PrintConfig)(nil).normalized()
	for _, label := range []string{"", "5", "50", "100", "abc", "a b"} {
		if w := cfg.width(label); w != len(label) {
			t.Errorf("expected ASCII label %q to be %d wide, have %d", label, len(label), w)
		}
	}
	if w := cfg.width("日本"); w < 4 {
		t.Errorf("expected wide label to take at least 4 positions, have %d", w)
	}
}

func TestFprintWideLabels(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	var root *Node[string]
	for _, s := range []string{"b", "a", "c"} {
		root, _ = Insert(root, s, Ordered[string]())
	}
	labels := map[string]string{"a": "日本", "b": "x", "c": "y"}
	var b strings.Builder
	Fprint(&b, root, nil, func(s string) string { return labels[s] })
	t.Logf("\n%s", b.String())
	// every column is as wide as the East Asian label
	w := (*PrintConfig)(nil).normalized().width("日本")
	pad := (w - 1) / 2
	line0 := strings.Repeat(" ", w+1+pad) + "x"
	line1 := "日本" + strings.Repeat(" ", w+2+pad) + "y"
	lines := strings.Split(b.String(), "\n")
	if len(lines) != 3 || lines[0] != line0 || lines[1] != line1 {
		t.Errorf("expected %q and %q, have %q", line0, line1, b.String())
	}
}

func TestFprintColorized(t *testing.T) {
	var b strings.Builder
	Fprint(&b, buildInts(1), &PrintConfig{Colorize: true}, nil)
	if !strings.Contains(b.String(), "\x1b[") || !strings.Contains(b.String(), "1") {
		t.Errorf("expected colorized output, have %q", b.String())
	}
	b.Reset()
	if err := Fprint[int](&b, nil, nil, nil); err != nil || b.Len() != 0 {
		t.Errorf("expected no output for empty tree")
	}
}

func TestPrintConfigFromTerminal(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	cfg := PrintConfigFromTerminal()
	if cfg.Context == nil {
		t.Errorf("expected width context to be set")
	}
	if !cfg.Colorize && cfg.LineWidth != 0 {
		t.Errorf("expected unlimited line width without a terminal, have %d", cfg.LineWidth)
	}
	var b strings.Builder
	if err := Fprint(&b, buildInts(2, 1, 3), cfg, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "2") {
		t.Errorf("expected rendering to contain root, have %q", b.String())
	}
}
