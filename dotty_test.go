package bstree

import (
	"strconv"
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	var root *Node[int]
	for _, i := range []int{5, 3, 8, 9} {
		root, _ = Insert(root, i, Ordered[int]())
	}
	var b strings.Builder
	Tree2Dot(root, &b, func(i int) string { return "#" + strconv.Itoa(i) })
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a DOT digraph")
	}
	for _, label := range []string{"#3", "#5", "#8", "#9"} {
		if !strings.Contains(dot, "label=\""+label+"\"") {
			t.Errorf("expected node labelled %s", label)
		}
	}
	// 3 real edges, 1 edge to an empty placeholder (left of 8)
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges, have %d", n)
	}
	if n := strings.Count(dot, "shape=box"); n != 2 {
		t.Errorf("expected 2 leaves, have %d", n)
	}
}

func TestTree2DotEmpty(t *testing.T) {
	var b strings.Builder
	Tree2Dot[int](nil, &b, nil)
	if strings.Contains(b.String(), "->") || !strings.HasPrefix(b.String(), "strict digraph") {
		t.Errorf("expected empty digraph, have %q", b.String())
	}
}

func TestTree2DotEscapesLabels(t *testing.T) {
	var b strings.Builder
	root, _ := Insert(nil, `a\b "c"`+"\nd", Ordered[string]())
	Tree2Dot(root, &b, nil)
	want := `label="a\\b \"c\"\nd"`
	if !strings.Contains(b.String(), want) {
		t.Errorf("expected escaped label %s, have\n%s", want, b.String())
	}
	if strings.Count(b.String(), "\n") != 4 {
		t.Errorf("expected label newline to be escaped, have\n%s", b.String())
	}
}
