package bstree

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PrintConfig controls the text output of Fprint.
type PrintConfig struct {
	// LineWidth is the maximum width of an output line in fixed-width
	// positions. Trees too wide for the grid layout are printed sideways.
	// 0 means unlimited.
	LineWidth int
	// Colorize elements with Color.
	Colorize bool
	// Color for elements; defaults to blue.
	Color *color.Color
	// Context for measuring the display width of labels.
	Context *uax11.Context
}

// PrintConfigFromTerminal is a simple helper for creating a PrintConfig.
// It checks whether stdout is a terminal, and if so it enables colors and
// sets the line width to the terminal's width.
func PrintConfigFromTerminal() *PrintConfig {
	config := &PrintConfig{Context: uax11.ContextFromEnvironment()}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colorize = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			config.LineWidth = w
		}
	}
	tracer().Debugf("bstree print: line width %d, colorize=%v", config.LineWidth, config.Colorize)
	return config
}

var setupGraphemes sync.Once

func (cfg *PrintConfig) normalized() *PrintConfig {
	c := PrintConfig{}
	if cfg != nil {
		c = *cfg
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Colorize && c.Color == nil {
		c.Color = color.New(color.FgBlue)
	}
	if c.Colorize {
		c.Color.EnableColor()
	}
	return &c
}

// width returns the display width of label in fixed-width positions.
// uax11 is consulted only for labels containing non-ASCII runes.
func (cfg *PrintConfig) width(label string) int {
	if isASCII(label) {
		return len(label)
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(label), cfg.Context)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (cfg *PrintConfig) paint(label string) string {
	if !cfg.Colorize {
		return label
	}
	return cfg.Color.Sprint(label)
}

type placed struct {
	label string
	width int
	depth int
}

// Fprint writes a text rendering of the tree rooted at root to w, one line
// per tree level. Every node is printed in its own column, in ascending
// order, so each node's left subtree lies to its left and its right subtree
// to its right. If the rendering is wider than cfg.LineWidth, the tree is
// printed sideways instead: one node per line, indented by depth, right
// subtrees above their parents.
//
// label formats an element; if it is nil, elements are printed with %v.
// cfg may be nil.
func Fprint[T any](w io.Writer, root *Node[T], cfg *PrintConfig, label func(T) string) error {
	if root == nil {
		return nil
	}
	if label == nil {
		label = func(e T) string { return fmt.Sprintf("%v", e) }
	}
	cfg = cfg.normalized()
	var nodes []placed
	cellwidth, height := 0, 0
	walk(root, inorder, func(n *Node[T], depth int) bool {
		l := label(n.element)
		p := placed{label: l, width: cfg.width(l), depth: depth}
		nodes = append(nodes, p)
		cellwidth = max(cellwidth, p.width)
		height = max(height, depth+1)
		return true
	})
	linewidth := len(nodes)*(cellwidth+1) - 1
	if cfg.LineWidth > 0 && linewidth > cfg.LineWidth {
		return printSideways(w, nodes, cfg)
	}
	return printGrid(w, nodes, height, cellwidth, cfg)
}

func printGrid(w io.Writer, nodes []placed, height, cellwidth int, cfg *PrintConfig) error {
	for level := 0; level < height; level++ {
		var line strings.Builder
		gap := 0 // pending blanks, written only if followed by a label
		for _, p := range nodes {
			if p.depth != level {
				gap += cellwidth + 1
				continue
			}
			pad := cellwidth - p.width
			line.WriteString(strings.Repeat(" ", gap+pad/2))
			line.WriteString(cfg.paint(p.label))
			gap = pad - pad/2 + 1
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

func printSideways(w io.Writer, nodes []placed, cfg *PrintConfig) error {
	for i := len(nodes) - 1; i >= 0; i-- {
		p := nodes[i]
		line := strings.Repeat("    ", p.depth) + cfg.paint(p.label) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
