package output

import (
	"strings"
)

// TreeRenderOptions configures rendering behavior
type TreeRenderOptions struct {
	NoStyle bool
}

// TreeRenderer renders the branch forest, one line per branch, children
// indented under their parent
type TreeRenderer struct {
	currentBranch string
	getChildren   func(branchName string) []string
	annotate      func(branchName string) string
}

// NewTreeRenderer creates a new tree renderer. annotate may be nil.
func NewTreeRenderer(
	currentBranch string,
	getChildren func(branchName string) []string,
	annotate func(branchName string) string,
) *TreeRenderer {
	return &TreeRenderer{
		currentBranch: currentBranch,
		getChildren:   getChildren,
		annotate:      annotate,
	}
}

// RenderForest renders every root and its descendants
func (r *TreeRenderer) RenderForest(roots []string, opts TreeRenderOptions) []string {
	var lines []string
	for _, root := range roots {
		r.renderBranch(root, 0, opts, &lines)
	}
	return lines
}

func (r *TreeRenderer) renderBranch(branchName string, depth int, opts TreeRenderOptions, lines *[]string) {
	isCurrent := branchName == r.currentBranch

	symbol := "◯"
	if isCurrent {
		symbol = "◉"
	}

	name := branchName
	if !opts.NoStyle {
		name = ColorBranchName(branchName, isCurrent)
	}

	line := strings.Repeat("│  ", depth) + symbol + " " + name
	if r.annotate != nil {
		if annotation := r.annotate(branchName); annotation != "" {
			if opts.NoStyle {
				line += " " + annotation
			} else {
				line += " " + ColorPending(annotation)
			}
		}
	}
	*lines = append(*lines, line)

	for _, child := range r.getChildren(branchName) {
		r.renderBranch(child, depth+1, opts, lines)
	}
}
