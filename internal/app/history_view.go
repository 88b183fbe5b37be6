package app

import (
	"fmt"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/dshills/listedit/internal/engine"
	"github.com/dshills/listedit/internal/engine/list"
)

// historyNode is the asciitree shape of the undo history.
type historyNode struct {
	Label    string        `asciitree:"label"`
	Props    []string      `asciitree:"properties"`
	Children []historyNode `asciitree:"children"`
}

// buildHistoryTree lists snapshots newest first, so the first child is the
// state the next undo restores.
func buildHistoryTree(info []engine.EntryInfo, opts list.RenderOptions) historyNode {
	root := historyNode{
		Label: "undo history",
		Props: []string{fmt.Sprintf("depth: %d", len(info))},
	}
	for i := len(info) - 1; i >= 0; i-- {
		e := info[i]
		root.Children = append(root.Children, historyNode{
			Label: fmt.Sprintf("#%d before %s", i+1, e.Description),
			Props: []string{
				fmt.Sprintf("id: %s", e.ID),
				fmt.Sprintf("taken: %s", e.Timestamp.Format("15:04:05.000")),
				fmt.Sprintf("list: %s", list.NewFromValues(e.Values...).RenderWith(opts)),
			},
		})
	}
	return root
}

func renderHistory(info []engine.EntryInfo, opts list.RenderOptions) string {
	return asciitree.RenderFancy(buildHistoryTree(info, opts))
}
