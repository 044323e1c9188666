// gogroups fills a board, finds its groups and prints them.
//
// The board is either random (see -config), read from a layout file (-layout) or built
// from a list of stones (-moves). Examples:
//
//	$ gogroups -config=size=9x9,seed=13
//	$ gogroups -moves="C3b D3w C4b D4w" -config=size=5 -show=board,groups
package main

import (
	"flag"
	"fmt"
	"github.com/janpfeifer/goGroups/internal/fill"
	"github.com/janpfeifer/goGroups/internal/groups"
	. "github.com/janpfeifer/goGroups/internal/state"
	"github.com/janpfeifer/goGroups/internal/ui/cli"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"strings"
)

var (
	flagConfig = flag.String("config", "",
		"Random board configuration, e.g. \"size=9x11,seed=13,empty=0.33\". "+
			"With -moves only the size is used.")
	flagLayout = flag.String("layout", "", "File with the board layout: one line per row, top row first, "+
		"with '.' for empty points, '#' for black and 'o' for white stones.")
	flagMoves = flag.String("moves", "", "Stones to place on an empty board, e.g. \"C3b D3w C4b\".")
	flagColor = flag.Bool("color", true, "Use ANSI colors when printing.")
	flagShow  = flag.String("show", "board,dead,summary",
		"Comma separated views to print: board, dead, liberties, groups, summary.")
)

var validViews = []string{"board", "dead", "liberties", "groups", "summary"}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	views := parseViews(*flagShow)
	if *flagLayout != "" && *flagMoves != "" {
		klog.Exitf("-layout and -moves cannot be used together")
	}

	grid := must.M1(createGrid())
	result := groups.FindGroups(grid)
	klog.V(1).Infof("Found %d groups (%d dead) in %s board", result.Len(), len(result.Dead()), grid.Size())

	ui := cli.New(os.Stdout, *flagColor)
	for _, view := range views {
		switch view {
		case "board":
			fmt.Println("Board:")
			ui.PrintGrid(grid)
		case "dead":
			fmt.Println("Dead groups:")
			ui.PrintDeadGroups(result)
		case "liberties":
			fmt.Println("Liberties of groups:")
			ui.PrintLiberties(result)
		case "groups":
			fmt.Println("Groups:")
			ui.PrintGroups(result)
			fmt.Println()
		case "summary":
			ui.PrintSummary(result)
		}
	}
}

func parseViews(show string) (views []string) {
	for _, view := range strings.Split(show, ",") {
		view = strings.ToLower(strings.TrimSpace(view))
		if view == "" {
			continue
		}
		valid := false
		for _, validView := range validViews {
			if view == validView {
				valid = true
				break
			}
		}
		if !valid {
			klog.Exitf("Invalid -show view %q, valid values are %q", view, validViews)
		}
		views = append(views, view)
	}
	return
}

// createGrid from the layout file, the moves or the random configuration.
func createGrid() (*Grid, error) {
	cfg, err := fill.NewConfig(*flagConfig)
	if err != nil {
		return nil, err
	}
	if *flagLayout != "" {
		contents, err := os.ReadFile(*flagLayout)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read layout from %q", *flagLayout)
		}
		var rows []string
		for _, line := range strings.Split(string(contents), "\n") {
			if strings.TrimSpace(line) != "" {
				rows = append(rows, line)
			}
		}
		grid, err := ParseGrid(rows)
		return grid, errors.WithMessagef(err, "layout file %q", *flagLayout)
	}
	if *flagMoves != "" {
		stones, err := ParseStones(*flagMoves)
		if err != nil {
			return nil, err
		}
		grid, err := NewGrid(cfg.Size)
		if err != nil {
			return nil, err
		}
		for _, stone := range stones {
			if !grid.IsInside(stone.Point) {
				return nil, errors.Errorf("stone %s is outside of the %s board", stone, cfg.Size)
			}
		}
		fill.Apply(grid, fill.Stones(stones))
		return grid, nil
	}
	return cfg.NewGrid()
}
