package main

import (
	"fmt"
	"path/filepath"

	"github.com/dali-douzi/bracketforge/internal/config"
	"github.com/dali-douzi/bracketforge/internal/store"
	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func teamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams <tournament.json>",
		Short: "List the roster, showing which teams are still unplaced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			t, err := store.LoadTournament(args[0])
			if err != nil {
				return err
			}

			st, err := store.OpenSQLite(filepath.Join(cfg.DataDir, "brackets.db"))
			if err != nil {
				return fmt.Errorf("opening bracket store: %w", err)
			}
			defer st.Close()

			g := bracketgraph.New()
			if snap, ok, err := st.Load(t.ID); err != nil {
				return fmt.Errorf("loading bracket: %w", err)
			} else if ok {
				g.ReplaceAll(snap.Nodes, snap.Edges)
			}

			placed := bracketgraph.PlacedTeamIDs(g)
			placedFmt := color.New(color.FgGreen)
			openFmt := color.New(color.FgYellow, color.Bold)

			fmt.Printf("%s — %d teams\n", t.Name, len(t.Teams))
			for _, team := range t.Teams {
				if placed[team.ID] {
					placedFmt.Printf("  placed    %s\n", team.Name)
				} else {
					openFmt.Printf("  unplaced  %s\n", team.Name)
				}
			}
			return nil
		},
	}
}
