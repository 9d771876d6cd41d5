package main

import (
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/dali-douzi/bracketforge/internal/bracketui"
	"github.com/dali-douzi/bracketforge/internal/config"
	"github.com/dali-douzi/bracketforge/internal/store"
	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <tournament.json>",
		Short: "Open the bracket editor for a tournament",
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

			m := bracketui.NewModel(t, st)
			m.Autosave = cfg.Autosave
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			return nil
		},
	}
}
