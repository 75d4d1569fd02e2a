package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabique2003/Tasklite/internal/adapter/restapi"
	"github.com/sabique2003/Tasklite/internal/app/board"
	"github.com/sabique2003/Tasklite/internal/config"
)

func listCmd(cfg *config.Config) *cobra.Command {
	var storeURL string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the board lanes from the task store",
		RunE: func(cmd *cobra.Command, args []string) error {
			taskBoard := board.New(restapi.New(storeURL, cfg.TaskAPITimeout))
			if err := taskBoard.Refresh(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, lane := range taskBoard.View().Lanes {
				fmt.Fprintf(out, "%s (%d)\n", lane.Status, len(lane.Tasks))
				for _, task := range lane.Tasks {
					fmt.Fprintf(out, "  %s  [%s] %s  due %s\n", task.ID, task.Priority, task.Title, task.DueDay())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&storeURL, "store-url", cfg.TaskAPIBaseURL, "base URL of the task store")

	return cmd
}
