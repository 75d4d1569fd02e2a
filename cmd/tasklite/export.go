package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sabique2003/Tasklite/internal/adapter/export"
	"github.com/sabique2003/Tasklite/internal/adapter/restapi"
	"github.com/sabique2003/Tasklite/internal/app/board"
	"github.com/sabique2003/Tasklite/internal/config"
	"github.com/sabique2003/Tasklite/internal/core/domain"
)

func exportCmd(cfg *config.Config) *cobra.Command {
	var storeURL, taskID, outDir string
	var wholeBoard bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a task PDF (--id) or the board workbook (--board)",
		Example: `  tasklite export --id 0b8f6d4e-3c52-4c1e-9a55-2f5c7d9e1a10
  tasklite export --board --out ./exports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (taskID == "") == !wholeBoard {
				return errors.New("specify exactly one of --id or --board")
			}

			taskBoard := board.New(restapi.New(storeURL, cfg.TaskAPITimeout))
			if err := taskBoard.Refresh(cmd.Context()); err != nil {
				return err
			}

			if wholeBoard {
				path := filepath.Join(outDir, "board.xlsx")
				if err := writeFile(path, func(f *os.File) error {
					return export.NewXLSXExporter().ExportBoard(f, taskBoard.View().Lanes)
				}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			task, ok := taskBoard.Task(taskID)
			if !ok {
				return fmt.Errorf("task %s: %w", taskID, domain.ErrTaskNotFound)
			}
			pdf := export.NewPDFExporter()
			path := filepath.Join(outDir, pdf.FileName(task))
			if err := writeFile(path, func(f *os.File) error {
				return pdf.ExportTask(f, task)
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&storeURL, "store-url", cfg.TaskAPIBaseURL, "base URL of the task store")
	cmd.Flags().StringVar(&taskID, "id", "", "task to export as PDF")
	cmd.Flags().BoolVar(&wholeBoard, "board", false, "export every lane as an XLSX workbook")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")

	return cmd
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
