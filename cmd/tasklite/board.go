package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sabique2003/Tasklite/internal/adapter/export"
	httpadapter "github.com/sabique2003/Tasklite/internal/adapter/http"
	"github.com/sabique2003/Tasklite/internal/adapter/http/handlers"
	httpmiddleware "github.com/sabique2003/Tasklite/internal/adapter/http/middleware"
	"github.com/sabique2003/Tasklite/internal/adapter/http/web"
	"github.com/sabique2003/Tasklite/internal/adapter/restapi"
	"github.com/sabique2003/Tasklite/internal/app/board"
	"github.com/sabique2003/Tasklite/internal/config"
)

func boardCmd(cfg *config.Config) *cobra.Command {
	var port, storeURL string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Serve the kanban board against a task store",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := restapi.New(storeURL, cfg.TaskAPITimeout)
			taskBoard := board.New(client)
			// The first fetch happens at startup; a dead store leaves an empty board.
			if err := taskBoard.Refresh(cmd.Context()); err != nil {
				zap.L().Warn("task store unavailable at startup", zap.String("store", storeURL), zap.Error(err))
			}

			tmpl, err := web.Templates()
			if err != nil {
				return fmt.Errorf("parse board templates: %w", err)
			}

			r := gin.New()
			r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(zap.L()))
			if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
				return fmt.Errorf("set trusted proxies: %w", err)
			}
			r.SetHTMLTemplate(tmpl)

			healthHandler := handlers.NewHealthHandler(handlers.DependencyTaskStore, client)
			boardHandler := handlers.NewBoardHandler(taskBoard, export.NewPDFExporter(), export.NewXLSXExporter())
			httpadapter.RegisterBoardRoutes(r, healthHandler, boardHandler)

			addr := ":" + port
			zap.L().Info("starting board", zap.String("addr", addr), zap.String("store", storeURL))
			return r.Run(addr)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", cfg.AppPort, "HTTP port for the board")
	cmd.Flags().StringVar(&storeURL, "store-url", cfg.TaskAPIBaseURL, "base URL of the task store")

	return cmd
}
