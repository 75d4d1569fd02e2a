package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "github.com/sabique2003/Tasklite/internal/adapter/db"
	httpadapter "github.com/sabique2003/Tasklite/internal/adapter/http"
	"github.com/sabique2003/Tasklite/internal/adapter/http/handlers"
	httpmiddleware "github.com/sabique2003/Tasklite/internal/adapter/http/middleware"
	appservice "github.com/sabique2003/Tasklite/internal/app/service"
	"github.com/sabique2003/Tasklite/internal/config"
)

func storeCmd(cfg *config.Config) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Serve the /tasks REST store backed by MySQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := dbadapter.ConnectDB(cfg)
			if err != nil {
				return fmt.Errorf("connect to mysql: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					zap.L().Warn("failed to close mysql connection", zap.Error(err))
				}
			}()

			r := gin.New()
			r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(zap.L()))
			if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
				return fmt.Errorf("set trusted proxies: %w", err)
			}

			healthHandler := handlers.NewHealthHandler(handlers.DependencyMysql, db)
			taskHandler := handlers.NewTaskHandler(appservice.NewTaskService(dbadapter.NewTaskRepository(db)))
			httpadapter.RegisterStoreRoutes(r, healthHandler, taskHandler)

			addr := ":" + port
			zap.L().Info("starting task store", zap.String("addr", addr))
			return r.Run(addr)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", cfg.StorePort, "HTTP port for the store")

	return cmd
}
