package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sabique2003/Tasklite/internal/config"
	"github.com/sabique2003/Tasklite/pkg/translator"
)

var Version = "dev"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	rootCmd := &cobra.Command{
		Use:          "tasklite",
		Short:        "Kanban task board and its REST task store",
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(boardCmd(cfg))
	rootCmd.AddCommand(storeCmd(cfg))
	rootCmd.AddCommand(listCmd(cfg))
	rootCmd.AddCommand(exportCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
