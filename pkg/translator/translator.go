package translator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads every <lang>.toml under the folder. Files for
// languages outside SupportedLanguages are skipped when that list is set.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".toml" {
			continue
		}
		if !supported(cfg.SupportedLanguages, strings.TrimSuffix(name, ".toml")) {
			zap.L().Debug("skipping unsupported translation", zap.String("file", name))
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, name)); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", name), zap.Error(err))
		}
	}
}

func supported(langs []string, lang string) bool {
	if len(langs) == 0 {
		return true
	}
	for _, l := range langs {
		if l == lang {
			return true
		}
	}
	return false
}

// Lookup resolves msgID for an Accept-Language value, falling back to English.
func Lookup(lang, msgID string) (string, error) {
	if Translator == nil {
		return "", &i18n.MessageNotFoundErr{Tag: language.English, MessageID: msgID}
	}
	return i18n.NewLocalizer(Translator, lang, LanguageEn).Localize(&i18n.LocalizeConfig{MessageID: msgID})
}

// Localize is Lookup with the message id as the last resort.
func Localize(lang, msgID string) string {
	msg, err := Lookup(lang, msgID)
	if err != nil {
		return msgID
	}
	return msg
}

// LocalizeAll resolves every id in msgIDs.
func LocalizeAll(lang string, msgIDs []string) map[string]string {
	out := make(map[string]string, len(msgIDs))
	for _, id := range msgIDs {
		out[id] = Localize(lang, id)
	}
	return out
}
