package apierrors

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sabique2003/Tasklite/pkg/translator"
)

// JsonErr is the body of every error response: {"error":{"code","message"}}.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError builds a response body with msgKey translated for lang.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

// GetTransErrorMsg falls back to the key itself when no bundle has it.
func GetTransErrorMsg(msgKey string, lang string) string {
	msg, err := translator.Lookup(lang, msgKey)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
