package handlers

import (
	"errors"
	"net/http"

	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
)

// MsgRemoteUnavailable текст для сетевых ошибок, когда у Holidaze API нет своего сообщения
const MsgRemoteUnavailable = "booking service is unavailable, please try again later"

// RespondRemoteUnavailable отправляет 502 с кодом remote_unavailable
// Если в цепочке есть ответ Holidaze API, его сообщение уходит пользователю как есть
func RespondRemoteUnavailable(w http.ResponseWriter, err error) {
	message := MsgRemoteUnavailable

	var remoteErr *holidazeClient.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Message != "" {
		message = remoteErr.Message
	}

	RespondErrorWithCode(w, http.StatusBadGateway, CodeRemoteError, message)
}
