package error

import "net/http"

type SessionError string

func (err SessionError) Error() string {
	return string(err)
}

func (err SessionError) ErrCode() string {
	return "SESSION_ERROR"
}

func (err SessionError) StatusCode() int {
	return http.StatusServiceUnavailable
}

var (
	ErrWaCLI           = SessionError("whatsapp client is not initialized")
	ErrNotReady        = SessionError("whatsapp session is not ready, please login first")
	ErrAlreadyLoggedIn = SessionError("you are already logged in")
	ErrSessionSaved    = SessionError("session found in storage, please use reconnect instead of login")
	ErrQrChannel       = SessionError("error while getting qr channel")
	ErrReconnect       = SessionError("error while reconnecting to whatsapp")
)
