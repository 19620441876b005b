package app

import (
	"context"
	"time"
)

type IAppUsecase interface {
	Login(ctx context.Context) (response LoginResponse, err error)
	LoginWithCode(ctx context.Context, phoneNumber string) (loginCode string, err error)
	Logout(ctx context.Context) (err error)
	Reconnect(ctx context.Context) (err error)
	ConnectionStatus(ctx context.Context) (response StatusResponse)
}

type LoginResponse struct {
	ImagePath string        `json:"image_path"`
	Duration  time.Duration `json:"duration"`
	Code      string        `json:"code"`
}

// StatusResponse is the Authentication State Tracker snapshot exposed to the
// presentation layer.
type StatusResponse struct {
	State       string `json:"state"`
	Code        string `json:"code,omitempty"`
	IsConnected bool   `json:"is_connected"`
	IsLoggedIn  bool   `json:"is_logged_in"`
}
