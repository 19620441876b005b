package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
	"github.com/zapagenda/zapagenda/config"
	domainApp "github.com/zapagenda/zapagenda/domains/app"
	"github.com/zapagenda/zapagenda/infrastructure/whatsapp"
	pkgError "github.com/zapagenda/zapagenda/pkg/error"
	"github.com/zapagenda/zapagenda/pkg/utils"
	"github.com/zapagenda/zapagenda/validations"
	"go.mau.fi/whatsmeow"
)

type serviceApp struct{}

func NewAppService() domainApp.IAppUsecase {
	return &serviceApp{}
}

// Login starts a QR pairing flow. The QR payload is rendered to a PNG under
// statics/qrcode and removed again once it expires.
func (service *serviceApp) Login(ctx context.Context) (response domainApp.LoginResponse, err error) {
	client := whatsapp.GetClient()
	if client == nil {
		return response, pkgError.ErrWaCLI
	}

	// Disconnect for reconnecting
	client.Disconnect()

	chImage := make(chan string)

	ch, err := client.GetQRChannel(context.Background())
	if err != nil {
		// This error means we already have a session saved.
		if errors.Is(err, whatsmeow.ErrQRStoreContainsID) {
			_ = client.Connect()
			if client.IsLoggedIn() {
				return response, pkgError.ErrAlreadyLoggedIn
			}
			return response, pkgError.ErrSessionSaved
		}
		return response, pkgError.ErrQrChannel
	}

	go func() {
		for evt := range ch {
			response.Code = evt.Code
			response.Duration = evt.Timeout / time.Second / 2
			if evt.Event == "code" {
				whatsapp.GetTracker().CredentialIssued(evt.Code)

				qrPath := fmt.Sprintf("%s/scan-qr-%s.png", config.PathQrCode, uuid.NewString())
				if writeErr := qrcode.WriteFile(evt.Code, qrcode.Medium, 512, qrPath); writeErr != nil {
					logrus.Error("Error when write qr code to file: ", writeErr)
				}
				go func(path string, ttl time.Duration) {
					time.Sleep(ttl * time.Second)
					if removeErr := utils.RemoveFile(path); removeErr != nil {
						logrus.Error("error when remove qr image file: ", removeErr)
					}
				}(qrPath, response.Duration)
				chImage <- qrPath
			} else {
				logrus.Error("error when get qr code: ", evt.Event, evt.Error)
			}
		}
	}()

	if err = client.Connect(); err != nil {
		logrus.Error("Error when connect to whatsapp: ", err)
		return response, pkgError.ErrReconnect
	}
	response.ImagePath = <-chImage

	return response, nil
}

// LoginWithCode pairs through a phone-entered code instead of a QR scan.
func (service *serviceApp) LoginWithCode(ctx context.Context, phoneNumber string) (loginCode string, err error) {
	if err = validations.ValidateLoginWithCode(ctx, phoneNumber); err != nil {
		return loginCode, err
	}

	client := whatsapp.GetClient()
	if client == nil {
		return loginCode, pkgError.ErrWaCLI
	}
	if client.Store.ID != nil || client.IsLoggedIn() {
		logrus.Warn("User is already logged in")
		return loginCode, pkgError.ErrAlreadyLoggedIn
	}

	if err = service.Reconnect(ctx); err != nil {
		return loginCode, err
	}

	loginCode, err = client.PairPhone(ctx, phoneNumber, true, whatsmeow.PairClientChrome, "Chrome (Linux)")
	if err != nil {
		logrus.Errorf("Error when pairing phone: %s", err.Error())
		return loginCode, err
	}

	whatsapp.GetTracker().CredentialIssued(loginCode)
	logrus.Infof("Successfully requested pairing code for %s", phoneNumber)
	return loginCode, nil
}

func (service *serviceApp) Logout(ctx context.Context) (err error) {
	client := whatsapp.GetClient()
	if client == nil {
		return pkgError.ErrWaCLI
	}

	if err = client.Logout(ctx); err != nil {
		logrus.Errorf("WhatsApp logout failed: %v", err)
		return err
	}

	whatsapp.GetTracker().SessionClosed()
	return nil
}

func (service *serviceApp) Reconnect(ctx context.Context) (err error) {
	client := whatsapp.GetClient()
	if client == nil {
		return pkgError.ErrWaCLI
	}

	client.Disconnect()
	return client.Connect()
}

// ConnectionStatus maps the tracker snapshot plus the live client flags into
// the presentation shape.
func (service *serviceApp) ConnectionStatus(ctx context.Context) (response domainApp.StatusResponse) {
	snapshot := whatsapp.GetTracker().Snapshot()
	response.State = string(snapshot.State)
	response.Code = snapshot.Code

	if client := whatsapp.GetClient(); client != nil {
		response.IsConnected = client.IsConnected()
		response.IsLoggedIn = client.IsLoggedIn()
	}
	return response
}
