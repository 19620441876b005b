package whatsapp

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/zapagenda/zapagenda/config"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waCompanionReg"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
)

// Single-session state. One dispatcher instance owns one WhatsApp session.
var (
	stateMu sync.RWMutex
	cli     *whatsmeow.Client
	db      *sqlstore.Container
	tracker = NewAuthTracker()
)

// InitWaCLI opens the whatsmeow session store and builds the client. If a
// device session is already saved it connects right away; otherwise the
// client stays disconnected until a login is requested.
func InitWaCLI(ctx context.Context) (*whatsmeow.Client, error) {
	stateMu.Lock()
	defer stateMu.Unlock()

	if cli != nil {
		return cli, nil
	}

	driver, uri := resolveStoreDriver(config.WhatsappDBURI)
	dbLog := waLog.Stdout("DB", config.WhatsappLogLevel, true)

	container, err := sqlstore.New(ctx, driver, uri, dbLog)
	if err != nil {
		return nil, err
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil || device == nil {
		device = container.NewDevice()
	}

	chromePlatform := waCompanionReg.DeviceProps_CHROME
	osName := config.WhatsappOsName
	store.DeviceProps.PlatformType = &chromePlatform
	store.DeviceProps.Os = &osName

	client := whatsmeow.NewClient(device, waLog.Stdout("Client", config.WhatsappLogLevel, true))
	client.EnableAutoReconnect = true
	client.AutoTrustIdentity = true
	client.AddEventHandler(handleEvent)

	cli = client
	db = container

	if client.Store.ID != nil {
		if err := client.Connect(); err != nil {
			logrus.WithError(err).Error("[WHATSAPP] Failed to reconnect saved session")
		}
	}

	return cli, nil
}

// GetClient returns the shared whatsmeow client, nil before InitWaCLI.
func GetClient() *whatsmeow.Client {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return cli
}

// GetDB returns the whatsmeow session store container.
func GetDB() *sqlstore.Container {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return db
}

// GetTracker returns the shared authentication state tracker.
func GetTracker() *AuthTracker {
	return tracker
}

// handleEvent performs the tracker transitions for login-related events.
func handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.QR:
		if len(v.Codes) > 0 {
			tracker.CredentialIssued(v.Codes[0])
			logrus.Debug("[WHATSAPP] QR code issued")
		}
	case *events.PairSuccess:
		logrus.Infof("[WHATSAPP] Paired with %s", v.ID.String())
		tracker.SessionReady()
	case *events.Connected:
		client := GetClient()
		if client != nil && client.IsLoggedIn() {
			tracker.SessionReady()
			logrus.Info("[WHATSAPP] Session ready")
		}
	case *events.LoggedOut:
		logrus.Warn("[WHATSAPP] Logged out from device")
		tracker.SessionClosed()
	case *events.Disconnected:
		logrus.Debug("[WHATSAPP] Socket disconnected")
	}
}

func resolveStoreDriver(uri string) (driver string, dsn string) {
	if strings.HasPrefix(uri, "postgres://") || strings.HasPrefix(uri, "postgresql://") {
		return "postgres", uri
	}
	return "sqlite3", uri
}
