package config

var (
	AppVersion             = "v1.2.0"
	AppPort                = "3000"
	AppDebug               = false
	AppOs                  = "ZapAgenda"
	AppBasicAuthCredential []string
	AppBasePath            = ""

	PathQrCode   = "statics/qrcode"
	PathStorages = "storages"

	// DBURI points at the schedule database. SQLite file URIs and
	// postgres:// URIs are both accepted.
	DBURI = "file:storages/zapagenda.db?_journal_mode=WAL&_foreign_keys=on"

	// WhatsappDBURI points at the whatsmeow session store.
	WhatsappDBURI    = "file:storages/whatsapp.db?_foreign_keys=on"
	WhatsappLogLevel = "ERROR"
	WhatsappOsName   = "Linux"

	WhatsappTypeUser  = "@s.whatsapp.net"
	WhatsappTypeGroup = "@g.us"
)
