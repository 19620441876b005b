package whatsapp

import (
	"context"
	"fmt"
	"strings"

	domainChat "github.com/zapagenda/zapagenda/domains/chat"
	pkgError "github.com/zapagenda/zapagenda/pkg/error"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"google.golang.org/protobuf/proto"
)

// Session adapts the shared whatsmeow client to the chat.ISession contract.
type Session struct{}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) SendMessage(ctx context.Context, chatID string, text string) error {
	client := GetClient()
	if client == nil {
		return pkgError.ErrWaCLI
	}

	jid, err := parseJID(chatID)
	if err != nil {
		return err
	}

	msg := &waE2E.Message{
		ExtendedTextMessage: &waE2E.ExtendedTextMessage{
			Text: proto.String(text),
		},
	}

	_, err = client.SendMessage(ctx, jid, msg)
	return err
}

// SetAdminsOnly toggles the group announce flag: true restricts posting to
// admins, false opens the group again.
func (s *Session) SetAdminsOnly(ctx context.Context, chatID string, adminsOnly bool) error {
	client := GetClient()
	if client == nil {
		return pkgError.ErrWaCLI
	}

	jid, err := parseJID(chatID)
	if err != nil {
		return err
	}

	return client.SetGroupAnnounce(ctx, jid, adminsOnly)
}

// IsReady reports whether the session can dispatch right now.
func (s *Session) IsReady() bool {
	client := GetClient()
	return client != nil && client.IsConnected() && client.IsLoggedIn()
}

func (s *Session) Groups(ctx context.Context) ([]domainChat.GroupInfo, error) {
	client := GetClient()
	if client == nil {
		return nil, pkgError.ErrWaCLI
	}

	groups, err := client.GetJoinedGroups(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domainChat.GroupInfo, 0, len(groups))
	for _, g := range groups {
		result = append(result, domainChat.GroupInfo{
			ID:   g.JID.String(),
			Name: g.Name,
		})
	}
	return result, nil
}

// parseJID converts a chat identifier to a JID. Plain numbers default to the
// user server.
func parseJID(chatID string) (types.JID, error) {
	if strings.TrimSpace(chatID) == "" {
		return types.JID{}, fmt.Errorf("empty chat id")
	}
	if strings.Contains(chatID, "@") {
		return types.ParseJID(chatID)
	}
	return types.NewJID(chatID, types.DefaultUserServer), nil
}
