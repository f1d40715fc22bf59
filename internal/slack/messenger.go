package slack

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	goslack "github.com/slack-go/slack"
)

// readyCheckInterval bounds how often Ready re-verifies the token against
// the Slack API.
const readyCheckInterval = time.Minute

// Messenger delivers announcements to Slack channels.
type Messenger struct {
	api *goslack.Client

	mu          sync.Mutex
	lastCheck   time.Time
	lastHealthy bool
}

func NewMessenger(botToken string) *Messenger {
	return &Messenger{
		api: goslack.New(botToken),
	}
}

// API exposes the underlying client for the slash command handler.
func (m *Messenger) API() *goslack.Client {
	return m.api
}

// Ready reports whether the bot token is currently accepted by Slack. The
// result is cached for a minute so schedulers ticking every minute do not
// hammer auth.test.
func (m *Messenger) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if time.Since(m.lastCheck) < readyCheckInterval {
		return m.lastHealthy
	}

	_, err := m.api.AuthTest()
	if err != nil {
		log.Printf("Slack auth check failed: %v", err)
	}
	m.lastCheck = time.Now()
	m.lastHealthy = err == nil
	return m.lastHealthy
}

func (m *Messenger) SendMessage(ctx context.Context, channelID, text string) error {
	_, _, err := m.api.PostMessageContext(
		ctx,
		channelID,
		goslack.MsgOptionText(text, false),
		goslack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}

func (m *Messenger) SendFile(ctx context.Context, channelID, filePath, caption string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filePath, err)
	}

	_, err = m.api.UploadFileV2Context(ctx, goslack.UploadFileV2Parameters{
		Channel:        channelID,
		File:           filePath,
		Filename:       filepath.Base(filePath),
		FileSize:       int(info.Size()),
		InitialComment: caption,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to Slack: %w", err)
	}
	return nil
}
