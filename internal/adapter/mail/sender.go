package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/ports"
)

const sendTimeout = 10 * time.Second

// Sender posts messages to the hosted email-sending API as a JSON body with
// from/to/subject/html/text fields.
type Sender struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

type sendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

var _ ports.Mailer = (*Sender)(nil)

func NewSender(endpoint, apiKey string) *Sender {
	return &Sender{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: sendTimeout},
	}
}

func (s *Sender) Send(ctx context.Context, msg ports.EmailMessage) error {
	body, err := json.Marshal(sendPayload{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email api returned %d: %s", resp.StatusCode, snippet)
	}
	return nil
}
