package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки сообщений через Z-API WhatsApp Business
// Если apiURL или clientToken не заданы, клиент работает в режиме симуляции:
// сообщения логируются, но не отправляются
type Client struct {
	apiURL      string
	clientToken string
	httpClient  *http.Client
	log         Logger
	enabled     bool
}

// NewClient создает новый экземпляр клиента Z-API
func NewClient(apiURL, clientToken string, timeout time.Duration, log Logger) *Client {
	enabled := apiURL != "" && clientToken != ""
	if !enabled {
		log.Warn("Z-API WhatsApp not configured, messages will be simulated")
	}

	return &Client{
		apiURL:      strings.TrimRight(apiURL, "/"),
		clientToken: clientToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		enabled: enabled,
	}
}

// SendText отправляет текстовое сообщение на указанный номер WhatsApp
// Номер нормализуется: остаются только цифры, добавляется код страны 55
func (c *Client) SendText(ctx context.Context, phone, message string) error {
	normalized := normalizePhone(phone)

	if !c.enabled {
		c.log.Info("[SIMULADO] WhatsApp message to %s: %s", normalized, message)
		return nil
	}

	payload, err := json.Marshal(sendTextRequest{
		Phone:   normalized,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := c.apiURL + "/send-text"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-Token", c.clientToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}

	c.log.Info("WhatsApp message sent to %s", normalized)
	return nil
}

// normalizePhone убирает нецифровые символы и добавляет код страны 55 (Бразилия)
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return digits
}
