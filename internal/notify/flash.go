package notify

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// maxFlashItems bounds the cookie size.
const maxFlashItems = 8

// EncodeFlash serialises notifications for a redirect cookie. Only the most
// recent maxFlashItems survive.
func EncodeFlash(items []Notification) (string, error) {
	if len(items) > maxFlashItems {
		items = items[len(items)-maxFlashItems:]
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode flash: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeFlash reverses EncodeFlash. Severities are normalised.
func DecodeFlash(value string) ([]Notification, error) {
	if value == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode flash: %w", err)
	}
	var items []Notification
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode flash: %w", err)
	}
	for i := range items {
		items[i].Severity = ParseSeverity(string(items[i].Severity))
		if items[i].DismissAfterMS <= 0 {
			items[i].DismissAfterMS = DismissAfter.Milliseconds()
		}
	}
	return items, nil
}
