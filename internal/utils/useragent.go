package utils

import (
	ua "github.com/mssola/user_agent"
)

// DeviceInfo holds parsed information from a User-Agent string.
type DeviceInfo struct {
	DeviceType string `json:"device_type"` // mobile, desktop, bot, unknown
	OS         string `json:"os"`
	Browser    string `json:"browser"`
	IsBot      bool   `json:"is_bot"`
	Raw        string `json:"raw"`
}

// ParseUserAgent parses a User-Agent string for request logging.
func ParseUserAgent(userAgent string) DeviceInfo {
	if userAgent == "" {
		return DeviceInfo{DeviceType: "unknown", OS: "Unknown", Browser: "Unknown"}
	}

	parser := ua.New(userAgent)
	browser, _ := parser.Browser()

	info := DeviceInfo{
		OS:      parser.OS(),
		Browser: browser,
		IsBot:   parser.Bot(),
		Raw:     userAgent,
	}

	switch {
	case parser.Bot():
		info.DeviceType = "bot"
	case parser.Mobile():
		info.DeviceType = "mobile"
	default:
		info.DeviceType = "desktop"
	}

	return info
}
