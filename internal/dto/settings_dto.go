package dto

// SettingsResponse mirrors the three webhook settings. The API key is
// reported only as configured/not-configured, never echoed back.
type SettingsResponse struct {
	ProxyURL         string `json:"proxy_url"`
	SheetURL         string `json:"sheet_url"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}

// UpdateSettingsRequest updates any subset of the webhook settings. A nil
// field is left untouched; an empty string clears the setting.
type UpdateSettingsRequest struct {
	ProxyURL    *string `json:"proxy_url"`
	SheetURL    *string `json:"sheet_url"`
	ProxyAPIKey *string `json:"proxy_api_key"`
}
