package dto

// UpsertProfileRequest body for PUT /api/profile.
type UpsertProfileRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	GSTIN         string `json:"gstin,omitempty"`
	LogoPath      string `json:"logo_path,omitempty"`
	SignaturePath string `json:"signature_path,omitempty"`
}

// ProfileResponse business profile in responses.
type ProfileResponse struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	GSTIN         string `json:"gstin,omitempty"`
	LogoPath      string `json:"logo_path,omitempty"`
	SignaturePath string `json:"signature_path,omitempty"`
}
