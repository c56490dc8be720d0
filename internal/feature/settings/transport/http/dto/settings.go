// Package dto defines data transfer objects for the settings HTTP API.
package dto

import "nikkei_backend/internal/feature/settings/domain/entity"

// SettingsResponse is the wire form of the dashboard settings record.
type SettingsResponse struct {
	Theme       string `json:"theme"`
	NewsEnabled bool   `json:"newsEnabled"`
	PriceSource string `json:"priceSource"`
}

// UpdateSettingsRequest is the mutation payload. All fields are
// required; partial updates are not supported.
type UpdateSettingsRequest struct {
	Theme       string `json:"theme" binding:"required"`
	NewsEnabled *bool  `json:"newsEnabled" binding:"required"`
	PriceSource string `json:"priceSource" binding:"required"`
}

// ToEntity converts the request into the domain form.
func (r UpdateSettingsRequest) ToEntity() entity.Settings {
	return entity.Settings{
		Theme:       r.Theme,
		NewsEnabled: *r.NewsEnabled,
		PriceSource: r.PriceSource,
	}
}

// FromEntity converts domain settings into the wire representation.
func FromEntity(s entity.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:       s.Theme,
		NewsEnabled: s.NewsEnabled,
		PriceSource: s.PriceSource,
	}
}
