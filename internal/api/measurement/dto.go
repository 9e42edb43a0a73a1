package measurement

import (
	"time"

	"github.com/developeragencia/visaomais/internal/entity"
)

type MeasureRequest struct {
	ClientID    string `json:"client_id" form:"client_id" validate:"required"`
	PhotoBase64 string `json:"photo_base64" form:"photo_base64"`
}

type MeasurementResponse struct {
	ID        string                   `json:"id"`
	ClientID  string                   `json:"client_id"`
	UserID    string                   `json:"user_id"`
	PhotoURL  string                   `json:"photo_url,omitempty"`
	Source    string                   `json:"source"`
	Report    entity.MeasurementReport `json:"report"`
	CreatedAt time.Time                `json:"created_at"`
}

type MeasurementListResponse struct {
	Measurements []MeasurementResponse `json:"measurements"`
	Total        int                   `json:"total"`
}

type QualityCheckResponse struct {
	Quality entity.QualityReport `json:"quality"`
}
