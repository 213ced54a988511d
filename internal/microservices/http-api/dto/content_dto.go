package dto

import "encoding/json"

// UpsertContentDTO for PUT /api/admin/content/:section. Content must be a JSON object.
type UpsertContentDTO struct {
	Content json.RawMessage `json:"content" binding:"required"`
}
