package models

import (
	"github.com/infrallm/infrallm/ent"
)

// HostNoteResponse wraps the operational note attached to a host
type HostNoteResponse struct {
	*ent.HostNote
}

// UpdatePromptSettingsRequest sets per-user prompt customization. Nil
// pointers leave the corresponding field unchanged.
type UpdatePromptSettingsRequest struct {
	SystemPrompt          *string `json:"system_prompt,omitempty"`
	PersonalizationPrompt *string `json:"personalization_prompt,omitempty"`
	DefaultModel          *string `json:"default_model,omitempty"`
}
