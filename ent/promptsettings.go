// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/infrallm/infrallm/ent/promptsettings"
)

// PromptSettings is the model entity for the PromptSettings schema.
type PromptSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SystemPrompt holds the value of the "system_prompt" field.
	SystemPrompt string `json:"system_prompt,omitempty"`
	// PersonalizationPrompt holds the value of the "personalization_prompt" field.
	PersonalizationPrompt string `json:"personalization_prompt,omitempty"`
	// DefaultModel holds the value of the "default_model" field.
	DefaultModel string `json:"default_model,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptsettings.FieldID, promptsettings.FieldOrganizationID, promptsettings.FieldUserID, promptsettings.FieldSystemPrompt, promptsettings.FieldPersonalizationPrompt, promptsettings.FieldDefaultModel:
			values[i] = new(sql.NullString)
		case promptsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptSettings fields.
func (_m *PromptSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptsettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptsettings.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case promptsettings.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case promptsettings.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = value.String
			}
		case promptsettings.FieldPersonalizationPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personalization_prompt", values[i])
			} else if value.Valid {
				_m.PersonalizationPrompt = value.String
			}
		case promptsettings.FieldDefaultModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_model", values[i])
			} else if value.Valid {
				_m.DefaultModel = value.String
			}
		case promptsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PromptSettings.
// This includes values selected through modifiers, order, etc.
func (_m *PromptSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PromptSettings.
// Note that you need to call PromptSettings.Unwrap() before calling this method if this PromptSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptSettings) Update() *PromptSettingsUpdateOne {
	return NewPromptSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptSettings) Unwrap() *PromptSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptSettings) String() string {
	var builder strings.Builder
	builder.WriteString("PromptSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("system_prompt=")
	builder.WriteString(_m.SystemPrompt)
	builder.WriteString(", ")
	builder.WriteString("personalization_prompt=")
	builder.WriteString(_m.PersonalizationPrompt)
	builder.WriteString(", ")
	builder.WriteString("default_model=")
	builder.WriteString(_m.DefaultModel)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromptSettingsSlice is a parsable slice of PromptSettings.
type PromptSettingsSlice []*PromptSettings
