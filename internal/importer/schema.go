// Package importer reads and writes the settings file of the Natural Language
// Dates editor plugin (data.json), so a configured plugin can seed nldates and
// the other way round.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// PluginSettings is the plugin's data.json. Absent keys decode to nil and
// leave the corresponding setting untouched on import.
type PluginSettings struct {
	AutosuggestToggleLink       *bool   `json:"autosuggestToggleLink,omitempty"`
	AutocompleteTriggerPhrase   *string `json:"autocompleteTriggerPhrase,omitempty"`
	IsAutosuggestEnabled        *bool   `json:"isAutosuggestEnabled,omitempty"`
	AppendTimeToDateWhenRelated *bool   `json:"appendTimeToDateWhenRelated,omitempty"`

	Format     *string `json:"format,omitempty"`
	TimeFormat *string `json:"timeFormat,omitempty"`
	Separator  *string `json:"separator,omitempty"`
	WeekStart  *string `json:"weekStart,omitempty"`

	// Date picker modal state. nldates has no equivalent; kept so an export
	// is a complete file.
	ModalToggleTime   *bool   `json:"modalToggleTime,omitempty"`
	ModalToggleLink   *bool   `json:"modalToggleLink,omitempty"`
	ModalMomentFormat *string `json:"modalMomentFormat,omitempty"`
}

// LoadPluginSettings reads and decodes a data.json file.
func LoadPluginSettings(path string) (*PluginSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	return ParsePluginSettings(data)
}

// ParsePluginSettings decodes data.json content. Unknown keys are ignored.
func ParsePluginSettings(data []byte) (*PluginSettings, error) {
	var p PluginSettings
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing settings JSON: %w", err)
	}
	return &p, nil
}

// Marshal encodes p as indented JSON with a trailing newline.
func (p *PluginSettings) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
