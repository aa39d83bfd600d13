package uajson

import "github.com/amine-amaach/opcua-json-codec/ua"

// WriteLocalizedText emits a LocalizedText. Reversible mode writes
// {"Locale": ..., "Text": ...} with either field omitted when empty (both
// empty writes {}). Non-reversible mode discards the locale and writes
// Text alone as a bare JSON string.
func (e *Encoder) WriteLocalizedText(v ua.LocalizedText) error {
	if !e.reversible {
		return e.WriteString(v.Text)
	}
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if v.Locale != "" {
		if err := e.WriteStringField("Locale", v.Locale); err != nil {
			return err
		}
	}
	if v.Text != "" {
		if err := e.WriteStringField("Text", v.Text); err != nil {
			return err
		}
	}
	return e.w.endObject()
}

// WriteLocalizedTextField emits a LocalizedText as a keyed object field.
func (e *Encoder) WriteLocalizedTextField(key string, v ua.LocalizedText) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteLocalizedText(v)
}
