package mf2lint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type rawTyped struct {
	Type  string       `json:"type"`
	Name  string       `json:"name"`
	Value *scalarValue `json:"value"`
}

// scalarValue holds a literal value written either as a string or, as YAML
// and TOML allow for unquoted keys like `value: 1`, as a bare number. Numbers
// keep their JSON text.
type scalarValue string

func (v *scalarValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*v = scalarValue(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("literal value must be a string or number: %s", trimmed)
	}
	*v = scalarValue(number.String())
	return nil
}

func (o *Operand) UnmarshalJSON(data []byte) error {
	var raw rawTyped
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case "literal":
		lit := &Literal{}
		if raw.Value != nil {
			lit.Value = string(*raw.Value)
		}
		*o = Operand{Literal: lit}
	case "variable":
		if raw.Name == "" {
			return fmt.Errorf("variable operand without name")
		}
		*o = Operand{Variable: &VariableRef{Name: raw.Name}}
	default:
		return fmt.Errorf("unknown operand type %q", raw.Type)
	}
	return nil
}

func (o Operand) MarshalJSON() ([]byte, error) {
	switch {
	case o.Variable != nil:
		return json.Marshal(map[string]string{"type": "variable", "name": o.Variable.Name})
	case o.Literal != nil:
		return json.Marshal(map[string]string{"type": "literal", "value": o.Literal.Value})
	default:
		return []byte("null"), nil
	}
}

func (k *Key) UnmarshalJSON(data []byte) error {
	var raw rawTyped
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case "*":
		*k = CatchallKey()
	case "literal":
		if raw.Value == nil {
			return fmt.Errorf("literal key without value")
		}
		*k = LiteralKey(string(*raw.Value))
	default:
		return fmt.Errorf("unknown key type %q", raw.Type)
	}
	return nil
}

func (k Key) MarshalJSON() ([]byte, error) {
	if k.Catchall {
		return json.Marshal(map[string]string{"type": "*"})
	}
	return json.Marshal(map[string]string{"type": "literal", "value": k.Value})
}

func (p *PatternPart) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*p = Text(text)
		return nil
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(trimmed, &head); err != nil {
		return err
	}

	switch head.Type {
	case "expression":
		var expr Expression
		if err := json.Unmarshal(trimmed, &expr); err != nil {
			return err
		}
		*p = PatternPart{Expression: &expr}
	case "markup":
		*p = PatternPart{Markup: true}
	default:
		return fmt.Errorf("unknown pattern part type %q", head.Type)
	}
	return nil
}

func (p PatternPart) MarshalJSON() ([]byte, error) {
	switch {
	case p.Expression != nil:
		return json.Marshal(struct {
			Type string `json:"type"`
			Expression
		}{Type: "expression", Expression: *p.Expression})
	case p.Markup:
		return json.Marshal(map[string]string{"type": "markup"})
	default:
		return json.Marshal(p.Text)
	}
}

// DecodeMessage decodes a single data model document. The format is chosen
// from the extension of name.
func DecodeMessage(name string, data []byte) (Message, error) {
	var msg Message
	if err := decodeDocument(name, data, &msg); err != nil {
		return Message{}, err
	}
	if msg.Type == "" {
		msg.Type = MessageTypePattern
		if len(msg.Variants) > 0 {
			msg.Type = MessageTypeSelect
		}
	}
	return msg, nil
}

// decodeDocument decodes JSON directly; YAML and TOML documents are first
// decoded into generic values and re-encoded as JSON so the data model
// decoders above apply to every format.
func decodeDocument(name string, data []byte, out any) error {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".json":
		return json.Unmarshal(data, out)
	case ".yaml", ".yml":
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return err
		}
		return reencode(generic, out)
	case ".toml":
		var generic map[string]any
		if _, err := toml.Decode(string(data), &generic); err != nil {
			return err
		}
		return reencode(generic, out)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func reencode(generic any, out any) error {
	payload, err := json.Marshal(generic)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}
