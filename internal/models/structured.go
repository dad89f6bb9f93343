package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Ingredient is one entry of a recipe's extendedIngredients list. Keys the
// typed fields do not declare are kept in Extra, and an entry that is not a
// JSON object (a plain "2 eggs" string, say) is kept verbatim in Raw.
type Ingredient struct {
	ID           int64    `json:"id"`
	Aisle        string   `json:"aisle"`
	Image        string   `json:"image"`
	Consistency  string   `json:"consistency"`
	Name         string   `json:"name"`
	NameClean    string   `json:"nameClean"`
	Original     string   `json:"original"`
	OriginalName string   `json:"originalName"`
	Amount       float64  `json:"amount"`
	Unit         string   `json:"unit"`
	Meta         []string `json:"meta"`

	Extra map[string]json.RawMessage `json:"-"`
	Raw   json.RawMessage            `json:"-"`
}

// StepItem is an ingredient or piece of equipment referenced by a step.
type StepItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`

	Extra map[string]json.RawMessage `json:"-"`
}

// StepLength is the optional duration of a step.
type StepLength struct {
	Number int    `json:"number"`
	Unit   string `json:"unit"`
}

// Step is a single numbered instruction.
type Step struct {
	Number      int         `json:"number"`
	Step        string      `json:"step"`
	Ingredients []StepItem  `json:"ingredients"`
	Equipment   []StepItem  `json:"equipment"`
	Length      *StepLength `json:"length,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Instruction is a named group of steps of a recipe's analyzedInstructions.
// Extra and Raw behave as on Ingredient.
type Instruction struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`

	Extra map[string]json.RawMessage `json:"-"`
	Raw   json.RawMessage            `json:"-"`
}

func (i *Ingredient) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		raw, err := compact(data)
		if err != nil {
			return err
		}
		*i = Ingredient{Raw: raw}
		return nil
	}
	type plain Ingredient
	var p plain
	if err := decodeRecord(data, &p, &p.Extra); err != nil {
		return err
	}
	*i = Ingredient(p)
	return nil
}

func (i Ingredient) MarshalJSON() ([]byte, error) {
	if i.Raw != nil {
		return i.Raw, nil
	}
	type plain Ingredient
	return encodeRecord(plain(i), i.Extra)
}

func (s *StepItem) UnmarshalJSON(data []byte) error {
	type plain StepItem
	var p plain
	if err := decodeRecord(data, &p, &p.Extra); err != nil {
		return err
	}
	*s = StepItem(p)
	return nil
}

func (s StepItem) MarshalJSON() ([]byte, error) {
	type plain StepItem
	return encodeRecord(plain(s), s.Extra)
}

func (s *Step) UnmarshalJSON(data []byte) error {
	type plain Step
	var p plain
	if err := decodeRecord(data, &p, &p.Extra); err != nil {
		return err
	}
	*s = Step(p)
	return nil
}

func (s Step) MarshalJSON() ([]byte, error) {
	type plain Step
	return encodeRecord(plain(s), s.Extra)
}

func (i *Instruction) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		raw, err := compact(data)
		if err != nil {
			return err
		}
		*i = Instruction{Raw: raw}
		return nil
	}
	type plain Instruction
	var p plain
	if err := decodeRecord(data, &p, &p.Extra); err != nil {
		return err
	}
	*i = Instruction(p)
	return nil
}

func (i Instruction) MarshalJSON() ([]byte, error) {
	if i.Raw != nil {
		return i.Raw, nil
	}
	type plain Instruction
	return encodeRecord(plain(i), i.Extra)
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// decodeRecord fills typed from a JSON object and moves every key typed does
// not emit back into extra.
func decodeRecord(data []byte, typed any, extra *map[string]json.RawMessage) error {
	if err := json.Unmarshal(data, typed); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	declared, err := objectKeys(typed)
	if err != nil {
		return err
	}
	for key := range declared {
		delete(fields, key)
	}
	for key, value := range fields {
		if fields[key], err = compact(value); err != nil {
			return err
		}
	}
	if len(fields) > 0 {
		*extra = fields
	}
	return nil
}

// encodeRecord marshals typed and merges in the extra keys it does not set.
func encodeRecord(typed any, extra map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(typed)
	if err != nil || len(extra) == 0 {
		return b, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := fields[key]; !ok {
			fields[key] = value
		}
	}
	return json.Marshal(fields)
}

func compact(data []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func objectKeys(v any) (map[string]json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// Ingredients is stored as a JSON array in a TEXT column
type Ingredients []Ingredient

// Value implements the driver.Valuer interface
func (i Ingredients) Value() (driver.Value, error) {
	return marshalArray(i, len(i))
}

// Scan implements the sql.Scanner interface
func (i *Ingredients) Scan(value interface{}) error {
	decoded := Ingredients{}
	if err := unmarshalArray(value, &decoded); err != nil {
		return fmt.Errorf("scan ingredients: %w", err)
	}
	*i = decoded
	return nil
}

// Instructions is stored as a JSON array in a TEXT column
type Instructions []Instruction

// Value implements the driver.Valuer interface
func (i Instructions) Value() (driver.Value, error) {
	return marshalArray(i, len(i))
}

// Scan implements the sql.Scanner interface
func (i *Instructions) Scan(value interface{}) error {
	decoded := Instructions{}
	if err := unmarshalArray(value, &decoded); err != nil {
		return fmt.Errorf("scan instructions: %w", err)
	}
	*i = decoded
	return nil
}

func marshalArray(v any, n int) (driver.Value, error) {
	if n == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// unmarshalArray decodes a TEXT column; NULL and empty text leave dst untouched.
func unmarshalArray(value interface{}, dst any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
