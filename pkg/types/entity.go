package types

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
)

type Field struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Readonly bool      `json:"readonly,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// EntityConfig is the schema of one hospital entity type.
type EntityConfig struct {
	Type   string  `json:"type"`
	Label  string  `json:"label"`
	Icon   string  `json:"icon"`
	Fields []Field `json:"fields"`
}

func (c EntityConfig) Field(key string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
