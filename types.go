package mf2lint

// Message type discriminators as emitted by MessageFormat 2 parsers.
const (
	MessageTypePattern = "message"
	MessageTypeSelect  = "select"
)

// Message is a read only view over a parsed MessageFormat 2 message.
// Pattern messages carry Pattern; selection messages carry Selectors and Variants.
type Message struct {
	Type         string        `json:"type"`
	Declarations []Declaration `json:"declarations,omitempty"`
	Pattern      Pattern       `json:"pattern,omitempty"`
	Selectors    []VariableRef `json:"selectors,omitempty"`
	Variants     []Variant     `json:"variants,omitempty"`
}

// IsSelect reports whether m is a selection (.match) message.
func (m Message) IsSelect() bool {
	return m.Type == MessageTypeSelect
}

// Declaration binds Name to Value. Type is "input" or "local".
type Declaration struct {
	Type  string     `json:"type"`
	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

// Expression is an optional operand with an optional function annotation.
type Expression struct {
	Arg         *Operand     `json:"arg,omitempty"`
	FunctionRef *FunctionRef `json:"functionRef,omitempty"`
}

// Annotated reports whether the expression carries a function annotation.
func (e Expression) Annotated() bool {
	return e.FunctionRef != nil
}

// Operand is either a literal or a variable reference.
type Operand struct {
	Literal  *Literal
	Variable *VariableRef
}

// Literal is a quoted or unquoted literal value.
type Literal struct {
	Value string `json:"value"`
}

// VariableRef names a variable, without the leading '$'.
type VariableRef struct {
	Name string `json:"name"`
}

func (v VariableRef) String() string {
	return "$" + v.Name
}

// FunctionRef is an annotation such as `:number`.
type FunctionRef struct {
	Name    string             `json:"name"`
	Options map[string]Operand `json:"options,omitempty"`
}

// Variant is one case of a selection message.
type Variant struct {
	Keys  []Key   `json:"keys"`
	Value Pattern `json:"value"`
}

// Key is a variant key: a literal value or the catch-all `*`.
type Key struct {
	Value    string
	Catchall bool
}

// LiteralKey builds a literal key.
func LiteralKey(value string) Key {
	return Key{Value: value}
}

// CatchallKey builds the `*` key.
func CatchallKey() Key {
	return Key{Catchall: true}
}

// Pattern is a sequence of text and placeholder parts. A nil Pattern on a
// variant violates the data model.
type Pattern []PatternPart

// PatternPart is literal text, an expression or markup.
type PatternPart struct {
	Text       string
	Expression *Expression
	Markup     bool
}

// Text builds a text pattern part.
func Text(s string) PatternPart {
	return PatternPart{Text: s}
}

// Placeholder builds an expression part referencing the named variable.
func Placeholder(name string) PatternPart {
	return PatternPart{Expression: &Expression{Arg: &Operand{Variable: &VariableRef{Name: name}}}}
}

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Catalogs maps locale to message key to message.
type Catalogs map[string]map[string]Message

func pluralCategoryOrder(category PluralCategory) int {
	switch category {
	case PluralZero:
		return 0
	case PluralOne:
		return 1
	case PluralTwo:
		return 2
	case PluralFew:
		return 3
	case PluralMany:
		return 4
	case PluralOther:
		return 5
	default:
		return 99
	}
}

// dedupCategories drops empty and repeated names, keeping first occurrence
// order.
func dedupCategories(categories []PluralCategory) []PluralCategory {
	if len(categories) == 0 {
		return nil
	}

	out := make([]PluralCategory, 0, len(categories))
	seen := make(map[PluralCategory]struct{}, len(categories))
	for _, category := range categories {
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// withOther appends other to a non-empty category list missing it.
func withOther(categories []PluralCategory) []PluralCategory {
	categories = dedupCategories(categories)
	if len(categories) == 0 {
		return nil
	}
	for _, category := range categories {
		if category == PluralOther {
			return categories
		}
	}
	return append(categories, PluralOther)
}
