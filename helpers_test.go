package mf2lint

import "strings"

func numberDecl(name string) Declaration {
	return annotatedDecl(name, PluralFunctionName)
}

func annotatedDecl(name, function string) Declaration {
	return Declaration{
		Type: "input",
		Name: name,
		Value: Expression{
			Arg:         &Operand{Variable: &VariableRef{Name: name}},
			FunctionRef: &FunctionRef{Name: function},
		},
	}
}

func aliasDecl(name, target string) Declaration {
	return Declaration{
		Type:  "local",
		Name:  name,
		Value: Expression{Arg: &Operand{Variable: &VariableRef{Name: target}}},
	}
}

func literalDecl(name, value string) Declaration {
	return Declaration{
		Type:  "local",
		Name:  name,
		Value: Expression{Arg: &Operand{Literal: &Literal{Value: value}}},
	}
}

func selectMessage(decls []Declaration, selectors []string, variants ...Variant) Message {
	refs := make([]VariableRef, len(selectors))
	for i, name := range selectors {
		refs[i] = VariableRef{Name: name}
	}
	return Message{
		Type:         MessageTypeSelect,
		Declarations: decls,
		Selectors:    refs,
		Variants:     variants,
	}
}

// keyed builds a variant from keys where "*" is the catch-all.
func keyed(keys ...string) Variant {
	return keyedWith(Pattern{Text(strings.Join(keys, " "))}, keys...)
}

func keyedWith(pattern Pattern, keys ...string) Variant {
	out := make([]Key, len(keys))
	for i, key := range keys {
		if key == "*" {
			out[i] = CatchallKey()
			continue
		}
		out[i] = LiteralKey(key)
	}
	return Variant{Keys: out, Value: pattern}
}

var czech = []PluralCategory{PluralOne, PluralFew, PluralMany, PluralOther}

var english = []PluralCategory{PluralOne, PluralOther}

// exhaustive builds a message with n :number selectors covering every tuple
// of categories plus the all catch-all default.
func exhaustive(n int, categories []PluralCategory) Message {
	decls := make([]Declaration, n)
	selectors := make([]string, n)
	for i := range n {
		name := "n" + string(rune('a'+i))
		decls[i] = numberDecl(name)
		selectors[i] = name
	}

	var variants []Variant
	for _, tuple := range CategoryTuples(n, categories) {
		keys := make([]string, n)
		for i, category := range tuple {
			keys[i] = string(category)
		}
		variants = append(variants, keyed(keys...))
	}

	defaults := make([]string, n)
	for i := range defaults {
		defaults[i] = "*"
	}
	variants = append(variants, keyed(defaults...))

	return selectMessage(decls, selectors, variants...)
}
