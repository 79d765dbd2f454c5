package mf2lint

// PluralFunctionName is the annotation that makes a selector plural aware.
const PluralFunctionName = "number"

// IsPluralSelector reports whether ref resolves, through any chain of
// local aliases, to a declaration annotated with :number.
func IsPluralSelector(msg Message, ref VariableRef) bool {
	return newSelectorClassifier(msg, nil).isPlural(ref)
}

type selectorClassifier struct {
	decls     map[string]Declaration
	functions map[string]struct{}
}

func newSelectorClassifier(msg Message, functions []string) *selectorClassifier {
	c := &selectorClassifier{
		decls:     make(map[string]Declaration, len(msg.Declarations)),
		functions: make(map[string]struct{}, len(functions)+1),
	}

	// The first binding of a name wins; redeclaration is a data model
	// error reported by the parser.
	for _, decl := range msg.Declarations {
		if _, exists := c.decls[decl.Name]; exists {
			continue
		}
		c.decls[decl.Name] = decl
	}

	if len(functions) == 0 {
		c.functions[PluralFunctionName] = struct{}{}
	}
	for _, name := range functions {
		c.functions[name] = struct{}{}
	}
	return c
}

func (c *selectorClassifier) isPlural(ref VariableRef) bool {
	visited := make(map[string]struct{}, 4)
	name := ref.Name

	for {
		if _, seen := visited[name]; seen {
			// cyclic aliasing
			return false
		}
		visited[name] = struct{}{}

		decl, ok := c.decls[name]
		if !ok {
			// unbound variable
			return false
		}

		rhs := decl.Value
		if rhs.Annotated() {
			_, ok := c.functions[rhs.FunctionRef.Name]
			return ok
		}

		if rhs.Arg == nil || rhs.Arg.Variable == nil {
			return false
		}
		name = rhs.Arg.Variable.Name
	}
}
