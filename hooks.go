package mf2lint

// LintHook observes every check a Linter runs. Hooks are called from the
// linter's worker goroutines and must be safe for concurrent use.
type LintHook interface {
	BeforeCheck(ctx *CheckContext)
	AfterCheck(ctx *CheckContext)
}

// CheckContext describes one check. Report is set before AfterCheck runs;
// a hook may replace it.
type CheckContext struct {
	Check        Check
	Locale       string
	SourceLocale string
	Key          string
	Report       *Report
	Metadata     map[string]any
}

func (ctx *CheckContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *CheckContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *CheckContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type HookFuncs struct {
	Before func(ctx *CheckContext)
	After  func(ctx *CheckContext)
}

func (h HookFuncs) BeforeCheck(ctx *CheckContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterCheck(ctx *CheckContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func runHooked(hooks []LintHook, ctx *CheckContext, check func() *Report) *Report {
	for _, hook := range hooks {
		hook.BeforeCheck(ctx)
	}

	ctx.Report = check()

	for _, hook := range hooks {
		hook.AfterCheck(ctx)
	}

	return ctx.Report
}
