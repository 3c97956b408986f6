package action

import (
	"fmt"

	"github.com/oxhq/srgn/internal/german"
)

// Config selects which actions run and their parameters. Action order is
// always the fixed sequence below, regardless of the order fields are set.
type Config struct {
	ReplaceEnabled bool
	Replacement    string

	// HasScope reports whether the invocation supplied an explicit grammar,
	// regex, or literal scope. Delete and Squeeze both require one — without
	// it, every caller narrows to the whole input and silently deletes or
	// squeezes the entire file.
	HasScope bool

	Delete bool

	SqueezeEnabled bool

	Symbols       bool
	SymbolsInvert bool

	German               bool
	GermanNaive          bool
	GermanPreferOriginal bool

	Case CaseMode

	Normalize bool
}

// Validate enforces the combination rules the fixed action table requires.
func (c Config) Validate() error {
	if c.Delete && c.ReplaceEnabled {
		return fmt.Errorf("config: --delete and a replacement string are mutually exclusive")
	}
	if c.Delete && !c.HasScope {
		return fmt.Errorf("config: --delete requires an explicit scope")
	}
	if c.SqueezeEnabled && !c.HasScope {
		return fmt.Errorf("config: --squeeze-repeats requires an explicit scope")
	}
	if c.GermanNaive && c.GermanPreferOriginal {
		return fmt.Errorf("config: --german-naive and --german-prefer-original are mutually exclusive")
	}
	if (c.GermanNaive || c.GermanPreferOriginal) && !c.German {
		return fmt.Errorf("config: --german-naive/--german-prefer-original require --german")
	}
	return nil
}

func (c Config) germanPolicy() german.Policy {
	switch {
	case c.GermanNaive:
		return german.PolicyNaive
	case c.GermanPreferOriginal:
		return german.PolicyPreferOriginal
	default:
		return german.PolicyDefault
	}
}

// Apply runs the enabled actions over segs in the spec's fixed order:
// Replace, Delete, Squeeze, Symbols, German, Titlecase/Upper/Lower,
// Normalize. oracle may be nil when German is not enabled.
func Apply(cfg Config, oracle *german.Oracle, segs []Segment) ([]Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.ReplaceEnabled {
		replacement := cfg.Replacement
		segs = MapIn(segs, func(string) string { return replacement })
	}
	if cfg.Delete {
		segs = MapIn(segs, func(string) string { return "" })
	}
	if cfg.SqueezeEnabled {
		segs = Squeeze(segs)
	}
	if cfg.Symbols {
		segs = MapIn(segs, symbolsTransform(cfg.SymbolsInvert))
	}
	if cfg.German {
		segs = MapIn(segs, germanTransform(oracle, cfg.germanPolicy()))
	}
	switch cfg.Case {
	case CaseUpper:
		segs = MapIn(segs, upperTransform)
	case CaseLower:
		segs = MapIn(segs, lowerTransform)
	case CaseTitle:
		segs = MapIn(segs, titleTransform)
	}
	if cfg.Normalize {
		segs = MapIn(segs, normalizeTransform)
	}

	return segs, nil
}
