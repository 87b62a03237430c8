// SPDX-License-Identifier: MPL-2.0

package embedded

import "strings"

// DefaultSeparator is the separator used when a source does not configure an
// explicit one. It matches the convention of dotted resource identifiers
// such as "MyAssembly.Directory.File.txt".
const DefaultSeparator = '.'

type (
	// strategyKind tags the ParseStrategy variant.
	strategyKind int

	// ParseStrategy describes how a source's flat identifiers are split
	// into path segments and a leaf name. Construct one with
	// DefaultStrategy or SeparatorStrategy.
	//
	// Splitting is purely positional. Under the default dotted strategy
	// the final separator belongs to the file extension, so the boundary
	// between directory path and leaf name is the second-to-last
	// separator ("App.Dir.File.txt" -> "Dir", "File.txt"). Under an
	// explicit separator the "name.ext" piece contains no separator and
	// the boundary is simply the last one ("App/Dir/File.With.Dots.txt"
	// -> "Dir", "File.With.Dots.txt").
	//
	// Directory or file names that legitimately contain the separator
	// character make the split ambiguous; it resolves by position alone,
	// never by content inspection. Sources with such names should
	// configure a separator that does not occur in their names.
	ParseStrategy struct {
		kind      strategyKind
		prefix    string
		separator rune
	}
)

const (
	// strategyDefault uses DefaultSeparator with the source's name as prefix.
	strategyDefault strategyKind = iota
	// strategySeparator uses an explicitly configured separator character.
	strategySeparator
)

// DefaultStrategy returns the strategy used when no explicit separator is
// configured: the source's declared name as prefix and '.' as separator.
func DefaultStrategy(prefix string) ParseStrategy {
	return ParseStrategy{kind: strategyDefault, prefix: prefix, separator: DefaultSeparator}
}

// SeparatorStrategy returns a strategy with an explicitly configured
// separator, for sources whose file names legitimately contain '.'.
func SeparatorStrategy(prefix string, separator rune) ParseStrategy {
	return ParseStrategy{kind: strategySeparator, prefix: prefix, separator: separator}
}

// Prefix returns the prefix stripped from the front of each identifier.
func (s ParseStrategy) Prefix() string { return s.prefix }

// Separator returns the separator character the strategy splits on.
func (s ParseStrategy) Separator() rune { return s.separator }

// parseIdentifier splits one flat identifier into its directory path
// segments and leaf name. The identifier must start with the strategy's
// prefix (matched case-insensitively) followed by the separator; anything
// else fails with a MalformedIdentifierError.
func parseIdentifier(identifier string, strategy ParseStrategy) (segments []string, leaf string, err error) {
	sep := string(strategy.separator)
	head := strategy.prefix + sep
	if len(identifier) <= len(head) || !strings.EqualFold(identifier[:len(head)], head) {
		return nil, "", &MalformedIdentifierError{
			Identifier: identifier,
			Prefix:     strategy.prefix,
			Separator:  strategy.separator,
		}
	}
	relative := identifier[len(head):]

	last := strings.LastIndex(relative, sep)
	if last < 0 {
		return nil, relative, nil
	}
	boundary := last
	if strategy.kind == strategyDefault {
		// The final dot belongs to the extension; the separator before
		// it, if any, delimits the leaf name from the directory path.
		boundary = strings.LastIndex(relative[:last], sep)
		if boundary < 0 {
			return nil, relative, nil
		}
	}
	return strings.Split(relative[:boundary], sep), relative[boundary+len(sep):], nil
}
