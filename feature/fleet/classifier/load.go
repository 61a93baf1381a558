package classifier

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"
)

// LoadTable reads a classification table from YAML. Keys are picture-book
// numbers, values the page sources of pages 1..n in ParseSource form:
//
//	185:
//	  - swimsuit
//	  - original1(true)
func LoadTable(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier table: %w", err)
	}

	// Keys are decoded untyped: the YAML integer 185 must not become a rune.
	var raw yaml.MapSlice
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse classifier table: %w", err)
	}

	table := make(Table, len(raw))
	for _, item := range raw {
		key := fmt.Sprint(item.Key)
		bookNo, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid book number %q: %w", key, err)
		}
		if _, ok := table[bookNo]; ok {
			return nil, fmt.Errorf("book number %d listed twice", bookNo)
		}
		tokens, err := tokenList(item.Value)
		if err != nil {
			return nil, fmt.Errorf("book %d: %w", bookNo, err)
		}
		sources := make([]PageSource, 0, len(tokens))
		for i, token := range tokens {
			src, err := ParseSource(token)
			if err != nil {
				return nil, fmt.Errorf("book %d page %d: %w", bookNo, i+1, err)
			}
			sources = append(sources, src)
		}
		table[bookNo] = sources
	}
	return table, nil
}

// tokenList converts the decoded value of one table entry to its tokens.
func tokenList(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("want a list of page sources, got %T", v)
	}
	tokens := make([]string, len(list))
	for i, t := range list {
		tokens[i] = fmt.Sprint(t)
	}
	return tokens, nil
}

// LoadFile reads the table stored at path.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open classifier table: %w", err)
	}
	defer f.Close()
	return LoadTable(f)
}

// FromConfig builds the classifier used by the application: the built-in
// table, overlaid with the YAML file at overridePath when one is given.
func FromConfig(overridePath string) (*Classifier, error) {
	if overridePath == "" {
		return Default(), nil
	}
	override, err := LoadFile(overridePath)
	if err != nil {
		return nil, err
	}
	return &Classifier{table: DefaultTable().Merge(override)}, nil
}

// Marshal renders table as YAML in the form LoadTable reads.
func Marshal(table Table) ([]byte, error) {
	ids := make([]int, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	items := make(yaml.MapSlice, 0, len(ids))
	for _, id := range ids {
		tokens := make([]string, len(table[id]))
		for i, src := range table[id] {
			tokens[i] = src.String()
		}
		items = append(items, yaml.MapItem{Key: strconv.Itoa(id), Value: tokens})
	}
	return yaml.Marshal(items)
}
