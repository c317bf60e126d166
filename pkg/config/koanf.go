package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/v2"

	"github.com/mfriesen/toolup/pkg/setupfile"
)

// cfgParser adapts the setupfile grammar to koanf's Parser interface so the
// setup file can participate in layered loading like any other format.
type cfgParser struct {
	dialect setupfile.Dialect
}

// Parser returns a koanf parser for the setup file format under the given
// dialect.
func Parser(d setupfile.Dialect) koanf.Parser {
	return &cfgParser{dialect: d}
}

// Unmarshal parses setup file bytes into the nested map koanf merges.
func (p *cfgParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	store, err := setupfile.Parse(strings.NewReader(string(b)), p.dialect)
	if err != nil {
		return nil, err
	}
	return store.Nested(), nil
}

// Marshal renders a nested map back to canonical setup file text. Top-level
// scalars have no section to live in and are dropped, matching the parse
// direction.
func (p *cfgParser) Marshal(m map[string]interface{}) ([]byte, error) {
	flat := make(map[string]string)
	flatten("", m, flat)
	return EncodeCfg(flat), nil
}

// EncodeCfg renders a flat qualified-key mapping as setup file text: one
// header per parent path, keys sorted within it. The header of each key is
// everything up to its last dot. Keys whose parent path is a section the
// dialect recognizes survive a re-parse unchanged; keys under any other top
// level (an env override can introduce one) still emit a header, but a
// re-parse under the dialect skips it as unrecognized.
func EncodeCfg(flat map[string]string) []byte {
	grouped := make(map[string]map[string]string)
	for key, value := range flat {
		i := strings.LastIndexByte(key, '.')
		if i <= 0 || i == len(key)-1 {
			continue
		}
		header, name := key[:i], key[i+1:]
		if grouped[header] == nil {
			grouped[header] = make(map[string]string)
		}
		grouped[header][name] = value
	}

	headers := make([]string, 0, len(grouped))
	for h := range grouped {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	var b strings.Builder
	for i, header := range headers {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[" + header + "]\n")
		keys := make([]string, 0, len(grouped[header]))
		for k := range grouped[header] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(k + "=" + grouped[header][k] + "\n")
		}
	}
	return []byte(b.String())
}

func flatten(prefix string, m map[string]interface{}, out map[string]string) {
	for key, value := range m {
		qualified := key
		if prefix != "" {
			qualified = prefix + "." + key
		}
		if child, ok := value.(map[string]interface{}); ok {
			flatten(qualified, child, out)
			continue
		}
		out[qualified] = fmt.Sprintf("%v", value)
	}
}
