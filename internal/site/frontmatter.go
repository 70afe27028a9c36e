package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"

	"github.com/alnah/go-atoms/internal/yamlutil"
)

// frontMatterFormats lists the recognized blocks. YAML is decoded by the
// same size-capped decoder as atoms.yaml.
var frontMatterFormats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", unmarshalYAML),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
	frontmatter.NewFormat(";;;", ";;;", json.Unmarshal),
}

// unmarshalYAML accepts an empty block.
func unmarshalYAML(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
}

// FrontMatter holds the scalar values of a page's front matter block.
type FrontMatter map[string]string

// SplitFrontMatter separates a leading front matter block from content.
// YAML ("---"), TOML ("+++") and JSON (";;;") blocks are recognized.
// Content without a block is returned unchanged with a nil FrontMatter.
// Non-scalar values (lists, maps) are reported in skipped and left out.
func SplitFrontMatter(content string) (fm FrontMatter, body string, skipped []string, err error) {
	var raw map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(content), &raw, frontMatterFormats...)
	if err != nil {
		return nil, content, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if len(raw) == 0 {
		return nil, string(rest), nil, nil
	}

	fm = make(FrontMatter, len(raw))
	for key, value := range raw {
		s, ok := scalarString(value)
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		fm[key] = s
	}
	sort.Strings(skipped)
	return fm, string(rest), skipped, nil
}

func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly), true
		}
		return x.Format(time.RFC3339), true
	default:
		return "", false
	}
}
