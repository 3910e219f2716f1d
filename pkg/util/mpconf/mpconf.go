// Package mpconf parses the block-structured multipath.conf format into
// sections, nested blocks and key/value attributes.
package mpconf

import (
	"bufio"
	"fmt"
	"strings"
)

// Attribute is a single "key value" line.
type Attribute struct {
	Key   string
	Value string
}

// Block is a named group of attributes, e.g. a "device" entry inside "devices".
type Block struct {
	Name       string
	Attributes []Attribute
	Blocks     []Block
}

// Get returns the value of the first attribute named key.
func (b *Block) Get(key string) (string, bool) {
	for _, a := range b.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}

	return "", false
}

// Has reports whether an attribute named key exists.
func (b *Block) Has(key string) bool {
	_, ok := b.Get(key)

	return ok
}

// Children returns the nested blocks named name.
func (b *Block) Children(name string) []Block {
	var result []Block

	for _, c := range b.Blocks {
		if c.Name == name {
			result = append(result, c)
		}
	}

	return result
}

// Config is a parsed multipath.conf; top-level sections are its blocks.
type Config struct {
	Block
}

// Section returns the first top-level section named name.
func (c *Config) Section(name string) (*Block, bool) {
	for i := range c.Blocks {
		if c.Blocks[i].Name == name {
			return &c.Blocks[i], true
		}
	}

	return nil, false
}

// Parse reads multipath.conf content. Comments start with '#' or '!'.
func Parse(content string) (*Config, error) {
	root := &Block{}
	stack := []*Block{root}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		for line != "" {
			current := stack[len(stack)-1]

			switch {
			case line == "}" || strings.HasPrefix(line, "}"):
				if len(stack) == 1 {
					return nil, fmt.Errorf("line %d: unexpected '}'", lineNo)
				}

				stack = stack[:len(stack)-1]
				line = strings.TrimSpace(line[1:])

			case strings.Contains(line, "{"):
				idx := strings.Index(line, "{")

				name := strings.TrimSpace(line[:idx])
				if name == "" {
					return nil, fmt.Errorf("line %d: block without a name", lineNo)
				}

				current.Blocks = append(current.Blocks, Block{Name: name})
				stack = append(stack, &current.Blocks[len(current.Blocks)-1])
				line = strings.TrimSpace(line[idx+1:])

			default:
				rest := line
				if idx := strings.Index(line, "}"); idx >= 0 {
					rest = strings.TrimSpace(line[:idx])
					line = line[idx:]
				} else {
					line = ""
				}

				if len(stack) == 1 {
					return nil, fmt.Errorf("line %d: attribute %q outside of a section", lineNo, rest)
				}

				current.Attributes = append(current.Attributes, parseAttribute(rest))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading multipath config: %w", err)
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("unterminated section %q", stack[len(stack)-1].Name)
	}

	return &Config{Block: *root}, nil
}

func stripComment(line string) string {
	inQuote := false

	for i, r := range line {
		switch r {
		case '"':
			inQuote = !inQuote
		case '#', '!':
			if !inQuote {
				return strings.TrimSpace(line[:i])
			}
		}
	}

	return strings.TrimSpace(line)
}

func parseAttribute(s string) Attribute {
	key, value := s, ""
	if idx := strings.IndexAny(s, " \t"); idx >= 0 {
		key, value = s[:idx], s[idx+1:]
	}

	return Attribute{
		Key:   key,
		Value: strings.Trim(strings.TrimSpace(value), `"`),
	}
}
