package testdata

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const globalBlock = "global"

var ErrorUnknownTestCase = errors.New("test data not available for test case")

// File holds one block of values per test case plus the shared global block.
// A block may be written as a list, in which case its first element is used.
type File struct {
	blocks map[string]map[string]any
}

type Data map[string]any

func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(content)
}

func Parse(content []byte) (*File, error) {
	raw := map[string]any{}

	err := yaml.Unmarshal(content, &raw)
	if err != nil {
		return nil, err
	}

	blocks := make(map[string]map[string]any, len(raw))
	for name, value := range raw {
		block, err := firstBlock(value)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", name, err)
		}

		if block != nil {
			blocks[name] = block
		}
	}

	return &File{blocks: blocks}, nil
}

func firstBlock(value any) (map[string]any, error) {
	if list, ok := value.([]any); ok {
		if len(list) == 0 {
			return nil, nil
		}
		value = list[0]
	}

	block, err := cast.ToStringMapE(value)
	if err != nil {
		return nil, err
	}

	return block, nil
}

// Case merges the global block with the block of testCase; test case values win.
func (f *File) Case(testCase string) (Data, error) {
	caseBlock, ok := f.blocks[testCase]
	if !ok || testCase == globalBlock {
		return nil, fmt.Errorf("%w: %q", ErrorUnknownTestCase, testCase)
	}

	data := Data{}
	for key, value := range f.blocks[globalBlock] {
		data[key] = value
	}
	for key, value := range caseBlock {
		data[key] = value
	}

	return data, nil
}

func (f *File) Cases() []string {
	names := make([]string, 0, len(f.blocks))
	for name := range f.blocks {
		if name != globalBlock {
			names = append(names, name)
		}
	}

	return names
}

func (d Data) Has(key string) bool {
	_, ok := d[key]
	return ok
}

func (d Data) String(key string) string {
	return cast.ToString(d[key])
}

func (d Data) Int(key string) (int, error) {
	value, ok := d[key]
	if !ok {
		return 0, fmt.Errorf("missing test data %s", key)
	}

	return cast.ToIntE(value)
}
