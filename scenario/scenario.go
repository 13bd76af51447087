// Package scenario describes scripted sequences of list operations and runs
// them against a duallist.List.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported step operations.
const (
	OpPushBack      = "push_back"
	OpPushFront     = "push_front"
	OpInsert        = "insert"
	OpInsertN       = "insert_n"
	OpErase         = "erase"
	OpEraseN        = "erase_n"
	OpPopBack       = "pop_back"
	OpPopFront      = "pop_front"
	OpClear         = "clear"
	OpAssign        = "assign"
	OpAssignValues  = "assign_values"
	OpResize        = "resize"
	OpEmplaceFront  = "emplace_front"
	OpRemove        = "remove"
	OpRemoveGreater = "remove_greater"
	OpSplice        = "splice"
	OpMerge         = "merge"
	OpReverse       = "reverse"
	OpUnique        = "unique"
	OpSort          = "sort"
	OpDump          = "dump"
)

var knownOps = map[string]bool{
	OpPushBack: true, OpPushFront: true, OpInsert: true, OpInsertN: true,
	OpErase: true, OpEraseN: true, OpPopBack: true, OpPopFront: true,
	OpClear: true, OpAssign: true, OpAssignValues: true, OpResize: true,
	OpEmplaceFront: true, OpRemove: true, OpRemoveGreater: true,
	OpSplice: true, OpMerge: true, OpReverse: true, OpUnique: true,
	OpSort: true, OpDump: true,
}

// ErrUnknownOp is the error returned for a step whose op is not supported.
var ErrUnknownOp = errors.New("unknown op")

// Step is a single operation. Which of the argument fields are read depends
// on Op; for splice and merge, Values is the other list.
type Step struct {
	Op     string `yaml:"op"`
	Value  int    `yaml:"value,omitempty"`
	Values []int  `yaml:"values,omitempty"`
	Pos    int    `yaml:"pos,omitempty"`
	Count  int    `yaml:"count,omitempty"`
	Dump   bool   `yaml:"dump,omitempty"`
}

// Scenario is a named list of steps applied to a list seeded with Initial.
type Scenario struct {
	Name    string `yaml:"name"`
	Initial []int  `yaml:"initial,omitempty"`
	Steps   []Step `yaml:"steps"`
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Validate ...
func (sc *Scenario) Validate() error {
	for i, s := range sc.Steps {
		if !knownOps[s.Op] {
			return fmt.Errorf("step %d: %q: %w", i, s.Op, ErrUnknownOp)
		}
	}
	return nil
}
