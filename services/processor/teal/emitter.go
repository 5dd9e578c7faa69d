// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package teal

import (
	"encoding/hex"
	"fmt"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/pkg/errors"
	"strings"
)

const Version = 5
const MinimalVersion = 5

// newest AVM version algod assembles
const MaximalVersion = 10

type program struct {
	lines     []string
	lastLabel int
}

func newProgram(version uint32) *program {
	return &program{lines: []string{fmt.Sprintf("#pragma version %d", version)}}
}

func (p *program) emit(lines ...string) {
	p.lines = append(p.lines, lines...)
}

func (p *program) newLabel() string {
	p.lastLabel++
	return fmt.Sprintf("main_l%d", p.lastLabel)
}

func (p *program) String() string {
	return strings.Join(p.lines, "\n") + "\n"
}

type branch struct {
	condition []string
	body      func(p *program)
}

// each condition is tested in order, the first one that holds jumps to its body; none holding runs the fallback
func (p *program) cond(branches []branch, fallback func(p *program)) {
	labels := make([]string, len(branches))
	for i, b := range branches {
		labels[i] = p.newLabel()
		p.emit(b.condition...)
		p.emit("bnz " + labels[i])
	}
	fallback(p)
	for i, b := range branches {
		p.emit(labels[i] + ":")
		b.body(p)
	}
}

func approve(p *program) {
	p.emit("int 1", "return")
}

func fail(p *program) {
	p.emit("err")
}

func ApprovalProgram(contract *types.ContractInfo, version uint32) (string, error) {
	if err := validate(contract, version); err != nil {
		return "", err
	}

	counterKey := byteConstant([]byte(contract.CounterKey))
	p := newProgram(version)

	p.cond([]branch{
		{
			condition: []string{"txn ApplicationID", "int 0", "=="},
			body: func(p *program) {
				p.emit(counterKey, "int 0", "app_global_put")
				approve(p)
			},
		},
		{
			condition: []string{"txn OnCompletion", "int OptIn", "=="},
			body:      approve,
		},
		{
			condition: []string{"txn OnCompletion", "int NoOp", "=="},
			body: func(p *program) {
				operationDispatch(p, contract, counterKey)
			},
		},
	}, fail)

	return p.String(), nil
}

func operationDispatch(p *program, contract *types.ContractInfo, counterKey string) {
	branches := make([]branch, 0, len(contract.Operations))
	for _, op := range contract.Operations {
		effect := op.Effect
		branches = append(branches, branch{
			condition: []string{"txna ApplicationArgs 0", byteConstant([]byte(op.Name)), "=="},
			body: func(p *program) {
				if effect == types.EFFECT_INCREMENT_COUNTER {
					p.emit(counterKey, counterKey, "app_global_get", "int 1", "+", "app_global_put")
				}
				approve(p)
			},
		})
	}

	fallback := fail
	if contract.UnknownOperations == types.UNKNOWN_OPERATION_ACCEPT {
		// the operation argument must still exist, an argless call keeps failing
		fallback = func(p *program) {
			p.emit("txna ApplicationArgs 0", "pop")
			approve(p)
		}
	}
	p.cond(branches, fallback)
}

func ClearStateProgram(version uint32) (string, error) {
	if err := checkVersion(version); err != nil {
		return "", err
	}

	p := newProgram(version)
	approve(p)
	return p.String(), nil
}

func checkVersion(version uint32) error {
	if version < MinimalVersion || version > MaximalVersion {
		return errors.Errorf("teal version must be between %d and %d, got %d", MinimalVersion, MaximalVersion, version)
	}
	return nil
}

func validate(contract *types.ContractInfo, version uint32) error {
	if err := checkVersion(version); err != nil {
		return err
	}
	if contract == nil {
		return errors.New("missing contract")
	}
	if contract.CounterKey == "" {
		return errors.Errorf("contract %s declares no counter key", contract.Name)
	}
	if len(contract.CounterKey) > 64 {
		return errors.Errorf("counter key of contract %s exceeds 64 bytes", contract.Name)
	}

	seen := make(map[string]bool, len(contract.Operations))
	for _, op := range contract.Operations {
		if op.Name == "" {
			return errors.Errorf("contract %s declares an operation without a name", contract.Name)
		}
		if seen[op.Name] {
			return errors.Errorf("contract %s declares operation %s twice", contract.Name, op.Name)
		}
		seen[op.Name] = true

		if op.Effect != types.EFFECT_NONE && op.Effect != types.EFFECT_INCREMENT_COUNTER {
			return errors.Errorf("operation %s of contract %s has unsupported effect %s", op.Name, contract.Name, op.Effect)
		}
	}
	return nil
}

// printable ascii goes out as a string literal, anything else as hex
func byteConstant(value []byte) string {
	for _, b := range value {
		if b < 0x20 || b > 0x7e || b == '"' || b == '\\' {
			return "byte 0x" + hex.EncodeToString(value)
		}
	}
	return fmt.Sprintf("byte \"%s\"", value)
}
