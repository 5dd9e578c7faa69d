// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package repository

import (
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/stretchr/testify/require"
	"testing"
)

// safety test: a contract added to the index must be well formed or its artifacts and dispatch will not line up
func TestRepository_AllContractsAreWellFormed(t *testing.T) {
	artifactNames := map[string]bool{}
	for name, contract := range Contracts {
		require.Equal(t, name, contract.Name, "index key must match contract name")
		require.NotEmpty(t, contract.CounterKey, "contract %s has no counter key", name)
		require.NotEmpty(t, contract.ArtifactName, "contract %s has no artifact name", name)
		require.False(t, artifactNames[contract.ArtifactName], "artifact name %s used twice", contract.ArtifactName)
		artifactNames[contract.ArtifactName] = true

		incrementing := 0
		opNames := map[string]bool{}
		for _, op := range contract.Operations {
			require.NotEmpty(t, op.Name, "contract %s has an unnamed operation", name)
			require.False(t, opNames[op.Name], "contract %s declares operation %s twice", name, op.Name)
			opNames[op.Name] = true
			if op.Effect == types.EFFECT_INCREMENT_COUNTER {
				incrementing++
			}
		}
		require.Equal(t, 1, incrementing, "contract %s must have exactly one counter incrementing operation", name)
	}
}

func TestRepository_AllIsSortedByName(t *testing.T) {
	all := All()
	require.Len(t, all, len(Contracts))
	for i := 1; i < len(all); i++ {
		require.True(t, all[i-1].Name < all[i].Name, "contracts not sorted")
	}
}

func TestRepository_ContractsDoNotShareCounters(t *testing.T) {
	keys := map[string]bool{}
	for _, contract := range Contracts {
		require.False(t, keys[contract.CounterKey], "counter key %s shared between contracts", contract.CounterKey)
		keys[contract.CounterKey] = true
	}
}
