// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package fake

import (
	"context"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFakeCompiler_IsDeterministic(t *testing.T) {
	c := NewCompiler()

	first, err := c.Compile(context.Background(), "#pragma version 5\nint 1\nreturn\n")
	require.NoError(t, err)
	second, err := c.Compile(context.Background(), "#pragma version 5\nint 1\nreturn")
	require.NoError(t, err)

	require.Equal(t, first.Hash, second.Hash, "trailing whitespace is not part of the program")
	require.Len(t, first.Hash, 58)
	require.Len(t, c.CompiledSources(), 2)
}

func TestFakeCompiler_DifferentProgramsHaveDifferentHashes(t *testing.T) {
	c := NewCompiler()

	first, err := c.Compile(context.Background(), "#pragma version 5\nint 1\nreturn")
	require.NoError(t, err)
	second, err := c.Compile(context.Background(), "#pragma version 5\nint 0\nreturn")
	require.NoError(t, err)

	require.NotEqual(t, first.Hash, second.Hash)
}

func TestFakeCompiler_RequiresPragma(t *testing.T) {
	_, err := NewCompiler().Compile(context.Background(), "int 1")
	require.Error(t, err)
}
