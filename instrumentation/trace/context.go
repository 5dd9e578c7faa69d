// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"fmt"
	"github.com/orbs-network/scribe/log"
	"sync/atomic"
	"time"
)

type entryPointKeyType string

const entryPointKey entryPointKeyType = "ep"
const RequestId = "request-id"

var requestCounter uint64

type Context struct {
	created   time.Time
	name      string
	requestId string
}

// decorates the context of a request entering the node (an http call, a cli emission run)
func NewContext(parent context.Context, name string) context.Context {
	now := time.Now()
	ep := &Context{
		name:      name,
		created:   now,
		requestId: fmt.Sprintf("%s-%d-%d", name, now.UnixNano(), atomic.AddUint64(&requestCounter, 1)),
	}
	return context.WithValue(parent, entryPointKey, ep)
}

func FromContext(ctx context.Context) (e *Context, ok bool) {
	e, ok = ctx.Value(entryPointKey).(*Context)
	return
}

func (c *Context) RequestId() string {
	if c == nil {
		return ""
	}
	return c.requestId
}

func (c *Context) EntryPoint() string {
	if c == nil {
		return ""
	}
	return c.name
}

func (c *Context) Elapsed() time.Duration {
	return time.Since(c.created)
}

func LogFieldFrom(ctx context.Context) *log.Field {
	if trace, ok := FromContext(ctx); ok {
		return log.String(RequestId, trace.requestId)
	} else {
		return log.String(RequestId, "NO-CONTEXT")
	}
}
