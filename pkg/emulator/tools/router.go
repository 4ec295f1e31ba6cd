package tools

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bascanada/firebase-logs-mcp/pkg/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Router sits in front of the MCP server. A tools/call naming a tool the
// dispatcher does not know is answered with a method-not-found error, every
// other message is handled by the server.
type Router struct {
	server     *server.MCPServer
	dispatcher *Dispatcher
}

func NewRouter(s *server.MCPServer, d *Dispatcher) *Router {
	return &Router{server: s, dispatcher: d}
}

type toolCallMessage struct {
	Method mcp.MCPMethod `json:"method"`
	ID     any           `json:"id,omitempty"`
	Params struct {
		Name string `json:"name"`
	} `json:"params"`
}

// HandleMessage answers one JSON-RPC message, nil for notifications.
func (r *Router) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	if resp, ok := r.intercept(ctx, message); ok {
		return resp
	}
	return r.server.HandleMessage(ctx, message)
}

func (r *Router) intercept(ctx context.Context, message []byte) (mcp.JSONRPCMessage, bool) {
	var call toolCallMessage
	if err := json.Unmarshal(message, &call); err != nil {
		return nil, false
	}
	if call.Method != mcp.MethodToolsCall || call.ID == nil {
		return nil, false
	}
	if _, known := r.dispatcher.handlers[call.Params.Name]; known {
		return nil, false
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = call.Params.Name
	_, err := r.dispatcher.Dispatch(ctx, req)

	var notFound *MethodNotFoundError
	if !errors.As(err, &notFound) {
		return nil, false
	}
	return mcp.NewJSONRPCError(mcp.NewRequestId(call.ID), notFound.Code(), notFound.Error(), nil), true
}

// ServeStdio serves MCP over in and out until in is exhausted or ctx is done.
func (r *Router) ServeStdio(ctx context.Context, in io.Reader, out io.Writer, opts ...server.StdioOption) error {
	w := &syncWriter{w: out}
	pr, pw := io.Pipe()
	defer pr.Close()

	go r.filter(ctx, in, pw, w)

	stdio := server.NewStdioServer(r.server)
	for _, opt := range opts {
		opt(stdio)
	}
	return stdio.Listen(ctx, pr, w)
}

// filter copies in to next line by line, answering intercepted calls on out.
func (r *Router) filter(ctx context.Context, in io.Reader, next *io.PipeWriter, out io.Writer) {
	reader := bufio.NewReader(in)
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			if resp, ok := r.intercept(ctx, bytes.TrimSpace(line)); ok {
				if err := writeMessage(out, resp); err != nil {
					log.Error("failed to write response: %v", err)
				}
			} else if _, err := next.Write(line); err != nil {
				return
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				next.Close()
			} else {
				next.CloseWithError(readErr)
			}
			return
		}
	}
}

func writeMessage(w io.Writer, msg mcp.JSONRPCMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// syncWriter serialises writes so whole messages never interleave.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
