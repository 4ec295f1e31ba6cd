package tools

import (
	"context"
	"fmt"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/logs"
	"github.com/bascanada/firebase-logs-mcp/pkg/log"
	"github.com/bascanada/firebase-logs-mcp/pkg/ty"
	"github.com/mark3labs/mcp-go/mcp"
)

// Header is the first line of a get_firebase_logs result.
func Header(service string) string {
	return fmt.Sprintf("Firebase Emulator Logs (%s):", service)
}

// queryFromArgs reads the get_firebase_logs arguments. Wrong types are
// ignored rather than rejected, like missing values.
func queryFromArgs(args ty.MI) logs.Query {
	var q logs.Query
	if s := args.GetString("service"); s != "" {
		q.Service.S(s)
	}
	if n, ok := args.GetIntOk("lines"); ok && n > 0 {
		q.Lines.S(n)
	}
	return q
}

func (d *Dispatcher) getLogs(ctx context.Context, args ty.MI) (*mcp.CallToolResult, error) {
	q := d.cfg.Defaults
	req := queryFromArgs(args)
	q.MergeInto(&req)

	path := d.cfg.LogFile(d.logPath)
	service := q.ServiceOrAll()
	log.Debug("id=%s reading %d lines of %s from %s", RequestID(ctx), q.LinesOrDefault(), service, path)

	text := logs.Read(path, q)

	return mcp.NewToolResultText(Header(service) + "\n\n" + text), nil
}
