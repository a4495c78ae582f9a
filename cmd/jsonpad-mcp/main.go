package main

import (
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	mcpServer := server.NewMCPServer(
		"jsonpad-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	textParam := mcp.WithString("text",
		mcp.Required(),
		mcp.Description("JSON document text to operate on"),
	)

	formatTool := mcp.NewTool("format",
		mcp.WithDescription("Pretty-print or minify a JSON document"),
		textParam,
		mcp.WithString("indent",
			mcp.Description("Indent width (default 2); 0 minifies"),
		),
	)
	mcpServer.AddTool(formatTool, formatHandler)

	validateTool := mcp.NewTool("validate",
		mcp.WithDescription("Validate a JSON document and report the error position if invalid"),
		textParam,
	)
	mcpServer.AddTool(validateTool, validateHandler)

	queryTool := mcp.NewTool("query",
		mcp.WithDescription("Search keys and values of a JSON document, returning matching paths"),
		textParam,
		mcp.WithString("term",
			mcp.Required(),
			mcp.Description("Search term"),
		),
	)
	mcpServer.AddTool(queryTool, queryHandler)

	pathTool := mcp.NewTool("path",
		mcp.WithDescription("Resolve the JSON path at a character offset, tolerating malformed documents"),
		textParam,
		mcp.WithString("offset",
			mcp.Required(),
			mcp.Description("0-based character offset"),
		),
	)
	mcpServer.AddTool(pathTool, pathHandler)

	suggestTool := mcp.NewTool("suggest",
		mcp.WithDescription("Generate autocomplete candidates for a cursor position"),
		textParam,
		mcp.WithString("offset",
			mcp.Required(),
			mcp.Description("0-based cursor offset"),
		),
	)
	mcpServer.AddTool(suggestTool, suggestHandler)

	repairTool := mcp.NewTool("repair",
		mcp.WithDescription("Repair malformed JSON; fails if the repaired text still does not parse"),
		textParam,
	)
	mcpServer.AddTool(repairTool, repairHandler)

	diffTool := mcp.NewTool("diff",
		mcp.WithDescription("Unified diff of two JSON documents after canonical formatting"),
		textParam,
		mcp.WithString("other",
			mcp.Required(),
			mcp.Description("Second JSON document text"),
		),
	)
	mcpServer.AddTool(diffTool, diffHandler)

	exportTool := mcp.NewTool("export",
		mcp.WithDescription("Convert a JSON document to another format"),
		textParam,
		mcp.WithString("format",
			mcp.Required(),
			mcp.Description("Target format: json, json-pretty, yaml, toml, properties"),
		),
	)
	mcpServer.AddTool(exportTool, exportHandler)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
