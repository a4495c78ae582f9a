package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jsonpad/jsonpad"
	"github.com/mark3labs/mcp-go/mcp"
)

func formatHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	indent := jsonpad.DefaultIndent

	if raw := request.GetString("indent", ""); raw != "" {
		indent, err = strconv.Atoi(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid indent %q", raw)), nil
		}
	}

	var out string
	if indent == 0 {
		out, err = jsonpad.MinifyText(text)
	} else {
		out, err = jsonpad.FormatText(text, indent)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(out), nil
}

type validateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

func validateHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp := validateResponse{Valid: true}

	if _, perr := jsonpad.Parse(text); perr != nil {
		resp.Valid = false
		resp.Message = perr.Error()

		var serr *jsonpad.SyntaxError
		if errors.As(perr, &serr) {
			resp.Message = serr.Message
			resp.Line = serr.Line
			resp.Column = serr.Column
			resp.Offset = serr.Offset
		}
	}

	return jsonResult(resp)
}

type queryMatch struct {
	Path string `json:"path"`
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
}

func queryHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	term, err := request.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	v, perr := jsonpad.Parse(text)
	if perr != nil {
		return mcp.NewToolResultError(perr.Error()), nil
	}

	matches := []queryMatch{}
	for _, m := range jsonpad.Search(v, term) {
		matches = append(matches, queryMatch{
			Path: m.Path.String(),
			Type: m.Type.String(),
			Key:  m.Key,
		})
	}

	return jsonResult(matches)
}

func pathHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	offset, err := requireOffset(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(jsonpad.PathAtOffset(text, offset)), nil
}

type suggestCandidate struct {
	Label      string `json:"label"`
	InsertText string `json:"insertText"`
	Kind       string `json:"kind"`
	SortText   string `json:"sortText,omitempty"`
}

type suggestResponse struct {
	Candidates []suggestCandidate `json:"candidates"`
	RangeStart int                `json:"rangeStart"`
	RangeEnd   int                `json:"rangeEnd"`
}

func suggestHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	offset, err := requireOffset(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	candidates, rng := jsonpad.DefaultCompletionProvider(text, offset)

	resp := suggestResponse{
		Candidates: []suggestCandidate{},
		RangeStart: rng.Start,
		RangeEnd:   rng.End,
	}

	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, suggestCandidate{
			Label:      c.Label,
			InsertText: c.InsertText,
			Kind:       string(c.Kind),
			SortText:   c.SortText,
		})
	}

	return jsonResult(resp)
}

func repairHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := jsonpad.Repair(text, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(out), nil
}

func diffHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	other, err := request.RequireString("other")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := jsonpad.Diff("a", text, "b", other)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(out), nil
}

func exportHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format, err := request.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := jsonpad.ExportText(text, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

func requireOffset(request mcp.CallToolRequest) (int, error) {
	raw, err := request.RequireString("offset")
	if err != nil {
		return 0, err
	}

	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", raw)
	}

	return offset, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(blob)), nil
}
