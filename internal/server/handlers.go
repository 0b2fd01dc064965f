package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/pinwin/pinwin/internal/model"
	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
)

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sortFlag := StringParam(params, "sort", "title")
	pinnedOnly := BoolParam(params, "pinned_only", false)

	sortMode, err := platform.ParseSortMode(sortFlag)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	wins := pin.ListWindows(s.provider.Reader)
	for i := range wins {
		wins[i].Pinned = s.provider.Reader.IsTopmost(wins[i].Handle)
	}
	if pinnedOnly {
		filtered := wins[:0]
		for _, w := range wins {
			if w.Pinned {
				filtered = append(filtered, w)
			}
		}
		wins = filtered
	}
	pin.SortWindows(wins, sortMode)

	b, _ := yaml.Marshal(wins)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleTogglePin(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hwnd := IntParam(request.GetArguments(), "hwnd", 0)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	var res pin.ToggleResult
	if hwnd == 0 {
		var ok bool
		res, ok = s.ctrl.ToggleForeground()
		if !ok {
			return mcp.NewToolResultError("no focused window"), nil
		}
	} else {
		res = s.ctrl.Toggle(model.Handle(hwnd))
	}

	b, _ := yaml.Marshal(res)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleIsPinned(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hwnd := IntParam(request.GetArguments(), "hwnd", 0)
	if hwnd == 0 {
		return mcp.NewToolResultError("hwnd is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	pinned := s.ctrl.IsPinned(model.Handle(hwnd))
	return mcp.NewToolResultText(fmt.Sprintf("hwnd: %d\npinned: %v\n", hwnd, pinned)), nil
}

func (s *Server) handleUnpinAll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	n := s.ctrl.UnpinAll()
	return mcp.NewToolResultText(fmt.Sprintf("count: %d\n", n)), nil
}
