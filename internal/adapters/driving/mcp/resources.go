package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for timetable resources.
	uriScheme = "khuvaari://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the known names.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "names",
		Name:        "names",
		Description: "All known class names, teacher names and school prefixes",
		MIMEType:    "application/json",
	}, s.handleNamesResource)

	// Template for one class grid.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "classes/{name}",
		Name:        "class-timetable",
		Description: "Weekly timetable grid of one class, both week variants",
		MIMEType:    "application/json",
	}, s.handleClassResource)

	// Template for one teacher grid.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "teachers/{name}",
		Name:        "teacher-timetable",
		Description: "Weekly timetable grid of one teacher, both week variants",
		MIMEType:    "application/json",
	}, s.handleTeacherResource)
}

// handleNamesResource returns the full name listing.
func (s *Server) handleNamesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names := ListNamesOutput{
		Classes:  s.ports.Timetable.ClassNames(),
		Teachers: s.ports.Timetable.TeacherNames(),
		Schools:  s.ports.Timetable.Schools(),
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling names: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleClassResource returns both week grids of one class.
func (s *Server) handleClassResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractName(req.Params.URI, "classes")
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	grid, err := s.ports.Timetable.Class(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return gridResource(req.Params.URI, grid)
}

// handleTeacherResource returns both week grids of one teacher.
func (s *Server) handleTeacherResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractName(req.Params.URI, "teachers")
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	grid, err := s.ports.Timetable.Teacher(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return gridResource(req.Params.URI, grid)
}

func gridResource(uri string, grid any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(grid, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling grid: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractName extracts the section name from a URI like
// khuvaari://classes/{name}.
func extractName(uri, kind string) string {
	prefix := uriScheme + kind + "/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
