package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

// LookupInput is the input schema for the class and teacher lookup tools.
type LookupInput struct {
	Name string `json:"name" jsonschema:"the exact class or teacher name to look up"`
	Week string `json:"week,omitempty" jsonschema:"week variant: odd (default) or even"`
}

// LookupOutput is the output schema for the lookup tools.
type LookupOutput struct {
	Name    string        `json:"name"`
	Week    string        `json:"week"`
	Days    []string      `json:"days"`
	Periods []string      `json:"periods"`
	Grid    [][]SlotEntry `json:"grid"`
}

// SlotEntry is one timetable slot, rows indexed by period and columns
// by day.
type SlotEntry struct {
	Subject   string   `json:"subject,omitempty"`
	Secondary string   `json:"secondary,omitempty"`
	Tertiary  string   `json:"tertiary,omitempty"`
	Extra     []string `json:"extra,omitempty"`
}

// ListNamesInput is the input schema for the list_names tool.
type ListNamesInput struct {
	School string `json:"school,omitempty" jsonschema:"restrict classes to one school prefix"`
}

// ListNamesOutput is the output schema for the list_names tool.
type ListNamesOutput struct {
	Classes  []string `json:"classes"`
	Teachers []string `json:"teachers"`
	Schools  []string `json:"schools"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_class",
		Description: "Look up the weekly timetable grid of one class",
	}, s.handleLookupClass)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_teacher",
		Description: "Look up the weekly timetable grid of one teacher",
	}, s.handleLookupTeacher)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_names",
		Description: "List all known class names, teacher names and school prefixes",
	}, s.handleListNames)
}

// handleLookupClass handles the lookup_class tool invocation.
func (s *Server) handleLookupClass(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	grid, err := s.ports.Timetable.Class(input.Name)
	if err != nil {
		return nil, LookupOutput{}, err
	}
	return nil, lookupOutput(grid, input.Week), nil
}

// handleLookupTeacher handles the lookup_teacher tool invocation.
func (s *Server) handleLookupTeacher(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	grid, err := s.ports.Timetable.Teacher(input.Name)
	if err != nil {
		return nil, LookupOutput{}, err
	}
	return nil, lookupOutput(grid, input.Week), nil
}

// handleListNames handles the list_names tool invocation.
func (s *Server) handleListNames(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListNamesInput,
) (*mcp.CallToolResult, ListNamesOutput, error) {
	classes := s.ports.Timetable.ClassNames()
	if input.School != "" {
		classes = s.ports.Timetable.SchoolClasses(input.School)
	}
	output := ListNamesOutput{
		Classes:  classes,
		Teachers: s.ports.Timetable.TeacherNames(),
		Schools:  s.ports.Timetable.Schools(),
	}
	return nil, output, nil
}

func lookupOutput(grid domain.SectionGrid, week string) LookupOutput {
	parsed, _ := domain.ParseWeek(week)
	matrix := grid.Odd
	if parsed == domain.WeekEven {
		matrix = grid.Even
	}

	output := LookupOutput{
		Name:    grid.Name,
		Week:    string(parsed),
		Days:    grid.Days,
		Periods: grid.Periods,
		Grid:    make([][]SlotEntry, len(matrix)),
	}
	for r, row := range matrix {
		output.Grid[r] = make([]SlotEntry, len(row))
		for c, e := range row {
			output.Grid[r][c] = SlotEntry{
				Subject:   e.Subject,
				Secondary: e.Secondary,
				Tertiary:  e.Tertiary,
				Extra:     e.Extra,
			}
		}
	}
	return output
}
