package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleNamesResource(t *testing.T) {
	svc := &mockTimetableService{
		classes: map[string]domain.SectionGrid{"Ахлах-10а": {}},
		schools: []string{"Ахлах"},
	}
	server := newTestMCPServer(t, svc)

	result, err := server.handleNamesResource(context.Background(), readRequest(uriScheme+"names"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var names ListNamesOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &names))
	assert.Equal(t, []string{"Ахлах-10а"}, names.Classes)
}

func TestServer_handleClassResource(t *testing.T) {
	svc := &mockTimetableService{
		classes: map[string]domain.SectionGrid{"Ахлах-10а": testGrid("Ахлах-10а")},
	}
	server := newTestMCPServer(t, svc)

	t.Run("known class", func(t *testing.T) {
		result, err := server.handleClassResource(context.Background(),
			readRequest(uriScheme+"classes/Ахлах-10а"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		var grid domain.SectionGrid
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &grid))
		assert.Equal(t, "Ахлах-10а", grid.Name)
		assert.Equal(t, "Математик", grid.Odd[0][0].Subject)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := server.handleClassResource(context.Background(),
			readRequest(uriScheme+"classes/nope"))
		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		_, err := server.handleClassResource(context.Background(),
			readRequest("bogus://classes/Ахлах-10а"))
		assert.Error(t, err)
	})
}

func TestExtractName(t *testing.T) {
	assert.Equal(t, "Б.Бат", extractName(uriScheme+"teachers/Б.Бат", "teachers"))
	assert.Empty(t, extractName(uriScheme+"teachers/Б.Бат", "classes"))
	assert.Empty(t, extractName("nope", "teachers"))
}
