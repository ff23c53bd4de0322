package mcp

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/mado/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

func InitTools(gw *api.RESTGateway) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(GetRecord(gw)))
	tools = append(tools, newServerTool(ListRecords(gw)))

	return tools
}

// GetRecord exposes a single-record fetch as an MCP tool
func GetRecord(gw *api.RESTGateway) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_record",
			mcp.WithDescription("Fetch a single record from the record service"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Record identifier")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				ID string `json:"id" validate:"required"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			rec, err := gw.Record(ctx, api.Params{"id": args.ID})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			out, err := json.Marshal(rec)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(out)), nil
		}
}

// ListRecords exposes the collection fetch as an MCP tool
func ListRecords(gw *api.RESTGateway) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"list_records",
			mcp.WithDescription("Fetch all records from the record service"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			records, err := gw.Records(ctx, nil)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if records == nil {
				records = []api.Record{}
			}

			out, err := json.Marshal(records)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(out)), nil
		}
}
