package mcp

import "github.com/mark3labs/mcp-go/mcp"

// reverseLookupTool defines the reverse_lookup MCP tool.
var reverseLookupTool = mcp.NewTool("reverse_lookup",
	mcp.WithDescription("List every file that imports the given module or path."),
	mcp.WithString("import_name",
		mcp.Required(),
		mcp.Description("Import name exactly as it appears in the dataset, e.g. react or ./utils"),
	),
)

// datasetStatsTool defines the dataset_stats MCP tool.
var datasetStatsTool = mcp.NewTool("dataset_stats",
	mcp.WithDescription("Summarize the dependency dataset: counts, category breakdown, languages, top imports and god files."),
)

// fileDetailTool defines the file_detail MCP tool.
var fileDetailTool = mcp.NewTool("file_detail",
	mcp.WithDescription("Show the imports and exports of one file and how many files depend on it."),
	mcp.WithString("file_path",
		mcp.Required(),
		mcp.Description("Path of the file as recorded in the dataset"),
	),
)

// searchFilesTool defines the search_files MCP tool.
var searchFilesTool = mcp.NewTool("search_files",
	mcp.WithDescription("Search files the way the dashboard does: by file name, visible import or export name."),
	mcp.WithString("query",
		mcp.Description("Case-insensitive substring; empty lists every file"),
	),
	mcp.WithString("categories",
		mcp.Description("Comma-separated import categories to keep (stdlib, internal, private, external)"),
	),
	mcp.WithString("sort",
		mcp.Description("Result order"),
		mcp.Enum("name-asc", "name-desc", "imports-desc", "imports-asc", "depended-desc"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of files to return (default 20)"),
	),
)

// dependencyDiagramTool defines the dependency_diagram MCP tool.
var dependencyDiagramTool = mcp.NewTool("dependency_diagram",
	mcp.WithDescription("Get a Mermaid diagram of the dataset."),
	mcp.WithString("diagram_type",
		mcp.Required(),
		mcp.Description("graph: internal file dependencies; file: one file's imports; categories: import category pie"),
		mcp.Enum("graph", "file", "categories"),
	),
	mcp.WithString("file_path",
		mcp.Description("Focus file for graph, required for file"),
	),
)
