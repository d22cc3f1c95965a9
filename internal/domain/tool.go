package domain

// ToolID identifies a converter tool.
type ToolID string

const (
	ToolJSONToTS   ToolID = "json2ts"
	ToolJSONToCSV  ToolID = "json2csv"
	ToolJSONToXLSX ToolID = "json2xlsx"
	ToolYAMLToJSON ToolID = "yaml2json"
	ToolJSONToYAML ToolID = "json2yaml"
	ToolColor      ToolID = "color"
	ToolCert       ToolID = "cert"
	ToolBarcode    ToolID = "barcode"
	ToolMock       ToolID = "mock"
	ToolUnits      ToolID = "units"
	ToolBase64     ToolID = "base64"
	ToolBase32     ToolID = "base32"
	ToolJSONTree   ToolID = "tree"
	ToolReport     ToolID = "report"
)

// ToolInfo describes a tool for menus and help output.
type ToolInfo struct {
	ID      ToolID
	Name    string
	Summary string
}

// Tools returns the catalog in display order.
func Tools() []ToolInfo {
	return []ToolInfo{
		{ToolJSONToTS, "JSON → TypeScript", "Infer TypeScript declarations from a JSON sample"},
		{ToolJSONToCSV, "JSON → CSV", "Flatten a JSON array into delimited rows"},
		{ToolJSONToXLSX, "JSON → XLSX", "Flatten a JSON array into an Excel workbook"},
		{ToolYAMLToJSON, "YAML → JSON", "Convert YAML documents to JSON"},
		{ToolJSONToYAML, "JSON → YAML", "Convert JSON documents to YAML"},
		{ToolColor, "Color converter", "Hex, rgb(), hsl() in; hex/RGB/HSL/HSV out"},
		{ToolCert, "Certificate decoder", "Decode PEM/DER X.509 certs or fetch a live chain"},
		{ToolBarcode, "Barcode / QR", "Generate QR, Code128 or EAN-13 PNG images"},
		{ToolMock, "Mock data", "Generate fake records from a field schema"},
		{ToolUnits, "Unit converter", "Length, mass, data size, duration, temperature"},
		{ToolBase64, "Base64 codec", "Encode/decode standard or URL-safe Base64"},
		{ToolBase32, "Base32 codec", "Encode/decode standard or hex Base32"},
		{ToolJSONTree, "JSON explorer", "Browse JSON as a tree, query with JSONPath"},
		{ToolReport, "Markdown export", "Export a conversion as a Markdown report"},
	}
}

// LookupTool finds a tool by ID.
func LookupTool(id ToolID) (ToolInfo, bool) {
	for _, t := range Tools() {
		if t.ID == id {
			return t, true
		}
	}
	return ToolInfo{}, false
}
