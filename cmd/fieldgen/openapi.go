package main

import (
	"github.com/spf13/cobra"
)

var (
	openapiFile     string
	openapiSchema   string
	openapiOutput   string
	openapiFragment bool
)

var openapiCmd = &cobra.Command{
	Use:     "openapi",
	Short:   "Render fields inferred from an OpenAPI schema.",
	Long:    "Load an OpenAPI 3 document and render one field per property of a component schema or of an operation's request body.",
	Example: "fieldgen openapi -f petstore.yaml --schema Pet",
	Args:    cobra.NoArgs,
	RunE:    openapiRun,
}

func init() {
	openapiCmd.Flags().StringVarP(&openapiFile, "file", "f", "", "OpenAPI document path or URL")
	openapiCmd.Flags().StringVarP(&openapiSchema, "schema", "s", "", "component schema name or operationId")
	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "", "output file (stdout if empty)")
	openapiCmd.Flags().BoolVar(&openapiFragment, "fragment", false, "render the fields without the page shell")
	_ = openapiCmd.MarkFlagRequired("file")
	_ = openapiCmd.MarkFlagRequired("schema")
}

func openapiRun(cmd *cobra.Command, args []string) error {
	doc, err := loadOpenAPIDocument(cmd.Context(), openapiFile, openapiSchema)
	if err != nil {
		return err
	}
	return emit(cmd, doc, "", openapiFragment, openapiOutput)
}
