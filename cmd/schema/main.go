// Command schema regenerates the JSON schema embedded by pkg/config.
// Run through go:generate from that package; the optional argument
// overrides the output file name.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/feedclip/feedclip/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("generate config schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("marshal config schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("write %s: %v", outputPath, err)
	}

	fmt.Printf("wrote config schema to %s\n", outputPath)
}
