// testgen generates the artifacts of a small in-memory schema and prints them.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/clientgen/compiler/gen"
	"github.com/syssam/clientgen/compiler/reader"
	"github.com/syssam/clientgen/schema"
)

func main() {
	// Create a temp directory for output
	outDir, err := os.MkdirTemp("", "clientgen-test-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output directory: %s\n", outDir)

	// Define the schema
	s := schema.New(nil)
	user := s.AddObject(&schema.Object{Name: "User"})
	user.Fields = []*schema.ServerField{
		{Name: "id", Type: ast.NonNullNamedType("ID", nil)},
		{Name: "firstName", Type: ast.NonNullNamedType("String", nil)},
		{Name: "lastName", Type: ast.NamedType("String", nil)},
	}
	displayName := &schema.ClientField{
		Name:   "displayName",
		Parent: user.ID,
		Selections: schema.SelectionSet{
			{Kind: schema.SelectScalar, Name: "firstName", Field: user.Fields[1]},
			{Kind: schema.SelectScalar, Name: "lastName", Field: user.Fields[2]},
		},
		Info: schema.UserWrittenInfo{FilePath: "src/resolvers/displayName.ts", ExportName: "displayName"},
	}
	card := &schema.ClientField{
		Name:   "Card",
		Parent: user.ID,
		Selections: schema.SelectionSet{
			{Kind: schema.SelectResolver, Name: "displayName", ClientField: displayName},
			{Kind: schema.SelectRefetch, Name: schema.RefetchFieldName},
		},
		Info: schema.UserWrittenInfo{FilePath: "src/components/Card.tsx", ExportName: "Card", Variant: schema.Component},
	}
	for _, f := range []*schema.ClientField{displayName, card} {
		if err := s.AddClientField(f); err != nil {
			fmt.Fprintf(os.Stderr, "invalid client field: %v\n", err)
			os.Exit(1)
		}
	}

	// Create config with functional options
	config, err := gen.NewConfig(
		gen.WithProjectRoot(outDir),
		gen.WithArtifactDirectory("src/__generated__"),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %v\n", err)
		os.Exit(1)
	}
	g, err := gen.NewGenerator(config, reader.Collaborators())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create generator: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generating artifacts...")
	var sets []gen.Artifacts
	for _, f := range s.ClientFields {
		_, paths := reader.Merger{}.MergeSelectionSet(s, user, f.Selections)
		arts, err := g.EagerReader(s, f, gen.TraversalState{RefetchPaths: paths})
		if err != nil {
			fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
			os.Exit(1)
		}
		sets = append(sets, arts)
	}
	w := gen.NewArtifactWriter(config.ArtifactRoot())
	if err := w.Write(context.Background(), sets); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(w.Metrics())

	// List generated files
	fmt.Println("\nGenerated files:")
	for _, set := range sets {
		for _, a := range set {
			fmt.Printf("  %s\n", a.Path(config.FileExtension()))
		}
	}

	// Show sample output
	fmt.Println("\n--- Sample: User/Card/reader.ts ---")
	content, err := os.ReadFile(filepath.Join(config.ArtifactRoot(), "User", "Card", "reader.ts"))
	if err == nil {
		fmt.Print(string(content))
	}
}
