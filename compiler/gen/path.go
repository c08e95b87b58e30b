package gen

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ArtifactDirectory returns the directory, relative to the artifact root,
// holding the artifacts of parentType.fieldName.
func ArtifactDirectory(parentType, fieldName string) string {
	return path.Join(parentType, fieldName)
}

// ImportPathForSource returns the module path a generated artifact uses to
// import sourcePath. Artifacts always live exactly two levels below
// artifactRoot (Type/Field), so the path is computed from a placeholder
// directory at that depth; the placeholder never shows up in the result.
// sourcePath is resolved against projectRoot unless absolute. The final
// extension is stripped; a dot-file name such as .env has none.
func ImportPathForSource(projectRoot, artifactRoot, sourcePath string) (string, error) {
	target := sourcePath
	if !filepath.IsAbs(target) {
		target = filepath.Join(projectRoot, sourcePath)
	}
	from := filepath.Join(artifactRoot, "Type", "Field")
	rel, err := filepath.Rel(from, target)
	if err != nil {
		return "", NewPreconditionError("", "", sourcePath, fmt.Errorf("%w: %w", ErrInvalidPath, err))
	}
	if !utf8.ValidString(rel) {
		return "", NewPreconditionError("", "", sourcePath, fmt.Errorf("%w: result is not valid UTF-8", ErrInvalidPath))
	}
	rel = filepath.ToSlash(rel)
	if base := path.Base(rel); path.Ext(base) != base {
		rel = strings.TrimSuffix(rel, path.Ext(base))
	}
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel, nil
}

// FunctionImportStatement renders the import of a client field's function,
// bound to the local name `resolver`.
func FunctionImportStatement(exportName, importPath string) string {
	return "import { " + exportName + " as resolver } from '" + importPath + "';"
}
