package gen

import (
	"strings"
	"text/template"
)

// ArtifactKind is the `kind` discriminator of a generated reader module.
type ArtifactKind string

// Reader artifact kinds understood by the runtime.
const (
	KindEagerReader     ArtifactKind = "EagerReaderArtifact"
	KindComponentReader ArtifactKind = "ComponentReaderArtifact"
	KindRefetchReader   ArtifactKind = "RefetchReaderArtifact"
)

// readerKind renders the files whose shape depends on the artifact kind.
// The set of implementations is closed: adding a kind means implementing
// every method here.
type readerKind interface {
	kind() ArtifactKind
	reader(p *artifactPlan) (string, error)
	outputType(p *artifactPlan) (string, error)
}

type (
	eagerKind     struct{}
	componentKind struct{}
	refetchKind   struct{}
)

var (
	_ readerKind = eagerKind{}
	_ readerKind = componentKind{}
	_ readerKind = refetchKind{}
)

func (eagerKind) kind() ArtifactKind     { return KindEagerReader }
func (componentKind) kind() ArtifactKind { return KindComponentReader }
func (refetchKind) kind() ArtifactKind   { return KindRefetchReader }

func (eagerKind) reader(p *artifactPlan) (string, error) {
	return execute("eager_reader", p)
}

func (componentKind) reader(p *artifactPlan) (string, error) {
	return execute("component_reader", p)
}

func (refetchKind) reader(p *artifactPlan) (string, error) {
	return execute("refetch_reader", p)
}

func (eagerKind) outputType(p *artifactPlan) (string, error) {
	return OutputTypeText(p.FunctionImport, p.OutputType, p.OutputTypeExpr) + "\n", nil
}

func (componentKind) outputType(p *artifactPlan) (string, error) {
	return "import type {ExtractSecondParam, RefetchQueryNormalizationArtifact} from '" + p.Runtime + "';\n" +
		OutputTypeText(p.FunctionImport, p.OutputType, componentOutputType) + "\n", nil
}

func (refetchKind) outputType(p *artifactPlan) (string, error) {
	return "import { RefetchQueryNormalizationArtifact } from '" + p.Runtime + "';\n" +
		OutputTypeText(p.FunctionImport, p.OutputType, p.OutputTypeExpr) + "\n", nil
}

// componentOutputType is what reading a component field yields: a component
// taking the props the user function declares as its second parameter.
const componentOutputType = "(React.FC<ExtractSecondParam<typeof resolver>>)"

// OutputTypeText renders the function import followed by the output type
// alias declaration.
func OutputTypeText(functionImport, outputTypeName, outputType string) string {
	return functionImport + "\nexport type " + outputTypeName + " = " + outputType + ";"
}

// paramTypeContent is identical for every kind.
func paramTypeContent(p *artifactPlan) (string, error) {
	return execute("param_type", p)
}

var templates = template.Must(template.New("artifacts").Parse(artifactTemplates))

func execute(name string, p *artifactPlan) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, p); err != nil {
		return "", NewGenerationError("render", p.Dir, "execute template "+name, err)
	}
	return b.String(), nil
}

const artifactTemplates = `
{{- define "eager_reader" -}}
import type {EagerReaderArtifact, ReaderAst, RefetchQueryNormalizationArtifact} from '{{ .Runtime }}';
import { {{ .ParamType }} } from './{{ .ParamTypeFile }}';
import { {{ .OutputType }} } from './{{ .OutputTypeFile }}';
{{ .FunctionImport }}
{{ .ReaderImports }}
const readerAst: ReaderAst<{{ .ParamType }}> = {{ .ReaderAST }};

const artifact: EagerReaderArtifact<
  {{ .ParamType }},
  {{ .OutputType }}
> = {
  kind: "{{ .Kind }}",
  resolver,
  readerAst,
};

export default artifact;
{{ end -}}

{{- define "component_reader" -}}
import type {ComponentReaderArtifact, ExtractSecondParam, ReaderAst, RefetchQueryNormalizationArtifact} from '{{ .Runtime }}';
import { {{ .ParamType }} } from './{{ .ParamTypeFile }}';
{{ .FunctionImport }}
{{ .ReaderImports }}
const readerAst: ReaderAst<{{ .ParamType }}> = {{ .ReaderAST }};

const artifact: ComponentReaderArtifact<
  {{ .ParamType }},
  ExtractSecondParam<typeof resolver>
> = {
  kind: "{{ .Kind }}",
  componentName: "{{ .ComponentName }}",
  resolver,
  readerAst,
};

export default artifact;
{{ end -}}

{{- define "refetch_reader" -}}
import type {RefetchReaderArtifact, ReaderAst, RefetchQueryNormalizationArtifact} from '{{ .Runtime }}';
import { {{ .ParamType }} } from './{{ .ParamTypeFile }}';
{{ .FunctionImport }}
{{ .ReaderImports }}
const readerAst: ReaderAst<{{ .ParamType }}> = {{ .ReaderAST }};

const artifact: RefetchReaderArtifact = {
  kind: "{{ .Kind }}",
  // @ts-ignore
  resolver,
  readerAst,
};

export default artifact;
{{ end -}}

{{- define "param_type" -}}
{{ .ParamTypeImports }}
export type {{ .ParamType }} = {{ .ParamTypeExpr }};
{{ end -}}
`
