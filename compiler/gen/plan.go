package gen

// artifactPlan holds every name and fragment the three artifacts of one
// client field are rendered from. It is built once per field; the renderers
// only read from it, so the files cannot disagree on a name.
type artifactPlan struct {
	kind readerKind

	Dir           string
	ParentType    string
	FieldName     string
	ParamType     string
	OutputType    string
	ComponentName string
	Runtime       string

	FunctionImport   string
	ReaderAST        string
	ReaderImports    string
	ParamTypeExpr    string
	ParamTypeImports string
	OutputTypeExpr   string

	header string
}

func newPlan(kind readerKind, runtime, header, parentType, fieldName string) *artifactPlan {
	return &artifactPlan{
		kind:          kind,
		Dir:           ArtifactDirectory(parentType, fieldName),
		ParentType:    parentType,
		FieldName:     fieldName,
		ParamType:     ParamTypeName(parentType, fieldName),
		OutputType:    OutputTypeName(parentType, fieldName),
		ComponentName: ComponentName(parentType, fieldName),
		Runtime:       runtime,
		header:        header,
	}
}

// Kind returns the discriminator written to the reader module.
func (p *artifactPlan) Kind() ArtifactKind { return p.kind.kind() }

// ParamTypeFile and OutputTypeFile are exposed to the templates.
func (p *artifactPlan) ParamTypeFile() FileName  { return ParamTypeFile }
func (p *artifactPlan) OutputTypeFile() FileName { return OutputTypeFile }

// artifacts renders the triple. Either all three files render or none do.
func (p *artifactPlan) artifacts() (Artifacts, error) {
	reader, err := p.kind.reader(p)
	if err != nil {
		return Artifacts{}, err
	}
	params, err := paramTypeContent(p)
	if err != nil {
		return Artifacts{}, err
	}
	output, err := p.kind.outputType(p)
	if err != nil {
		return Artifacts{}, err
	}
	return Artifacts{
		{Dir: p.Dir, Name: ReaderFile, Content: p.withHeader(reader)},
		{Dir: p.Dir, Name: ParamTypeFile, Content: p.withHeader(params)},
		{Dir: p.Dir, Name: OutputTypeFile, Content: p.withHeader(output)},
	}, nil
}

func (p *artifactPlan) withHeader(content string) string {
	if p.header == "" {
		return content
	}
	return p.header + "\n" + content
}
