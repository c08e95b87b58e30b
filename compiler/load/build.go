package load

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/syssam/clientgen/compiler/gen"
	"github.com/syssam/clientgen/schema"
)

// Build validates the manifest against src and returns the schema with every
// client field attached. All client fields are registered before selections
// are resolved, so a selection may reference any client field regardless of
// declaration order.
func Build(src *ast.Schema, m *Manifest) (*schema.Schema, error) {
	s := objects(src)

	fields := make([]*schema.ClientField, len(m.ClientFields))
	for i, spec := range m.ClientFields {
		cf, err := clientField(s, spec)
		if err != nil {
			return nil, err
		}
		fields[i] = cf
	}

	var errs []error
	for i, spec := range m.ClientFields {
		if spec.Select == "" {
			continue
		}
		b := &builder{schema: s, field: fields[i]}
		sel, err := b.parse(spec.Select)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fields[i].Selections = sel
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

func clientField(s *schema.Schema, spec FieldSpec) (*schema.ClientField, error) {
	if spec.Name == "" {
		return nil, gen.NewSchemaError(spec.Parent, "", "client field name is required", nil)
	}
	parent, ok := s.ObjectByName(spec.Parent)
	if !ok {
		return nil, gen.NewSchemaError(spec.Parent, spec.Name, "unknown parent type", nil)
	}
	if spec.File == "" {
		return nil, gen.NewSchemaError(spec.Parent, spec.Name, "file is required", nil)
	}
	variant, err := schema.ParseVariant(spec.Variant)
	if err != nil {
		return nil, gen.NewSchemaError(spec.Parent, spec.Name, "invalid variant", err)
	}
	if variant == schema.Component && spec.Output != "" {
		return nil, gen.NewSchemaError(spec.Parent, spec.Name, "output cannot be set on a component field", nil)
	}

	cf := &schema.ClientField{
		Name:        spec.Name,
		Parent:      parent.ID,
		OutputType:  spec.Output,
		Description: spec.Description,
		Refetch:     spec.Refetch,
		Info: schema.UserWrittenInfo{
			FilePath:   spec.File,
			ExportName: spec.ExportName(),
			Variant:    variant,
		},
	}
	if err := s.AddClientField(cf); err != nil {
		return nil, gen.NewSchemaError(spec.Parent, spec.Name, "invalid client field", err)
	}
	return cf, nil
}

// builder resolves the selection set of one client field.
type builder struct {
	schema *schema.Schema
	field  *schema.ClientField
}

func (b *builder) parse(text string) (schema.SelectionSet, error) {
	parent := b.schema.Object(b.field.Parent)
	doc, err := parser.ParseQuery(&ast.Source{Name: parent.Name + "." + b.field.Name, Input: text})
	if err != nil {
		return nil, b.errorf(parent, "", "parse selection set: %v", err)
	}
	if len(doc.Operations) != 1 || len(doc.Fragments) > 0 {
		return nil, b.errorf(parent, "", "selection set must be a single anonymous selection")
	}
	return b.selections(parent, doc.Operations[0].SelectionSet)
}

func (b *builder) selections(o *schema.Object, set ast.SelectionSet) (schema.SelectionSet, error) {
	out := make(schema.SelectionSet, 0, len(set))
	for _, sel := range set {
		f, ok := sel.(*ast.Field)
		if !ok {
			return nil, b.errorf(o, "", "fragments are not supported")
		}
		s, err := b.selection(o, f)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (b *builder) selection(o *schema.Object, f *ast.Field) (*schema.Selection, error) {
	s := &schema.Selection{Name: f.Name, Arguments: arguments(f.Arguments)}
	if f.Alias != "" && f.Alias != f.Name {
		s.Alias = f.Alias
	}

	if f.Name == schema.RefetchFieldName {
		if !o.Refetchable() {
			return nil, b.errorf(o, f.Name, "type %s has no id: ID! field and cannot be refetched", o.Name)
		}
		if len(f.SelectionSet) > 0 || len(f.Arguments) > 0 {
			return nil, b.errorf(o, f.Name, "%s takes no arguments or selections", f.Name)
		}
		s.Kind = schema.SelectRefetch
		return s, nil
	}

	if sf, ok := o.Field(f.Name); ok {
		s.Field = sf
		if !sf.Linked {
			if len(f.SelectionSet) > 0 {
				return nil, b.errorf(o, f.Name, "scalar field cannot have a selection set")
			}
			s.Kind = schema.SelectScalar
			return s, nil
		}
		if len(f.SelectionSet) == 0 {
			return nil, b.errorf(o, f.Name, "linked field requires a selection set")
		}
		nested, err := b.selections(b.schema.Object(sf.Target), f.SelectionSet)
		if err != nil {
			return nil, err
		}
		s.Kind, s.Selections = schema.SelectLinked, nested
		return s, nil
	}

	if cf, ok := o.ClientField(f.Name); ok {
		if len(f.SelectionSet) > 0 {
			return nil, b.errorf(o, f.Name, "client field cannot have a selection set")
		}
		s.Kind, s.ClientField = schema.SelectResolver, cf
		return s, nil
	}
	return nil, b.errorf(o, f.Name, "unknown field on type %s", o.Name)
}

func (b *builder) errorf(o *schema.Object, selection, format string, args ...any) error {
	parent := b.schema.Object(b.field.Parent)
	msg := fmt.Sprintf(format, args...)
	if o != parent {
		msg = fmt.Sprintf("%s (on %s)", msg, o.Name)
	}
	return gen.NewSelectionError(parent.Name, b.field.Name, selection, msg)
}

func arguments(list ast.ArgumentList) []schema.Argument {
	if len(list) == 0 {
		return nil
	}
	out := make([]schema.Argument, len(list))
	for i, a := range list {
		out[i] = schema.Argument{Name: a.Name, Value: a.Value.Raw}
		switch a.Value.Kind {
		case ast.Variable:
			out[i].Variable = true
		case ast.StringValue, ast.IntValue, ast.FloatValue, ast.BooleanValue, ast.EnumValue:
		default:
			out[i].Value = a.Value.String()
		}
	}
	return out
}
