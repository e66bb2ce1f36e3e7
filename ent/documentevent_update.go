// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mhruby/kantor/ent/documentevent"
	"github.com/mhruby/kantor/ent/predicate"
)

// DocumentEventUpdate is the builder for updating DocumentEvent entities.
type DocumentEventUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentEventMutation
}

// Where appends a list predicates to the DocumentEventUpdate builder.
func (_u *DocumentEventUpdate) Where(ps ...predicate.DocumentEvent) *DocumentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentEventUpdate) SetDocumentID(v string) *DocumentEventUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableDocumentID(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetMaterialType sets the "material_type" field.
func (_u *DocumentEventUpdate) SetMaterialType(v string) *DocumentEventUpdate {
	_u.mutation.SetMaterialType(v)
	return _u
}

// SetNillableMaterialType sets the "material_type" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableMaterialType(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetMaterialType(*v)
	}
	return _u
}

// SetSubtype sets the "subtype" field.
func (_u *DocumentEventUpdate) SetSubtype(v string) *DocumentEventUpdate {
	_u.mutation.SetSubtype(v)
	return _u
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableSubtype(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetSubtype(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentEventUpdate) SetTitle(v string) *DocumentEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableTitle(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DocumentEventUpdate) SetSubject(v string) *DocumentEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableSubject(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *DocumentEventUpdate) SetGradeLevel(v string) *DocumentEventUpdate {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableGradeLevel(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *DocumentEventUpdate) SetQualityScore(v float64) *DocumentEventUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableQualityScore(v *float64) *DocumentEventUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *DocumentEventUpdate) AddQualityScore(v float64) *DocumentEventUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *DocumentEventUpdate) SetIsValid(v bool) *DocumentEventUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableIsValid(v *bool) *DocumentEventUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DocumentEventUpdate) SetAttempts(v int) *DocumentEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableAttempts(v *int) *DocumentEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DocumentEventUpdate) AddAttempts(v int) *DocumentEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentEventUpdate) SetContent(v string) *DocumentEventUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentEventUpdate) SetNillableContent(v *string) *DocumentEventUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the DocumentEventMutation object of the builder.
func (_u *DocumentEventUpdate) Mutation() *DocumentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentEventUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := documentevent.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaterialType(); ok {
		if err := documentevent.MaterialTypeValidator(v); err != nil {
			return &ValidationError{Name: "material_type", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.material_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentevent.Table, documentevent.Columns, sqlgraph.NewFieldSpec(documentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(documentevent.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaterialType(); ok {
		_spec.SetField(documentevent.FieldMaterialType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtype(); ok {
		_spec.SetField(documentevent.FieldSubtype, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(documentevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(documentevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(documentevent.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(documentevent.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(documentevent.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(documentevent.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(documentevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(documentevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(documentevent.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentEventUpdateOne is the builder for updating a single DocumentEvent entity.
type DocumentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentEventMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentEventUpdateOne) SetDocumentID(v string) *DocumentEventUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableDocumentID(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetMaterialType sets the "material_type" field.
func (_u *DocumentEventUpdateOne) SetMaterialType(v string) *DocumentEventUpdateOne {
	_u.mutation.SetMaterialType(v)
	return _u
}

// SetNillableMaterialType sets the "material_type" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableMaterialType(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetMaterialType(*v)
	}
	return _u
}

// SetSubtype sets the "subtype" field.
func (_u *DocumentEventUpdateOne) SetSubtype(v string) *DocumentEventUpdateOne {
	_u.mutation.SetSubtype(v)
	return _u
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableSubtype(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetSubtype(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentEventUpdateOne) SetTitle(v string) *DocumentEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableTitle(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DocumentEventUpdateOne) SetSubject(v string) *DocumentEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableSubject(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *DocumentEventUpdateOne) SetGradeLevel(v string) *DocumentEventUpdateOne {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableGradeLevel(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *DocumentEventUpdateOne) SetQualityScore(v float64) *DocumentEventUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableQualityScore(v *float64) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *DocumentEventUpdateOne) AddQualityScore(v float64) *DocumentEventUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *DocumentEventUpdateOne) SetIsValid(v bool) *DocumentEventUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableIsValid(v *bool) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DocumentEventUpdateOne) SetAttempts(v int) *DocumentEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableAttempts(v *int) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DocumentEventUpdateOne) AddAttempts(v int) *DocumentEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentEventUpdateOne) SetContent(v string) *DocumentEventUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentEventUpdateOne) SetNillableContent(v *string) *DocumentEventUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the DocumentEventMutation object of the builder.
func (_u *DocumentEventUpdateOne) Mutation() *DocumentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentEventUpdate builder.
func (_u *DocumentEventUpdateOne) Where(ps ...predicate.DocumentEvent) *DocumentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentEventUpdateOne) Select(field string, fields ...string) *DocumentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentEvent entity.
func (_u *DocumentEventUpdateOne) Save(ctx context.Context) (*DocumentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentEventUpdateOne) SaveX(ctx context.Context) *DocumentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentEventUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := documentevent.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaterialType(); ok {
		if err := documentevent.MaterialTypeValidator(v); err != nil {
			return &ValidationError{Name: "material_type", err: fmt.Errorf(`ent: validator failed for field "DocumentEvent.material_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentEventUpdateOne) sqlSave(ctx context.Context) (_node *DocumentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentevent.Table, documentevent.Columns, sqlgraph.NewFieldSpec(documentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentevent.FieldID)
		for _, f := range fields {
			if !documentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(documentevent.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaterialType(); ok {
		_spec.SetField(documentevent.FieldMaterialType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtype(); ok {
		_spec.SetField(documentevent.FieldSubtype, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(documentevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(documentevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(documentevent.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(documentevent.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(documentevent.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(documentevent.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(documentevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(documentevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(documentevent.FieldContent, field.TypeString, value)
	}
	_node = &DocumentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
