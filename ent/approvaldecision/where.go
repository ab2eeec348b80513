// Code generated by ent, DO NOT EDIT.

package approvaldecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/MiniSankaz/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldRequestID, v))
}

// DeciderID applies equality check predicate on the "decider_id" field. It's identical to DeciderIDEQ.
func DeciderID(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldDeciderID, v))
}

// Choice applies equality check predicate on the "choice" field. It's identical to ChoiceEQ.
func Choice(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldChoice, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContainsFold(FieldRequestID, v))
}

// DeciderIDEQ applies the EQ predicate on the "decider_id" field.
func DeciderIDEQ(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldDeciderID, v))
}

// DeciderIDNEQ applies the NEQ predicate on the "decider_id" field.
func DeciderIDNEQ(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNEQ(FieldDeciderID, v))
}

// DeciderIDIn applies the In predicate on the "decider_id" field.
func DeciderIDIn(vs ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldIn(FieldDeciderID, vs...))
}

// DeciderIDNotIn applies the NotIn predicate on the "decider_id" field.
func DeciderIDNotIn(vs ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNotIn(FieldDeciderID, vs...))
}

// DeciderIDGT applies the GT predicate on the "decider_id" field.
func DeciderIDGT(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGT(FieldDeciderID, v))
}

// DeciderIDGTE applies the GTE predicate on the "decider_id" field.
func DeciderIDGTE(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGTE(FieldDeciderID, v))
}

// DeciderIDLT applies the LT predicate on the "decider_id" field.
func DeciderIDLT(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLT(FieldDeciderID, v))
}

// DeciderIDLTE applies the LTE predicate on the "decider_id" field.
func DeciderIDLTE(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLTE(FieldDeciderID, v))
}

// DeciderIDContains applies the Contains predicate on the "decider_id" field.
func DeciderIDContains(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContains(FieldDeciderID, v))
}

// DeciderIDHasPrefix applies the HasPrefix predicate on the "decider_id" field.
func DeciderIDHasPrefix(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldHasPrefix(FieldDeciderID, v))
}

// DeciderIDHasSuffix applies the HasSuffix predicate on the "decider_id" field.
func DeciderIDHasSuffix(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldHasSuffix(FieldDeciderID, v))
}

// DeciderIDEqualFold applies the EqualFold predicate on the "decider_id" field.
func DeciderIDEqualFold(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEqualFold(FieldDeciderID, v))
}

// DeciderIDContainsFold applies the ContainsFold predicate on the "decider_id" field.
func DeciderIDContainsFold(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContainsFold(FieldDeciderID, v))
}

// ChoiceEQ applies the EQ predicate on the "choice" field.
func ChoiceEQ(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldChoice, v))
}

// ChoiceNEQ applies the NEQ predicate on the "choice" field.
func ChoiceNEQ(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNEQ(FieldChoice, v))
}

// ChoiceIn applies the In predicate on the "choice" field.
func ChoiceIn(vs ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldIn(FieldChoice, vs...))
}

// ChoiceNotIn applies the NotIn predicate on the "choice" field.
func ChoiceNotIn(vs ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNotIn(FieldChoice, vs...))
}

// ChoiceGT applies the GT predicate on the "choice" field.
func ChoiceGT(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGT(FieldChoice, v))
}

// ChoiceGTE applies the GTE predicate on the "choice" field.
func ChoiceGTE(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGTE(FieldChoice, v))
}

// ChoiceLT applies the LT predicate on the "choice" field.
func ChoiceLT(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLT(FieldChoice, v))
}

// ChoiceLTE applies the LTE predicate on the "choice" field.
func ChoiceLTE(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLTE(FieldChoice, v))
}

// ChoiceContains applies the Contains predicate on the "choice" field.
func ChoiceContains(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContains(FieldChoice, v))
}

// ChoiceHasPrefix applies the HasPrefix predicate on the "choice" field.
func ChoiceHasPrefix(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldHasPrefix(FieldChoice, v))
}

// ChoiceHasSuffix applies the HasSuffix predicate on the "choice" field.
func ChoiceHasSuffix(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldHasSuffix(FieldChoice, v))
}

// ChoiceEqualFold applies the EqualFold predicate on the "choice" field.
func ChoiceEqualFold(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEqualFold(FieldChoice, v))
}

// ChoiceContainsFold applies the ContainsFold predicate on the "choice" field.
func ChoiceContainsFold(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContainsFold(FieldChoice, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.ApprovalDecision {
	return predicate.ApprovalDecision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.ApprovalRequest) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalDecision) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalDecision) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalDecision) predicate.ApprovalDecision {
	return predicate.ApprovalDecision(sql.NotPredicates(p))
}
