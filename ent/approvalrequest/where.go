// Code generated by ent, DO NOT EDIT.

package approvalrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/MiniSankaz/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldID, id))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldType, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldLevel, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStatus, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDescription, v))
}

// RequesterID applies equality check predicate on the "requester_id" field. It's identical to RequesterIDEQ.
func RequesterID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequesterID, v))
}

// RequiredCount applies equality check predicate on the "required_count" field. It's identical to RequiredCountEQ.
func RequiredCount(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequiredCount, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequestedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldExpiresAt, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldTimeoutMs, v))
}

// PolicyID applies equality check predicate on the "policy_id" field. It's identical to PolicyIDEQ.
func PolicyID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldPolicyID, v))
}

// EscalationLevel applies equality check predicate on the "escalation_level" field. It's identical to EscalationLevelEQ.
func EscalationLevel(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldEscalationLevel, v))
}

// BypassedBy applies equality check predicate on the "bypassed_by" field. It's identical to BypassedByEQ.
func BypassedBy(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldBypassedBy, v))
}

// BypassReason applies equality check predicate on the "bypass_reason" field. It's identical to BypassReasonEQ.
func BypassReason(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldBypassReason, v))
}

// BypassedAt applies equality check predicate on the "bypassed_at" field. It's identical to BypassedAtEQ.
func BypassedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldBypassedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldResolvedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldType, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldLevel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldStatus, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldDescription, v))
}

// RequesterIDEQ applies the EQ predicate on the "requester_id" field.
func RequesterIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequesterID, v))
}

// RequesterIDNEQ applies the NEQ predicate on the "requester_id" field.
func RequesterIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldRequesterID, v))
}

// RequesterIDIn applies the In predicate on the "requester_id" field.
func RequesterIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldRequesterID, vs...))
}

// RequesterIDNotIn applies the NotIn predicate on the "requester_id" field.
func RequesterIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldRequesterID, vs...))
}

// RequesterIDGT applies the GT predicate on the "requester_id" field.
func RequesterIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldRequesterID, v))
}

// RequesterIDGTE applies the GTE predicate on the "requester_id" field.
func RequesterIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldRequesterID, v))
}

// RequesterIDLT applies the LT predicate on the "requester_id" field.
func RequesterIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldRequesterID, v))
}

// RequesterIDLTE applies the LTE predicate on the "requester_id" field.
func RequesterIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldRequesterID, v))
}

// RequesterIDContains applies the Contains predicate on the "requester_id" field.
func RequesterIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldRequesterID, v))
}

// RequesterIDHasPrefix applies the HasPrefix predicate on the "requester_id" field.
func RequesterIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldRequesterID, v))
}

// RequesterIDHasSuffix applies the HasSuffix predicate on the "requester_id" field.
func RequesterIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldRequesterID, v))
}

// RequesterIDEqualFold applies the EqualFold predicate on the "requester_id" field.
func RequesterIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldRequesterID, v))
}

// RequesterIDContainsFold applies the ContainsFold predicate on the "requester_id" field.
func RequesterIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldRequesterID, v))
}

// RequiredCountEQ applies the EQ predicate on the "required_count" field.
func RequiredCountEQ(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequiredCount, v))
}

// RequiredCountNEQ applies the NEQ predicate on the "required_count" field.
func RequiredCountNEQ(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldRequiredCount, v))
}

// RequiredCountIn applies the In predicate on the "required_count" field.
func RequiredCountIn(vs ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldRequiredCount, vs...))
}

// RequiredCountNotIn applies the NotIn predicate on the "required_count" field.
func RequiredCountNotIn(vs ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldRequiredCount, vs...))
}

// RequiredCountGT applies the GT predicate on the "required_count" field.
func RequiredCountGT(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldRequiredCount, v))
}

// RequiredCountGTE applies the GTE predicate on the "required_count" field.
func RequiredCountGTE(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldRequiredCount, v))
}

// RequiredCountLT applies the LT predicate on the "required_count" field.
func RequiredCountLT(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldRequiredCount, v))
}

// RequiredCountLTE applies the LTE predicate on the "required_count" field.
func RequiredCountLTE(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldRequiredCount, v))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldRequestedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldExpiresAt, v))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int64) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldTimeoutMs, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldContext))
}

// PolicyIDEQ applies the EQ predicate on the "policy_id" field.
func PolicyIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldPolicyID, v))
}

// PolicyIDNEQ applies the NEQ predicate on the "policy_id" field.
func PolicyIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldPolicyID, v))
}

// PolicyIDIn applies the In predicate on the "policy_id" field.
func PolicyIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldPolicyID, vs...))
}

// PolicyIDNotIn applies the NotIn predicate on the "policy_id" field.
func PolicyIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldPolicyID, vs...))
}

// PolicyIDGT applies the GT predicate on the "policy_id" field.
func PolicyIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldPolicyID, v))
}

// PolicyIDGTE applies the GTE predicate on the "policy_id" field.
func PolicyIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldPolicyID, v))
}

// PolicyIDLT applies the LT predicate on the "policy_id" field.
func PolicyIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldPolicyID, v))
}

// PolicyIDLTE applies the LTE predicate on the "policy_id" field.
func PolicyIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldPolicyID, v))
}

// PolicyIDContains applies the Contains predicate on the "policy_id" field.
func PolicyIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldPolicyID, v))
}

// PolicyIDHasPrefix applies the HasPrefix predicate on the "policy_id" field.
func PolicyIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldPolicyID, v))
}

// PolicyIDHasSuffix applies the HasSuffix predicate on the "policy_id" field.
func PolicyIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldPolicyID, v))
}

// PolicyIDIsNil applies the IsNil predicate on the "policy_id" field.
func PolicyIDIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldPolicyID))
}

// PolicyIDNotNil applies the NotNil predicate on the "policy_id" field.
func PolicyIDNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldPolicyID))
}

// PolicyIDEqualFold applies the EqualFold predicate on the "policy_id" field.
func PolicyIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldPolicyID, v))
}

// PolicyIDContainsFold applies the ContainsFold predicate on the "policy_id" field.
func PolicyIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldPolicyID, v))
}

// EscalationLevelEQ applies the EQ predicate on the "escalation_level" field.
func EscalationLevelEQ(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldEscalationLevel, v))
}

// EscalationLevelNEQ applies the NEQ predicate on the "escalation_level" field.
func EscalationLevelNEQ(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldEscalationLevel, v))
}

// EscalationLevelIn applies the In predicate on the "escalation_level" field.
func EscalationLevelIn(vs ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldEscalationLevel, vs...))
}

// EscalationLevelNotIn applies the NotIn predicate on the "escalation_level" field.
func EscalationLevelNotIn(vs ...int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldEscalationLevel, vs...))
}

// EscalationLevelGT applies the GT predicate on the "escalation_level" field.
func EscalationLevelGT(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldEscalationLevel, v))
}

// EscalationLevelGTE applies the GTE predicate on the "escalation_level" field.
func EscalationLevelGTE(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldEscalationLevel, v))
}

// EscalationLevelLT applies the LT predicate on the "escalation_level" field.
func EscalationLevelLT(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldEscalationLevel, v))
}

// EscalationLevelLTE applies the LTE predicate on the "escalation_level" field.
func EscalationLevelLTE(v int) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldEscalationLevel, v))
}

// EscalationHistoryIsNil applies the IsNil predicate on the "escalation_history" field.
func EscalationHistoryIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldEscalationHistory))
}

// EscalationHistoryNotNil applies the NotNil predicate on the "escalation_history" field.
func EscalationHistoryNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldEscalationHistory))
}

// BypassedByEQ applies the EQ predicate on the "bypassed_by" field.
func BypassedByEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldBypassedBy, v))
}

// BypassedByNEQ applies the NEQ predicate on the "bypassed_by" field.
func BypassedByNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldBypassedBy, v))
}

// BypassedByIn applies the In predicate on the "bypassed_by" field.
func BypassedByIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldBypassedBy, vs...))
}

// BypassedByNotIn applies the NotIn predicate on the "bypassed_by" field.
func BypassedByNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldBypassedBy, vs...))
}

// BypassedByGT applies the GT predicate on the "bypassed_by" field.
func BypassedByGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldBypassedBy, v))
}

// BypassedByGTE applies the GTE predicate on the "bypassed_by" field.
func BypassedByGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldBypassedBy, v))
}

// BypassedByLT applies the LT predicate on the "bypassed_by" field.
func BypassedByLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldBypassedBy, v))
}

// BypassedByLTE applies the LTE predicate on the "bypassed_by" field.
func BypassedByLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldBypassedBy, v))
}

// BypassedByContains applies the Contains predicate on the "bypassed_by" field.
func BypassedByContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldBypassedBy, v))
}

// BypassedByHasPrefix applies the HasPrefix predicate on the "bypassed_by" field.
func BypassedByHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldBypassedBy, v))
}

// BypassedByHasSuffix applies the HasSuffix predicate on the "bypassed_by" field.
func BypassedByHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldBypassedBy, v))
}

// BypassedByIsNil applies the IsNil predicate on the "bypassed_by" field.
func BypassedByIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldBypassedBy))
}

// BypassedByNotNil applies the NotNil predicate on the "bypassed_by" field.
func BypassedByNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldBypassedBy))
}

// BypassedByEqualFold applies the EqualFold predicate on the "bypassed_by" field.
func BypassedByEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldBypassedBy, v))
}

// BypassedByContainsFold applies the ContainsFold predicate on the "bypassed_by" field.
func BypassedByContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldBypassedBy, v))
}

// BypassReasonEQ applies the EQ predicate on the "bypass_reason" field.
func BypassReasonEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldBypassReason, v))
}

// BypassReasonNEQ applies the NEQ predicate on the "bypass_reason" field.
func BypassReasonNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldBypassReason, v))
}

// BypassReasonIn applies the In predicate on the "bypass_reason" field.
func BypassReasonIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldBypassReason, vs...))
}

// BypassReasonNotIn applies the NotIn predicate on the "bypass_reason" field.
func BypassReasonNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldBypassReason, vs...))
}

// BypassReasonGT applies the GT predicate on the "bypass_reason" field.
func BypassReasonGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldBypassReason, v))
}

// BypassReasonGTE applies the GTE predicate on the "bypass_reason" field.
func BypassReasonGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldBypassReason, v))
}

// BypassReasonLT applies the LT predicate on the "bypass_reason" field.
func BypassReasonLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldBypassReason, v))
}

// BypassReasonLTE applies the LTE predicate on the "bypass_reason" field.
func BypassReasonLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldBypassReason, v))
}

// BypassReasonContains applies the Contains predicate on the "bypass_reason" field.
func BypassReasonContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldBypassReason, v))
}

// BypassReasonHasPrefix applies the HasPrefix predicate on the "bypass_reason" field.
func BypassReasonHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldBypassReason, v))
}

// BypassReasonHasSuffix applies the HasSuffix predicate on the "bypass_reason" field.
func BypassReasonHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldBypassReason, v))
}

// BypassReasonIsNil applies the IsNil predicate on the "bypass_reason" field.
func BypassReasonIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldBypassReason))
}

// BypassReasonNotNil applies the NotNil predicate on the "bypass_reason" field.
func BypassReasonNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldBypassReason))
}

// BypassReasonEqualFold applies the EqualFold predicate on the "bypass_reason" field.
func BypassReasonEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldBypassReason, v))
}

// BypassReasonContainsFold applies the ContainsFold predicate on the "bypass_reason" field.
func BypassReasonContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldBypassReason, v))
}

// BypassedAtEQ applies the EQ predicate on the "bypassed_at" field.
func BypassedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldBypassedAt, v))
}

// BypassedAtNEQ applies the NEQ predicate on the "bypassed_at" field.
func BypassedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldBypassedAt, v))
}

// BypassedAtIn applies the In predicate on the "bypassed_at" field.
func BypassedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldBypassedAt, vs...))
}

// BypassedAtNotIn applies the NotIn predicate on the "bypassed_at" field.
func BypassedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldBypassedAt, vs...))
}

// BypassedAtGT applies the GT predicate on the "bypassed_at" field.
func BypassedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldBypassedAt, v))
}

// BypassedAtGTE applies the GTE predicate on the "bypassed_at" field.
func BypassedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldBypassedAt, v))
}

// BypassedAtLT applies the LT predicate on the "bypassed_at" field.
func BypassedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldBypassedAt, v))
}

// BypassedAtLTE applies the LTE predicate on the "bypassed_at" field.
func BypassedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldBypassedAt, v))
}

// BypassedAtIsNil applies the IsNil predicate on the "bypassed_at" field.
func BypassedAtIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldBypassedAt))
}

// BypassedAtNotNil applies the NotNil predicate on the "bypassed_at" field.
func BypassedAtNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldBypassedAt))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldResolvedAt))
}

// HasDecisions applies the HasEdge predicate on the "decisions" edge.
func HasDecisions() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DecisionsTable, DecisionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDecisionsWith applies the HasEdge predicate on the "decisions" edge with a given conditions (other predicates).
func HasDecisionsWith(preds ...predicate.ApprovalDecision) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := newDecisionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditEntries applies the HasEdge predicate on the "audit_entries" edge.
func HasAuditEntries() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditEntriesTable, AuditEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditEntriesWith applies the HasEdge predicate on the "audit_entries" edge with a given conditions (other predicates).
func HasAuditEntriesWith(preds ...predicate.AuditEntry) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(func(s *sql.Selector) {
		step := newAuditEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.NotPredicates(p))
}
