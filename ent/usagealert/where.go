// Code generated by ent, DO NOT EDIT.

package usagealert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/MiniSankaz/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldUserID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldType, v))
}

// Series applies equality check predicate on the "series" field. It's identical to SeriesEQ.
func Series(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldSeries, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldLevel, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldThreshold, v))
}

// CurrentUsage applies equality check predicate on the "current_usage" field. It's identical to CurrentUsageEQ.
func CurrentUsage(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldCurrentUsage, v))
}

// LimitValue applies equality check predicate on the "limit_value" field. It's identical to LimitValueEQ.
func LimitValue(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldLimitValue, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldMessage, v))
}

// Acknowledged applies equality check predicate on the "acknowledged" field. It's identical to AcknowledgedEQ.
func Acknowledged(v bool) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldAcknowledged, v))
}

// AcknowledgedAt applies equality check predicate on the "acknowledged_at" field. It's identical to AcknowledgedAtEQ.
func AcknowledgedAt(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedBy applies equality check predicate on the "acknowledged_by" field. It's identical to AcknowledgedByEQ.
func AcknowledgedBy(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldAcknowledgedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContainsFold(FieldUserID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContainsFold(FieldType, v))
}

// SeriesEQ applies the EQ predicate on the "series" field.
func SeriesEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldSeries, v))
}

// SeriesNEQ applies the NEQ predicate on the "series" field.
func SeriesNEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldSeries, v))
}

// SeriesIn applies the In predicate on the "series" field.
func SeriesIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldSeries, vs...))
}

// SeriesNotIn applies the NotIn predicate on the "series" field.
func SeriesNotIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldSeries, vs...))
}

// SeriesGT applies the GT predicate on the "series" field.
func SeriesGT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldSeries, v))
}

// SeriesGTE applies the GTE predicate on the "series" field.
func SeriesGTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldSeries, v))
}

// SeriesLT applies the LT predicate on the "series" field.
func SeriesLT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldSeries, v))
}

// SeriesLTE applies the LTE predicate on the "series" field.
func SeriesLTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldSeries, v))
}

// SeriesContains applies the Contains predicate on the "series" field.
func SeriesContains(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContains(FieldSeries, v))
}

// SeriesHasPrefix applies the HasPrefix predicate on the "series" field.
func SeriesHasPrefix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasPrefix(FieldSeries, v))
}

// SeriesHasSuffix applies the HasSuffix predicate on the "series" field.
func SeriesHasSuffix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasSuffix(FieldSeries, v))
}

// SeriesIsNil applies the IsNil predicate on the "series" field.
func SeriesIsNil() predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIsNull(FieldSeries))
}

// SeriesNotNil applies the NotNil predicate on the "series" field.
func SeriesNotNil() predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotNull(FieldSeries))
}

// SeriesEqualFold applies the EqualFold predicate on the "series" field.
func SeriesEqualFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEqualFold(FieldSeries, v))
}

// SeriesContainsFold applies the ContainsFold predicate on the "series" field.
func SeriesContainsFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContainsFold(FieldSeries, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContainsFold(FieldLevel, v))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldThreshold, v))
}

// CurrentUsageEQ applies the EQ predicate on the "current_usage" field.
func CurrentUsageEQ(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldCurrentUsage, v))
}

// CurrentUsageNEQ applies the NEQ predicate on the "current_usage" field.
func CurrentUsageNEQ(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldCurrentUsage, v))
}

// CurrentUsageIn applies the In predicate on the "current_usage" field.
func CurrentUsageIn(vs ...float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldCurrentUsage, vs...))
}

// CurrentUsageNotIn applies the NotIn predicate on the "current_usage" field.
func CurrentUsageNotIn(vs ...float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldCurrentUsage, vs...))
}

// CurrentUsageGT applies the GT predicate on the "current_usage" field.
func CurrentUsageGT(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldCurrentUsage, v))
}

// CurrentUsageGTE applies the GTE predicate on the "current_usage" field.
func CurrentUsageGTE(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldCurrentUsage, v))
}

// CurrentUsageLT applies the LT predicate on the "current_usage" field.
func CurrentUsageLT(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldCurrentUsage, v))
}

// CurrentUsageLTE applies the LTE predicate on the "current_usage" field.
func CurrentUsageLTE(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldCurrentUsage, v))
}

// LimitValueEQ applies the EQ predicate on the "limit_value" field.
func LimitValueEQ(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldLimitValue, v))
}

// LimitValueNEQ applies the NEQ predicate on the "limit_value" field.
func LimitValueNEQ(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldLimitValue, v))
}

// LimitValueIn applies the In predicate on the "limit_value" field.
func LimitValueIn(vs ...float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldLimitValue, vs...))
}

// LimitValueNotIn applies the NotIn predicate on the "limit_value" field.
func LimitValueNotIn(vs ...float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldLimitValue, vs...))
}

// LimitValueGT applies the GT predicate on the "limit_value" field.
func LimitValueGT(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldLimitValue, v))
}

// LimitValueGTE applies the GTE predicate on the "limit_value" field.
func LimitValueGTE(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldLimitValue, v))
}

// LimitValueLT applies the LT predicate on the "limit_value" field.
func LimitValueLT(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldLimitValue, v))
}

// LimitValueLTE applies the LTE predicate on the "limit_value" field.
func LimitValueLTE(v float64) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldLimitValue, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContainsFold(FieldMessage, v))
}

// AcknowledgedEQ applies the EQ predicate on the "acknowledged" field.
func AcknowledgedEQ(v bool) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldAcknowledged, v))
}

// AcknowledgedNEQ applies the NEQ predicate on the "acknowledged" field.
func AcknowledgedNEQ(v bool) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldAcknowledged, v))
}

// AcknowledgedAtEQ applies the EQ predicate on the "acknowledged_at" field.
func AcknowledgedAtEQ(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtNEQ applies the NEQ predicate on the "acknowledged_at" field.
func AcknowledgedAtNEQ(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIn applies the In predicate on the "acknowledged_at" field.
func AcknowledgedAtIn(vs ...time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtNotIn applies the NotIn predicate on the "acknowledged_at" field.
func AcknowledgedAtNotIn(vs ...time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtGT applies the GT predicate on the "acknowledged_at" field.
func AcknowledgedAtGT(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtGTE applies the GTE predicate on the "acknowledged_at" field.
func AcknowledgedAtGTE(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLT applies the LT predicate on the "acknowledged_at" field.
func AcknowledgedAtLT(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLTE applies the LTE predicate on the "acknowledged_at" field.
func AcknowledgedAtLTE(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIsNil applies the IsNil predicate on the "acknowledged_at" field.
func AcknowledgedAtIsNil() predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIsNull(FieldAcknowledgedAt))
}

// AcknowledgedAtNotNil applies the NotNil predicate on the "acknowledged_at" field.
func AcknowledgedAtNotNil() predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotNull(FieldAcknowledgedAt))
}

// AcknowledgedByEQ applies the EQ predicate on the "acknowledged_by" field.
func AcknowledgedByEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldAcknowledgedBy, v))
}

// AcknowledgedByNEQ applies the NEQ predicate on the "acknowledged_by" field.
func AcknowledgedByNEQ(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldAcknowledgedBy, v))
}

// AcknowledgedByIn applies the In predicate on the "acknowledged_by" field.
func AcknowledgedByIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldAcknowledgedBy, vs...))
}

// AcknowledgedByNotIn applies the NotIn predicate on the "acknowledged_by" field.
func AcknowledgedByNotIn(vs ...string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldAcknowledgedBy, vs...))
}

// AcknowledgedByGT applies the GT predicate on the "acknowledged_by" field.
func AcknowledgedByGT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldAcknowledgedBy, v))
}

// AcknowledgedByGTE applies the GTE predicate on the "acknowledged_by" field.
func AcknowledgedByGTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldAcknowledgedBy, v))
}

// AcknowledgedByLT applies the LT predicate on the "acknowledged_by" field.
func AcknowledgedByLT(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldAcknowledgedBy, v))
}

// AcknowledgedByLTE applies the LTE predicate on the "acknowledged_by" field.
func AcknowledgedByLTE(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldAcknowledgedBy, v))
}

// AcknowledgedByContains applies the Contains predicate on the "acknowledged_by" field.
func AcknowledgedByContains(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContains(FieldAcknowledgedBy, v))
}

// AcknowledgedByHasPrefix applies the HasPrefix predicate on the "acknowledged_by" field.
func AcknowledgedByHasPrefix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasPrefix(FieldAcknowledgedBy, v))
}

// AcknowledgedByHasSuffix applies the HasSuffix predicate on the "acknowledged_by" field.
func AcknowledgedByHasSuffix(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldHasSuffix(FieldAcknowledgedBy, v))
}

// AcknowledgedByIsNil applies the IsNil predicate on the "acknowledged_by" field.
func AcknowledgedByIsNil() predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIsNull(FieldAcknowledgedBy))
}

// AcknowledgedByNotNil applies the NotNil predicate on the "acknowledged_by" field.
func AcknowledgedByNotNil() predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotNull(FieldAcknowledgedBy))
}

// AcknowledgedByEqualFold applies the EqualFold predicate on the "acknowledged_by" field.
func AcknowledgedByEqualFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEqualFold(FieldAcknowledgedBy, v))
}

// AcknowledgedByContainsFold applies the ContainsFold predicate on the "acknowledged_by" field.
func AcknowledgedByContainsFold(v string) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldContainsFold(FieldAcknowledgedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageAlert {
	return predicate.UsageAlert(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageAlert) predicate.UsageAlert {
	return predicate.UsageAlert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageAlert) predicate.UsageAlert {
	return predicate.UsageAlert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageAlert) predicate.UsageAlert {
	return predicate.UsageAlert(sql.NotPredicates(p))
}
