// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/atlas/ent/activityevent"
	"github.com/abhisek/atlas/ent/knowledgegraphdoc"
	"github.com/abhisek/atlas/ent/lessonplandoc"
	"github.com/abhisek/atlas/ent/llmcallevent"
	"github.com/abhisek/atlas/ent/masteryrecord"
	"github.com/abhisek/atlas/ent/schema"
	"github.com/abhisek/atlas/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescEventID is the schema descriptor for event_id field.
	activityeventDescEventID := activityeventFields[0].Descriptor()
	// activityevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	activityevent.EventIDValidator = activityeventDescEventID.Validators[0].(func(string) error)
	// activityeventDescSessionID is the schema descriptor for session_id field.
	activityeventDescSessionID := activityeventFields[1].Descriptor()
	// activityevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	activityevent.SessionIDValidator = activityeventDescSessionID.Validators[0].(func(string) error)
	// activityeventDescNodeID is the schema descriptor for node_id field.
	activityeventDescNodeID := activityeventFields[2].Descriptor()
	// activityevent.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	activityevent.NodeIDValidator = activityeventDescNodeID.Validators[0].(func(string) error)
	// activityeventDescOutcome is the schema descriptor for outcome field.
	activityeventDescOutcome := activityeventFields[3].Descriptor()
	// activityevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	activityevent.OutcomeValidator = activityeventDescOutcome.Validators[0].(func(string) error)
	// activityeventDescStateAfter is the schema descriptor for state_after field.
	activityeventDescStateAfter := activityeventFields[5].Descriptor()
	// activityevent.StateAfterValidator is a validator for the "state_after" field. It is called by the builders before save.
	activityevent.StateAfterValidator = activityeventDescStateAfter.Validators[0].(func(string) error)
	knowledgegraphdocFields := schema.KnowledgeGraphDoc{}.Fields()
	_ = knowledgegraphdocFields
	// knowledgegraphdocDescSessionID is the schema descriptor for session_id field.
	knowledgegraphdocDescSessionID := knowledgegraphdocFields[0].Descriptor()
	// knowledgegraphdoc.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	knowledgegraphdoc.SessionIDValidator = knowledgegraphdocDescSessionID.Validators[0].(func(string) error)
	// knowledgegraphdocDescModel is the schema descriptor for model field.
	knowledgegraphdocDescModel := knowledgegraphdocFields[5].Descriptor()
	// knowledgegraphdoc.DefaultModel holds the default value on creation for the model field.
	knowledgegraphdoc.DefaultModel = knowledgegraphdocDescModel.Default.(string)
	// knowledgegraphdocDescCreatedAt is the schema descriptor for created_at field.
	knowledgegraphdocDescCreatedAt := knowledgegraphdocFields[6].Descriptor()
	// knowledgegraphdoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgegraphdoc.DefaultCreatedAt = knowledgegraphdocDescCreatedAt.Default.(func() time.Time)
	llmcalleventMixin := schema.LLMCallEvent{}.Mixin()
	llmcalleventMixinFields0 := llmcalleventMixin[0].Fields()
	_ = llmcalleventMixinFields0
	llmcalleventFields := schema.LLMCallEvent{}.Fields()
	_ = llmcalleventFields
	// llmcalleventDescTimestamp is the schema descriptor for timestamp field.
	llmcalleventDescTimestamp := llmcalleventMixinFields0[1].Descriptor()
	// llmcallevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmcallevent.DefaultTimestamp = llmcalleventDescTimestamp.Default.(func() time.Time)
	// llmcalleventDescInputTokens is the schema descriptor for input_tokens field.
	llmcalleventDescInputTokens := llmcalleventFields[3].Descriptor()
	// llmcallevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcallevent.DefaultInputTokens = llmcalleventDescInputTokens.Default.(int)
	// llmcalleventDescOutputTokens is the schema descriptor for output_tokens field.
	llmcalleventDescOutputTokens := llmcalleventFields[4].Descriptor()
	// llmcallevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcallevent.DefaultOutputTokens = llmcalleventDescOutputTokens.Default.(int)
	// llmcalleventDescLatencyMs is the schema descriptor for latency_ms field.
	llmcalleventDescLatencyMs := llmcalleventFields[5].Descriptor()
	// llmcallevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcallevent.DefaultLatencyMs = llmcalleventDescLatencyMs.Default.(int64)
	// llmcalleventDescErrorMessage is the schema descriptor for error_message field.
	llmcalleventDescErrorMessage := llmcalleventFields[7].Descriptor()
	// llmcallevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmcallevent.DefaultErrorMessage = llmcalleventDescErrorMessage.Default.(string)
	lessonplandocFields := schema.LessonPlanDoc{}.Fields()
	_ = lessonplandocFields
	// lessonplandocDescSessionID is the schema descriptor for session_id field.
	lessonplandocDescSessionID := lessonplandocFields[0].Descriptor()
	// lessonplandoc.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonplandoc.SessionIDValidator = lessonplandocDescSessionID.Validators[0].(func(string) error)
	// lessonplandocDescCreatedAt is the schema descriptor for created_at field.
	lessonplandocDescCreatedAt := lessonplandocFields[3].Descriptor()
	// lessonplandoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonplandoc.DefaultCreatedAt = lessonplandocDescCreatedAt.Default.(func() time.Time)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescSessionID is the schema descriptor for session_id field.
	masteryrecordDescSessionID := masteryrecordFields[0].Descriptor()
	// masteryrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	masteryrecord.SessionIDValidator = masteryrecordDescSessionID.Validators[0].(func(string) error)
	// masteryrecordDescNodeID is the schema descriptor for node_id field.
	masteryrecordDescNodeID := masteryrecordFields[1].Descriptor()
	// masteryrecord.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	masteryrecord.NodeIDValidator = masteryrecordDescNodeID.Validators[0].(func(string) error)
	// masteryrecordDescState is the schema descriptor for state field.
	masteryrecordDescState := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultState holds the default value on creation for the state field.
	masteryrecord.DefaultState = masteryrecordDescState.Default.(string)
	// masteryrecordDescMasteryLevel is the schema descriptor for mastery_level field.
	masteryrecordDescMasteryLevel := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	masteryrecord.DefaultMasteryLevel = masteryrecordDescMasteryLevel.Default.(float64)
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSessionID is the schema descriptor for session_id field.
	sessionDescSessionID := sessionFields[0].Descriptor()
	// session.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	session.SessionIDValidator = sessionDescSessionID.Validators[0].(func(string) error)
	// sessionDescGoal is the schema descriptor for goal field.
	sessionDescGoal := sessionFields[1].Descriptor()
	// session.GoalValidator is a validator for the "goal" field. It is called by the builders before save.
	session.GoalValidator = sessionDescGoal.Validators[0].(func(string) error)
	// sessionDescStatus is the schema descriptor for status field.
	sessionDescStatus := sessionFields[2].Descriptor()
	// session.DefaultStatus holds the default value on creation for the status field.
	session.DefaultStatus = sessionDescStatus.Default.(string)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[4].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[5].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
