// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// KnowledgeGraphDoc is the predicate function for knowledgegraphdoc builders.
type KnowledgeGraphDoc func(*sql.Selector)

// LLMCallEvent is the predicate function for llmcallevent builders.
type LLMCallEvent func(*sql.Selector)

// LessonPlanDoc is the predicate function for lessonplandoc builders.
type LessonPlanDoc func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
