// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "mastery_after", Type: field.TypeFloat64},
		{Name: "state_after", Type: field.TypeString},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_session_id_node_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[4], ActivityEventsColumns[5]},
			},
		},
	}
	// KnowledgeGraphDocsColumns holds the columns for the "knowledge_graph_docs" table.
	KnowledgeGraphDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "document", Type: field.TypeJSON},
		{Name: "node_count", Type: field.TypeInt},
		{Name: "edge_count", Type: field.TypeInt},
		{Name: "max_depth", Type: field.TypeInt},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// KnowledgeGraphDocsTable holds the schema information for the "knowledge_graph_docs" table.
	KnowledgeGraphDocsTable = &schema.Table{
		Name:       "knowledge_graph_docs",
		Columns:    KnowledgeGraphDocsColumns,
		PrimaryKey: []*schema.Column{KnowledgeGraphDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgegraphdoc_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeGraphDocsColumns[1], KnowledgeGraphDocsColumns[7]},
			},
		},
	}
	// LlmCallEventsColumns holds the columns for the "llm_call_events" table.
	LlmCallEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmCallEventsTable holds the schema information for the "llm_call_events" table.
	LlmCallEventsTable = &schema.Table{
		Name:       "llm_call_events",
		Columns:    LlmCallEventsColumns,
		PrimaryKey: []*schema.Column{LlmCallEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcallevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[1]},
			},
			{
				Name:    "llmcallevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[2]},
			},
			{
				Name:    "llmcallevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[3]},
			},
			{
				Name:    "llmcallevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[5]},
			},
			{
				Name:    "llmcallevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[9]},
			},
		},
	}
	// LessonPlanDocsColumns holds the columns for the "lesson_plan_docs" table.
	LessonPlanDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "entries", Type: field.TypeJSON},
		{Name: "dropped", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonPlanDocsTable holds the schema information for the "lesson_plan_docs" table.
	LessonPlanDocsTable = &schema.Table{
		Name:       "lesson_plan_docs",
		Columns:    LessonPlanDocsColumns,
		PrimaryKey: []*schema.Column{LessonPlanDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonplandoc_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LessonPlanDocsColumns[1], LessonPlanDocsColumns[4]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Default: "not_started"},
		{Name: "mastery_level", Type: field.TypeFloat64, Default: 0},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_session_id_node_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_session_id_state",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[3]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "goal", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "ingested"},
		{Name: "profile", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		KnowledgeGraphDocsTable,
		LlmCallEventsTable,
		LessonPlanDocsTable,
		MasteryRecordsTable,
		SessionsTable,
	}
)

func init() {
}
