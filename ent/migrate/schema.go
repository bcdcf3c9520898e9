// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "context_type", Type: field.TypeString},
		{Name: "context_id", Type: field.TypeString, Nullable: true},
		{Name: "module_id", Type: field.TypeString, Nullable: true},
		{Name: "submitted_answer", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "time_spent_sec", Type: field.TypeInt},
		{Name: "error_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "construct_impacts", Type: field.TypeJSON, Nullable: true},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3]},
			},
			{
				Name:    "attempt_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[4]},
			},
			{
				Name:    "attempt_user_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3], AttemptsColumns[5]},
			},
		},
	}
	// ConstructStatesColumns holds the columns for the "construct_states" table.
	ConstructStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "construct", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64, Default: 50},
		{Name: "confidence", Type: field.TypeFloat64, Default: 10},
		{Name: "trend", Type: field.TypeString, Default: "stable"},
		{Name: "data_points", Type: field.TypeInt, Default: 0},
	}
	// ConstructStatesTable holds the schema information for the "construct_states" table.
	ConstructStatesTable = &schema.Table{
		Name:       "construct_states",
		Columns:    ConstructStatesColumns,
		PrimaryKey: []*schema.Column{ConstructStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "constructstate_user_id_construct",
				Unique:  true,
				Columns: []*schema.Column{ConstructStatesColumns[3], ConstructStatesColumns[4]},
			},
		},
	}
	// PlanCyclesColumns holds the columns for the "plan_cycles" table.
	PlanCyclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "task_count", Type: field.TypeInt},
		{Name: "focused_drill_count", Type: field.TypeInt, Default: 0},
		{Name: "mixed_drill_count", Type: field.TypeInt, Default: 0},
		{Name: "mock_count", Type: field.TypeInt, Default: 0},
		{Name: "flashcard_count", Type: field.TypeInt, Default: 0},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "days_remaining", Type: field.TypeInt},
		{Name: "weak_skill_count", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "active"},
	}
	// PlanCyclesTable holds the schema information for the "plan_cycles" table.
	PlanCyclesTable = &schema.Table{
		Name:       "plan_cycles",
		Columns:    PlanCyclesColumns,
		PrimaryKey: []*schema.Column{PlanCyclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plancycle_user_id",
				Unique:  false,
				Columns: []*schema.Column{PlanCyclesColumns[3]},
			},
			{
				Name:    "plancycle_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{PlanCyclesColumns[3], PlanCyclesColumns[12]},
			},
		},
	}
	// PlanTasksColumns holds the columns for the "plan_tasks" table.
	PlanTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "cycle_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PlanTasksTable holds the schema information for the "plan_tasks" table.
	PlanTasksTable = &schema.Table{
		Name:       "plan_tasks",
		Columns:    PlanTasksColumns,
		PrimaryKey: []*schema.Column{PlanTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plantask_cycle_id",
				Unique:  false,
				Columns: []*schema.Column{PlanTasksColumns[3]},
			},
			{
				Name:    "plantask_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{PlanTasksColumns[4], PlanTasksColumns[7]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "cognitive_level", Type: field.TypeString, Default: "L1"},
		{Name: "answer_format", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "construct_weights", Type: field.TypeJSON, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_skill_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3]},
			},
			{
				Name:    "question_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[4]},
			},
		},
	}
	// SkillStatesColumns holds the columns for the "skill_states" table.
	SkillStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "total_time_sec", Type: field.TypeInt, Default: 0},
		{Name: "avg_time_sec", Type: field.TypeFloat64, Default: 0},
		{Name: "mastery_level", Type: field.TypeString, Default: "developing"},
		{Name: "last_attempted_at", Type: field.TypeTime, Nullable: true},
	}
	// SkillStatesTable holds the schema information for the "skill_states" table.
	SkillStatesTable = &schema.Table{
		Name:       "skill_states",
		Columns:    SkillStatesColumns,
		PrimaryKey: []*schema.Column{SkillStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillstate_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{SkillStatesColumns[3], SkillStatesColumns[4]},
			},
			{
				Name:    "skillstate_user_id_mastery_level",
				Unique:  false,
				Columns: []*schema.Column{SkillStatesColumns[3], SkillStatesColumns[10]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "package_length_days", Type: field.TypeInt, Default: 0},
		{Name: "daily_minutes", Type: field.TypeInt, Default: 0},
		{Name: "package_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "phase", Type: field.TypeString, Default: "onboarding"},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprofile_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		ConstructStatesTable,
		PlanCyclesTable,
		PlanTasksTable,
		QuestionsTable,
		SkillStatesTable,
		UserProfilesTable,
	}
)

func init() {
}
