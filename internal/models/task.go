package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	TaskPending    = "Pending"
	TaskInProgress = "In Progress"
	TaskDone       = "Done"
)

type Task struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID    string             `bson:"event_id" json:"event_id" validate:"required"`
	TaskName   string             `bson:"task_name" json:"task_name" validate:"required"`
	AssignedTo string             `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"` // volunteer id
	Status     string             `bson:"status" json:"status" validate:"oneof='Pending' 'In Progress' 'Done'"`
}

func (t *Task) ApplyDefaults() {
	if t.Status == "" {
		t.Status = TaskPending
	}
}
