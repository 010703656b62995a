// internal/domain/models/campus.go
package models

// Campus is a physical university location used as a coarse filter dimension.
// Campus filtering is exact string equality on Name; no normalization is
// applied anywhere in the pipeline.
type Campus struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}
