// internal/app/features/projects/types.go
package projects

import (
	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/system/paging"
	"github.com/nontawat/clubhub/internal/domain/models"
)

// projectView is a project together with its derived activity tags and the
// bucket it falls in at request time.
type projectView struct {
	*models.Project
	Tags   []models.ActivityTag `json:"tags"`
	Bucket string               `json:"bucket"`
}

// listResponse is the JSON body for GET /projects. Counts covers the whole
// filtered set; Projects is one windowed bucket of it.
type listResponse struct {
	Projects []projectView    `json:"projects"`
	Bucket   string           `json:"bucket"`
	Counts   directory.Counts `json:"counts"`
	Page     paging.Page      `json:"page"`
	Total    int              `json:"total"`
}

// detailResponse is the JSON body for GET /projects/{id}.
type detailResponse struct {
	Project projectView `json:"project"`
}
