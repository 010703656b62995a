// internal/app/features/organizations/types.go
package organizations

import (
	"github.com/nontawat/clubhub/internal/app/directory"
	"github.com/nontawat/clubhub/internal/app/system/paging"
	"github.com/nontawat/clubhub/internal/domain/models"
)

// listResponse is the JSON body for GET /organizations.
type listResponse struct {
	Organizations []models.Organization `json:"organizations"`
	Page          paging.Page           `json:"page"`
	Total         int                   `json:"total"`
}

// detailResponse is the JSON body for GET /organizations/{id}. Projects holds
// the organization's projects bucketed against the request time.
type detailResponse struct {
	Organization models.Organization  `json:"organization"`
	Projects     directory.Categories `json:"projects"`
}

// viewResponse is the JSON body for POST /organizations/{id}/view.
type viewResponse struct {
	ID    string `json:"id"`
	Views int64  `json:"views"`
}
