// internal/domain/models/organization.go
package models

import "strings"

// SocialLinks holds an organization's public social channels. All fields are
// optional; empty strings are omitted from JSON.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Line      string `json:"line,omitempty" bson:"line,omitempty"`
	Website   string `json:"website,omitempty" bson:"website,omitempty"`
}

// RawOrganization is a club record as the upstream directory API delivers it.
type RawOrganization struct {
	ID          string      `json:"id" bson:"id"`
	NameTH      string      `json:"name_th,omitempty" bson:"name_th,omitempty"`
	NameEN      string      `json:"name_en,omitempty" bson:"name_en,omitempty"`
	Nickname    string      `json:"nickname,omitempty" bson:"nickname,omitempty"`
	TypeName    string      `json:"type_name,omitempty" bson:"type_name,omitempty"`
	CampusName  string      `json:"campus_name,omitempty" bson:"campus_name,omitempty"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Social      SocialLinks `json:"social,omitempty" bson:"social,omitempty"`
}

// Organization is the canonical club record served to presentation layers.
// Description has been sanitized; Views comes from the local view-counter
// store, not from upstream.
type Organization struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	NameTH      string      `json:"name_th,omitempty"`
	NameEN      string      `json:"name_en,omitempty"`
	Nickname    string      `json:"nickname,omitempty"`
	TypeName    string      `json:"type_name,omitempty"`
	CampusName  string      `json:"campus_name,omitempty"`
	Description string      `json:"description,omitempty"`
	Social      SocialLinks `json:"social,omitempty"`
	Views       int64       `json:"views"`
}

// OrgNameFallback is the display name for a record with no usable name.
const OrgNameFallback = "Unnamed organization"

// ResolveDisplayName applies the precedence nickname > name_th > name_en.
func (o RawOrganization) ResolveDisplayName() string {
	if s := strings.TrimSpace(o.Nickname); s != "" {
		return s
	}
	if s := strings.TrimSpace(o.NameTH); s != "" {
		return s
	}
	if s := strings.TrimSpace(o.NameEN); s != "" {
		return s
	}
	return OrgNameFallback
}
