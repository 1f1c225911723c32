package models

// Project represents a showcased project on the projects page
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href,omitempty"`
	ImgSrc      string `json:"imgSrc,omitempty"`
}

// HasLink reports whether the project is navigable
func (p Project) HasLink() bool {
	return p.Href != ""
}

// HasImage reports whether the project carries its own preview image
func (p Project) HasImage() bool {
	return p.ImgSrc != ""
}

// ProjectView is a project as exposed over the API, with its derived slug
type ProjectView struct {
	Project
	Slug string `json:"slug"`
}
