package handler

import "github.com/procurex/committee-service/internal/core/domain"

// createCommitteeRequest binds the multipart form fields of a create
// request. Dates arrive as YYYY-MM-DD strings; members is a JSON payload
// passed through to the service untouched; the file part (formationLetter)
// is read separately from the multipart form.
type createCommitteeRequest struct {
	Name                        string `form:"name"                        validate:"required"`
	Purpose                     string `form:"purpose"                     validate:"required"`
	FormationDate               string `form:"formationDate"               validate:"required"`
	SpecificationSubmissionDate string `form:"specificationSubmissionDate" validate:"required"`
	ReviewDate                  string `form:"reviewDate"                  validate:"required"`
	Schedule                    string `form:"schedule"`
	Members                     string `form:"members"`
	ShouldNotify                string `form:"shouldNotify"`
}

// Response envelopes follow the {"status":"success","data":{...}} contract
// the portal frontend consumes.

type committeeData struct {
	Committee *domain.Committee `json:"committee"`
}

type committeeResponse struct {
	Status string        `json:"status"`
	Data   committeeData `json:"data"`
}

type committeeListData struct {
	Committees []*domain.Committee `json:"committees"`
}

type committeeListResponse struct {
	Status  string            `json:"status"`
	Results int               `json:"results"`
	Data    committeeListData `json:"data"`
}
