package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/procurex/committee-service/internal/core/ports"
)

const dateLayout = "2006-01-02"

// CommitteeHandler handles HTTP requests for committee operations. Errors
// are returned to the central HTTP error handler for mapping.
type CommitteeHandler struct {
	service ports.CommitteeService
}

func NewCommitteeHandler(service ports.CommitteeService) *CommitteeHandler {
	return &CommitteeHandler{service: service}
}

// Create handles POST /committees.
//
// @Summary      Create a new committee
// @Tags         committees
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name             formData  string  true   "Committee name"
// @Param        purpose          formData  string  true   "Committee purpose"
// @Param        formationDate    formData  string  true   "Formation date (YYYY-MM-DD)"
// @Param        specificationSubmissionDate  formData  string  true  "Specification submission date (YYYY-MM-DD)"
// @Param        reviewDate       formData  string  true   "Review date (YYYY-MM-DD)"
// @Param        schedule         formData  string  false  "Meeting schedule"
// @Param        members          formData  string  false  "JSON array of employee IDs or {employeeId} objects"
// @Param        shouldNotify     formData  string  false  "Set to true to email every resolved member"
// @Param        formationLetter  formData  file    false  "Formation letter document"
// @Success      201  {object}  committeeResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /committees [post]
func (h *CommitteeHandler) Create(c echo.Context) error {
	var req createCommitteeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	formationDate, err := parseDate(req.FormationDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "formationDate must be a YYYY-MM-DD date")
	}
	specDate, err := parseDate(req.SpecificationSubmissionDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "specificationSubmissionDate must be a YYYY-MM-DD date")
	}
	reviewDate, err := parseDate(req.ReviewDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "reviewDate must be a YYYY-MM-DD date")
	}

	userID, _ := c.Get("user_id").(string)

	input := ports.CreateCommitteeInput{
		Name:                        req.Name,
		Purpose:                     req.Purpose,
		FormationDate:               formationDate,
		SpecificationSubmissionDate: specDate,
		ReviewDate:                  reviewDate,
		Schedule:                    req.Schedule,
		RawMembers:                  req.Members,
		CreatedBy:                   userID,
		Notify:                      req.ShouldNotify == "true",
	}

	if file, ferr := c.FormFile("formationLetter"); ferr == nil && file != nil {
		src, oerr := file.Open()
		if oerr != nil {
			return oerr
		}
		defer src.Close()

		input.Letter = &ports.LetterUpload{
			Reader:       src,
			OriginalName: file.Filename,
			MimeType:     file.Header.Get("Content-Type"),
			Size:         file.Size,
		}
	}

	committee, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, committeeResponse{
		Status: "success",
		Data:   committeeData{Committee: committee},
	})
}

// List handles GET /committees.
//
// @Summary      List all committees, newest first
// @Tags         committees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  committeeListResponse
// @Failure      500  {object}  errorResponse
// @Router       /committees [get]
func (h *CommitteeHandler) List(c echo.Context) error {
	committees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, committeeListResponse{
		Status:  "success",
		Results: len(committees),
		Data:    committeeListData{Committees: committees},
	})
}

// Get handles GET /committees/:id.
//
// @Summary      Get a committee by ID
// @Tags         committees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Committee ID"
// @Success      200  {object}  committeeResponse
// @Failure      404  {object}  errorResponse
// @Router       /committees/{id} [get]
func (h *CommitteeHandler) Get(c echo.Context) error {
	committee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, committeeResponse{
		Status: "success",
		Data:   committeeData{Committee: committee},
	})
}

// Download handles GET /committees/:id/download. It streams the stored
// formation letter under its original filename.
//
// @Summary      Download a committee's formation letter
// @Tags         committees
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id   path      string  true  "Committee ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  errorResponse
// @Router       /committees/{id}/download [get]
func (h *CommitteeHandler) Download(c echo.Context) error {
	letter, err := h.service.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Attachment(letter.Path, letter.OriginalName)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
