package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/delivery/http/response"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/apperror"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/security"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, admin *gin.RouterGroup, applicationUC domain.ApplicationUsecase, submitLimiter gin.HandlerFunc) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Candidate routes
	apps := protected.Group("/applications")
	{
		apps.POST("", submitLimiter, handler.Submit)
		apps.GET("/me", handler.GetMine)
	}
	protected.GET("/notifications", handler.GetNotifications)

	// Admin review routes
	adminApps := admin.Group("/applications")
	{
		adminApps.GET("", handler.List)
		adminApps.PATCH("/:id/status", handler.UpdateStatus)
		adminApps.GET("/:id/resume", handler.DownloadResume)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Submit godoc
// @Summary      Submit an application
// @Description  Multipart submission with resume (required) and cover letter (optional). One application per candidate per position.
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstName  formData  string  true   "First name"
// @Param        lastName   formData  string  true   "Last name"
// @Param        email      formData  string  true   "Contact email"
// @Param        phone      formData  string  true   "Phone number"
// @Param        jobId      formData  int     false  "Posting ID when applying to a specific job"
// @Param        resume     formData  file    true   "Resume (PDF, DOC or DOCX, max 10MB)"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(security.MaxDocumentSize * 2); err != nil {
		c.Error(apperror.BadRequest("Invalid multipart form"))
		return
	}

	sub := &domain.ApplicationSubmission{
		FirstName:       strings.TrimSpace(c.PostForm("firstName")),
		LastName:        strings.TrimSpace(c.PostForm("lastName")),
		Email:           strings.TrimSpace(c.PostForm("email")),
		Phone:           strings.TrimSpace(c.PostForm("phone")),
		Location:        strings.TrimSpace(c.PostForm("location")),
		JobTitle:        strings.TrimSpace(c.PostForm("jobTitle")),
		Education:       strings.TrimSpace(c.PostForm("education")),
		Experience:      strings.TrimSpace(c.PostForm("experience")),
		PortfolioLink:   strings.TrimSpace(c.PostForm("portfolioLink")),
		LinkedinProfile: strings.TrimSpace(c.PostForm("linkedinProfile")),
		GithubProfile:   strings.TrimSpace(c.PostForm("githubProfile")),
		WorkMode:        strings.TrimSpace(c.PostForm("workMode")),
		Availability:    strings.TrimSpace(c.PostForm("availability")),
		ExpectedSalary:  strings.TrimSpace(c.PostForm("expectedSalary")),
		Skills:          domain.SplitSkills(c.PostForm("skills")).List(),
	}

	if sub.Email == "" {
		sub.Email = c.GetString(string(domain.KeyUserEmail))
	}

	if raw := c.PostForm("jobId"); raw != "" {
		jobID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job ID"))
			return
		}
		sub.JobID = &jobID
	}

	resumeName, resumeData, err := readFormFile(c, "resume")
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	sub.ResumeFilename = resumeName
	sub.ResumeData = resumeData

	coverName, coverData, err := readFormFile(c, "coverLetter")
	if err == nil {
		sub.CoverLetterFilename = coverName
		sub.CoverLetterData = coverData
	}

	app, err := h.applicationUC.Submit(c, sub)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// GetMine godoc
// @Summary      My application
// @Description  Return the authenticated candidate's latest application
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMine(c *gin.Context) {
	email := c.GetString(string(domain.KeyUserEmail))

	app, err := h.applicationUC.GetMyApplication(c, email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// GetNotifications godoc
// @Summary      My notifications
// @Description  Status notifications derived from the candidate's application, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetNotifications(c *gin.Context) {
	email := c.GetString(string(domain.KeyUserEmail))

	notifications, err := h.applicationUC.GetMyNotifications(c, email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notifications", notifications)
}

// List godoc
// @Summary      List applications (admin)
// @Description  Filtered application list with per-status counts computed over the filtered set
// @Tags         admin
// @Produce      json
// @Param        name    query     string  false  "Candidate name substring (case-insensitive)"
// @Param        skills  query     string  false  "Skills substring (case-insensitive)"
// @Param        status  query     string  false  "Exact status"
// @Param        jobId   query     int     false  "Posting ID"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /admin/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	criteria := domain.FilterCriteria{
		Name:   c.Query("name"),
		Skills: c.Query("skills"),
		Status: c.Query("status"),
	}

	if raw := c.Query("jobId"); raw != "" {
		jobID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job ID"))
			return
		}
		criteria.JobID = &jobID
	}

	result, err := h.applicationUC.ListApplications(c, criteria)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", result)
}

// UpdateStatus godoc
// @Summary      Update application status (admin)
// @Description  Move an application to a new review status. No-op transitions are rejected.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /admin/applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Status is required"))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status updated", app)
}

// DownloadResume godoc
// @Summary      Download a resume (admin)
// @Description  Stream the stored resume document for an application
// @Tags         admin
// @Produce      application/octet-stream
// @Param        id   path      int  true  "Application ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  response.Response
// @Router       /admin/applications/{id}/resume [get]
// @Security     BearerAuth
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	record, err := h.applicationUC.GetApplication(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	data, contentType, err := h.applicationUC.DownloadResume(c, record.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(record.ResumeURL)))
	c.Data(http.StatusOK, contentType, data)
}

// readFormFile reads one uploaded file fully into memory. Documents are capped
// at 10MB so buffering is acceptable.
func readFormFile(c *gin.Context, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("%s file is required", field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, fmt.Errorf("could not read %s file", field)
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(io.LimitReader(file, security.MaxDocumentSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("could not read %s file", field)
	}

	return fileHeader.Filename, data, nil
}
