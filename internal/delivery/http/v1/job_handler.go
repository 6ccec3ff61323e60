package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/delivery/http/response"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// Job browsing is public: candidates read postings before they have an account
func NewJobHandler(public *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/featured", handler.Featured)
		jobs.GET("/filters", handler.Filters)
		jobs.GET("/:id", handler.GetDetails)
	}
}

// List godoc
// @Summary      List job postings
// @Description  List postings, optionally narrowed by free-text search, category and location
// @Tags         jobs
// @Produce      json
// @Param        search    query     string  false  "Title/department substring"
// @Param        category  query     string  false  "Category slug, 'all' for no filter"
// @Param        location  query     string  false  "Location filter, 'all' for no filter"
// @Success      200       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	search := c.Query("search")
	category := c.DefaultQuery("category", "all")
	location := c.DefaultQuery("location", "all")

	var (
		jobs []domain.Job
		err  error
	)
	if search == "" && category == "all" && location == "all" {
		jobs, err = h.jobUC.ListJobs(c)
	} else {
		jobs, err = h.jobUC.SearchJobs(c, search, category, location)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// Featured godoc
// @Summary      Featured jobs
// @Description  Postings flagged for the landing page carousel
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/featured [get]
func (h *JobHandler) Featured(c *gin.Context) {
	jobs, err := h.jobUC.ListFeaturedJobs(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Featured jobs", jobs)
}

// Filters godoc
// @Summary      Job filter options
// @Description  Category counts and location options for the jobs page filter bar
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/filters [get]
func (h *JobHandler) Filters(c *gin.Context) {
	filters, err := h.jobUC.GetJobFilters(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job filters", filters)
}

// GetDetails godoc
// @Summary      Job details
// @Description  Full posting detail by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}
