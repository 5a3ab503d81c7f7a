package v1

import (
	"net/http"
	"strconv"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const msgJobseekerNotFound = "Jobseeker not found"

type JobseekerHandler struct {
	jobseekerUC domain.JobseekerUsecase
}

func NewJobseekerHandler(r gin.IRouter, jobseekerUC domain.JobseekerUsecase) {
	handler := &JobseekerHandler{jobseekerUC: jobseekerUC}

	jobseekers := r.Group("/jobseekers")
	{
		jobseekers.GET("", handler.List)
		jobseekers.POST("", handler.Create)
		jobseekers.GET("/:id", handler.GetDetails)
		jobseekers.PUT("/:id", handler.Update)
		jobseekers.DELETE("/:id", handler.Delete)
	}
}

// ListJobseekers godoc
// @Summary      List jobseekers
// @Description  Returns every jobseeker matching all supplied filters, in storage order
// @Tags         jobseekers
// @Produce      json
// @Param        name      query     string  false  "Substring of the full name"
// @Param        skill     query     string  false  "Substring of the skills list"
// @Param        location  query     string  false  "Exact location"
// @Param        minExp    query     int     false  "Minimum years of experience (inclusive)"
// @Param        maxExp    query     int     false  "Maximum years of experience (inclusive)"
// @Success      200       {array}   domain.Jobseeker
// @Failure      500       {object}  response.ErrorBody
// @Router       /jobseekers [get]
func (h *JobseekerHandler) List(c *gin.Context) {
	filter := domain.JobseekerFilter{
		Name:     c.Query("name"),
		Skill:    c.Query("skill"),
		Location: c.Query("location"),
		MinExp:   queryInt(c, "minExp"),
		MaxExp:   queryInt(c, "maxExp"),
	}

	jobseekers, err := h.jobseekerUC.ListJobseekers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, jobseekers)
}

// GetJobseeker godoc
// @Summary      Get a jobseeker
// @Tags         jobseekers
// @Produce      json
// @Param        id   path      int  true  "Jobseeker ID"
// @Success      200  {object}  domain.Jobseeker
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /jobseekers/{id} [get]
func (h *JobseekerHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	js, err := h.jobseekerUC.GetJobseeker(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, js)
}

// CreateJobseeker godoc
// @Summary      Create a jobseeker
// @Description  fullName and email are required; experienceYears defaults to 0
// @Tags         jobseekers
// @Accept       json
// @Produce      json
// @Param        jobseeker  body      domain.JobseekerInput  true  "Jobseeker JSON"
// @Success      201        {object}  response.MessageBody
// @Failure      400        {object}  response.ErrorBody
// @Failure      500        {object}  response.ErrorBody
// @Router       /jobseekers [post]
func (h *JobseekerHandler) Create(c *gin.Context) {
	input, ok := bindInput(c)
	if !ok {
		return
	}

	js, err := h.jobseekerUC.CreateJobseeker(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Created(c, http.StatusCreated, "Jobseeker created", js.ID)
}

// UpdateJobseeker godoc
// @Summary      Replace a jobseeker
// @Description  Overwrites every field; omitted optional fields are cleared
// @Tags         jobseekers
// @Accept       json
// @Produce      json
// @Param        id         path      int                    true  "Jobseeker ID"
// @Param        jobseeker  body      domain.JobseekerInput  true  "Jobseeker JSON"
// @Success      200        {object}  response.MessageBody
// @Failure      400        {object}  response.ErrorBody
// @Failure      404        {object}  response.ErrorBody
// @Failure      500        {object}  response.ErrorBody
// @Router       /jobseekers/{id} [put]
func (h *JobseekerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := bindInput(c)
	if !ok {
		return
	}

	if err := h.jobseekerUC.UpdateJobseeker(c.Request.Context(), id, input); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Jobseeker updated")
}

// DeleteJobseeker godoc
// @Summary      Delete a jobseeker
// @Tags         jobseekers
// @Produce      json
// @Param        id   path      int  true  "Jobseeker ID"
// @Success      200  {object}  response.MessageBody
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /jobseekers/{id} [delete]
func (h *JobseekerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.jobseekerUC.DeleteJobseeker(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Jobseeker deleted")
}

// pathID parses :id. An id that cannot name a row is reported as not found.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.NotFound(msgJobseekerNotFound))
		return 0, false
	}
	return id, true
}

func bindInput(c *gin.Context) (*domain.JobseekerInput, bool) {
	var input domain.JobseekerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return nil, false
	}
	return &input, true
}

// queryInt returns nil for absent values and for values that are not integers
// in the experience_years column range, so they impose no filter.
func queryInt(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n64, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	n := int(n64)
	return &n
}
