package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"studioops/internal/logging"
	"studioops/internal/sim"
	"studioops/pkg/models"
)

// CreatePostingHandler publishes a new job posting.
func CreatePostingHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.CreatePostingRequest
		if ok, respErr := bindAndValidate(c, reqID, &req); !ok {
			return respErr
		}

		posting, err := session.CreatePosting(
			models.Position(req.Position), req.MinSkillLevel, req.SalaryMin, req.SalaryMax)
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		logger.Info("Job posting created", map[string]interface{}{
			"posting_id": posting.ID,
			"position":   posting.Position,
		})
		return c.JSON(http.StatusCreated, posting)
	}
}

// ListPostingsHandler returns every posting.
func ListPostingsHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"postings": session.Postings(),
		})
	}
}

// GetPostingHandler returns one posting with its applicants.
func GetPostingHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		posting, err := session.Posting(c.Param("id"))
		if err != nil {
			return errorJSON(c, reqID, err)
		}
		return c.JSON(http.StatusOK, posting)
	}
}

// PausePostingHandler suspends an active posting.
func PausePostingHandler(session *sim.Session) echo.HandlerFunc {
	return postingTransition(session, "paused", func(s *sim.Session, id string) (models.JobPosting, error) {
		return s.PausePosting(id)
	})
}

// ResumePostingHandler reactivates a paused posting.
func ResumePostingHandler(session *sim.Session) echo.HandlerFunc {
	return postingTransition(session, "resumed", func(s *sim.Session, id string) (models.JobPosting, error) {
		return s.ResumePosting(id)
	})
}

// ClosePostingHandler terminally closes a posting.
func ClosePostingHandler(session *sim.Session) echo.HandlerFunc {
	return postingTransition(session, "closed", func(s *sim.Session, id string) (models.JobPosting, error) {
		return s.ClosePosting(id)
	})
}

func postingTransition(session *sim.Session, action string, fn func(*sim.Session, string) (models.JobPosting, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		posting, err := fn(session, c.Param("id"))
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		logger.Info("Job posting "+action, map[string]interface{}{"posting_id": posting.ID})
		return c.JSON(http.StatusOK, posting)
	}
}

// InterviewHandler runs either interview mode against a pending applicant.
func InterviewHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.InterviewRequest
		if ok, respErr := bindAndValidate(c, reqID, &req); !ok {
			return respErr
		}

		postingID := c.Param("id")
		applicantID := c.Param("applicantID")

		var (
			result  models.InterviewResult
			posting models.JobPosting
			err     error
		)
		switch req.Mode {
		case "player":
			if req.Decision == nil {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error:     "validation_failed",
					Message:   "player interviews require a decision",
					RequestID: reqID,
					Timestamp: time.Now(),
				})
			}
			result, posting, err = session.PlayerInterview(postingID, applicantID, *req.Decision, req.Notes)
		default:
			result, posting, err = session.HRInterview(postingID, applicantID)
		}
		if err != nil {
			return errorJSON(c, reqID, err)
		}

		logger.Info("Interview recorded", map[string]interface{}{
			"posting_id":   postingID,
			"applicant_id": applicantID,
			"mode":         req.Mode,
			"score":        result.Score,
			"passed":       result.Passed,
		})
		return c.JSON(http.StatusOK, models.InterviewResponse{Result: result, Posting: posting})
	}
}

// HireApplicantHandler hires an accepted applicant, charging the
// recruitment fee.
func HireApplicantHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		employee, cost, err := session.HireApplicant(c.Param("id"), c.Param("applicantID"))
		if err != nil {
			logger.Warn("Applicant hire refused", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, reqID, err)
		}

		logger.Info("Applicant hired", map[string]interface{}{
			"employee_id": employee.ID,
			"cost":        cost,
		})
		return c.JSON(http.StatusOK, models.HireResponse{Employee: employee, Cost: cost})
	}
}
